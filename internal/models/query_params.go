package models

import (
	"time"
)

const (
	StatusFilterAll     = "all"
	StatusFilterPosted  = TransactionStatusPosted
	StatusFilterPending = TransactionStatusPending

	TypeFilterAll    = "all"
	TypeFilterCredit = TransactionTypeCredit
	TypeFilterDebit  = TransactionTypeDebit

	SortByDate        = "date"
	SortByAmount      = "amount"
	SortByDescription = "description"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// dateLayout is the wire format for date-range bounds (date inputs send
// calendar days, not instants).
const dateLayout = "2006-01-02"

// QueryParams is the full set of user-adjustable filter, sort and page
// settings for one view instance. Zero values are not meaningful on their
// own; call DefaultQueryParams or Normalize before handing the params to
// the query engine.
type QueryParams struct {
	Search    string     `query:"search"`
	Status    string     `query:"status"`
	Type      string     `query:"type"`
	StartDate *time.Time `query:"-"`
	EndDate   *time.Time `query:"-"`
	SortBy    string     `query:"sort_by"`
	SortOrder string     `query:"sort_order"`
	Page      int        `query:"page"`
	PageSize  int        `query:"-"`
}

// DefaultQueryParams returns the parameters a freshly mounted view starts
// with: no filters, newest first, first page.
func DefaultQueryParams(pageSize int) QueryParams {
	return QueryParams{
		Status:    StatusFilterAll,
		Type:      TypeFilterAll,
		SortBy:    SortByDate,
		SortOrder: SortOrderDesc,
		Page:      1,
		PageSize:  pageSize,
	}
}

// Normalize fills unset or invalid fields with their defaults so that the
// query engine is total over any params value. It never rejects input.
func (p *QueryParams) Normalize() {
	if !IsValidStatusFilter(p.Status) {
		p.Status = StatusFilterAll
	}
	if !IsValidTypeFilter(p.Type) {
		p.Type = TypeFilterAll
	}
	if !IsValidSortField(p.SortBy) {
		p.SortBy = SortByDate
	}
	if !IsValidSortOrder(p.SortOrder) {
		p.SortOrder = SortOrderDesc
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 1
	}
}

// ResetFilters restores the filter and sort defaults and returns to the
// first page. Page size is a per-view constant and is kept.
func (p *QueryParams) ResetFilters() {
	*p = DefaultQueryParams(p.PageSize)
}

// HasActiveFilters reports whether any filter narrows the batch. Used to
// distinguish "no results for this search" from "no data at all".
func (p *QueryParams) HasActiveFilters() bool {
	return p.Search != "" ||
		p.Status != StatusFilterAll ||
		p.Type != TypeFilterAll ||
		p.StartDate != nil ||
		p.EndDate != nil
}

// SetDateRange parses the inclusive date-range bounds from YYYY-MM-DD
// strings. A malformed or empty bound is treated as absent, never as an
// error. The end bound is inclusive through 23:59:59 of that day.
func (p *QueryParams) SetDateRange(start, end string) {
	p.StartDate = parseDateBound(start, false)
	p.EndDate = parseDateBound(end, true)
}

func parseDateBound(value string, endOfDay bool) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil
	}
	if endOfDay {
		t = t.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	}
	return &t
}

// IsValidStatusFilter checks if the status filter value is valid
func IsValidStatusFilter(status string) bool {
	switch status {
	case StatusFilterAll, StatusFilterPosted, StatusFilterPending:
		return true
	default:
		return false
	}
}

// IsValidTypeFilter checks if the type filter value is valid
func IsValidTypeFilter(typeFilter string) bool {
	switch typeFilter {
	case TypeFilterAll, TypeFilterCredit, TypeFilterDebit:
		return true
	default:
		return false
	}
}

// IsValidSortField checks if the sort field is valid
func IsValidSortField(field string) bool {
	switch field {
	case SortByDate, SortByAmount, SortByDescription:
		return true
	default:
		return false
	}
}

// IsValidSortOrder checks if the sort order is valid
func IsValidSortOrder(order string) bool {
	switch order {
	case SortOrderAsc, SortOrderDesc:
		return true
	default:
		return false
	}
}
