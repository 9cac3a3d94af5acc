// Package query implements the client-side transaction query pipeline:
// free-text search, status/type/date filtering, stable sorting and slice
// pagination over a cached batch of transactions. Both the dashboard
// widget and the full transactions view run their parameters through this
// one engine.
package query

import (
	"sort"
	"strings"

	"elliora-dashboard/internal/models"
)

// Result is the visible page of a query plus the total number of
// transactions that matched the filters before pagination.
type Result struct {
	Items      []models.Transaction
	TotalCount int
}

// TotalPages returns the number of pages the matched set spans at the
// requested page size. Zero matches yield zero pages.
func (r Result) TotalPages(pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	return (r.TotalCount + pageSize - 1) / pageSize
}

// Run applies the full pipeline to a batch: text filter, status filter,
// type filter, date-range filter, stable sort, pagination. The batch is
// never mutated; identical inputs always produce identical output.
//
// Out-of-range pages yield an empty Items slice rather than an error; no
// parameter combination is rejected.
func Run(batch []models.Transaction, params models.QueryParams) Result {
	params.Normalize()

	matched := make([]models.Transaction, 0, len(batch))
	for _, txn := range batch {
		if matches(txn, params) {
			matched = append(matched, txn)
		}
	}

	sortTransactions(matched, params.SortBy, params.SortOrder)

	total := len(matched)
	start := (params.Page - 1) * params.PageSize
	if start > total {
		start = total
	}
	end := start + params.PageSize
	if end > total {
		end = total
	}

	return Result{
		Items:      matched[start:end],
		TotalCount: total,
	}
}

// matches evaluates the four filter predicates. They are independent, so
// the conjunction is order-insensitive; the order here mirrors the
// pipeline documentation.
func matches(txn models.Transaction, params models.QueryParams) bool {
	if params.Search != "" {
		needle := strings.ToLower(params.Search)
		if !strings.Contains(strings.ToLower(txn.Description), needle) &&
			!strings.Contains(strings.ToLower(txn.ID), needle) {
			return false
		}
	}

	if params.Status != models.StatusFilterAll && txn.Status != params.Status {
		return false
	}

	switch params.Type {
	case models.TypeFilterCredit:
		if !txn.IsCredit() {
			return false
		}
	case models.TypeFilterDebit:
		if !txn.IsDebit() {
			return false
		}
	}

	if params.StartDate != nil && txn.Date.Before(*params.StartDate) {
		return false
	}
	if params.EndDate != nil && txn.Date.After(*params.EndDate) {
		return false
	}

	return true
}

// sortTransactions orders the matched set in place. The sort is stable:
// transactions with equal keys keep their relative batch order, for both
// directions. Amounts compare by absolute value; sign is ignored for
// ordering.
func sortTransactions(txns []models.Transaction, sortBy, sortOrder string) {
	less := lessFunc(sortBy)
	if sortOrder == models.SortOrderDesc {
		asc := less
		less = func(a, b *models.Transaction) bool { return asc(b, a) }
	}

	sort.SliceStable(txns, func(i, j int) bool {
		return less(&txns[i], &txns[j])
	})
}

func lessFunc(sortBy string) func(a, b *models.Transaction) bool {
	switch sortBy {
	case models.SortByAmount:
		return func(a, b *models.Transaction) bool {
			return a.Amount.Abs().Cmp(b.Amount.Abs()) < 0
		}
	case models.SortByDescription:
		return func(a, b *models.Transaction) bool {
			return a.Description < b.Description
		}
	default:
		return func(a, b *models.Transaction) bool {
			return a.Date.Before(b.Date)
		}
	}
}
