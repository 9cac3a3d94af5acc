package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultQueryParams(t *testing.T) {
	params := DefaultQueryParams(10)

	assert.Empty(t, params.Search)
	assert.Equal(t, StatusFilterAll, params.Status)
	assert.Equal(t, TypeFilterAll, params.Type)
	assert.Nil(t, params.StartDate)
	assert.Nil(t, params.EndDate)
	assert.Equal(t, SortByDate, params.SortBy)
	assert.Equal(t, SortOrderDesc, params.SortOrder)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 10, params.PageSize)
	assert.False(t, params.HasActiveFilters())
}

func TestQueryParams_Normalize(t *testing.T) {
	tests := []struct {
		name  string
		in    QueryParams
		check func(*testing.T, QueryParams)
	}{
		{
			"zero value gets all defaults",
			QueryParams{},
			func(t *testing.T, p QueryParams) {
				assert.Equal(t, StatusFilterAll, p.Status)
				assert.Equal(t, TypeFilterAll, p.Type)
				assert.Equal(t, SortByDate, p.SortBy)
				assert.Equal(t, SortOrderDesc, p.SortOrder)
				assert.Equal(t, 1, p.Page)
			},
		},
		{
			"invalid enums replaced",
			QueryParams{Status: "archived", Type: "refund", SortBy: "balance", SortOrder: "up"},
			func(t *testing.T, p QueryParams) {
				assert.Equal(t, StatusFilterAll, p.Status)
				assert.Equal(t, TypeFilterAll, p.Type)
				assert.Equal(t, SortByDate, p.SortBy)
				assert.Equal(t, SortOrderDesc, p.SortOrder)
			},
		},
		{
			"valid values preserved",
			QueryParams{Status: StatusFilterPending, Type: TypeFilterDebit, SortBy: SortByAmount, SortOrder: SortOrderAsc, Page: 3, PageSize: 5},
			func(t *testing.T, p QueryParams) {
				assert.Equal(t, StatusFilterPending, p.Status)
				assert.Equal(t, TypeFilterDebit, p.Type)
				assert.Equal(t, SortByAmount, p.SortBy)
				assert.Equal(t, SortOrderAsc, p.SortOrder)
				assert.Equal(t, 3, p.Page)
				assert.Equal(t, 5, p.PageSize)
			},
		},
		{
			"negative page clamps to one",
			QueryParams{Page: -7},
			func(t *testing.T, p QueryParams) {
				assert.Equal(t, 1, p.Page)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			p.Normalize()
			tt.check(t, p)
		})
	}
}

func TestQueryParams_SetDateRange(t *testing.T) {
	var p QueryParams

	p.SetDateRange("2026-03-05", "2026-03-09")
	require.NotNil(t, p.StartDate)
	require.NotNil(t, p.EndDate)
	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), *p.StartDate)
	assert.Equal(t, time.Date(2026, 3, 9, 23, 59, 59, 0, time.UTC), *p.EndDate)
}

func TestQueryParams_SetDateRange_MalformedBoundsIgnored(t *testing.T) {
	var p QueryParams

	p.SetDateRange("03/05/2026", "2026-03-09")
	assert.Nil(t, p.StartDate)
	require.NotNil(t, p.EndDate)

	p.SetDateRange("", "not-a-date")
	assert.Nil(t, p.StartDate)
	assert.Nil(t, p.EndDate)
}

func TestQueryParams_ResetFilters(t *testing.T) {
	p := DefaultQueryParams(5)
	p.Search = "rent"
	p.Status = StatusFilterPending
	p.Type = TypeFilterCredit
	p.SetDateRange("2026-01-01", "2026-01-31")
	p.SortBy = SortByAmount
	p.SortOrder = SortOrderAsc
	p.Page = 4
	require.True(t, p.HasActiveFilters())

	p.ResetFilters()

	assert.Equal(t, DefaultQueryParams(5), p)
	assert.False(t, p.HasActiveFilters())
	assert.Equal(t, 5, p.PageSize, "page size is a view constant and survives reset")
}

func TestQueryParams_HasActiveFilters(t *testing.T) {
	base := DefaultQueryParams(10)

	tests := []struct {
		name   string
		mutate func(*QueryParams)
		want   bool
	}{
		{"defaults", func(p *QueryParams) {}, false},
		{"search", func(p *QueryParams) { p.Search = "x" }, true},
		{"status", func(p *QueryParams) { p.Status = StatusFilterPosted }, true},
		{"type", func(p *QueryParams) { p.Type = TypeFilterDebit }, true},
		{"date", func(p *QueryParams) { p.SetDateRange("2026-01-01", "") }, true},
		{"sort change is not a filter", func(p *QueryParams) { p.SortBy = SortByAmount; p.SortOrder = SortOrderAsc }, false},
		{"page change is not a filter", func(p *QueryParams) { p.Page = 9 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.mutate(&p)
			assert.Equal(t, tt.want, p.HasActiveFilters())
		})
	}
}
