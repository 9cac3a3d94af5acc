// Package views holds the per-view state machine that sits between the
// HTTP handlers and the query engine. A Session owns one cached batch of
// transactions and the user's current filter, sort and page settings; every
// interaction re-runs the query pipeline over the cached batch instead of
// going back to the source.
//
// A Session is owned by a single goroutine. Handlers construct one per
// request, so no locking is done here.
package views

import (
	"context"
	"errors"
	"log/slog"
	"time"

	apperrors "elliora-dashboard/internal/errors"
	"elliora-dashboard/internal/models"
	"elliora-dashboard/internal/query"
	"elliora-dashboard/internal/services"
	"elliora-dashboard/internal/source"
)

// State tracks where a session is in its lifecycle. A session is Loading
// only while an account's batch fetch is in flight; every filter, sort and
// page change afterwards is served from the cached batch and keeps the
// session Ready.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
)

// EmptyKind distinguishes the two reasons a rendered page can be empty.
type EmptyKind string

const (
	EmptyNone      EmptyKind = ""
	EmptyNoData    EmptyKind = "no_data"
	EmptyNoResults EmptyKind = "no_results"
)

// Config fixes the per-view constants. The dashboard widget and the full
// transactions view run the same session with different sizes.
type Config struct {
	Name       string
	PageSize   int
	WindowSize int
	BatchSize  int
}

// Page is one rendered view of the session: the visible slice of
// transactions plus everything the pagination controls need.
type Page struct {
	Items      []models.Transaction
	TotalCount int
	TotalPages int
	Current    int
	Window     []int
	EmptyKind  EmptyKind
	Notice     string
	State      State
}

// Session is the view-side state for one account's transaction list.
type Session struct {
	cfg     Config
	src     source.TransactionSource
	metrics services.MetricsRecorderInterface
	logger  *slog.Logger

	state      State
	accountID  string
	batch      []models.Transaction
	params     models.QueryParams
	generation uint64
	notice     string
	fetchErr   error
}

// NewSession creates a session with default parameters and no batch. It
// stays Loading until the first SelectAccount completes.
func NewSession(cfg Config, src source.TransactionSource, metrics services.MetricsRecorderInterface, logger *slog.Logger) *Session {
	if metrics == nil {
		metrics = services.NoopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		cfg:     cfg,
		src:     src,
		metrics: metrics,
		logger:  logger,
		state:   StateLoading,
		params:  models.DefaultQueryParams(cfg.PageSize),
	}
}

// SelectAccount switches the session to a new account: parameters return
// to their defaults and one batch is fetched from the source. Each call
// bumps the request generation; a fetch that completes after a newer
// SelectAccount has started is discarded, so the latest selection always
// wins regardless of completion order.
//
// A failed fetch still leaves the session Ready, with an empty batch and a
// user-visible notice; the view then renders the no-data empty state.
func (s *Session) SelectAccount(ctx context.Context, accountID string) {
	s.generation++
	gen := s.generation

	s.state = StateLoading
	s.accountID = accountID
	s.params = models.DefaultQueryParams(s.cfg.PageSize)
	s.notice = ""
	s.fetchErr = nil

	start := time.Now()
	batch, err := s.src.FetchTransactions(ctx, accountID, source.BatchRequest{
		Page:      1,
		PageSize:  s.cfg.BatchSize,
		SortBy:    models.SortByDate,
		SortOrder: models.SortOrderDesc,
	})
	s.metrics.RecordProcessingTime("batch.fetch", time.Since(start))

	if gen != s.generation {
		// A newer selection superseded this fetch.
		return
	}

	if err != nil {
		s.logger.Error("transaction batch fetch failed",
			slog.String("view", s.cfg.Name),
			slog.String("account_id", accountID),
			slog.String("error", err.Error()))
		s.metrics.IncrementCounter("batch.fetch.failed", map[string]string{
			"source": s.cfg.Name,
			"reason": fetchFailureReason(err),
		})
		s.batch = nil
		s.notice = noticeForFetchError(err)
		s.fetchErr = err
		s.state = StateReady
		return
	}

	s.metrics.IncrementCounter("batch.fetch.success", map[string]string{"source": s.cfg.Name})
	s.metrics.RecordGauge("batch.size", float64(len(batch)), nil)
	s.batch = batch
	s.state = StateReady
}

// AccountID returns the account the session currently shows.
func (s *Session) AccountID() string {
	return s.accountID
}

// FetchErr returns the error from the most recent batch fetch, or nil.
// Handlers use it to tell a missing account apart from a degraded source.
func (s *Session) FetchErr() error {
	return s.fetchErr
}

// Params returns a copy of the current query parameters.
func (s *Session) Params() models.QueryParams {
	return s.params
}

// SetSearch updates the free-text filter and returns to the first page.
func (s *Session) SetSearch(term string) {
	s.params.Search = term
	s.params.Page = 1
}

// SetStatus updates the status filter and returns to the first page.
func (s *Session) SetStatus(status string) {
	s.params.Status = status
	s.params.Page = 1
}

// SetType updates the credit/debit filter and returns to the first page.
func (s *Session) SetType(typeFilter string) {
	s.params.Type = typeFilter
	s.params.Page = 1
}

// SetDateRange updates the inclusive date bounds from YYYY-MM-DD strings
// and returns to the first page. Malformed bounds are treated as absent.
func (s *Session) SetDateRange(startDate, endDate string) {
	s.params.SetDateRange(startDate, endDate)
	s.params.Page = 1
}

// SetSort sets the sort field and order directly and returns to the first
// page.
func (s *Session) SetSort(field, order string) {
	s.params.SortBy = field
	s.params.SortOrder = order
	s.params.Page = 1
}

// ToggleSort cycles the sort the way the column headers do: clicking the
// active field flips its direction, clicking a new field selects it newest
// or largest first.
func (s *Session) ToggleSort(field string) {
	if s.params.SortBy == field {
		if s.params.SortOrder == models.SortOrderAsc {
			s.params.SortOrder = models.SortOrderDesc
		} else {
			s.params.SortOrder = models.SortOrderAsc
		}
	} else {
		s.params.SortBy = field
		s.params.SortOrder = models.SortOrderDesc
	}
	s.params.Page = 1
}

// SetPage moves to the requested page, clamped to the valid range for the
// current filters. Filters and sort are untouched.
func (s *Session) SetPage(page int) {
	totalPages := query.Run(s.batch, s.params).TotalPages(s.params.PageSize)
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	s.params.Page = page
}

// Reset restores all filters and the sort to their defaults and returns to
// the first page. The cached batch is kept.
func (s *Session) Reset() {
	s.params.ResetFilters()
	s.metrics.IncrementCounter("session.reset", nil)
}

// Render runs the query pipeline over the cached batch and produces the
// current page. If a filter change left the current page beyond the end of
// the matched set, the page snaps back to the last valid one.
func (s *Session) Render() Page {
	start := time.Now()
	res := query.Run(s.batch, s.params)
	totalPages := res.TotalPages(s.params.PageSize)

	if s.params.Page > totalPages && totalPages > 0 {
		s.params.Page = totalPages
		res = query.Run(s.batch, s.params)
	}

	s.metrics.IncrementCounter("query.run", map[string]string{"view": s.cfg.Name})
	s.metrics.RecordProcessingTime("query.run", time.Since(start))
	s.metrics.RecordGauge("query.result_count", float64(res.TotalCount), nil)

	page := Page{
		Items:      res.Items,
		TotalCount: res.TotalCount,
		TotalPages: totalPages,
		Current:    s.params.Page,
		Window:     query.PageWindow(s.params.Page, totalPages, s.cfg.WindowSize),
		Notice:     s.notice,
		State:      s.state,
	}

	if len(res.Items) == 0 {
		if len(s.batch) == 0 {
			page.EmptyKind = EmptyNoData
		} else {
			page.EmptyKind = EmptyNoResults
		}
		s.metrics.IncrementCounter("render.empty", map[string]string{"kind": string(page.EmptyKind)})
	}

	return page
}

func fetchFailureReason(err error) string {
	switch {
	case errors.Is(err, source.ErrAccountNotFound):
		return "not_found"
	case errors.Is(err, source.ErrUnavailable):
		return "unavailable"
	case errors.Is(err, source.ErrBadResponse):
		return "bad_response"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "error"
	}
}

func noticeForFetchError(err error) string {
	switch {
	case errors.Is(err, source.ErrAccountNotFound):
		return apperrors.GetErrorMessage(apperrors.AccountNotFound)
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.GetErrorMessage(apperrors.SourceFetchTimedOut)
	default:
		return apperrors.GetErrorMessage(apperrors.SourceUnavailable)
	}
}
