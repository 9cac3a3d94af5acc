package views

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"elliora-dashboard/internal/models"
	"elliora-dashboard/internal/services"
	"elliora-dashboard/internal/source"
	"elliora-dashboard/internal/source/source_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// SessionSuite defines the test suite for the view session state machine
type SessionSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	src     *source_mocks.MockTransactionSource
	session *Session
	batch   []models.Transaction
}

func (s *SessionSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.src = source_mocks.NewMockTransactionSource(s.ctrl)
	s.session = NewSession(Config{
		Name:       "transactions",
		PageSize:   10,
		WindowSize: 5,
		BatchSize:  100,
	}, s.src, services.NoopMetrics{}, slog.Default())

	s.batch = make([]models.Transaction, 0, 23)
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 23; i++ {
		amount := decimal.NewFromInt(int64(10 * (i + 1)))
		if i%2 == 1 {
			amount = amount.Neg()
		}
		status := models.TransactionStatusPosted
		if i%5 == 0 {
			status = models.TransactionStatusPending
		}
		s.batch = append(s.batch, models.Transaction{
			ID:          models.GenerateTransactionID(),
			AccountID:   "acc-001",
			Date:        base.Add(time.Duration(i) * time.Hour),
			Amount:      amount,
			Currency:    "USD",
			Description: "Payment " + string(rune('A'+i)),
			Status:      status,
		})
	}
}

func (s *SessionSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) selectWithBatch(batch []models.Transaction) {
	s.src.EXPECT().
		FetchTransactions(gomock.Any(), "acc-001", gomock.Any()).
		Return(batch, nil)
	s.session.SelectAccount(context.Background(), "acc-001")
}

func (s *SessionSuite) TestNewSession_StartsLoading() {
	page := s.session.Render()
	s.Equal(StateLoading, page.State)
	s.Equal(EmptyNoData, page.EmptyKind)
	s.Zero(page.TotalCount)
}

func (s *SessionSuite) TestSelectAccount_FetchesBatchOnce() {
	s.src.EXPECT().
		FetchTransactions(gomock.Any(), "acc-001", source.BatchRequest{
			Page:      1,
			PageSize:  100,
			SortBy:    models.SortByDate,
			SortOrder: models.SortOrderDesc,
		}).
		Return(s.batch, nil).
		Times(1)

	s.session.SelectAccount(context.Background(), "acc-001")

	// Subsequent interactions are served from the cached batch.
	s.session.SetSearch("payment")
	s.session.SetPage(2)
	page := s.session.Render()

	s.Equal(StateReady, page.State)
	s.Equal(23, page.TotalCount)
}

func (s *SessionSuite) TestSelectAccount_ResetsParams() {
	s.selectWithBatch(s.batch)
	s.session.SetSearch("rent")
	s.session.SetStatus(models.StatusFilterPending)
	s.session.ToggleSort(models.SortByAmount)

	s.selectWithBatch(s.batch)

	params := s.session.Params()
	s.Empty(params.Search)
	s.Equal(models.StatusFilterAll, params.Status)
	s.Equal(models.SortByDate, params.SortBy)
	s.Equal(models.SortOrderDesc, params.SortOrder)
	s.Equal(1, params.Page)
}

func (s *SessionSuite) TestSelectAccount_FetchFailureLeavesReadyWithNotice() {
	s.src.EXPECT().
		FetchTransactions(gomock.Any(), "acc-001", gomock.Any()).
		Return(nil, source.ErrUnavailable)

	s.session.SelectAccount(context.Background(), "acc-001")
	page := s.session.Render()

	s.Equal(StateReady, page.State)
	s.NotEmpty(page.Notice)
	s.Equal(EmptyNoData, page.EmptyKind)
	s.Zero(page.TotalCount)
	s.Empty(page.Window)
}

func (s *SessionSuite) TestRender_FirstPage() {
	s.selectWithBatch(s.batch)
	page := s.session.Render()

	s.Len(page.Items, 10)
	s.Equal(23, page.TotalCount)
	s.Equal(3, page.TotalPages)
	s.Equal(1, page.Current)
	s.Equal([]int{1, 2, 3}, page.Window)
	s.Equal(EmptyNone, page.EmptyKind)
	// Default sort is newest first.
	s.True(page.Items[0].Date.After(page.Items[1].Date))
}

func (s *SessionSuite) TestRender_LastPartialPage() {
	s.selectWithBatch(s.batch)
	s.session.SetPage(3)
	page := s.session.Render()

	s.Len(page.Items, 3)
	s.Equal(3, page.Current)
}

func (s *SessionSuite) TestSetPage_ClampsToRange() {
	s.selectWithBatch(s.batch)

	s.session.SetPage(99)
	s.Equal(3, s.session.Params().Page)

	s.session.SetPage(-4)
	s.Equal(1, s.session.Params().Page)
}

func (s *SessionSuite) TestSetSearch_ResetsPage() {
	s.selectWithBatch(s.batch)
	s.session.SetPage(3)
	s.session.SetSearch("payment")
	s.Equal(1, s.session.Params().Page)
}

func (s *SessionSuite) TestRender_SnapsPageBackAfterFilterNarrows() {
	s.selectWithBatch(s.batch)
	s.session.SetPage(3)

	// Narrow to pending only without going through a setter that resets
	// the page; Render must recover on its own.
	s.session.params.Status = models.StatusFilterPending
	page := s.session.Render()

	s.Equal(1, page.Current)
	s.Equal(5, page.TotalCount)
	s.Len(page.Items, 5)
}

func (s *SessionSuite) TestToggleSort_SameFieldFlipsOrder() {
	s.selectWithBatch(s.batch)

	s.session.ToggleSort(models.SortByDate)
	s.Equal(models.SortOrderAsc, s.session.Params().SortOrder)

	s.session.ToggleSort(models.SortByDate)
	s.Equal(models.SortOrderDesc, s.session.Params().SortOrder)
}

func (s *SessionSuite) TestToggleSort_NewFieldStartsDesc() {
	s.selectWithBatch(s.batch)
	s.session.ToggleSort(models.SortByDate)
	s.Require().Equal(models.SortOrderAsc, s.session.Params().SortOrder)

	s.session.ToggleSort(models.SortByAmount)

	params := s.session.Params()
	s.Equal(models.SortByAmount, params.SortBy)
	s.Equal(models.SortOrderDesc, params.SortOrder)
}

func (s *SessionSuite) TestReset_RestoresDefaultsKeepsBatch() {
	s.selectWithBatch(s.batch)
	s.session.SetSearch("nomatch-xyz")
	s.session.SetType(models.TypeFilterDebit)
	s.Require().Equal(EmptyNoResults, s.session.Render().EmptyKind)

	s.session.Reset()
	page := s.session.Render()

	s.Equal(23, page.TotalCount)
	s.Equal(EmptyNone, page.EmptyKind)
	params := s.session.Params()
	s.False(params.HasActiveFilters())
}

func (s *SessionSuite) TestRender_EmptyKindDistinguishesNoDataFromNoResults() {
	s.selectWithBatch(nil)
	s.Equal(EmptyNoData, s.session.Render().EmptyKind)

	s.selectWithBatch(s.batch)
	s.session.SetSearch("zzz-not-there")
	s.Equal(EmptyNoResults, s.session.Render().EmptyKind)
}

func (s *SessionSuite) TestSetDateRange_FiltersInclusive() {
	s.selectWithBatch(s.batch)
	s.session.SetDateRange("2026-08-01", "2026-08-01")
	page := s.session.Render()

	// All 23 transactions fall within Aug 1 09:00 to Aug 2 07:00 UTC;
	// only those on the first calendar day survive the range.
	s.Equal(15, page.TotalCount)
}

func (s *SessionSuite) TestSelectAccount_StaleFetchDiscarded() {
	staleBatch := s.batch[:3]

	// The first fetch triggers a nested, newer selection before it
	// returns; its result must not overwrite the newer one.
	s.src.EXPECT().
		FetchTransactions(gomock.Any(), "acc-001", gomock.Any()).
		DoAndReturn(func(ctx context.Context, accountID string, req source.BatchRequest) ([]models.Transaction, error) {
			s.src.EXPECT().
				FetchTransactions(gomock.Any(), "acc-001", gomock.Any()).
				Return(s.batch, nil)
			s.session.SelectAccount(ctx, "acc-001")
			return staleBatch, nil
		})

	s.session.SelectAccount(context.Background(), "acc-001")

	page := s.session.Render()
	s.Equal(23, page.TotalCount)
}
