package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"elliora-dashboard/internal/config"
	"elliora-dashboard/internal/dto"
	"elliora-dashboard/internal/errors"
	"elliora-dashboard/internal/models"
	"elliora-dashboard/internal/services"
	"elliora-dashboard/internal/source"
	"elliora-dashboard/internal/views"

	"github.com/labstack/echo/v4"
)

// TransactionViewHandler serves the full transactions view: all filters,
// sortable columns, ten rows per page with a five-page window.
type TransactionViewHandler struct {
	src     source.TransactionSource
	cfg     views.Config
	metrics services.MetricsRecorderInterface
	logger  *slog.Logger
}

// NewTransactionViewHandler creates a new transactions view handler
func NewTransactionViewHandler(src source.TransactionSource, viewCfg config.ViewsConfig, metrics services.MetricsRecorderInterface, logger *slog.Logger) *TransactionViewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TransactionViewHandler{
		src: src,
		cfg: views.Config{
			Name:       "transactions",
			PageSize:   viewCfg.FullPageSize,
			WindowSize: viewCfg.FullWindowSize,
			BatchSize:  viewCfg.FullBatchSize,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// ListTransactions renders one page of an account's transactions for the
// full view. Unknown accounts are a 404; a degraded upstream still returns
// a page, with an empty list and a user-visible notice. Counts cover the
// fetched batch, not the account's full history.
func (h *TransactionViewHandler) ListTransactions(c echo.Context) error {
	accountID := c.Param("accountId")
	if accountID == "" {
		return SendError(c, errors.AccountInvalidID)
	}

	var req dto.TransactionQueryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("malformed query parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	sess := views.NewSession(h.cfg, h.src, h.metrics, h.logger)
	sess.SelectAccount(c.Request().Context(), accountID)
	if stderrors.Is(sess.FetchErr(), source.ErrAccountNotFound) {
		return SendError(c, errors.AccountNotFound)
	}

	applyQuery(sess, req)

	page := sess.Render()
	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewTransactionListResponse(accountID, page),
	})
}

// applyQuery walks the session through the same interactions a user would
// perform, in the order that keeps their pagination semantics: filters and
// sort reset the page, the explicit page selection comes last.
func applyQuery(sess *views.Session, req dto.TransactionQueryRequest) {
	if req.Search != "" {
		sess.SetSearch(req.Search)
	}
	if req.Status != "" {
		sess.SetStatus(req.Status)
	}
	if req.Type != "" {
		sess.SetType(req.Type)
	}
	if req.StartDate != "" || req.EndDate != "" {
		sess.SetDateRange(req.StartDate, req.EndDate)
	}

	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = models.SortByDate
	}
	sortOrder := req.SortOrder
	if sortOrder == "" {
		sortOrder = models.SortOrderDesc
	}
	sess.SetSort(sortBy, sortOrder)

	if req.Page > 0 {
		sess.SetPage(req.Page)
	}
}
