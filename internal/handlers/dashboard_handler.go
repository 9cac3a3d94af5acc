package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"elliora-dashboard/internal/config"
	"elliora-dashboard/internal/dto"
	"elliora-dashboard/internal/errors"
	"elliora-dashboard/internal/services"
	"elliora-dashboard/internal/source"
	"elliora-dashboard/internal/views"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the recent-transactions widget on the dashboard
// overview: five rows per page, a three-page window, search only.
type DashboardHandler struct {
	transactions source.TransactionSource
	accounts     source.AccountSource
	cfg          views.Config
	metrics      services.MetricsRecorderInterface
	logger       *slog.Logger
}

// NewDashboardHandler creates a new dashboard widget handler
func NewDashboardHandler(transactions source.TransactionSource, accounts source.AccountSource, viewCfg config.ViewsConfig, metrics services.MetricsRecorderInterface, logger *slog.Logger) *DashboardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardHandler{
		transactions: transactions,
		accounts:     accounts,
		cfg: views.Config{
			Name:       "dashboard_widget",
			PageSize:   viewCfg.WidgetPageSize,
			WindowSize: viewCfg.WidgetWindowSize,
			BatchSize:  viewCfg.WidgetBatchSize,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// RecentTransactions renders the widget page. Without an explicit
// account_id it shows the first account, matching the overview card the
// widget sits under.
func (h *DashboardHandler) RecentTransactions(c echo.Context) error {
	var req dto.DashboardQueryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("malformed query parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	accountID := c.QueryParam("account_id")
	if accountID == "" {
		accounts, err := h.accounts.ListAccounts(c.Request().Context())
		if err != nil {
			h.logger.Error("account listing for widget failed",
				slog.String("trace_id", getTraceID(c)),
				slog.String("error", err.Error()))
			return SendError(c, errors.SourceUnavailable)
		}
		if len(accounts) == 0 {
			return SendError(c, errors.AccountNoData)
		}
		accountID = accounts[0].ID
	}

	sess := views.NewSession(h.cfg, h.transactions, h.metrics, h.logger)
	sess.SelectAccount(c.Request().Context(), accountID)
	if stderrors.Is(sess.FetchErr(), source.ErrAccountNotFound) {
		return SendError(c, errors.AccountNotFound)
	}

	if req.Search != "" {
		sess.SetSearch(req.Search)
	}
	if req.Page > 0 {
		sess.SetPage(req.Page)
	}

	page := sess.Render()
	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewTransactionListResponse(accountID, page),
	})
}
