package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"elliora-dashboard/internal/dto"
	"elliora-dashboard/internal/errors"
	"elliora-dashboard/internal/source"

	"github.com/labstack/echo/v4"
)

// AccountHandler serves the account cards shown at the top of the
// dashboard.
type AccountHandler struct {
	accounts source.AccountSource
	logger   *slog.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accounts source.AccountSource, logger *slog.Logger) *AccountHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AccountHandler{accounts: accounts, logger: logger}
}

// ListAccounts returns every account available to the dashboard
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.accounts.ListAccounts(c.Request().Context())
	if err != nil {
		h.logger.Error("account listing failed",
			slog.String("trace_id", getTraceID(c)),
			slog.String("error", err.Error()))

		switch {
		case stderrors.Is(err, source.ErrUnavailable):
			return SendError(c, errors.SourceUnavailable)
		case stderrors.Is(err, source.ErrBadResponse):
			return SendError(c, errors.SourceBadResponse)
		default:
			return SendSystemError(c, err)
		}
	}

	if len(accounts) == 0 {
		return SendError(c, errors.AccountNoData)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewAccountListResponse(accounts),
	})
}
