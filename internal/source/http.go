package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"elliora-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// httpSource fetches accounts and transaction batches from the upstream
// account service over HTTP.
type httpSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource creates a source backed by the upstream account service at
// baseURL. The timeout bounds each fetch.
func NewHTTPSource(baseURL string, timeout time.Duration) TransactionSource {
	return newHTTPSource(baseURL, timeout)
}

// NewHTTPAccountSource creates an account listing source against the same
// upstream service.
func NewHTTPAccountSource(baseURL string, timeout time.Duration) AccountSource {
	return newHTTPSource(baseURL, timeout)
}

func newHTTPSource(baseURL string, timeout time.Duration) *httpSource {
	return &httpSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// wireTransaction mirrors the account service transaction payload.
type wireTransaction struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
}

type transactionsEnvelope struct {
	Items []wireTransaction `json:"items"`
}

type wireAccount struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
}

// FetchTransactions requests one batch of transactions for an account.
func (s *httpSource) FetchTransactions(ctx context.Context, accountID string, req BatchRequest) ([]models.Transaction, error) {
	endpoint := fmt.Sprintf("%s/accounts/%s/transactions", s.baseURL, url.PathEscape(accountID))

	params := url.Values{}
	params.Set("page", strconv.Itoa(req.Page))
	params.Set("pageSize", strconv.Itoa(req.PageSize))
	if req.SortBy != "" {
		params.Set("sortBy", req.SortBy)
	}
	if req.SortOrder != "" {
		params.Set("sortOrder", req.SortOrder)
	}

	var envelope transactionsEnvelope
	if err := s.getJSON(ctx, endpoint+"?"+params.Encode(), &envelope); err != nil {
		return nil, err
	}

	transactions := make([]models.Transaction, 0, len(envelope.Items))
	for _, item := range envelope.Items {
		transactions = append(transactions, models.Transaction{
			ID:          item.ID,
			AccountID:   accountID,
			Date:        item.Date,
			Amount:      item.Amount,
			Currency:    item.Currency,
			Description: item.Description,
			Status:      item.Status,
		})
	}

	slog.Debug("fetched transaction batch",
		"account_id", accountID,
		"requested", req.PageSize,
		"received", len(transactions))

	return transactions, nil
}

// ListAccounts retrieves the accounts visible to the dashboard.
func (s *httpSource) ListAccounts(ctx context.Context) ([]models.Account, error) {
	var wireAccounts []wireAccount
	if err := s.getJSON(ctx, s.baseURL+"/accounts", &wireAccounts); err != nil {
		return nil, err
	}

	accounts := make([]models.Account, 0, len(wireAccounts))
	for _, item := range wireAccounts {
		accounts = append(accounts, models.Account{
			ID:       item.ID,
			Type:     item.Type,
			Currency: item.Currency,
			Balance:  item.Balance,
		})
	}

	return accounts, nil
}

func (s *httpSource) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Warn("account service request failed", "endpoint", endpoint, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrAccountNotFound
	case resp.StatusCode >= 500:
		slog.Warn("account service error", "endpoint", endpoint, "status", resp.StatusCode)
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: status %d", ErrBadResponse, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrBadResponse, err)
	}

	return nil
}
