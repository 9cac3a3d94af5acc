// Package source provides the adapters that retrieve raw account and
// transaction data for the dashboard. A source hands back an over-fetched
// batch; all user-facing filtering, sorting and pagination is redone
// client-side by the query engine, so a batch is treated as unsorted and
// unfiltered raw input regardless of what the source already applied.
package source

import (
	"context"
	"errors"

	"elliora-dashboard/internal/models"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrUnavailable     = errors.New("account service unavailable")
	ErrBadResponse     = errors.New("account service returned an unexpected response")
)

// BatchRequest selects which batch of transactions to retrieve. The sort
// parameters only influence which rows end up in the batch; they carry no
// guarantee about the order of the returned slice.
type BatchRequest struct {
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

// TransactionSource fetches a batch of transactions for one account.
type TransactionSource interface {
	FetchTransactions(ctx context.Context, accountID string, req BatchRequest) ([]models.Transaction, error)
}

// AccountSource lists the accounts available to the dashboard.
type AccountSource interface {
	ListAccounts(ctx context.Context) ([]models.Account, error)
}
