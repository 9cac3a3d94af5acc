package source

import (
	"context"
	"errors"
	"fmt"

	"elliora-dashboard/internal/models"

	"gorm.io/gorm"
)

// storeSource serves batches from the local accounts/transactions tables.
// Used in development and tests, where no upstream account service exists.
type storeSource struct {
	db *gorm.DB
}

// NewStoreSource creates a store-backed transaction source.
func NewStoreSource(db *gorm.DB) TransactionSource {
	return &storeSource{db: db}
}

// NewStoreAccountSource creates a store-backed account source.
func NewStoreAccountSource(db *gorm.DB) AccountSource {
	return &storeSource{db: db}
}

// FetchTransactions selects one batch for an account. The request's sort
// parameters pick which rows make the batch when the account has more
// history than fits; callers re-sort the result themselves.
func (s *storeSource) FetchTransactions(ctx context.Context, accountID string, req BatchRequest) ([]models.Transaction, error) {
	var account models.Account
	if err := s.db.WithContext(ctx).First(&account, "id = ?", accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	offset := 0
	if req.Page > 1 {
		offset = (req.Page - 1) * req.PageSize
	}

	var transactions []models.Transaction
	query := s.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order(orderClause(req)).
		Offset(offset)
	if req.PageSize > 0 {
		query = query.Limit(req.PageSize)
	}

	if err := query.Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	return transactions, nil
}

// ListAccounts returns all accounts, oldest first.
func (s *storeSource) ListAccounts(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func orderClause(req BatchRequest) string {
	column := "date"
	switch req.SortBy {
	case models.SortByAmount:
		column = "amount"
	case models.SortByDescription:
		column = "description"
	}

	direction := "DESC"
	if req.SortOrder == models.SortOrderAsc {
		direction = "ASC"
	}

	return column + " " + direction
}
