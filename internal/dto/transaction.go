package dto

import (
	"time"

	"elliora-dashboard/internal/format"
	"elliora-dashboard/internal/models"
	"elliora-dashboard/internal/views"
)

// TransactionQueryRequest contains the full set of query-string parameters
// for the transactions view. Every field is optional; invalid combinations
// are rejected by validation, absent ones fall back to view defaults.
type TransactionQueryRequest struct {
	Search    string `query:"search" validate:"omitempty,max=200"`
	Status    string `query:"status" validate:"omitempty,status_filter"`
	Type      string `query:"type" validate:"omitempty,type_filter"`
	StartDate string `query:"start_date" validate:"omitempty,date_string"`
	EndDate   string `query:"end_date" validate:"omitempty,date_string"`
	SortBy    string `query:"sort_by" validate:"omitempty,sort_field"`
	SortOrder string `query:"sort_order" validate:"omitempty,sort_order"`
	Page      int    `query:"page" validate:"omitempty,min=1"`
}

// DashboardQueryRequest is the reduced parameter set the dashboard widget
// accepts: free-text search and page only.
type DashboardQueryRequest struct {
	Search string `query:"search" validate:"omitempty,max=200"`
	Page   int    `query:"page" validate:"omitempty,min=1"`
}

// TransactionView is one row of a rendered transaction list. Raw values
// travel alongside preformatted display strings so clients render amounts
// and dates consistently.
type TransactionView struct {
	ID            string    `json:"id"`
	Date          time.Time `json:"date"`
	DateDisplay   string    `json:"dateDisplay"`
	Description   string    `json:"description"`
	Amount        string    `json:"amount"`
	AmountDisplay string    `json:"amountDisplay"`
	Currency      string    `json:"currency"`
	Type          string    `json:"type"`
	Status        string    `json:"status"`
}

// PaginationInfo contains pagination metadata for a rendered page
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int   `json:"totalCount"`
	PageWindow  []int `json:"pageWindow"`
}

// TransactionListResponse represents the response for a transaction view
type TransactionListResponse struct {
	AccountID    string            `json:"accountId"`
	Transactions []TransactionView `json:"transactions"`
	Pagination   PaginationInfo    `json:"pagination"`
	EmptyState   string            `json:"emptyState,omitempty"`
	Notice       string            `json:"notice,omitempty"`
}

// NewTransactionView converts a transaction to its display row
func NewTransactionView(txn models.Transaction) TransactionView {
	return TransactionView{
		ID:            txn.ID,
		Date:          txn.Date,
		DateDisplay:   format.Date(txn.Date),
		Description:   txn.Description,
		Amount:        txn.Amount.String(),
		AmountDisplay: format.Currency(txn.Amount, txn.Currency),
		Currency:      txn.Currency,
		Type:          txn.Direction(),
		Status:        txn.Status,
	}
}

// NewTransactionListResponse converts a rendered view page into the wire
// response.
func NewTransactionListResponse(accountID string, page views.Page) TransactionListResponse {
	rows := make([]TransactionView, 0, len(page.Items))
	for _, txn := range page.Items {
		rows = append(rows, NewTransactionView(txn))
	}

	return TransactionListResponse{
		AccountID:    accountID,
		Transactions: rows,
		Pagination: PaginationInfo{
			CurrentPage: page.Current,
			TotalPages:  page.TotalPages,
			TotalCount:  page.TotalCount,
			PageWindow:  page.Window,
		},
		EmptyState: string(page.EmptyKind),
		Notice:     page.Notice,
	}
}
