package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TransactionStatusPosted  = "posted"
	TransactionStatusPending = "pending"

	TransactionTypeCredit = "credit"
	TransactionTypeDebit  = "debit"
)

var (
	ErrInvalidTransactionStatus = errors.New("invalid transaction status")
	ErrMissingTransactionID     = errors.New("transaction ID is required")
)

// Transaction represents a single bank transaction as returned by the
// account service. Amount is signed: positive amounts are credits (money
// in), negative amounts are debits (money out).
type Transaction struct {
	ID          string          `gorm:"type:varchar(64);primary_key" json:"id"`
	AccountID   string          `gorm:"type:varchar(64);not null;index" json:"account_id"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency    string          `gorm:"type:varchar(3);not null" json:"currency"`
	Description string          `gorm:"type:text" json:"description"`
	Status      string          `gorm:"type:varchar(20);not null;default:'posted'" json:"status"`
	CreatedAt   time.Time       `gorm:"not null" json:"-"`
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.ID == "" {
		return ErrMissingTransactionID
	}
	if t.AccountID == "" {
		return errors.New("account ID is required")
	}
	if !IsValidTransactionStatus(t.Status) {
		return ErrInvalidTransactionStatus
	}
	if t.Currency == "" {
		return errors.New("transaction currency is required")
	}
	return nil
}

// IsCredit returns true if the transaction moves money into the account
func (t *Transaction) IsCredit() bool {
	return t.Amount.IsPositive()
}

// IsDebit returns true if the transaction moves money out of the account
func (t *Transaction) IsDebit() bool {
	return t.Amount.IsNegative()
}

// IsPosted returns true if the transaction has settled
func (t *Transaction) IsPosted() bool {
	return t.Status == TransactionStatusPosted
}

// IsPending returns true if the transaction has not settled yet
func (t *Transaction) IsPending() bool {
	return t.Status == TransactionStatusPending
}

// Direction returns the transaction type derived from the amount sign.
// A zero amount is neither credit nor debit and yields an empty string.
func (t *Transaction) Direction() string {
	switch {
	case t.IsCredit():
		return TransactionTypeCredit
	case t.IsDebit():
		return TransactionTypeDebit
	default:
		return ""
	}
}

// IsValidTransactionStatus checks if the transaction status is valid
func IsValidTransactionStatus(status string) bool {
	switch status {
	case TransactionStatusPosted, TransactionStatusPending:
		return true
	default:
		return false
	}
}

// GenerateTransactionID generates a unique transaction identifier
func GenerateTransactionID() string {
	return "TXN-" + uuid.New().String()[:8] + "-" + time.Now().Format("20060102150405")
}
