package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	AccountTypeChecking = "checking"
	AccountTypeSavings  = "savings"
	AccountTypeCredit   = "credit"
)

var ErrInvalidAccountType = errors.New("invalid account type")

// Account represents a bank account shown on the dashboard cards.
// Currency is constant per account; every transaction of the account
// carries the same code.
type Account struct {
	ID        string          `gorm:"type:varchar(64);primary_key" json:"id"`
	Type      string          `gorm:"type:varchar(20);not null" json:"type"`
	Currency  string          `gorm:"type:varchar(3);not null" json:"currency"`
	Balance   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"balance"`
	CreatedAt time.Time       `gorm:"not null" json:"-"`
	UpdatedAt time.Time       `gorm:"not null" json:"-"`
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.ID == "" {
		return errors.New("account ID is required")
	}
	if !IsValidAccountType(a.Type) {
		return ErrInvalidAccountType
	}
	if a.Currency == "" {
		return errors.New("account currency is required")
	}
	return nil
}

// IsValidAccountType checks if the account type is valid
func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCredit:
		return true
	default:
		return false
	}
}
