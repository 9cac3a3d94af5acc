package models

import (
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validTransaction() Transaction {
	return Transaction{
		ID:          GenerateTransactionID(),
		AccountID:   "ACC-1000",
		Date:        time.Now().UTC(),
		Amount:      decimal.NewFromFloat(gofakeit.Price(1, 500)),
		Currency:    "USD",
		Description: gofakeit.Company(),
		Status:      TransactionStatusPosted,
	}
}

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr bool
	}{
		{"valid posted", func(tx *Transaction) {}, false},
		{"valid pending", func(tx *Transaction) { tx.Status = TransactionStatusPending }, false},
		{"missing id", func(tx *Transaction) { tx.ID = "" }, true},
		{"missing account", func(tx *Transaction) { tx.AccountID = "" }, true},
		{"bad status", func(tx *Transaction) { tx.Status = "settled" }, true},
		{"missing currency", func(tx *Transaction) { tx.Currency = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := validTransaction()
			tt.mutate(&txn)

			err := txn.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_Direction(t *testing.T) {
	txn := validTransaction()

	txn.Amount = decimal.NewFromInt(250)
	assert.True(t, txn.IsCredit())
	assert.False(t, txn.IsDebit())
	assert.Equal(t, TransactionTypeCredit, txn.Direction())

	txn.Amount = decimal.NewFromFloat(-42.5)
	assert.True(t, txn.IsDebit())
	assert.False(t, txn.IsCredit())
	assert.Equal(t, TransactionTypeDebit, txn.Direction())

	// Zero is neither direction; the type filter must skip it both ways.
	txn.Amount = decimal.Zero
	assert.False(t, txn.IsCredit())
	assert.False(t, txn.IsDebit())
	assert.Empty(t, txn.Direction())
}

func TestTransaction_StatusHelpers(t *testing.T) {
	txn := validTransaction()
	assert.True(t, txn.IsPosted())
	assert.False(t, txn.IsPending())

	txn.Status = TransactionStatusPending
	assert.True(t, txn.IsPending())
	assert.False(t, txn.IsPosted())
}

func TestGenerateTransactionID(t *testing.T) {
	first := GenerateTransactionID()
	second := GenerateTransactionID()

	assert.True(t, strings.HasPrefix(first, "TXN-"))
	assert.NotEqual(t, first, second)
}
