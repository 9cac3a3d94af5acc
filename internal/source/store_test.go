package source_test

import (
	"context"
	"testing"
	"time"

	"elliora-dashboard/internal/database"
	"elliora-dashboard/internal/models"
	"elliora-dashboard/internal/source"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedStore(t *testing.T, db *database.DB) {
	t.Helper()

	database.CreateTestAccount(t, db, "ACC-1000")
	database.CreateTestAccount(t, db, "ACC-2000")

	base := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	amounts := []int64{-120, 450, -35, 900, -15, -230, 75}
	for i, amount := range amounts {
		database.CreateTestTransaction(t, db, "ACC-1000",
			"Entry "+string(rune('A'+i)),
			decimal.NewFromInt(amount),
			base.Add(time.Duration(i)*24*time.Hour))
	}
	database.CreateTestTransaction(t, db, "ACC-2000", "Other account entry",
		decimal.NewFromInt(10), base)
}

func TestStoreSource_FetchTransactions(t *testing.T) {
	db := database.SetupTestDB(t)
	seedStore(t, db)
	src := source.NewStoreSource(db.DB)

	batch, err := src.FetchTransactions(context.Background(), "ACC-1000", source.BatchRequest{
		Page:      1,
		PageSize:  100,
		SortBy:    models.SortByDate,
		SortOrder: models.SortOrderDesc,
	})

	require.NoError(t, err)
	require.Len(t, batch, 7)
	for _, txn := range batch {
		assert.Equal(t, "ACC-1000", txn.AccountID)
	}
	// Newest rows come first in the batch.
	assert.Equal(t, "Entry G", batch[0].Description)
}

func TestStoreSource_FetchTransactions_BatchLimit(t *testing.T) {
	db := database.SetupTestDB(t)
	seedStore(t, db)
	src := source.NewStoreSource(db.DB)

	batch, err := src.FetchTransactions(context.Background(), "ACC-1000", source.BatchRequest{
		Page:      1,
		PageSize:  3,
		SortBy:    models.SortByDate,
		SortOrder: models.SortOrderDesc,
	})

	require.NoError(t, err)
	assert.Len(t, batch, 3)
}

func TestStoreSource_FetchTransactions_SecondBatchPage(t *testing.T) {
	db := database.SetupTestDB(t)
	seedStore(t, db)
	src := source.NewStoreSource(db.DB)

	first, err := src.FetchTransactions(context.Background(), "ACC-1000", source.BatchRequest{
		Page: 1, PageSize: 4, SortBy: models.SortByDate, SortOrder: models.SortOrderDesc,
	})
	require.NoError(t, err)
	second, err := src.FetchTransactions(context.Background(), "ACC-1000", source.BatchRequest{
		Page: 2, PageSize: 4, SortBy: models.SortByDate, SortOrder: models.SortOrderDesc,
	})
	require.NoError(t, err)

	assert.Len(t, first, 4)
	assert.Len(t, second, 3)
	for _, txn := range second {
		for _, prior := range first {
			assert.NotEqual(t, prior.ID, txn.ID)
		}
	}
}

func TestStoreSource_FetchTransactions_UnknownAccount(t *testing.T) {
	db := database.SetupTestDB(t)
	seedStore(t, db)
	src := source.NewStoreSource(db.DB)

	_, err := src.FetchTransactions(context.Background(), "ACC-9999", source.BatchRequest{
		Page: 1, PageSize: 10,
	})

	assert.ErrorIs(t, err, source.ErrAccountNotFound)
}

func TestStoreSource_FetchTransactions_AmountOrderIsSigned(t *testing.T) {
	db := database.SetupTestDB(t)
	seedStore(t, db)
	src := source.NewStoreSource(db.DB)

	// The store orders by raw signed amount; sign-blind ordering is the
	// query engine's job after the batch arrives.
	batch, err := src.FetchTransactions(context.Background(), "ACC-1000", source.BatchRequest{
		Page: 1, PageSize: 100, SortBy: models.SortByAmount, SortOrder: models.SortOrderAsc,
	})

	require.NoError(t, err)
	require.Len(t, batch, 7)
	assert.True(t, batch[0].Amount.Equal(decimal.NewFromInt(-230)))
	assert.True(t, batch[6].Amount.Equal(decimal.NewFromInt(900)))
}

func TestStoreAccountSource_ListAccounts(t *testing.T) {
	db := database.SetupTestDB(t)
	seedStore(t, db)
	src := source.NewStoreAccountSource(db.DB)

	accounts, err := src.ListAccounts(context.Background())

	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "ACC-1000", accounts[0].ID)
}
