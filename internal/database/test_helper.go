package database

import (
	"testing"
	"time"

	"elliora-dashboard/internal/config"
	"elliora-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestAccount(t *testing.T, db *DB, id string) *models.Account {
	t.Helper()

	account := &models.Account{
		ID:       id,
		Type:     models.AccountTypeChecking,
		Currency: "USD",
		Balance:  decimal.NewFromInt(1000),
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

func CreateTestTransaction(t *testing.T, db *DB, accountID, description string, amount decimal.Decimal, date time.Time) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		ID:          models.GenerateTransactionID(),
		AccountID:   accountID,
		Date:        date,
		Amount:      amount,
		Currency:    "USD",
		Description: description,
		Status:      models.TransactionStatusPosted,
	}

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return txn
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range []string{"transactions", "accounts"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
