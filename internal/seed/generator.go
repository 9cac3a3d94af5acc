// Package seed populates the local store with realistic demo data for
// development environments.
package seed

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"elliora-dashboard/internal/database"
	"elliora-dashboard/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// merchantPool gives descriptions a recognizable banking flavor instead of
// raw random words.
var merchantPool = []string{
	"Whole Foods Market",
	"Trader Joe's",
	"Starbucks",
	"Chipotle Mexican Grill",
	"Uber",
	"Shell",
	"Amazon.com",
	"Best Buy",
	"Netflix",
	"Spotify",
	"AT&T",
	"Comcast Xfinity",
	"CVS Pharmacy",
	"Monthly Rent Payment",
	"Electric Bill",
	"Gym Membership",
}

var creditDescriptions = []string{
	"Salary Deposit",
	"Direct Deposit",
	"Refund",
	"Interest Payment",
	"Transfer In",
}

// Generator creates demo accounts and transaction history.
type Generator struct {
	db     *database.DB
	rng    *rand.Rand
	faker  *gofakeit.Faker
	logger *slog.Logger
}

// NewGenerator creates a generator. A fixed seed makes the demo data
// reproducible across restarts.
func NewGenerator(db *database.DB, seedValue int64, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		db:     db,
		rng:    rand.New(rand.NewSource(seedValue)),
		faker:  gofakeit.New(uint64(seedValue)),
		logger: logger,
	}
}

// Run seeds the store if it is empty. An already-populated store is left
// untouched so restarts do not duplicate history.
func (g *Generator) Run(accounts, transactionsPerAccount, days int) error {
	var count int64
	if err := g.db.Model(&models.Account{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to inspect store: %w", err)
	}
	if count > 0 {
		g.logger.Info("store already seeded", slog.Int64("accounts", count))
		return nil
	}

	accountTypes := []string{
		models.AccountTypeChecking,
		models.AccountTypeSavings,
		models.AccountTypeCredit,
	}

	for i := 0; i < accounts; i++ {
		account := models.Account{
			ID:       fmt.Sprintf("ACC-%04d", 1000+i),
			Type:     accountTypes[i%len(accountTypes)],
			Currency: "USD",
			Balance:  decimal.NewFromFloat(g.faker.Price(500, 25000)),
		}
		if err := g.db.Create(&account).Error; err != nil {
			return fmt.Errorf("failed to create account %s: %w", account.ID, err)
		}

		if err := g.seedTransactions(account.ID, transactionsPerAccount, days); err != nil {
			return err
		}
	}

	g.logger.Info("store seeded",
		slog.Int("accounts", accounts),
		slog.Int("transactions_per_account", transactionsPerAccount))
	return nil
}

func (g *Generator) seedTransactions(accountID string, count, days int) error {
	now := time.Now().UTC()

	for i := 0; i < count; i++ {
		date := now.Add(-time.Duration(g.rng.Intn(days*24)) * time.Hour)
		amount, description := g.randomEntry()

		txn := models.Transaction{
			ID:          models.GenerateTransactionID(),
			AccountID:   accountID,
			Date:        date,
			Amount:      amount,
			Currency:    "USD",
			Description: description,
			Status:      g.randomStatus(date, now),
		}

		if err := g.db.Create(&txn).Error; err != nil {
			return fmt.Errorf("failed to create transaction for %s: %w", accountID, err)
		}
	}

	return nil
}

// randomEntry skews roughly three debits to one credit, like a typical
// checking account, and keeps amount sign and description consistent.
func (g *Generator) randomEntry() (decimal.Decimal, string) {
	if g.rng.Intn(4) == 0 {
		amount := decimal.NewFromFloat(g.faker.Price(50, 5000))
		return amount, creditDescriptions[g.rng.Intn(len(creditDescriptions))]
	}
	amount := decimal.NewFromFloat(g.faker.Price(3, 800)).Neg()
	return amount, merchantPool[g.rng.Intn(len(merchantPool))]
}

// randomStatus leaves only recent transactions pending; history settles.
func (g *Generator) randomStatus(date, now time.Time) string {
	if now.Sub(date) < 48*time.Hour && g.rng.Intn(3) == 0 {
		return models.TransactionStatusPending
	}
	return models.TransactionStatusPosted
}
