package database

import (
	"fmt"
	"testing"
	"time"

	"deposit-accounts/internal/config"
	"deposit-accounts/internal/models"

	"github.com/google/uuid"
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

// CreateTestAccount inserts a minimal account for the given customer and type
func CreateTestAccount(t *testing.T, db *DB, customerID uuid.UUID, accountType string) *models.Account {
	t.Helper()

	account := &models.Account{
		AccountNumber:            models.GenerateAccountNumber(),
		AccountType:              accountType,
		CustomerID:               customerID,
		Balance:                  decimal.NewFromFloat(100.00),
		CommissionPerTransaction: models.DefaultCommissionPerTransaction,
		FreeTransactionsPerMonth: models.DefaultFreeTransactionsPerMonth,
		Holders:                  models.StringList{},
		AuthorizedSigners:        models.StringList{},
		CreatedAt:                time.Now().UTC(),
		UpdatedAt:                time.Now().UTC(),
	}
	account.ApplyTypeDefaults()

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"accounts",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
