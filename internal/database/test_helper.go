package database

import (
	"testing"
	"time"

	"poisar-hisap/internal/config"
	"poisar-hisap/internal/models"

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

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Exec("DELETE FROM expenses").Error; err != nil {
		t.Logf("failed to cleanup expenses table: %v", err)
	}
}

// CreateTestExpense inserts a minimal expense for the given owner on the
// given stored date.
func CreateTestExpense(t *testing.T, db *DB, ownerID uuid.UUID, date string, amount int64) *models.Expense {
	t.Helper()

	description := "test expense"
	expense := &models.Expense{
		OwnerID:     ownerID,
		Amount:      decimal.NewFromInt(amount),
		Currency:    models.DefaultCurrency,
		Date:        date,
		Description: &description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}

	return expense
}
