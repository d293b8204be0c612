package database

import (
	"path/filepath"
	"testing"

	"school-erp/internal/config"
	"school-erp/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(&config.DatabaseConfig{Driver: "mysql"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestInitialize_SQLite(t *testing.T) {
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver: config.DriverSQLite,
			Path:   filepath.Join(t.TempDir(), "erp.db"),
		},
	}

	db, err := Initialize(cfg)
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.HealthCheck())
	assert.True(t, db.Migrator().HasTable(&models.Account{}))
	assert.True(t, db.Migrator().HasTable(&models.Transfer{}))
	assert.True(t, db.Migrator().HasIndex("accounts", "idx_accounts_created_at"))
}

func TestSetupTestDB_CreateTestAccount(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	account := CreateTestAccount(t, db, "ACC-1", "Fees", decimal.NewFromInt(100))

	var stored models.Account
	require.NoError(t, db.First(&stored, "id = ?", account.ID).Error)
	assert.Equal(t, "ACC-1", stored.StableID())
	assert.True(t, stored.Balance.Equal(decimal.NewFromInt(100)))
}
