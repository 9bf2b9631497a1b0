// Package testdb opens migrated in-memory SQLite databases for repository and
// HTTP tests.
package testdb

import (
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/infra/persistence/model"
	"storefront/internal/infra/persistence/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New returns a fresh database private to t, with foreign keys enforced and
// every model migrated. The connection is closed when t finishes.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=1"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection serializes writers the way the real pool would with row locks.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, model.SetupJoinTables(db))
	require.NoError(t, db.AutoMigrate(model.All()...))

	return postgres.Configure(db, slog.New(slog.DiscardHandler), &config.Config{})
}
