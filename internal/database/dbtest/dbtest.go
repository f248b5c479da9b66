// Package dbtest opens throwaway migrated stores for tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dangerclosesec/clubmap/internal/config"
	"github.com/dangerclosesec/clubmap/internal/database"
	"github.com/dangerclosesec/clubmap/internal/migration"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a gorm handle on a fresh SQLite file under t.TempDir with the
// schema applied. The handle is closed when the test ends.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := &config.Config{Env: "test"}
	cfg.Database.Path = filepath.Join(t.TempDir(), "clubmap.db")

	ctx := context.Background()
	db, err := database.Open(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	sqlDB, err := db.DB()
	require.NoError(t, err)
	_, err = migration.NewMigrator(sqlDB, cfg.Dialect()).Up(ctx)
	require.NoError(t, err)

	return db.Session(&gorm.Session{Logger: logger.Default.LogMode(logger.Silent)})
}
