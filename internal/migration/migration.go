// File: migration/migration.go
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dangerclosesec/clubmap/internal/config"
	"github.com/lib/pq"
)

// Migration is one versioned schema step.
type Migration struct {
	Version int
	Name    string
	Up      func(d types) []string
	Down    func(d types) []string
}

// types holds the column types that differ between dialects.
type types struct {
	ID        string
	Float     string
	Timestamp string
	Bool      string
	True      string
}

var dialectTypes = map[config.Dialect]types{
	config.DialectPostgres: {
		ID:        "BIGSERIAL PRIMARY KEY",
		Float:     "DOUBLE PRECISION",
		Timestamp: "TIMESTAMPTZ",
		Bool:      "BOOLEAN",
		True:      "TRUE",
	},
	config.DialectSQLite: {
		ID:        "INTEGER PRIMARY KEY AUTOINCREMENT",
		Float:     "REAL",
		Timestamp: "DATETIME",
		Bool:      "INTEGER",
		True:      "1",
	},
}

// Migrator applies the schema migrations in order.
type Migrator struct {
	DB         *sql.DB
	dialect    config.Dialect
	migrations []Migration
}

// NewMigrator creates a new migrator
func NewMigrator(db *sql.DB, dialect config.Dialect) *Migrator {
	return &Migrator{DB: db, dialect: dialect, migrations: Migrations()}
}

// Migrations returns the schema history in version order.
func Migrations() []Migration {
	return []Migration{initSchema}
}

func (m *Migrator) types() types {
	if t, ok := dialectTypes[m.dialect]; ok {
		return t
	}
	return dialectTypes[config.DialectSQLite]
}

func (m *Migrator) ensureVersionTable(ctx context.Context) error {
	_, err := m.DB.ExecContext(ctx, fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS %s (
		version INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		applied_at %s NOT NULL
	)`, pq.QuoteIdentifier("schema_migrations"), m.types().Timestamp))
	if err != nil {
		return fmt.Errorf("creating schema_migrations: %w", err)
	}
	return nil
}

// CurrentVersion returns the highest applied version, 0 for a fresh store.
func (m *Migrator) CurrentVersion(ctx context.Context) (int, error) {
	if err := m.ensureVersionTable(ctx); err != nil {
		return 0, err
	}

	var version int
	err := m.DB.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return version, nil
}

// Up applies every migration newer than the current version. Each migration
// runs in its own transaction.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	current, err := m.CurrentVersion(ctx)
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, mig := range m.migrations {
		if mig.Version <= current {
			continue
		}

		stmts := mig.Up(m.types())
		record := func(tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx,
				m.rebind(`INSERT INTO schema_migrations (version, name, applied_at) VALUES (?, ?, ?)`),
				mig.Version, mig.Name, time.Now().UTC())
			return err
		}
		if err := m.apply(ctx, stmts, record); err != nil {
			return applied, fmt.Errorf("applying migration %d (%s): %w", mig.Version, mig.Name, err)
		}

		slog.InfoContext(ctx, "migration applied", "version", mig.Version, "name", mig.Name)
		applied++
	}

	return applied, nil
}

// Down reverts the most recent migration, if any.
func (m *Migrator) Down(ctx context.Context) (int, error) {
	current, err := m.CurrentVersion(ctx)
	if err != nil {
		return 0, err
	}

	for i := len(m.migrations) - 1; i >= 0; i-- {
		mig := m.migrations[i]
		if mig.Version != current {
			continue
		}

		record := func(tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, m.rebind(`DELETE FROM schema_migrations WHERE version = ?`), mig.Version)
			return err
		}
		if err := m.apply(ctx, mig.Down(m.types()), record); err != nil {
			return 0, fmt.Errorf("reverting migration %d (%s): %w", mig.Version, mig.Name, err)
		}

		slog.InfoContext(ctx, "migration reverted", "version", mig.Version, "name", mig.Name)
		return 1, nil
	}

	return 0, nil
}

func (m *Migrator) apply(ctx context.Context, stmts []string, record func(*sql.Tx) error) error {
	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			tx.Rollback()
			return fmt.Errorf("executing %q: %w", firstLine(stmt), err)
		}
	}

	if err := record(tx); err != nil {
		tx.Rollback()
		return fmt.Errorf("recording version: %w", err)
	}

	return tx.Commit()
}

// rebind converts ? placeholders to $n for PostgreSQL.
func (m *Migrator) rebind(query string) string {
	if m.dialect != config.DialectPostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func firstLine(stmt string) string {
	stmt = strings.TrimSpace(stmt)
	if i := strings.IndexByte(stmt, '\n'); i >= 0 {
		return stmt[:i]
	}
	return stmt
}
