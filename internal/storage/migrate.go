package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/carson-networks/finance-ledger/internal/storage/sqlconfig"
)

//go:embed migrations
var migrationsFS embed.FS

// MigrationStatus reports the schema version before and after a migration run.
type MigrationStatus struct {
	PreMigrationVersion  uint
	PostMigrationVersion uint
}

// Migrate applies every pending migration for dialect. Already up to date is not an error.
func Migrate(dialect sqlconfig.Dialect, dsn string) (MigrationStatus, error) {
	var status MigrationStatus

	// migrate closes the handle it is given, so it gets its own connection
	migrateDB, err := sql.Open(string(dialect), dsn)
	if err != nil {
		return status, fmt.Errorf("open migration database: %w", err)
	}

	driver, err := migrationDriver(dialect, migrateDB)
	if err != nil {
		_ = migrateDB.Close()
		return status, err
	}

	source, err := iofs.New(migrationsFS, "migrations/"+string(dialect))
	if err != nil {
		_ = migrateDB.Close()
		return status, fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, string(dialect), driver)
	if err != nil {
		_ = migrateDB.Close()
		return status, fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	status.PreMigrationVersion, err = currentVersion(m)
	if err != nil {
		return status, fmt.Errorf("read pre-migration version: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return status, fmt.Errorf("run migrations: %w", err)
	}

	status.PostMigrationVersion, err = currentVersion(m)
	if err != nil {
		return status, fmt.Errorf("read post-migration version: %w", err)
	}
	return status, nil
}

func migrationDriver(dialect sqlconfig.Dialect, db *sql.DB) (database.Driver, error) {
	var (
		driver database.Driver
		err    error
	)
	switch dialect {
	case sqlconfig.DialectPostgres:
		driver, err = postgres.WithInstance(db, &postgres.Config{})
	case sqlconfig.DialectMySQL:
		driver, err = migratemysql.WithInstance(db, &migratemysql.Config{})
	case sqlconfig.DialectSQLite:
		driver, err = sqlite.WithInstance(db, &sqlite.Config{})
	default:
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
	if err != nil {
		return nil, fmt.Errorf("create %s migration driver: %w", dialect, err)
	}
	return driver, nil
}

func currentVersion(m *migrate.Migrate) (uint, error) {
	version, _, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	return version, err
}
