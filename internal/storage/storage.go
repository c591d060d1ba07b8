package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"
	_ "modernc.org/sqlite"

	"github.com/carson-networks/finance-ledger/internal/config"
	"github.com/carson-networks/finance-ledger/internal/storage/sqlconfig"
)

// Storage owns the database handle for the lifetime of the application.
type Storage struct {
	DB           *sql.DB
	Dialect      sqlconfig.Dialect
	Transactions sqlconfig.ITransactionTable

	dsn   string
	bobDB bob.DB
}

func NewStorage(env *config.Config) (*Storage, error) {
	return Open(sqlconfig.Dialect(env.Driver), env.DSN())
}

// Open prepares a handle for dialect. It does not contact the database;
// call Initialize before first use.
func Open(dialect sqlconfig.Dialect, dsn string) (*Storage, error) {
	if dialect == sqlconfig.DialectSQLite {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open(string(dialect), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", dialect, err)
	}
	if dialect == sqlconfig.DialectSQLite {
		// sqlite allows a single writer; one connection keeps writes and reads ordered
		db.SetMaxOpenConns(1)
	}

	bobDB := bob.NewDB(db)
	transactions, err := sqlconfig.NewTransactionsTableFor(dialect, bobDB)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storage{
		DB:           db,
		Dialect:      dialect,
		Transactions: transactions,
		dsn:          dsn,
		bobDB:        bobDB,
	}, nil
}

// Initialize checks connectivity and brings the schema up to date.
// It is safe to call on every startup.
func (s *Storage) Initialize(ctx context.Context) (MigrationStatus, error) {
	if err := s.DB.PingContext(ctx); err != nil {
		return MigrationStatus{}, fmt.Errorf("ping database: %w", err)
	}

	status, err := Migrate(s.Dialect, s.dsn)
	if err != nil {
		return status, fmt.Errorf("run migrations: %w", err)
	}
	return status, nil
}

// Write starts a database transaction and returns a Writer bound to it.
// The caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}

	transactions, err := sqlconfig.NewTransactionsTableFor(s.Dialect, tx)
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}
	return NewWriter(tx, transactions), nil
}

func (s *Storage) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}
