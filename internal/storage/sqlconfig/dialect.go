package sqlconfig

import (
	"fmt"

	"github.com/stephenafamo/bob"
)

// Dialect names the SQL flavour a table is built for. Values match the
// database/sql driver names registered by the storage package.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectMySQL    Dialect = "mysql"
	DialectSQLite   Dialect = "sqlite"
)

// NewTransactionsTableFor returns the ITransactionTable for dialect running on exec.
// exec may be a bob.DB or a bob.Tx.
func NewTransactionsTableFor(dialect Dialect, exec bob.Executor) (ITransactionTable, error) {
	switch dialect {
	case DialectPostgres:
		return &TransactionsTable{exec: exec}, nil
	case DialectMySQL:
		return &MySQLTransactionsTable{exec: exec}, nil
	case DialectSQLite:
		return &SQLiteTransactionsTable{exec: exec}, nil
	default:
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
}
