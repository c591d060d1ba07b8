package sqlconfig

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/mysql"
	"github.com/stephenafamo/bob/dialect/mysql/dm"
	"github.com/stephenafamo/bob/dialect/mysql/im"
	"github.com/stephenafamo/bob/dialect/mysql/sm"
	"github.com/stephenafamo/scan"
)

var _ ITransactionTable = (*MySQLTransactionsTable)(nil)

// MySQLTransactionsTable provides access to the mysql transactions table.
// The connection must be opened with parseTime=true so DATE columns scan into time.Time.
type MySQLTransactionsTable struct {
	exec bob.Executor
}

// Insert creates a new transaction and returns its AUTO_INCREMENT ID.
func (t *MySQLTransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (int64, error) {
	q := mysql.Insert(
		im.Into(TransactionsTableName, columnTransDate, columnDescription, columnAmount, columnCategory),
		im.Values(mysql.Arg(insertArgs(create)...)),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (t *MySQLTransactionsTable) Delete(ctx context.Context, id int64) (int64, error) {
	q := mysql.Delete(
		dm.From(TransactionsTableName),
		dm.Where(mysql.Quote(columnID).EQ(mysql.Arg(id))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (t *MySQLTransactionsTable) List(ctx context.Context) ([]*Transaction, error) {
	q := mysql.Select(
		sm.Columns(columnID, columnTransDate, columnDescription, columnAmount, columnCategory),
		sm.From(TransactionsTableName),
		sm.OrderBy(columnTransDate).Desc(),
		sm.OrderBy(columnID).Desc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[*transactionRow]())
	if err != nil {
		return nil, err
	}
	result := make([]*Transaction, len(rows))
	for i, row := range rows {
		result[i] = rowToTransaction(row)
	}
	return result, nil
}
