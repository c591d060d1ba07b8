package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcmysql "github.com/testcontainers/testcontainers-go/modules/mysql"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/carson-networks/finance-ledger/internal/storage/sqlconfig"
)

func TestPostgresStorage_Transactions(t *testing.T) {
	if testing.Short() {
		t.Skip("requires docker")
	}
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("ledger"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("testpassword"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	store, err := Open(sqlconfig.DialectPostgres, dsn)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Initialize(ctx)
	require.NoError(t, err)

	exerciseTransactionsTable(t, store)
}

func TestMySQLStorage_Transactions(t *testing.T) {
	if testing.Short() {
		t.Skip("requires docker")
	}
	ctx := context.Background()

	container, err := tcmysql.Run(ctx, "mysql:8.0.36",
		tcmysql.WithDatabase("finance_db"),
		tcmysql.WithUsername("ledger"),
		tcmysql.WithPassword("testpassword"),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "parseTime=true")
	require.NoError(t, err)

	store, err := Open(sqlconfig.DialectMySQL, dsn)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Initialize(ctx)
	require.NoError(t, err)

	exerciseTransactionsTable(t, store)
}
