package cli

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/finance-ledger/internal/config"
	"github.com/carson-networks/finance-ledger/internal/logging"
	"github.com/carson-networks/finance-ledger/internal/operator"
	"github.com/carson-networks/finance-ledger/internal/service"
	"github.com/carson-networks/finance-ledger/internal/storage"
)

type app struct {
	log        *logrus.Logger
	configFile string
	logLevel   string
	now        func() time.Time
}

// NewRootCommand builds the finance-ledger command tree.
func NewRootCommand(log *logrus.Logger) *cobra.Command {
	return newRootCommand(&app{log: log, now: time.Now})
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "finance-ledger",
		Short:        "Record income and expenses and summarize the balance",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level, overrides LOG_LEVEL")

	root.AddCommand(
		a.newAddCommand(),
		a.newDeleteCommand(),
		a.newListCommand(),
		a.newSummaryCommand(),
		a.newDashboardCommand(),
		a.newMigrateCommand(),
		a.newServeCommand(),
	)
	return root
}

// ledger is an opened store with its write operator running.
type ledger struct {
	env       *config.Config
	store     *storage.Storage
	delegator *operator.OperatorDelegator
	Service   *service.Service
}

func (a *app) loadConfig() (*config.Config, error) {
	env, err := config.Load(a.configFile)
	if err != nil {
		return nil, err
	}

	level := env.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	}
	if err := logging.SetLevel(a.log, level); err != nil {
		return nil, err
	}
	return env, nil
}

// openLedger connects to the configured store and brings its schema up to date.
// The caller must Close the ledger.
func (a *app) openLedger(ctx context.Context) (*ledger, error) {
	env, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewStorage(env)
	if err != nil {
		return nil, err
	}

	delegator := operator.NewOperatorDelegator(store, 1)
	delegator.Start()

	l := &ledger{
		env:       env,
		store:     store,
		delegator: delegator,
		Service:   service.NewService(store, delegator, a.log),
	}
	if err := l.Service.Transaction.Initialize(ctx); err != nil {
		l.Close()
		return nil, err
	}
	return l, nil
}

func (l *ledger) Close() {
	l.delegator.Stop()
	_ = l.store.Close()
}

func withLedger(a *app, run func(cmd *cobra.Command, args []string, l *ledger) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		l, err := a.openLedger(cmd.Context())
		if err != nil {
			return err
		}
		defer l.Close()
		return run(cmd, args, l)
	}
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
