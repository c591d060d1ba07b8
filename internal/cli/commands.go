package cli

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/carson-networks/finance-ledger/api"
	"github.com/carson-networks/finance-ledger/internal/service"
	"github.com/carson-networks/finance-ledger/internal/storage"
)

func (a *app) newAddCommand() *cobra.Command {
	var input service.TransactionInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Args:  cobra.NoArgs,
		RunE: withLedger(a, func(cmd *cobra.Command, _ []string, l *ledger) error {
			if input.Date == "" {
				input.Date = a.now().Format("2006-01-02")
			}
			id, err := l.Service.Transaction.AddTransaction(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "Added transaction %d\n", id)
			return nil
		}),
	}
	cmd.Flags().StringVar(&input.Date, "date", "", "transaction date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&input.Description, "description", "", "what the money was for")
	cmd.Flags().StringVar(&input.Amount, "amount", "", "positive amount, e.g. 12.50")
	cmd.Flags().StringVar(&input.Category, "category", string(service.CategoryExpense), "Income or Expense")
	return cmd
}

func (a *app) newDeleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID...",
		Short: "Permanently delete transactions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			if !yes && !confirm(cmd, fmt.Sprintf("Delete %d selected transaction(s)? This cannot be undone. [y/N]: ", len(ids))) {
				fmt.Fprintln(out(cmd), "Deletion cancelled")
				return nil
			}

			return withLedger(a, func(cmd *cobra.Command, _ []string, l *ledger) error {
				deleted, err := l.Service.Transaction.DeleteTransactions(cmd.Context(), ids)
				if err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Deleted %d transaction(s)\n", deleted)
				return nil
			})(cmd, args)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid transaction id %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(out(cmd), prompt)
	answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

func (a *app) newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show every transaction, newest first",
		Args:  cobra.NoArgs,
		RunE: withLedger(a, func(cmd *cobra.Command, _ []string, l *ledger) error {
			transactions, err := l.Service.Transaction.ListTransactions(cmd.Context())
			if err != nil {
				return err
			}
			return renderTransactions(out(cmd), transactions)
		}),
	}
}

func (a *app) newSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show income, expense and balance totals",
		Args:  cobra.NoArgs,
		RunE: withLedger(a, func(cmd *cobra.Command, _ []string, l *ledger) error {
			summary, err := l.Service.Transaction.Summary(cmd.Context())
			if err != nil {
				return err
			}
			renderSummary(out(cmd), summary)
			return nil
		}),
	}
}

func (a *app) newDashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the history, totals and chart together",
		Args:  cobra.NoArgs,
		RunE: withLedger(a, func(cmd *cobra.Command, _ []string, l *ledger) error {
			transactions, err := l.Service.Transaction.ListTransactions(cmd.Context())
			if err != nil {
				return err
			}
			if err := renderTransactions(out(cmd), transactions); err != nil {
				return err
			}
			fmt.Fprintln(out(cmd))
			renderSummary(out(cmd), service.Summarize(transactions))
			return nil
		}),
	}
}

func (a *app) newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := a.loadConfig()
			if err != nil {
				return err
			}
			store, err := storage.NewStorage(env)
			if err != nil {
				return err
			}
			defer store.Close()

			status, err := store.Initialize(cmd.Context())
			if err != nil {
				return fmt.Errorf("%w: %w", service.ErrStorageUnavailable, err)
			}
			fmt.Fprintf(out(cmd), "Schema version %d -> %d\n", status.PreMigrationVersion, status.PostMigrationVersion)
			return nil
		},
	}
}

func (a *app) newServeCommand() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			l, err := a.openLedger(ctx)
			if err != nil {
				return err
			}
			defer l.Close()

			if port == "" {
				port = l.env.HTTPPort
			}
			rest := api.Rest{
				Logger:  a.log,
				Port:    port,
				Service: l.Service,
			}
			err = rest.Serve(ctx)
			a.log.Info("finance-ledger stopped")
			return err
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port, overrides HTTP_PORT")
	return cmd
}
