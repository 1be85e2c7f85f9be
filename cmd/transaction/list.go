package transaction

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebasbridge/personal-finance-app-sub001/internal/app"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/ui/views"
)

type listFlags struct {
	Account int64
	Status  string
	From    string
	To      string
	Search  string
	Page    int
}

type listRunner struct {
	application *app.App
	flags       *listFlags
}

func NewListCmd(application *app.App) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List transactions",
		Long: `List transactions with optional filters.

This command displays one page of transactions with their details including
date, account, envelope, description, amount, status, and type.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				application: application,
				flags:       flags,
			}
			return runner.Run(cmd)
		},
	}

	cmd.Flags().Int64VarP(&flags.Account, "account", "a", 0, "Filter by account id")
	cmd.Flags().StringVarP(&flags.Status, "status", "s", "", "Filter by status")
	cmd.Flags().StringVar(&flags.From, "from", "", "Filter by start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.To, "to", "", "Filter by end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.Search, "search", "", "Search description and reference number")
	cmd.Flags().IntVarP(&flags.Page, "page", "p", 1, "Page number")

	return cmd
}

func (r *listRunner) Run(cmd *cobra.Command) error {
	ctx := cmd.Context()
	ctrl := r.application.Controller

	if err := ctrl.RefreshBalances(ctx); err != nil {
		return err
	}

	if r.flags.Account != 0 {
		ctrl.SetFilterAccount(r.flags.Account)
	}
	if r.flags.Status != "" {
		ctrl.SetFilterStatus(r.flags.Status)
	}
	if r.flags.From != "" || r.flags.To != "" {
		ctrl.SetFilterDateRange(r.flags.From, r.flags.To)
	}
	if r.flags.Search != "" {
		ctrl.SetFilterSearch(r.flags.Search)
	}

	if err := ctrl.LoadTransactions(ctx); err != nil {
		return err
	}

	if r.flags.Page > 1 {
		if err := ctrl.SetPage(r.flags.Page); err != nil {
			return fmt.Errorf("invalid page: %w", err)
		}
		if err := ctrl.LoadTransactions(ctx); err != nil {
			return err
		}
	}

	return views.NewTransactionListView().Render(
		ctrl.Rows(), ctrl.Page(), ctrl.LastPage(), ctrl.TotalCount())
}
