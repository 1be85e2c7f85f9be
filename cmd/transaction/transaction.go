package transaction

import (
	"github.com/spf13/cobra"

	"github.com/calebasbridge/personal-finance-app-sub001/internal/app"
)

// NewTransactionCmd groups the transaction subcommands.
func NewTransactionCmd(application *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Manage transactions",
		Long:    "Manage transactions: list, browse, create, edit, delete, or export.",
	}

	cmd.AddCommand(NewListCmd(application))
	cmd.AddCommand(NewBrowseCmd(application))
	cmd.AddCommand(NewCreateCmd(application))
	cmd.AddCommand(NewEditCmd(application))
	cmd.AddCommand(NewDeleteCmd(application))
	cmd.AddCommand(NewExportCmd(application))

	return cmd
}
