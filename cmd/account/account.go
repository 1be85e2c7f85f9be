package account

import (
	"github.com/spf13/cobra"

	"github.com/calebasbridge/personal-finance-app-sub001/internal/app"
)

// NewAccountCmd groups the account subcommands.
func NewAccountCmd(application *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "account",
		Aliases: []string{"acc"},
		Short:   "Manage accounts",
		Long:    "Manage accounts: list balances or create a new account.",
	}

	cmd.AddCommand(NewListCmd(application))
	cmd.AddCommand(NewCreateCmd(application))

	return cmd
}
