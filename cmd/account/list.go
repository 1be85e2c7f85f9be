package account

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebasbridge/personal-finance-app-sub001/internal/app"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/ui/views"
)

func NewListCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List accounts with available balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := application.API.AccountBalances(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load accounts: %w", err)
			}
			return views.RenderAccountList(accounts)
		},
	}
}
