package envelope

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebasbridge/personal-finance-app-sub001/internal/app"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/constants"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/ui/views"
)

func NewListCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List envelopes with available balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := application.API.AccountBalances(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load accounts: %w", err)
			}

			envelopes, err := application.API.EnvelopeBalances(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load envelopes: %w", err)
			}

			names := make(map[int64]string, len(accounts))
			for _, acc := range accounts {
				names[acc.AccountID] = acc.AccountName
			}

			return views.RenderEnvelopeList(envelopes, func(accountID int64) string {
				if name, ok := names[accountID]; ok {
					return name
				}
				return constants.UnknownLabel
			})
		},
	}
}
