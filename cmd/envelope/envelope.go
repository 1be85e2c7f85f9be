package envelope

import (
	"github.com/spf13/cobra"

	"github.com/calebasbridge/personal-finance-app-sub001/internal/app"
)

// NewEnvelopeCmd groups the envelope subcommands.
func NewEnvelopeCmd(application *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "envelope",
		Aliases: []string{"env"},
		Short:   "Manage envelopes",
		Long:    "Manage budget envelopes: list balances or create a new envelope under an account.",
	}

	cmd.AddCommand(NewListCmd(application))
	cmd.AddCommand(NewCreateCmd(application))

	return cmd
}
