package transaction

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/calebasbridge/personal-finance-app-sub001/internal/app"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/ui"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/ui/prompts"
)

func NewCreateCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:     "create",
		Aliases: []string{"new", "add"},
		Short:   "Create a new transaction",
		Long:    `Create a new transaction interactively against an account and envelope.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctrl := application.Controller

			if err := ctrl.RefreshBalances(ctx); err != nil {
				return err
			}
			return runCreateFlow(ctx, application)
		},
	}
}

// runCreateFlow walks the operator through the create form. Balances
// must already be loaded.
func runCreateFlow(ctx context.Context, application *app.App) error {
	ctrl := application.Controller

	if len(ctrl.Accounts()) == 0 {
		pterm.Warning.Println("No accounts exist yet. Create an account first.")
		return nil
	}

	ctrl.EnterCreate()

	accountID, err := prompts.PromptAccountSelection(ctrl.Accounts(), "Account:", 0)
	if err != nil {
		return err
	}
	ctrl.SetAccount(accountID)

	options := ctrl.EnvelopeOptions()
	if len(options) == 0 {
		pterm.Warning.Println("The selected account has no envelopes. Create an envelope first.")
		ctrl.Cancel()
		return nil
	}

	if draft := ctrl.Draft(); draft.EnvelopeID != 0 {
		pterm.Info.Printf("Envelope auto-selected: %s\n", ctrl.EnvelopeName(draft.EnvelopeID))
	} else {
		envelopeID, err := prompts.PromptEnvelopeSelection(options, "Envelope:", 0)
		if err != nil {
			return err
		}
		ctrl.SetEnvelope(envelopeID)
	}

	amount, err := prompts.PromptAmount("Amount (negative for spending):", 0)
	if err != nil {
		return err
	}
	ctrl.SetAmount(amount)

	date, err := prompts.PromptDate("Date (YYYY-MM-DD):", ctrl.Draft().Date)
	if err != nil {
		return err
	}
	ctrl.SetDate(date)

	description, err := prompts.PromptDescription("Description:", "")
	if err != nil {
		return err
	}
	ctrl.SetDescription(description)

	status, err := prompts.PromptStatus(ctrl.StatusOptions(), ctrl.Draft().Status)
	if err != nil {
		return err
	}
	ctrl.SetStatus(status)

	txType, err := prompts.PromptTransactionType(ctrl.Draft().Type)
	if err != nil {
		return err
	}
	ctrl.SetType(txType)

	ref, err := prompts.PromptReferenceNumber("")
	if err != nil {
		return err
	}
	ctrl.SetReferenceNumber(ref)

	if err := ctrl.ValidateDraft(); err != nil {
		pterm.Error.Println(err)
		return nil
	}

	created, err := ctrl.SubmitCreate(ctx)
	if err != nil {
		pterm.Error.Printf("Failed to create transaction: %v\n", err)
		return nil
	}

	pterm.Success.Printf("Transaction #%d created\n", created.ID)
	ui.Separator()
	return nil
}
