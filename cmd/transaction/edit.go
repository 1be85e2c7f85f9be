package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/calebasbridge/personal-finance-app-sub001/internal/app"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/backend"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/controller"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/ui"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/ui/prompts"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/ui/views"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/utils"
)

func NewEditCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <transaction-id>",
		Short: "Edit a transaction",
		Long:  `Edit a transaction's account, envelope, amount, date, description, status, type, and reference number interactively.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var txID int64
			if _, err := fmt.Sscanf(args[0], "%d", &txID); err != nil {
				return fmt.Errorf("invalid transaction ID: %s", args[0])
			}

			ctx := cmd.Context()
			if err := application.Controller.RefreshBalances(ctx); err != nil {
				return err
			}
			return runEditFlow(ctx, application, txID)
		},
	}
}

// runEditFlow checks the edit advisories, asks for confirmation when any
// hold, and then runs the edit menu. Balances must already be loaded.
func runEditFlow(ctx context.Context, application *app.App, txID int64) error {
	ctrl := application.Controller

	tx, err := application.API.TransactionByID(ctx, txID)
	if err != nil {
		pterm.Error.Printf("Failed to get transaction: %v\n", err)
		return nil
	}

	advisories := ctrl.EditAdvisories(ctx, txID)
	if len(advisories) > 0 {
		for _, advisory := range advisories {
			pterm.Warning.Println(advisory)
		}

		confirm, err := prompts.PromptConfirm("Edit this transaction anyway?", false)
		if err != nil {
			return err
		}
		if !confirm {
			pterm.Info.Println("Edit cancelled")
			return nil
		}
	}

	ctrl.EnterEdit(*tx)

	pterm.DefaultSection.Printf("Editing Transaction #%d", txID)
	if err := views.RenderTransactionDetail(tx, ctrl.AccountName(tx.AccountID), ctrl.EnvelopeName(tx.EnvelopeID)); err != nil {
		return err
	}

	for {
		draft := ctrl.Draft()

		menuOptions := []string{
			fmt.Sprintf("Account: %s", ctrl.AccountName(draft.AccountID)),
			fmt.Sprintf("Envelope: %s", ctrl.EnvelopeName(draft.EnvelopeID)),
			fmt.Sprintf("Amount: %s", utils.FormatFromCents(draft.Amount)),
			fmt.Sprintf("Date: %s", draft.Date),
			fmt.Sprintf("Description: %s", draft.Description),
			fmt.Sprintf("Status: %s", draft.Status),
			fmt.Sprintf("Type: %s", draft.Type),
			fmt.Sprintf("Reference: %s", orDash(draft.ReferenceNumber)),
			"Save & Exit",
			"Cancel (discard changes)",
		}

		choice, err := prompts.PromptSelect("What would you like to edit?", menuOptions, "")
		if err != nil {
			return err
		}

		switch choice {
		case menuOptions[0]:
			if err := editAccount(ctrl); err != nil {
				pterm.Error.Printf("Failed to change account: %v\n", err)
			}

		case menuOptions[1]:
			if err := editEnvelope(ctrl); err != nil {
				pterm.Error.Printf("Failed to change envelope: %v\n", err)
			}

		case menuOptions[2]:
			amount, err := prompts.PromptAmount("Amount:", draft.Amount)
			if err != nil {
				return err
			}
			ctrl.SetAmount(amount)

		case menuOptions[3]:
			date, err := prompts.PromptDate("Date (YYYY-MM-DD):", draft.Date)
			if err != nil {
				return err
			}
			ctrl.SetDate(date)

		case menuOptions[4]:
			description, err := prompts.PromptDescription("Description:", draft.Description)
			if err != nil {
				return err
			}
			ctrl.SetDescription(description)

		case menuOptions[5]:
			status, err := prompts.PromptStatus(ctrl.StatusOptions(), draft.Status)
			if err != nil {
				return err
			}
			ctrl.SetStatus(status)

		case menuOptions[6]:
			txType, err := prompts.PromptTransactionType(draft.Type)
			if err != nil {
				return err
			}
			ctrl.SetType(txType)

		case menuOptions[7]:
			ref, err := prompts.PromptReferenceNumber(draft.ReferenceNumber)
			if err != nil {
				return err
			}
			ctrl.SetReferenceNumber(ref)

		case "Save & Exit":
			if err := ctrl.ValidateDraft(); err != nil {
				pterm.Error.Printf("Cannot save: %v\n", err)
				pterm.Warning.Println("Please fix the errors before saving")
				continue
			}

			warnings, err := ctrl.SubmitUpdate(ctx)
			if err != nil {
				var opErr *backend.OperationError
				if errors.As(err, &opErr) {
					pterm.Error.Println(opErr.Message)
				} else {
					pterm.Error.Printf("Failed to update transaction: %v\n", err)
				}
				continue
			}

			pterm.Success.Printf("Transaction #%d updated successfully\n", txID)
			for _, warning := range warnings {
				pterm.Warning.Println(warning)
			}
			ui.Separator()
			return nil

		case "Cancel (discard changes)":
			ctrl.Cancel()
			pterm.Info.Println("Changes discarded")
			return nil
		}
	}
}

func editAccount(ctrl *controller.Controller) error {
	accountID, err := prompts.PromptAccountSelection(ctrl.Accounts(), "Account:", ctrl.Draft().AccountID)
	if err != nil {
		return err
	}

	ctrl.SetAccount(accountID)

	if !ctrl.EnvelopeInOptions() {
		pterm.Warning.Println("The current envelope does not belong to the selected account. Pick a new envelope before saving.")
	}
	return nil
}

func editEnvelope(ctrl *controller.Controller) error {
	options := ctrl.EnvelopeOptions()
	if len(options) == 0 {
		pterm.Warning.Println("The selected account has no envelopes")
		return nil
	}

	envelopeID, err := prompts.PromptEnvelopeSelection(options, "Envelope:", ctrl.Draft().EnvelopeID)
	if err != nil {
		return err
	}
	ctrl.SetEnvelope(envelopeID)
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
