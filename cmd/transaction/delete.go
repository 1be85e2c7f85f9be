package transaction

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/calebasbridge/personal-finance-app-sub001/internal/app"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/backend"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/ui"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/utils"
)

// surveyOpts contains custom options for all survey prompts
var surveyOpts = []survey.AskOpt{
	survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
	}),
}

func NewDeleteCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <transaction-id>",
		Short: "Delete a transaction",
		Long:  `Delete a transaction and its payment allocations. This action cannot be undone.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var txID int64
			if _, err := fmt.Sscanf(args[0], "%d", &txID); err != nil {
				return fmt.Errorf("invalid transaction ID: %s", args[0])
			}
			return runTransactionDelete(cmd, application, txID)
		},
	}
}

func runTransactionDelete(cmd *cobra.Command, application *app.App, txID int64) error {
	ctx := cmd.Context()
	ctrl := application.Controller

	if err := ctrl.RefreshBalances(ctx); err != nil {
		return err
	}

	// Get transaction details first to show what will be deleted
	tx, err := application.API.TransactionByID(ctx, txID)
	if err != nil {
		pterm.Error.Printf("Failed to get transaction: %v\n", err)
		return nil
	}

	// Show transaction summary
	pterm.Warning.Printf("About to delete transaction #%d:\n", tx.ID)
	deletionInfo := pterm.TableData{
		{"Date", tx.Date},
		{"Account", ctrl.AccountName(tx.AccountID)},
		{"Envelope", ctrl.EnvelopeName(tx.EnvelopeID)},
		{"Description", tx.Description},
		{"Amount", utils.FormatFromCents(tx.Amount)},
	}
	pterm.DefaultTable.WithData(deletionInfo).Render()

	// Confirm deletion
	pterm.Warning.Println("This action cannot be undone!")

	var confirmation bool
	confirmPrompt := &survey.Confirm{
		Message: "Do you want to delete this transaction?",
		Default: false,
	}
	if err := survey.AskOne(confirmPrompt, &confirmation, surveyOpts...); err != nil {
		return err
	}

	if !confirmation {
		pterm.Info.Println("Deletion cancelled")
		return nil
	}

	warnings, err := ctrl.Delete(ctx, txID)
	if err != nil {
		var opErr *backend.OperationError
		if errors.As(err, &opErr) {
			pterm.Error.Println(opErr.Message)
		} else {
			pterm.Error.Printf("Failed to delete transaction: %v\n", err)
		}
		return nil
	}

	pterm.Success.Printf("Transaction #%d deleted successfully\n", txID)
	for _, warning := range warnings {
		pterm.Warning.Println(warning)
	}
	ui.Separator()
	return nil
}
