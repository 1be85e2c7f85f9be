package transaction

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/calebasbridge/personal-finance-app-sub001/internal/app"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/backend"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/utils"
)

// exportRow is the CSV shape for one exported transaction.
type exportRow struct {
	ID          int64  `csv:"id"`
	Date        string `csv:"date"`
	Account     string `csv:"account"`
	Envelope    string `csv:"envelope"`
	Description string `csv:"description"`
	Amount      string `csv:"amount"`
	Status      string `csv:"status"`
	Type        string `csv:"type"`
	Reference   string `csv:"reference_number"`
}

type exportFlags struct {
	Output  string
	Account int64
	Status  string
	From    string
	To      string
	Search  string
}

type exportRunner struct {
	application *app.App
	flags       *exportFlags
}

func NewExportCmd(application *app.App) *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions to CSV",
		Long: `Export transactions matching the given filters to a CSV file.
All matching rows are exported regardless of list pagination.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &exportRunner{
				application: application,
				flags:       flags,
			}
			return runner.Run(cmd)
		},
	}

	cmd.Flags().StringVarP(&flags.Output, "output", "o", "transactions.csv", "Output file path")
	cmd.Flags().Int64VarP(&flags.Account, "account", "a", 0, "Filter by account id")
	cmd.Flags().StringVarP(&flags.Status, "status", "s", "", "Filter by status")
	cmd.Flags().StringVar(&flags.From, "from", "", "Filter by start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.To, "to", "", "Filter by end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.Search, "search", "", "Search description and reference number")

	return cmd
}

func (r *exportRunner) Run(cmd *cobra.Command) error {
	ctx := cmd.Context()
	ctrl := r.application.Controller

	if err := ctrl.RefreshBalances(ctx); err != nil {
		return err
	}

	// Limit 0 disables pagination so the export covers every match.
	filter := backend.TransactionFilter{
		AccountID: r.flags.Account,
		Status:    r.flags.Status,
		StartDate: r.flags.From,
		EndDate:   r.flags.To,
		Search:    r.flags.Search,
	}

	page, err := r.application.API.TransactionsWithFilters(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}

	rows := make([]*exportRow, 0, len(page.Transactions))
	for _, tx := range page.Transactions {
		rows = append(rows, &exportRow{
			ID:          tx.ID,
			Date:        tx.Date,
			Account:     ctrl.AccountName(tx.AccountID),
			Envelope:    ctrl.EnvelopeName(tx.EnvelopeID),
			Description: tx.Description,
			Amount:      utils.FormatFromCents(tx.Amount),
			Status:      tx.Status,
			Type:        tx.Type,
			Reference:   tx.ReferenceNumber,
		})
	}

	file, err := os.Create(r.flags.Output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		r.application.Log.WithError(err).Error("Failed to marshal transactions to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	r.application.Log.WithFields(logrus.Fields{
		"file":  r.flags.Output,
		"count": len(rows),
	}).Info("Exported transactions to CSV file")

	pterm.Success.Printf("Exported %d transactions to %s\n", len(rows), r.flags.Output)
	return nil
}
