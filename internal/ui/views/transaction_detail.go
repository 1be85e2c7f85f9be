package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/calebasbridge/personal-finance-app-sub001/internal/backend"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/ui"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/utils"
)

// RenderTransactionDetail prints one transaction with resolved display
// names.
func RenderTransactionDetail(tx *backend.Transaction, accountName, envelopeName string) error {
	ref := tx.ReferenceNumber
	if ref == "" {
		ref = "-"
	}

	pterm.Println()
	ui.PrintL2Title("Transaction Info")
	infoData := pterm.TableData{
		{"Field", "Value"},
		{"ID", fmt.Sprintf("%d", tx.ID)},
		{"Date", tx.Date},
		{"Account", accountName},
		{"Envelope", envelopeName},
		{"Amount", utils.FormatFromCents(tx.Amount)},
		{"Description", tx.Description},
		{"Status", tx.Status},
		{"Type", tx.Type},
		{"Reference", ref},
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render()
}
