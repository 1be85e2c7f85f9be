package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/calebasbridge/personal-finance-app-sub001/internal/constants"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/controller"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/utils"
)

type TransactionListView struct{}

func NewTransactionListView() *TransactionListView {
	return &TransactionListView{}
}

// Render prints one page of enriched transactions plus a pagination
// footer.
func (v *TransactionListView) Render(rows []controller.Row, page, lastPage, totalCount int) error {
	if len(rows) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	tableData := pterm.TableData{
		{"ID", "Date", "Account", "Envelope", "Description", "Amount", "Status", "Type", "Ref"},
	}

	for _, row := range rows {
		amount := utils.FormatFromCents(row.Amount)

		var coloredAmount string
		switch {
		case row.Amount < 0:
			coloredAmount = pterm.Red(amount)
		case row.Amount > 0:
			coloredAmount = pterm.Green(amount)
		default:
			coloredAmount = amount
		}

		ref := row.ReferenceNumber
		if ref == "" {
			ref = "-"
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", row.ID),
			row.Date,
			row.AccountName,
			row.EnvelopeName,
			row.Description,
			coloredAmount,
			row.Status,
			row.Type,
			ref,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Page %d of %d (%d transactions, %d per page)\n",
		page, lastPage, totalCount, constants.PageSize)
	return nil
}
