package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/calebasbridge/personal-finance-app-sub001/internal/backend"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/utils"
)

func RenderAccountList(accounts []backend.AccountBalance) error {
	if len(accounts) == 0 {
		pterm.Warning.Println("No accounts found")
		return nil
	}

	tableData := pterm.TableData{
		{"ID", "Name", "Type", "Available Balance"},
	}

	for _, acc := range accounts {
		balance := utils.FormatFromCents(acc.AvailableBalance)
		if acc.AvailableBalance < 0 {
			balance = pterm.Red(balance)
		}
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", acc.AccountID),
			acc.AccountName,
			acc.AccountType,
			balance,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d accounts\n", len(accounts))
	return nil
}
