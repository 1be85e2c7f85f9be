package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/calebasbridge/personal-finance-app-sub001/internal/backend"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/utils"
)

// RenderEnvelopeList prints envelopes with their owning account name
// resolved via lookup; an unmatched account id falls back to the
// placeholder label.
func RenderEnvelopeList(envelopes []backend.EnvelopeBalance, accountName func(int64) string) error {
	if len(envelopes) == 0 {
		pterm.Warning.Println("No envelopes found")
		return nil
	}

	tableData := pterm.TableData{
		{"ID", "Name", "Account", "Type", "Available Balance"},
	}

	for _, env := range envelopes {
		balance := utils.FormatFromCents(env.AvailableBalance)
		if env.AvailableBalance < 0 {
			balance = pterm.Red(balance)
		}
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", env.EnvelopeID),
			env.EnvelopeName,
			accountName(env.AccountID),
			env.EnvelopeType,
			balance,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d envelopes\n", len(envelopes))
	return nil
}
