package prompts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/calebasbridge/personal-finance-app-sub001/internal/backend"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/constants"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/utils"
)

// PromptAccountSelection prompts for an account, showing each account's
// type and available balance.
func PromptAccountSelection(accounts []backend.AccountBalance, message string, defaultID int64) (int64, error) {
	if len(accounts) == 0 {
		return 0, fmt.Errorf("no accounts available")
	}

	selected := defaultID
	if selected == 0 {
		selected = accounts[0].AccountID
	}

	var opts []huh.Option[int64]
	for _, acc := range accounts {
		display := fmt.Sprintf("%s [%s] (Available: %s)",
			acc.AccountName, acc.AccountType, utils.FormatFromCents(acc.AvailableBalance))
		opts = append(opts, huh.NewOption(display, acc.AccountID))
	}

	err := huh.NewSelect[int64]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Height(12).
		Run()

	return selected, err
}

// PromptEnvelopeSelection prompts for an envelope out of the filtered
// option set for the chosen account.
func PromptEnvelopeSelection(envelopes []backend.EnvelopeBalance, message string, defaultID int64) (int64, error) {
	if len(envelopes) == 0 {
		return 0, fmt.Errorf("no envelopes available for this account")
	}

	selected := defaultID
	if selected == 0 {
		selected = envelopes[0].EnvelopeID
	}

	var opts []huh.Option[int64]
	for _, env := range envelopes {
		display := fmt.Sprintf("%s (Available: %s)",
			env.EnvelopeName, utils.FormatFromCents(env.AvailableBalance))
		opts = append(opts, huh.NewOption(display, env.EnvelopeID))
	}

	err := huh.NewSelect[int64]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Height(12).
		Run()

	return selected, err
}

// PromptAmount prompts for a signed decimal amount and returns cents.
func PromptAmount(message string, defaultCents int64) (int64, error) {
	defaultStr := ""
	if defaultCents != 0 {
		defaultStr = utils.FormatFromCents(defaultCents)
	}

	amountStr, err := PromptInput(message, defaultStr, func(s string) error {
		if s == "" {
			return nil
		}
		_, err := utils.ParseToCents(s)
		return err
	})
	if err != nil {
		return 0, err
	}

	if strings.TrimSpace(amountStr) == "" {
		return defaultCents, nil
	}
	return utils.ParseToCents(amountStr)
}

// PromptStatus prompts for a transaction status out of the options
// derived from the account type.
func PromptStatus(options []string, defaultStatus string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("select an account first")
	}
	return PromptSelect("Transaction status:", options, defaultStatus)
}

// PromptTransactionType prompts for the transaction type.
func PromptTransactionType(defaultType string) (string, error) {
	return PromptSelect("Transaction type:", constants.TransactionTypes, defaultType)
}

// PromptReferenceNumber prompts for an optional reference number.
func PromptReferenceNumber(defaultRef string) (string, error) {
	var ref string

	input := huh.NewInput().
		Title("Reference number (optional):").
		Value(&ref)
	if defaultRef != "" {
		input.Placeholder(defaultRef)
	}

	if err := input.Run(); err != nil {
		return "", err
	}

	if ref == "" && defaultRef != "" {
		return defaultRef, nil
	}
	return ref, nil
}
