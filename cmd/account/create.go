package account

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/calebasbridge/personal-finance-app-sub001/internal/app"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/constants"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/ui/prompts"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/utils"
)

type createRunner struct {
	application *app.App
}

func NewCreateCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a new account",
		Long:  `Create a new account interactively: name, type, and starting balance.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &createRunner{application: application}
			return runner.Run(cmd)
		},
	}
}

func (r *createRunner) Run(cmd *cobra.Command) error {
	name, err := prompts.PromptInput("Account name:", "", func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("name is required")
		}
		if len(s) > constants.MaxNameLen {
			return fmt.Errorf("name must be at most %d characters", constants.MaxNameLen)
		}
		return nil
	})
	if err != nil {
		return err
	}

	accType, err := prompts.PromptSelect("Account type:", constants.AccountTypes, constants.AccountTypeChecking)
	if err != nil {
		return err
	}

	initialBalance, err := prompts.PromptAmount("Starting balance (press Enter for 0):", 0)
	if err != nil {
		return err
	}

	id, err := r.application.API.CreateAccount(cmd.Context(), strings.TrimSpace(name), accType, initialBalance)
	if err != nil {
		pterm.Error.Printf("Failed to create account: %v\n", err)
		return nil
	}

	pterm.Success.Printf("Account #%d created: %s (%s, starting balance %s)\n",
		id, name, accType, utils.FormatFromCents(initialBalance))
	return nil
}
