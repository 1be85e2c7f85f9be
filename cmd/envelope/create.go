package envelope

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/calebasbridge/personal-finance-app-sub001/internal/app"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/constants"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/ui/prompts"
)

type createRunner struct {
	application *app.App
}

func NewCreateCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a new envelope",
		Long:  `Create a new budget envelope under an existing account.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &createRunner{application: application}
			return runner.Run(cmd)
		},
	}
}

func (r *createRunner) Run(cmd *cobra.Command) error {
	accounts, err := r.application.API.AccountBalances(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}
	if len(accounts) == 0 {
		pterm.Warning.Println("No accounts exist yet. Create an account first.")
		return nil
	}

	accountID, err := prompts.PromptAccountSelection(accounts, "Owning account:", 0)
	if err != nil {
		return err
	}

	name, err := prompts.PromptInput("Envelope name:", "", func(s string) error {
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

	id, err := r.application.API.CreateEnvelope(cmd.Context(), strings.TrimSpace(name), accountID, "")
	if err != nil {
		pterm.Error.Printf("Failed to create envelope: %v\n", err)
		return nil
	}

	pterm.Success.Printf("Envelope #%d created: %s\n", id, name)
	return nil
}
