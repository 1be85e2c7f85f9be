package transaction

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/calebasbridge/personal-finance-app-sub001/internal/app"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/constants"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/controller"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/ui/prompts"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/ui/views"
)

const (
	browseNextPage    = "Next page"
	browsePrevPage    = "Previous page"
	browseFilter      = "Filter..."
	browseClearFilter = "Clear filters"
	browseNew         = "New transaction"
	browseEdit        = "Edit transaction"
	browseDelete      = "Delete transaction"
	browseRefresh     = "Refresh"
	browseQuit        = "Quit"
)

func NewBrowseCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:     "browse",
		Aliases: []string{"b"},
		Short:   "Browse transactions interactively",
		Long: `Browse transactions page by page with an interactive menu for
filtering, paging, and creating, editing, or deleting entries.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &browseRunner{application: application}
			return runner.Run(cmd.Context())
		},
	}
}

type browseRunner struct {
	application *app.App
}

func (r *browseRunner) Run(ctx context.Context) error {
	ctrl := r.application.Controller

	if err := ctrl.RefreshBalances(ctx); err != nil {
		return err
	}
	if err := ctrl.LoadTransactions(ctx); err != nil {
		return err
	}

	for {
		if err := views.NewTransactionListView().Render(
			ctrl.Rows(), ctrl.Page(), ctrl.LastPage(), ctrl.TotalCount()); err != nil {
			return err
		}

		choice, err := prompts.PromptSelect("Action:", r.menuOptions(ctrl), "")
		if err != nil {
			return err
		}

		switch choice {
		case browseNextPage:
			if err := ctrl.NextPage(); err != nil {
				pterm.Warning.Println(err)
				continue
			}
			if err := ctrl.LoadTransactions(ctx); err != nil {
				return err
			}

		case browsePrevPage:
			if err := ctrl.PrevPage(); err != nil {
				pterm.Warning.Println(err)
				continue
			}
			if err := ctrl.LoadTransactions(ctx); err != nil {
				return err
			}

		case browseFilter:
			if err := r.applyFilter(ctx, ctrl); err != nil {
				return err
			}

		case browseClearFilter:
			ctrl.ClearFilters()
			if err := ctrl.LoadTransactions(ctx); err != nil {
				return err
			}

		case browseNew:
			if err := runCreateFlow(ctx, r.application); err != nil {
				return err
			}
			// Creating leaves the form open for another entry. Browsing
			// continues with the list instead.
			ctrl.Cancel()
			if err := ctrl.LoadTransactions(ctx); err != nil {
				return err
			}

		case browseEdit:
			txID, ok, err := r.promptTransactionID("Transaction ID to edit:")
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if err := runEditFlow(ctx, r.application, txID); err != nil {
				return err
			}
			if err := ctrl.LoadTransactions(ctx); err != nil {
				return err
			}

		case browseDelete:
			txID, ok, err := r.promptTransactionID("Transaction ID to delete:")
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if err := r.deleteFromBrowse(ctx, txID); err != nil {
				return err
			}
			if err := ctrl.LoadTransactions(ctx); err != nil {
				return err
			}

		case browseRefresh:
			if err := ctrl.RefreshBalances(ctx); err != nil {
				return err
			}
			if err := ctrl.LoadTransactions(ctx); err != nil {
				return err
			}

		case browseQuit:
			return nil
		}
	}
}

func (r *browseRunner) menuOptions(ctrl *controller.Controller) []string {
	options := []string{}
	if ctrl.CanNextPage() {
		options = append(options, browseNextPage)
	}
	if ctrl.CanPrevPage() {
		options = append(options, browsePrevPage)
	}
	options = append(options,
		browseFilter,
		browseClearFilter,
		browseNew,
		browseEdit,
		browseDelete,
		browseRefresh,
		browseQuit,
	)
	return options
}

func (r *browseRunner) applyFilter(ctx context.Context, ctrl *controller.Controller) error {
	choice, err := prompts.PromptSelect("Filter by:", []string{
		"Account",
		"Status",
		"Date range",
		"Search",
		"Back",
	}, "")
	if err != nil {
		return err
	}

	switch choice {
	case "Account":
		accountID, err := prompts.PromptAccountSelection(ctrl.Accounts(), "Account:", ctrl.Filter().AccountID)
		if err != nil {
			return err
		}
		ctrl.SetFilterAccount(accountID)

	case "Status":
		status, err := prompts.PromptSelect("Status:", []string{
			constants.StatusNotPosted,
			constants.StatusPending,
			constants.StatusCleared,
			constants.StatusUnpaid,
			constants.StatusPaid,
		}, ctrl.Filter().Status)
		if err != nil {
			return err
		}
		ctrl.SetFilterStatus(status)

	case "Date range":
		from, err := prompts.PromptDate("From (YYYY-MM-DD):", ctrl.Filter().StartDate)
		if err != nil {
			return err
		}
		to, err := prompts.PromptDate("To (YYYY-MM-DD):", ctrl.Filter().EndDate)
		if err != nil {
			return err
		}
		ctrl.SetFilterDateRange(from, to)

	case "Search":
		search, err := prompts.PromptInput("Search:", ctrl.Filter().Search, nil)
		if err != nil {
			return err
		}
		ctrl.SetFilterSearch(strings.TrimSpace(search))

	case "Back":
		return nil
	}

	return ctrl.LoadTransactions(ctx)
}

func (r *browseRunner) promptTransactionID(message string) (int64, bool, error) {
	raw, err := prompts.PromptInput(message, "", func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		if _, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err != nil {
			return fmt.Errorf("enter a numeric transaction ID")
		}
		return nil
	})
	if err != nil {
		return 0, false, err
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false, nil
	}

	txID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return txID, true, nil
}

func (r *browseRunner) deleteFromBrowse(ctx context.Context, txID int64) error {
	tx, err := r.application.API.TransactionByID(ctx, txID)
	if err != nil {
		pterm.Error.Printf("Failed to get transaction: %v\n", err)
		return nil
	}

	ctrl := r.application.Controller
	if err := views.RenderTransactionDetail(tx, ctrl.AccountName(tx.AccountID), ctrl.EnvelopeName(tx.EnvelopeID)); err != nil {
		return err
	}

	confirm, err := prompts.PromptConfirm("Delete this transaction?", false)
	if err != nil {
		return err
	}
	if !confirm {
		pterm.Info.Println("Deletion cancelled")
		return nil
	}

	warnings, err := ctrl.Delete(ctx, txID)
	if err != nil {
		pterm.Error.Printf("Failed to delete transaction: %v\n", err)
		return nil
	}

	pterm.Success.Printf("Transaction #%d deleted\n", txID)
	for _, warning := range warnings {
		pterm.Warning.Println(warning)
	}
	return nil
}
