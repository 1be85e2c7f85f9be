package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/calebasbridge/personal-finance-app-sub001/internal/backend"
)

// ErrSubmissionInProgress gates duplicate submissions while a mutating
// call is in flight.
var ErrSubmissionInProgress = errors.New("a submission is already in progress")

// SubmitCreate validates and sends the draft to the backend's create
// operation. On success the draft resets to its defaults and the balance
// snapshot is refreshed; the transaction list is reloaded only if it has
// been loaded in this session. On any failure the draft is left intact
// for correction.
func (c *Controller) SubmitCreate(ctx context.Context) (*backend.Transaction, error) {
	if c.isLoading {
		return nil, ErrSubmissionInProgress
	}
	if err := c.ValidateDraft(); err != nil {
		return nil, err
	}

	c.isLoading = true
	defer func() { c.isLoading = false }()

	draft := c.draft
	// A blank reference number goes out as an explicit empty value.
	draft.ReferenceNumber = strings.TrimSpace(draft.ReferenceNumber)

	created, err := c.api.CreateTransaction(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	c.draft = c.defaultDraft()
	c.envelopeOptions = nil
	c.refreshAfterMutation(ctx, c.listLoaded)

	return created, nil
}

// SubmitUpdate validates and sends the draft to the safe update
// operation. A structured failure surfaces as *backend.OperationError
// and leaves edit mode and the draft intact; success returns to list
// mode, clears editing state, and refreshes balances and the list. The
// returned warnings are non-fatal.
func (c *Controller) SubmitUpdate(ctx context.Context) ([]string, error) {
	if c.editingID == 0 {
		return nil, errors.New("no transaction is being edited")
	}
	if c.isLoading {
		return nil, ErrSubmissionInProgress
	}
	if err := c.ValidateDraft(); err != nil {
		return nil, err
	}

	c.isLoading = true
	defer func() { c.isLoading = false }()

	draft := c.draft
	draft.ReferenceNumber = strings.TrimSpace(draft.ReferenceNumber)

	result, err := c.api.UpdateTransactionSafe(ctx, c.editingID, draft)
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	if !result.Success {
		return nil, &backend.OperationError{Op: "update", Message: result.Error}
	}

	c.returnToList()
	c.refreshAfterMutation(ctx, true)

	return result.Warnings, nil
}

// Delete invokes the safe delete operation. The caller is responsible
// for operator confirmation beforehand. View mode is never changed;
// structured failures surface as *backend.OperationError.
func (c *Controller) Delete(ctx context.Context, id int64) ([]string, error) {
	result, err := c.api.DeleteTransactionSafe(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete transaction: %w", err)
	}
	if !result.Success {
		return nil, &backend.OperationError{Op: "delete", Message: result.Error}
	}

	c.refreshAfterMutation(ctx, true)

	return result.Warnings, nil
}

// refreshAfterMutation reconciles local state with the backend after a
// successful write. The mutation itself already succeeded, so refresh
// failures are logged rather than returned.
func (c *Controller) refreshAfterMutation(ctx context.Context, reloadList bool) {
	if err := c.RefreshBalances(ctx); err != nil {
		c.log.WithError(err).Warn("balance refresh after mutation failed")
	}
	if reloadList {
		if err := c.LoadTransactions(ctx); err != nil {
			c.log.WithError(err).Warn("transaction reload after mutation failed")
		}
	}
}
