package controller

import (
	"github.com/calebasbridge/personal-finance-app-sub001/internal/backend"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/constants"
)

// SetAccount changes the draft's account and recomputes the selectable
// envelope set. The auto-selection and status-defaulting side effects
// fire in create mode only; in edit mode the operator-chosen or loaded
// values are never overwritten by this recomputation.
func (c *Controller) SetAccount(accountID int64) {
	c.draft.AccountID = accountID
	c.envelopeOptions = c.filterEnvelopes(accountID)

	if c.mode != ModeCreate {
		return
	}

	if len(c.envelopeOptions) == 1 {
		c.draft.EnvelopeID = c.envelopeOptions[0].EnvelopeID
	} else {
		c.draft.EnvelopeID = 0
	}

	if account, ok := c.AccountByID(accountID); ok {
		c.draft.Status = defaultStatusFor(account.AccountType)
	}
}

func (c *Controller) SetEnvelope(envelopeID int64)  { c.draft.EnvelopeID = envelopeID }
func (c *Controller) SetAmount(cents int64)         { c.draft.Amount = cents }
func (c *Controller) SetDate(date string)           { c.draft.Date = date }
func (c *Controller) SetDescription(desc string)    { c.draft.Description = desc }
func (c *Controller) SetStatus(status string)       { c.draft.Status = status }
func (c *Controller) SetType(txType string)         { c.draft.Type = txType }
func (c *Controller) SetReferenceNumber(ref string) { c.draft.ReferenceNumber = ref }

// StatusOptions derives the offerable statuses from the selected
// account's type. With no account selected there are none.
func (c *Controller) StatusOptions() []string {
	account, ok := c.AccountByID(c.draft.AccountID)
	if !ok {
		return nil
	}
	return StatusOptionsFor(account.AccountType)
}

// StatusOptionsFor returns the closed status set for an account type:
// credit card accounts settle as unpaid/paid, everything else posts as
// not_posted/pending/cleared.
func StatusOptionsFor(accountType string) []string {
	if accountType == constants.AccountTypeCreditCard {
		return []string{constants.StatusUnpaid, constants.StatusPaid}
	}
	return []string{constants.StatusNotPosted, constants.StatusPending, constants.StatusCleared}
}

func defaultStatusFor(accountType string) string {
	if accountType == constants.AccountTypeCreditCard {
		return constants.StatusUnpaid
	}
	return constants.StatusPending
}

func (c *Controller) filterEnvelopes(accountID int64) []backend.EnvelopeBalance {
	if accountID == 0 {
		return nil
	}
	var matched []backend.EnvelopeBalance
	for _, e := range c.envelopes {
		if e.AccountID == accountID {
			matched = append(matched, e)
		}
	}
	return matched
}

// EnvelopeInOptions reports whether the draft's envelope still belongs
// to the recomputed option set. In edit mode a stale selection is
// preserved, not silently fixed; the UI layer uses this to flag it.
func (c *Controller) EnvelopeInOptions() bool {
	for _, e := range c.envelopeOptions {
		if e.EnvelopeID == c.draft.EnvelopeID {
			return true
		}
	}
	return false
}
