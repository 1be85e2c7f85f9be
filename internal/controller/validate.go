package controller

import (
	"errors"
	"strings"
)

// Validation failures, in checking priority order. Validation stops at
// the first failure and the backend is never contacted.
var (
	ErrNoAccount        = errors.New("no account selected")
	ErrNoEnvelope       = errors.New("no envelope selected")
	ErrZeroAmount       = errors.New("zero amount")
	ErrEmptyDescription = errors.New("empty description")
	ErrMissingDate      = errors.New("missing date")
)

// ValidateDraft checks the form draft before submission. The same rules
// apply to create and update.
func (c *Controller) ValidateDraft() error {
	switch {
	case c.draft.AccountID == 0:
		return ErrNoAccount
	case c.draft.EnvelopeID == 0:
		return ErrNoEnvelope
	case c.draft.Amount == 0:
		return ErrZeroAmount
	case strings.TrimSpace(c.draft.Description) == "":
		return ErrEmptyDescription
	case c.draft.Date == "":
		return ErrMissingDate
	}
	return nil
}
