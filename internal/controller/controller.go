// Package controller implements the transaction editor/list controller:
// a filtered, paginated view of transactions, a single create-or-edit
// form draft, and the orchestration of backend calls around both. All
// data access, validation of referential integrity, and balance
// computation stay behind the backend.API boundary.
package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/calebasbridge/personal-finance-app-sub001/internal/backend"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/constants"
)

type Mode int

const (
	ModeList Mode = iota
	ModeCreate
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeEdit:
		return "edit"
	default:
		return "list"
	}
}

// Row is a transaction enriched with display names resolved from the
// loaded account/envelope snapshots.
type Row struct {
	backend.Transaction
	AccountName  string
	EnvelopeName string
}

type Controller struct {
	api backend.API
	log *logrus.Logger

	mode      Mode
	editingID int64

	accounts  []backend.AccountBalance
	envelopes []backend.EnvelopeBalance

	draft           backend.TransactionDraft
	envelopeOptions []backend.EnvelopeBalance

	filter     backend.TransactionFilter
	page       int
	totalCount int
	rows       []Row
	listLoaded bool

	isLoading             bool
	isLoadingTransactions bool
}

func New(api backend.API, log *logrus.Logger) *Controller {
	return &Controller{
		api:  api,
		log:  log,
		mode: ModeList,
		page: 1,
		filter: backend.TransactionFilter{
			Limit: constants.PageSize,
		},
	}
}

func (c *Controller) Mode() Mode                       { return c.mode }
func (c *Controller) EditingID() int64                 { return c.editingID }
func (c *Controller) Draft() backend.TransactionDraft  { return c.draft }
func (c *Controller) Filter() backend.TransactionFilter { return c.filter }
func (c *Controller) Page() int                        { return c.page }
func (c *Controller) TotalCount() int                  { return c.totalCount }
func (c *Controller) Rows() []Row                      { return c.rows }

func (c *Controller) Accounts() []backend.AccountBalance   { return c.accounts }
func (c *Controller) Envelopes() []backend.EnvelopeBalance { return c.envelopes }

// EnvelopeOptions is the set of selectable envelopes for the draft's
// current account.
func (c *Controller) EnvelopeOptions() []backend.EnvelopeBalance { return c.envelopeOptions }

// RefreshBalances reloads the account and envelope snapshots. Balances
// are derived server-side, so this runs at startup and after every
// mutating operation.
func (c *Controller) RefreshBalances(ctx context.Context) error {
	accounts, err := c.api.AccountBalances(ctx)
	if err != nil {
		return fmt.Errorf("failed to load account balances: %w", err)
	}

	envelopes, err := c.api.EnvelopeBalances(ctx)
	if err != nil {
		return fmt.Errorf("failed to load envelope balances: %w", err)
	}

	c.accounts = accounts
	c.envelopes = envelopes
	return nil
}

// LoadTransactions fetches the current page of the filtered list and
// enriches each row with display names from the loaded snapshots.
func (c *Controller) LoadTransactions(ctx context.Context) error {
	if c.isLoadingTransactions {
		return nil
	}
	c.isLoadingTransactions = true
	defer func() { c.isLoadingTransactions = false }()

	page, err := c.api.TransactionsWithFilters(ctx, c.filter)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}

	rows := make([]Row, 0, len(page.Transactions))
	for _, tx := range page.Transactions {
		rows = append(rows, Row{
			Transaction:  tx,
			AccountName:  c.AccountName(tx.AccountID),
			EnvelopeName: c.EnvelopeName(tx.EnvelopeID),
		})
	}

	c.rows = rows
	c.totalCount = page.TotalCount
	c.listLoaded = true
	return nil
}

// AccountName resolves an account id against the loaded snapshot,
// falling back to a fixed placeholder rather than failing the render.
func (c *Controller) AccountName(id int64) string {
	for _, a := range c.accounts {
		if a.AccountID == id {
			return a.AccountName
		}
	}
	return constants.UnknownLabel
}

func (c *Controller) EnvelopeName(id int64) string {
	for _, e := range c.envelopes {
		if e.EnvelopeID == id {
			return e.EnvelopeName
		}
	}
	return constants.UnknownLabel
}

func (c *Controller) AccountByID(id int64) (backend.AccountBalance, bool) {
	for _, a := range c.accounts {
		if a.AccountID == id {
			return a, true
		}
	}
	return backend.AccountBalance{}, false
}

// EnterCreate switches to create mode in one step: stale editing state is
// cleared and the draft is reset to its defaults.
func (c *Controller) EnterCreate() {
	c.mode = ModeCreate
	c.editingID = 0
	c.draft = c.defaultDraft()
	c.envelopeOptions = nil
}

// EditAdvisories looks up the two advisory conditions for a transaction
// about to be edited. The lookups are non-critical: a failure is logged
// and skipped rather than blocking the edit.
func (c *Controller) EditAdvisories(ctx context.Context, id int64) []string {
	var advisories []string

	hasAllocations, err := c.api.HasPaymentAllocations(ctx, id)
	if err != nil {
		c.log.WithError(err).WithField("id", id).Warn("payment allocation lookup failed")
	} else if hasAllocations {
		advisories = append(advisories,
			"This transaction has payment allocations. Editing it may disrupt them.")
	}

	isSplit, err := c.api.IsSplitTransaction(ctx, id)
	if err != nil {
		c.log.WithError(err).WithField("id", id).Warn("split lookup failed")
	} else if isSplit {
		advisories = append(advisories,
			"This transaction is part of a split. Editing it may unbalance the original charge.")
	}

	return advisories
}

// EnterEdit switches to edit mode atomically: mode, editing id, and the
// fully populated draft are set together, so no intermediate state with
// an id but no draft (or the reverse) can be observed. The transaction's
// status and type are carried over verbatim; nothing is defaulted here.
func (c *Controller) EnterEdit(tx backend.Transaction) {
	c.mode = ModeEdit
	c.editingID = tx.ID
	c.draft = backend.TransactionDraft{
		AccountID:       tx.AccountID,
		EnvelopeID:      tx.EnvelopeID,
		Amount:          tx.Amount,
		Date:            tx.Date,
		Description:     tx.Description,
		Status:          tx.Status,
		Type:            tx.Type,
		ReferenceNumber: tx.ReferenceNumber,
	}
	// Only the options are derived; the loaded envelope selection is
	// preserved even if it falls outside the recomputed set.
	c.envelopeOptions = c.filterEnvelopes(tx.AccountID)
}

// Cancel discards the draft and returns to list mode.
func (c *Controller) Cancel() {
	c.returnToList()
}

func (c *Controller) returnToList() {
	c.mode = ModeList
	c.editingID = 0
	c.draft = backend.TransactionDraft{}
	c.envelopeOptions = nil
}

func (c *Controller) defaultDraft() backend.TransactionDraft {
	return backend.TransactionDraft{
		Date:   time.Now().Format(constants.DateFormat),
		Status: constants.StatusPending,
		Type:   constants.TypeDebit,
	}
}
