package controller

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebasbridge/personal-finance-app-sub001/internal/backend"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/constants"
)

// fakeAPI is an in-memory stand-in for the backend contract.
type fakeAPI struct {
	accounts  []backend.AccountBalance
	envelopes []backend.EnvelopeBalance

	page    backend.TransactionPage
	pageErr error

	created         *backend.Transaction
	createErr       error
	createCalls     int
	lastCreateDraft backend.TransactionDraft

	updateResult    *backend.MutationResult
	updateErr       error
	updateCalls     int
	lastUpdateID    int64
	lastUpdateDraft backend.TransactionDraft

	deleteResult *backend.MutationResult
	deleteErr    error

	hasAllocations    bool
	hasAllocationsErr error
	isSplit           bool
	isSplitErr        error

	balanceCalls int
	listCalls    int
}

func (f *fakeAPI) AccountBalances(ctx context.Context) ([]backend.AccountBalance, error) {
	f.balanceCalls++
	return f.accounts, nil
}

func (f *fakeAPI) EnvelopeBalances(ctx context.Context) ([]backend.EnvelopeBalance, error) {
	return f.envelopes, nil
}

func (f *fakeAPI) TransactionsWithFilters(ctx context.Context, filter backend.TransactionFilter) (*backend.TransactionPage, error) {
	f.listCalls++
	if f.pageErr != nil {
		return nil, f.pageErr
	}
	page := f.page
	return &page, nil
}

func (f *fakeAPI) TransactionByID(ctx context.Context, id int64) (*backend.Transaction, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAPI) CreateTransaction(ctx context.Context, draft backend.TransactionDraft) (*backend.Transaction, error) {
	f.createCalls++
	f.lastCreateDraft = draft
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

func (f *fakeAPI) UpdateTransactionSafe(ctx context.Context, id int64, draft backend.TransactionDraft) (*backend.MutationResult, error) {
	f.updateCalls++
	f.lastUpdateID = id
	f.lastUpdateDraft = draft
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateResult, nil
}

func (f *fakeAPI) DeleteTransactionSafe(ctx context.Context, id int64) (*backend.MutationResult, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return f.deleteResult, nil
}

func (f *fakeAPI) HasPaymentAllocations(ctx context.Context, id int64) (bool, error) {
	return f.hasAllocations, f.hasAllocationsErr
}

func (f *fakeAPI) IsSplitTransaction(ctx context.Context, id int64) (bool, error) {
	return f.isSplit, f.isSplitErr
}

func (f *fakeAPI) CreateAccount(ctx context.Context, name, accType string, initialBalance int64) (int64, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeAPI) CreateEnvelope(ctx context.Context, name string, accountID int64, envType string) (int64, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeAPI) Close() error { return nil }

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newTestController wires a controller against a snapshot with three
// accounts: #1 checking (two envelopes), #2 credit card (one envelope),
// #3 savings (one envelope), #4 cash (no envelopes).
func newTestController(t *testing.T) (*Controller, *fakeAPI) {
	t.Helper()

	api := &fakeAPI{
		accounts: []backend.AccountBalance{
			{AccountID: 1, AccountName: "Checking", AccountType: constants.AccountTypeChecking, AvailableBalance: 100000},
			{AccountID: 2, AccountName: "Visa", AccountType: constants.AccountTypeCreditCard, AvailableBalance: -25000},
			{AccountID: 3, AccountName: "Savings", AccountType: constants.AccountTypeSavings, AvailableBalance: 500000},
			{AccountID: 4, AccountName: "Wallet", AccountType: constants.AccountTypeCash},
		},
		envelopes: []backend.EnvelopeBalance{
			{EnvelopeID: 5, EnvelopeName: "Groceries", AccountID: 1, EnvelopeType: "regular"},
			{EnvelopeID: 6, EnvelopeName: "Rent", AccountID: 1, EnvelopeType: "regular"},
			{EnvelopeID: 9, EnvelopeName: "Visa Charges", AccountID: 2, EnvelopeType: "regular"},
			{EnvelopeID: 7, EnvelopeName: "Emergency", AccountID: 3, EnvelopeType: "regular"},
		},
	}

	c := New(api, testLogger())
	require.NoError(t, c.RefreshBalances(context.Background()))
	return c, api
}

func TestStatusOptionsByAccountType(t *testing.T) {
	c, _ := newTestController(t)
	c.EnterCreate()

	assert.Empty(t, c.StatusOptions(), "no account selected offers no statuses")

	c.SetAccount(2)
	assert.Equal(t, []string{constants.StatusUnpaid, constants.StatusPaid}, c.StatusOptions())

	c.SetAccount(1)
	assert.Equal(t,
		[]string{constants.StatusNotPosted, constants.StatusPending, constants.StatusCleared},
		c.StatusOptions())
}

func TestCreateModeEnvelopeAutoSelect(t *testing.T) {
	c, _ := newTestController(t)
	c.EnterCreate()

	c.SetAccount(3)
	assert.Equal(t, int64(7), c.Draft().EnvelopeID, "a single match auto-selects")

	c.SetAccount(1)
	assert.Zero(t, c.Draft().EnvelopeID, "two matches force an explicit choice")
	assert.Len(t, c.EnvelopeOptions(), 2)

	c.SetAccount(4)
	assert.Zero(t, c.Draft().EnvelopeID, "zero matches clear the selection")
	assert.Empty(t, c.EnvelopeOptions())
}

func TestCreateModeStatusDefaults(t *testing.T) {
	c, _ := newTestController(t)
	c.EnterCreate()

	assert.Equal(t, constants.StatusPending, c.Draft().Status)
	assert.Equal(t, constants.TypeDebit, c.Draft().Type)
	assert.NotEmpty(t, c.Draft().Date)

	c.SetAccount(2)
	assert.Equal(t, constants.StatusUnpaid, c.Draft().Status)

	c.SetAccount(1)
	assert.Equal(t, constants.StatusPending, c.Draft().Status)
}

func TestEnterEditIsAtomicAndPreservesFields(t *testing.T) {
	c, _ := newTestController(t)

	tx := backend.Transaction{
		ID: 42, AccountID: 2, EnvelopeID: 9, Amount: -4250,
		Date: "2025-01-01", Description: "Coffee", Status: constants.StatusPaid,
		Type: constants.TypePayment, ReferenceNumber: "REF-1",
	}
	c.EnterEdit(tx)

	assert.Equal(t, ModeEdit, c.Mode())
	assert.Equal(t, int64(42), c.EditingID())

	draft := c.Draft()
	assert.Equal(t, constants.StatusPaid, draft.Status, "loaded status is not defaulted")
	assert.Equal(t, constants.TypePayment, draft.Type, "loaded type is not defaulted")
	assert.Equal(t, "REF-1", draft.ReferenceNumber)
}

func TestEditModeAccountChangeLeavesStatusAndEnvelope(t *testing.T) {
	c, _ := newTestController(t)

	c.EnterEdit(backend.Transaction{
		ID: 42, AccountID: 2, EnvelopeID: 9, Amount: -4250,
		Date: "2025-01-01", Description: "Coffee", Status: constants.StatusPaid,
		Type: constants.TypePayment,
	})

	c.SetAccount(1)

	draft := c.Draft()
	assert.Equal(t, constants.StatusPaid, draft.Status, "edit mode never resets status")
	assert.Equal(t, int64(9), draft.EnvelopeID, "edit mode never overwrites the envelope")
	assert.Len(t, c.EnvelopeOptions(), 2, "only the options change")
	assert.False(t, c.EnvelopeInOptions(), "stale selection is flagged, not fixed")
}

func TestEnterCreateClearsStaleEditingState(t *testing.T) {
	c, _ := newTestController(t)

	c.EnterEdit(backend.Transaction{ID: 42, AccountID: 1, EnvelopeID: 5})
	c.EnterCreate()

	assert.Equal(t, ModeCreate, c.Mode())
	assert.Zero(t, c.EditingID())
	assert.Zero(t, c.Draft().AccountID)
}

func TestFilterChangesResetPagination(t *testing.T) {
	c, api := newTestController(t)
	api.page = backend.TransactionPage{TotalCount: 120}
	require.NoError(t, c.LoadTransactions(context.Background()))

	setters := []struct {
		name  string
		apply func()
	}{
		{"account", func() { c.SetFilterAccount(1) }},
		{"date range", func() { c.SetFilterDateRange("2025-01-01", "2025-01-31") }},
		{"status", func() { c.SetFilterStatus(constants.StatusPending) }},
		{"search", func() { c.SetFilterSearch("coffee") }},
	}

	for _, s := range setters {
		require.NoError(t, c.SetPage(3))
		s.apply()
		assert.Equal(t, 1, c.Page(), "%s filter resets page", s.name)
		assert.Zero(t, c.Filter().Offset, "%s filter resets offset", s.name)
	}
}

func TestPaginationBounds(t *testing.T) {
	c, api := newTestController(t)
	api.page = backend.TransactionPage{TotalCount: 120}
	require.NoError(t, c.LoadTransactions(context.Background()))

	assert.Equal(t, 3, c.LastPage())
	assert.False(t, c.CanPrevPage(), "previous disabled at page one")
	assert.True(t, c.CanNextPage())

	assert.Error(t, c.SetPage(4), "navigating past the last page is disallowed")
	assert.Error(t, c.SetPage(0))

	require.NoError(t, c.SetPage(3))
	assert.Equal(t, 100, c.Filter().Offset)
	assert.False(t, c.CanNextPage(), "next disabled at the last page")
	assert.Error(t, c.NextPage())
}

func TestValidationPriorityOrder(t *testing.T) {
	c, _ := newTestController(t)
	c.EnterCreate()

	assert.ErrorIs(t, c.ValidateDraft(), ErrNoAccount)

	c.SetAccount(1)
	assert.ErrorIs(t, c.ValidateDraft(), ErrNoEnvelope)

	c.SetEnvelope(5)
	assert.ErrorIs(t, c.ValidateDraft(), ErrZeroAmount)

	c.SetAmount(4250)
	assert.ErrorIs(t, c.ValidateDraft(), ErrEmptyDescription)

	c.SetDescription("   ")
	assert.ErrorIs(t, c.ValidateDraft(), ErrEmptyDescription, "whitespace-only is empty")

	c.SetDescription("Coffee")
	c.SetDate("")
	assert.ErrorIs(t, c.ValidateDraft(), ErrMissingDate)

	c.SetDate("2025-01-01")
	assert.NoError(t, c.ValidateDraft())
}

func TestValidationFailureNeverReachesBackend(t *testing.T) {
	c, api := newTestController(t)
	c.EnterCreate()

	_, err := c.SubmitCreate(context.Background())
	assert.ErrorIs(t, err, ErrNoAccount)
	assert.Zero(t, api.createCalls)
}

func TestSubmitCreateNormalizesReferenceAndResetsDraft(t *testing.T) {
	c, api := newTestController(t)
	api.created = &backend.Transaction{ID: 77}

	c.EnterCreate()
	c.SetAccount(1)
	c.SetEnvelope(5)
	c.SetAmount(4250)
	c.SetDescription("Coffee")
	c.SetDate("2025-01-01")
	c.SetStatus(constants.StatusPending)
	c.SetReferenceNumber("   ")

	created, err := c.SubmitCreate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(77), created.ID)

	assert.Equal(t, "", api.lastCreateDraft.ReferenceNumber, "blank reference goes out explicitly empty")
	assert.Equal(t, int64(4250), api.lastCreateDraft.Amount)

	draft := c.Draft()
	assert.Zero(t, draft.AccountID, "draft resets to defaults on success")
	assert.Zero(t, draft.Amount)
	assert.Equal(t, constants.StatusPending, draft.Status)
	assert.Equal(t, constants.TypeDebit, draft.Type)
	assert.Equal(t, ModeCreate, c.Mode(), "create success stays in create mode")
}

func TestSubmitCreateTransportFailureKeepsDraft(t *testing.T) {
	c, api := newTestController(t)
	api.createErr = errors.New("connection refused")

	c.EnterCreate()
	c.SetAccount(1)
	c.SetEnvelope(5)
	c.SetAmount(4250)
	c.SetDescription("Coffee")
	c.SetDate("2025-01-01")

	_, err := c.SubmitCreate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")

	var opErr *backend.OperationError
	assert.False(t, errors.As(err, &opErr), "transport failures are not structured failures")

	assert.Equal(t, int64(4250), c.Draft().Amount, "draft stays intact for correction")
}

func TestSubmitUpdateRequiresEditingID(t *testing.T) {
	c, api := newTestController(t)

	_, err := c.SubmitUpdate(context.Background())
	assert.Error(t, err)
	assert.Zero(t, api.updateCalls)
}

func TestSubmitUpdateSuccessReturnsToList(t *testing.T) {
	c, api := newTestController(t)
	api.updateResult = &backend.MutationResult{
		Success:  true,
		Warnings: []string{"allocations may be out of sync"},
	}

	c.EnterEdit(backend.Transaction{
		ID: 42, AccountID: 1, EnvelopeID: 5, Amount: 4250,
		Date: "2025-01-01", Description: "Coffee", Status: constants.StatusPending,
		Type: constants.TypeDebit,
	})

	listCallsBefore := api.listCalls
	balanceCallsBefore := api.balanceCalls

	warnings, err := c.SubmitUpdate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"allocations may be out of sync"}, warnings)

	assert.Equal(t, ModeList, c.Mode())
	assert.Zero(t, c.EditingID())
	assert.Equal(t, int64(42), api.lastUpdateID)
	assert.Greater(t, api.balanceCalls, balanceCallsBefore, "balances refreshed after update")
	assert.Greater(t, api.listCalls, listCallsBefore, "list refreshed after update")
}

func TestSubmitUpdateStructuredFailureStaysInEdit(t *testing.T) {
	c, api := newTestController(t)
	api.updateResult = &backend.MutationResult{Success: false, Error: "transaction #42 not found"}

	c.EnterEdit(backend.Transaction{
		ID: 42, AccountID: 1, EnvelopeID: 5, Amount: 4250,
		Date: "2025-01-01", Description: "Coffee", Status: constants.StatusPending,
	})

	_, err := c.SubmitUpdate(context.Background())
	require.Error(t, err)

	var opErr *backend.OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "transaction #42 not found", opErr.Message)

	assert.Equal(t, ModeEdit, c.Mode(), "structured failure leaves edit mode")
	assert.Equal(t, int64(42), c.EditingID())
	assert.Equal(t, int64(4250), c.Draft().Amount, "draft intact")
}

func TestDeleteStructuredFailureKeepsMode(t *testing.T) {
	c, api := newTestController(t)
	api.deleteResult = &backend.MutationResult{Success: false, Error: "transaction #9 not found"}

	_, err := c.Delete(context.Background(), 9)
	require.Error(t, err)

	var opErr *backend.OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, ModeList, c.Mode(), "delete never changes view mode")
}

func TestDeleteSuccessRefreshes(t *testing.T) {
	c, api := newTestController(t)
	api.deleteResult = &backend.MutationResult{Success: true}

	balanceCallsBefore := api.balanceCalls
	warnings, err := c.Delete(context.Background(), 9)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Greater(t, api.balanceCalls, balanceCallsBefore)
}

func TestEditAdvisories(t *testing.T) {
	c, api := newTestController(t)

	api.hasAllocations = true
	api.isSplit = true
	advisories := c.EditAdvisories(context.Background(), 42)
	assert.Len(t, advisories, 2)

	api.hasAllocationsErr = errors.New("lookup failed")
	api.isSplitErr = errors.New("lookup failed")
	advisories = c.EditAdvisories(context.Background(), 42)
	assert.Empty(t, advisories, "failed lookups degrade gracefully")
}

func TestRowEnrichmentFallsBackToPlaceholder(t *testing.T) {
	c, api := newTestController(t)
	api.page = backend.TransactionPage{
		Transactions: []backend.Transaction{
			{ID: 1, AccountID: 1, EnvelopeID: 5},
			{ID: 2, AccountID: 999, EnvelopeID: 888},
		},
		TotalCount: 2,
	}

	require.NoError(t, c.LoadTransactions(context.Background()))

	rows := c.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "Checking", rows[0].AccountName)
	assert.Equal(t, "Groceries", rows[0].EnvelopeName)
	assert.Equal(t, constants.UnknownLabel, rows[1].AccountName)
	assert.Equal(t, constants.UnknownLabel, rows[1].EnvelopeName)
}

func TestCancelDiscardsDraft(t *testing.T) {
	c, _ := newTestController(t)

	c.EnterEdit(backend.Transaction{ID: 42, AccountID: 1, EnvelopeID: 5, Amount: 100})
	c.Cancel()

	assert.Equal(t, ModeList, c.Mode())
	assert.Zero(t, c.EditingID())
	assert.Zero(t, c.Draft().Amount)
}
