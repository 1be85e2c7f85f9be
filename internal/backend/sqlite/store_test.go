package sqlite

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebasbridge/personal-finance-app-sub001/internal/backend"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/constants"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	store, err := NewStore(":memory:", log)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func seedAccounts(t *testing.T, s *Store) (checkingID, visaID, groceriesID, chargesID int64) {
	t.Helper()
	ctx := context.Background()

	checkingID, err := s.CreateAccount(ctx, "Checking", constants.AccountTypeChecking, 100000)
	require.NoError(t, err)
	visaID, err = s.CreateAccount(ctx, "Visa", constants.AccountTypeCreditCard, 0)
	require.NoError(t, err)

	groceriesID, err = s.CreateEnvelope(ctx, "Groceries", checkingID, "")
	require.NoError(t, err)
	chargesID, err = s.CreateEnvelope(ctx, "Charges", visaID, "")
	require.NoError(t, err)
	return
}

func draft(accountID, envelopeID, amount int64, date, desc, status string) backend.TransactionDraft {
	return backend.TransactionDraft{
		AccountID:   accountID,
		EnvelopeID:  envelopeID,
		Amount:      amount,
		Date:        date,
		Description: desc,
		Status:      status,
		Type:        constants.TypeDebit,
	}
}

func TestBalancesExcludeNotPosted(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	checkingID, _, groceriesID, _ := seedAccounts(t, s)

	_, err := s.CreateTransaction(ctx, draft(checkingID, groceriesID, -4250, "2025-01-01", "Coffee", constants.StatusCleared))
	require.NoError(t, err)
	_, err = s.CreateTransaction(ctx, draft(checkingID, groceriesID, -10000, "2025-01-02", "Future", constants.StatusNotPosted))
	require.NoError(t, err)

	accounts, err := s.AccountBalances(ctx)
	require.NoError(t, err)

	var checking *backend.AccountBalance
	for i := range accounts {
		if accounts[i].AccountID == checkingID {
			checking = &accounts[i]
		}
	}
	require.NotNil(t, checking)
	assert.Equal(t, int64(100000-4250), checking.AvailableBalance)
	assert.Equal(t, constants.AccountTypeChecking, checking.AccountType)

	envelopes, err := s.EnvelopeBalances(ctx)
	require.NoError(t, err)
	for _, e := range envelopes {
		if e.EnvelopeID == groceriesID {
			assert.Equal(t, int64(-4250), e.AvailableBalance)
			assert.Equal(t, checkingID, e.AccountID)
		}
	}
}

func TestTransactionsWithFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	checkingID, visaID, groceriesID, chargesID := seedAccounts(t, s)

	_, err := s.CreateTransaction(ctx, draft(checkingID, groceriesID, -4250, "2025-01-01", "Coffee shop", constants.StatusPending))
	require.NoError(t, err)
	_, err = s.CreateTransaction(ctx, draft(checkingID, groceriesID, -1200, "2025-02-01", "Bakery", constants.StatusCleared))
	require.NoError(t, err)
	_, err = s.CreateTransaction(ctx, draft(visaID, chargesID, -9900, "2025-02-15", "Online order", constants.StatusUnpaid))
	require.NoError(t, err)

	page, err := s.TransactionsWithFilters(ctx, backend.TransactionFilter{Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalCount)
	require.Len(t, page.Transactions, 3)
	assert.Equal(t, "2025-02-15", page.Transactions[0].Date, "newest first")

	page, err = s.TransactionsWithFilters(ctx, backend.TransactionFilter{AccountID: checkingID, Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalCount)

	page, err = s.TransactionsWithFilters(ctx, backend.TransactionFilter{Status: constants.StatusPending, Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalCount)

	page, err = s.TransactionsWithFilters(ctx, backend.TransactionFilter{
		StartDate: "2025-02-01", EndDate: "2025-02-28", Limit: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalCount)

	page, err = s.TransactionsWithFilters(ctx, backend.TransactionFilter{Search: "coffee", Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalCount)

	page, err = s.TransactionsWithFilters(ctx, backend.TransactionFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalCount, "total count spans all pages")
	assert.Len(t, page.Transactions, 1)
}

func TestUpdateTransactionSafe(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	checkingID, _, groceriesID, _ := seedAccounts(t, s)

	created, err := s.CreateTransaction(ctx, draft(checkingID, groceriesID, -4250, "2025-01-01", "Coffee", constants.StatusPending))
	require.NoError(t, err)

	updated := draft(checkingID, groceriesID, -5000, "2025-01-02", "Coffee beans", constants.StatusCleared)
	result, err := s.UpdateTransactionSafe(ctx, created.ID, updated)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Empty(t, result.Warnings)

	got, err := s.TransactionByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(-5000), got.Amount)
	assert.Equal(t, constants.StatusCleared, got.Status)

	result, err = s.UpdateTransactionSafe(ctx, 9999, updated)
	require.NoError(t, err)
	assert.False(t, result.Success, "missing row is a structured failure, not an error")
	assert.Contains(t, result.Error, "not found")
}

func TestSplitAndAllocationAdvisories(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	checkingID, visaID, groceriesID, chargesID := seedAccounts(t, s)

	parent, err := s.CreateTransaction(ctx, draft(visaID, chargesID, -10000, "2025-01-01", "Split charge", constants.StatusUnpaid))
	require.NoError(t, err)
	child, err := s.CreateTransaction(ctx, draft(visaID, chargesID, -6000, "2025-01-01", "Split part", constants.StatusUnpaid))
	require.NoError(t, err)
	_, err = s.db.ExecContext(ctx,
		"UPDATE transactions SET parent_transaction_id = ? WHERE id = ?;", parent.ID, child.ID)
	require.NoError(t, err)

	payment, err := s.CreateTransaction(ctx, draft(checkingID, groceriesID, -10000, "2025-01-05", "Card payment", constants.StatusCleared))
	require.NoError(t, err)
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO payment_allocations (payment_transaction_id, charge_transaction_id, amount)
		VALUES (?, ?, ?);
	`, payment.ID, parent.ID, 10000)
	require.NoError(t, err)

	isSplit, err := s.IsSplitTransaction(ctx, child.ID)
	require.NoError(t, err)
	assert.True(t, isSplit, "child of a split")

	isSplit, err = s.IsSplitTransaction(ctx, parent.ID)
	require.NoError(t, err)
	assert.True(t, isSplit, "parent of a split")

	isSplit, err = s.IsSplitTransaction(ctx, payment.ID)
	require.NoError(t, err)
	assert.False(t, isSplit)

	hasAllocations, err := s.HasPaymentAllocations(ctx, payment.ID)
	require.NoError(t, err)
	assert.True(t, hasAllocations)

	result, err := s.UpdateTransactionSafe(ctx, child.ID,
		draft(visaID, chargesID, -7000, "2025-01-01", "Split part", constants.StatusUnpaid))
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Len(t, result.Warnings, 1, "split membership warns on update")

	result, err = s.DeleteTransactionSafe(ctx, payment.ID)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.Warnings, "allocation linkage warns on delete")

	hasAllocations, err = s.HasPaymentAllocations(ctx, parent.ID)
	require.NoError(t, err)
	assert.False(t, hasAllocations, "delete removes dependent allocation rows")
}

func TestDeleteTransactionSafeMissingRow(t *testing.T) {
	s := newTestStore(t)

	result, err := s.DeleteTransactionSafe(context.Background(), 12345)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "not found")
}
