// Package backend defines the data service contract the transaction
// editor depends on. The editor is a pure consumer of this interface; it
// never computes balances or enforces referential integrity itself.
package backend

import "context"

type API interface {
	// Snapshot reads
	AccountBalances(ctx context.Context) ([]AccountBalance, error)
	EnvelopeBalances(ctx context.Context) ([]EnvelopeBalance, error)

	// Transaction reads
	TransactionsWithFilters(ctx context.Context, filter TransactionFilter) (*TransactionPage, error)
	TransactionByID(ctx context.Context, id int64) (*Transaction, error)

	// Transaction writes
	CreateTransaction(ctx context.Context, draft TransactionDraft) (*Transaction, error)
	UpdateTransactionSafe(ctx context.Context, id int64, draft TransactionDraft) (*MutationResult, error)
	DeleteTransactionSafe(ctx context.Context, id int64) (*MutationResult, error)

	// Advisory lookups for the edit-entry flow
	HasPaymentAllocations(ctx context.Context, id int64) (bool, error)
	IsSplitTransaction(ctx context.Context, id int64) (bool, error)

	// Reference data management
	CreateAccount(ctx context.Context, name, accType string, initialBalance int64) (int64, error)
	CreateEnvelope(ctx context.Context, name string, accountID int64, envType string) (int64, error)

	Close() error
}
