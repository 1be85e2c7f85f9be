package backend

// AccountBalance is a read-only snapshot row for one account. The
// available balance is computed by the backend and refreshed after every
// mutating operation.
type AccountBalance struct {
	AccountID        int64
	AccountName      string
	AccountType      string
	AvailableBalance int64
}

// EnvelopeBalance is a read-only snapshot row for one envelope. Every
// envelope belongs to exactly one account.
type EnvelopeBalance struct {
	EnvelopeID       int64
	EnvelopeName     string
	AccountID        int64
	EnvelopeType     string
	AvailableBalance int64
}

// Transaction is a dated monetary movement against one account/envelope
// pair. Amounts are signed cents. Identity is assigned by the backend only.
type Transaction struct {
	ID              int64
	AccountID       int64
	EnvelopeID      int64
	Amount          int64
	Date            string
	Description     string
	Status          string
	Type            string
	ReferenceNumber string
}

// TransactionDraft is the editable field set sent to create and update.
// It carries no identity.
type TransactionDraft struct {
	AccountID       int64
	EnvelopeID      int64
	Amount          int64
	Date            string
	Description     string
	Status          string
	Type            string
	ReferenceNumber string
}

// TransactionFilter selects and pages the transaction list. Zero values
// mean "not set" for every criterion.
type TransactionFilter struct {
	AccountID int64
	StartDate string
	EndDate   string
	Status    string
	Search    string
	Limit     int
	Offset    int
}

// TransactionPage is one page of filtered results plus the total match
// count across all pages.
type TransactionPage struct {
	Transactions []Transaction
	TotalCount   int
}

// MutationResult is the structured outcome of the safe update and delete
// operations. Warnings are non-fatal and accompany a success.
type MutationResult struct {
	Success  bool
	Warnings []string
	Error    string
}
