package constants

// Transaction statuses. Credit card accounts use the unpaid/paid pair,
// every other account type uses not_posted/pending/cleared.
const (
	StatusNotPosted = "not_posted"
	StatusPending   = "pending"
	StatusCleared   = "cleared"
	StatusUnpaid    = "unpaid"
	StatusPaid      = "paid"
)

// Transaction types
const (
	TypeDebit    = "debit"
	TypeCredit   = "credit"
	TypeTransfer = "transfer"
	TypePayment  = "payment"
)

var TransactionTypes = []string{
	TypeDebit,
	TypeCredit,
	TypeTransfer,
	TypePayment,
}

const (
	// DateFormat is the wire and display layout for transaction dates.
	DateFormat = "2006-01-02"

	// PageSize is the fixed transaction list page size.
	PageSize = 50
)
