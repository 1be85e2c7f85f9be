package constants

const (
	MaxNameLen   = 100
	CentsPerUnit = 100
)

// Account types
const (
	AccountTypeChecking   = "checking"
	AccountTypeSavings    = "savings"
	AccountTypeCash       = "cash"
	AccountTypeCreditCard = "credit_card"
)

var AccountTypes = []string{
	AccountTypeChecking,
	AccountTypeSavings,
	AccountTypeCash,
	AccountTypeCreditCard,
}

// UnknownLabel is the display fallback when an account or envelope id
// cannot be resolved against the loaded snapshot.
const UnknownLabel = "Unknown"
