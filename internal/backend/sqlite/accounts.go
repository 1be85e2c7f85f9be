package sqlite

import (
	"context"
	"fmt"

	"github.com/calebasbridge/personal-finance-app-sub001/internal/backend"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/constants"
)

// AccountBalances returns every account with its computed available
// balance. Transactions that have not posted are excluded from the sum.
func (s *Store) AccountBalances(ctx context.Context) ([]backend.AccountBalance, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT a.id, a.name, a.type,
		       a.initial_balance + COALESCE(SUM(
		           CASE WHEN t.status != ? THEN t.amount ELSE 0 END
		       ), 0) AS available_balance
		FROM accounts a
		LEFT JOIN transactions t ON t.account_id = a.id
		GROUP BY a.id
		ORDER BY a.name;
	`, constants.StatusNotPosted)
	if err != nil {
		return nil, fmt.Errorf("failed to query account balances: %w", err)
	}
	defer rows.Close()

	var balances []backend.AccountBalance
	for rows.Next() {
		var b backend.AccountBalance
		if err := rows.Scan(&b.AccountID, &b.AccountName, &b.AccountType, &b.AvailableBalance); err != nil {
			return nil, fmt.Errorf("failed to scan account balance: %w", err)
		}
		balances = append(balances, b)
	}
	return balances, rows.Err()
}

func (s *Store) CreateAccount(ctx context.Context, name, accType string, initialBalance int64) (int64, error) {
	var newID int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO accounts (name, type, initial_balance)
		VALUES (?, ?, ?)
		RETURNING id;
	`, name, accType, initialBalance).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("failed to create account: %w", err)
	}
	return newID, nil
}
