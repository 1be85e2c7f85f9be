package sqlite

import (
	"context"
	"fmt"

	"github.com/calebasbridge/personal-finance-app-sub001/internal/backend"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/constants"
)

// EnvelopeBalances returns every envelope with its owning account id and
// computed available balance.
func (s *Store) EnvelopeBalances(ctx context.Context) ([]backend.EnvelopeBalance, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT e.id, e.name, e.account_id, e.type,
		       COALESCE(SUM(
		           CASE WHEN t.status != ? THEN t.amount ELSE 0 END
		       ), 0) AS available_balance
		FROM envelopes e
		LEFT JOIN transactions t ON t.envelope_id = e.id
		GROUP BY e.id
		ORDER BY e.name;
	`, constants.StatusNotPosted)
	if err != nil {
		return nil, fmt.Errorf("failed to query envelope balances: %w", err)
	}
	defer rows.Close()

	var balances []backend.EnvelopeBalance
	for rows.Next() {
		var b backend.EnvelopeBalance
		if err := rows.Scan(&b.EnvelopeID, &b.EnvelopeName, &b.AccountID, &b.EnvelopeType, &b.AvailableBalance); err != nil {
			return nil, fmt.Errorf("failed to scan envelope balance: %w", err)
		}
		balances = append(balances, b)
	}
	return balances, rows.Err()
}

func (s *Store) CreateEnvelope(ctx context.Context, name string, accountID int64, envType string) (int64, error) {
	if envType == "" {
		envType = "regular"
	}

	var newID int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO envelopes (name, account_id, type)
		VALUES (?, ?, ?)
		RETURNING id;
	`, name, accountID, envType).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("failed to create envelope: %w", err)
	}
	return newID, nil
}
