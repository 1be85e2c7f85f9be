package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/calebasbridge/personal-finance-app-sub001/internal/backend"
)

const transactionColumns = `id, account_id, envelope_id, amount, date, description, status, type, reference_number`

// TransactionsWithFilters returns one page of transactions matching the
// filter, newest first, together with the total match count across all
// pages.
func (s *Store) TransactionsWithFilters(ctx context.Context, filter backend.TransactionFilter) (*backend.TransactionPage, error) {
	var conds []string
	var args []any

	if filter.AccountID != 0 {
		conds = append(conds, "account_id = ?")
		args = append(args, filter.AccountID)
	}
	if filter.StartDate != "" {
		conds = append(conds, "date >= ?")
		args = append(args, filter.StartDate)
	}
	if filter.EndDate != "" {
		conds = append(conds, "date <= ?")
		args = append(args, filter.EndDate)
	}
	if filter.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.Search != "" {
		conds = append(conds, "(description LIKE ? OR reference_number LIKE ?)")
		like := "%" + filter.Search + "%"
		args = append(args, like, like)
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM transactions" + where
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	query := "SELECT " + transactionColumns + " FROM transactions" + where +
		" ORDER BY date DESC, id DESC"

	pageArgs := args
	if filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		pageArgs = append(pageArgs, filter.Limit, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, pageArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []backend.Transaction
	for rows.Next() {
		var t backend.Transaction
		if err := rows.Scan(&t.ID, &t.AccountID, &t.EnvelopeID, &t.Amount, &t.Date,
			&t.Description, &t.Status, &t.Type, &t.ReferenceNumber); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &backend.TransactionPage{Transactions: transactions, TotalCount: total}, nil
}

func (s *Store) TransactionByID(ctx context.Context, id int64) (*backend.Transaction, error) {
	var t backend.Transaction
	err := s.db.QueryRowContext(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE id = ?;", id,
	).Scan(&t.ID, &t.AccountID, &t.EnvelopeID, &t.Amount, &t.Date,
		&t.Description, &t.Status, &t.Type, &t.ReferenceNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transaction #%d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &t, nil
}

func (s *Store) CreateTransaction(ctx context.Context, draft backend.TransactionDraft) (*backend.Transaction, error) {
	var newID int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO transactions (account_id, envelope_id, amount, date, description, status, type, reference_number)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id;
	`, draft.AccountID, draft.EnvelopeID, draft.Amount, draft.Date,
		draft.Description, draft.Status, draft.Type, draft.ReferenceNumber).Scan(&newID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.log.WithField("id", newID).Debug("transaction created")

	return &backend.Transaction{
		ID:              newID,
		AccountID:       draft.AccountID,
		EnvelopeID:      draft.EnvelopeID,
		Amount:          draft.Amount,
		Date:            draft.Date,
		Description:     draft.Description,
		Status:          draft.Status,
		Type:            draft.Type,
		ReferenceNumber: draft.ReferenceNumber,
	}, nil
}

// UpdateTransactionSafe updates a transaction and reports advisory
// warnings when the row participates in payment allocations or a split.
// A missing row is a structured failure, not an error.
func (s *Store) UpdateTransactionSafe(ctx context.Context, id int64, draft backend.TransactionDraft) (*backend.MutationResult, error) {
	warnings, err := s.relationshipWarnings(ctx, id, "updating")
	if err != nil {
		return nil, err
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE transactions
		SET account_id = ?, envelope_id = ?, amount = ?, date = ?,
		    description = ?, status = ?, type = ?, reference_number = ?
		WHERE id = ?;
	`, draft.AccountID, draft.EnvelopeID, draft.Amount, draft.Date,
		draft.Description, draft.Status, draft.Type, draft.ReferenceNumber, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return &backend.MutationResult{
			Success: false,
			Error:   fmt.Sprintf("transaction #%d not found", id),
		}, nil
	}

	return &backend.MutationResult{Success: true, Warnings: warnings}, nil
}

// DeleteTransactionSafe deletes a transaction and its allocation rows in
// one database transaction, reporting the same advisory warnings as
// UpdateTransactionSafe.
func (s *Store) DeleteTransactionSafe(ctx context.Context, id int64) (*backend.MutationResult, error) {
	warnings, err := s.relationshipWarnings(ctx, id, "deleting")
	if err != nil {
		return nil, err
	}

	var affected int64
	err = s.ExecTx(func(tx *Store) error {
		if _, err := tx.db.ExecContext(ctx, `
			DELETE FROM payment_allocations
			WHERE payment_transaction_id = ? OR charge_transaction_id = ?;
		`, id, id); err != nil {
			return fmt.Errorf("failed to delete payment allocations: %w", err)
		}

		res, err := tx.db.ExecContext(ctx, "DELETE FROM transactions WHERE id = ?;", id)
		if err != nil {
			return fmt.Errorf("failed to delete transaction: %w", err)
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return nil, err
	}

	if affected == 0 {
		return &backend.MutationResult{
			Success: false,
			Error:   fmt.Sprintf("transaction #%d not found", id),
		}, nil
	}

	return &backend.MutationResult{Success: true, Warnings: warnings}, nil
}

func (s *Store) HasPaymentAllocations(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM payment_allocations
			WHERE payment_transaction_id = ? OR charge_transaction_id = ?
		);
	`, id, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check payment allocations: %w", err)
	}
	return exists, nil
}

// IsSplitTransaction reports whether the transaction is linked to sibling
// transactions representing a divided original charge, either as parent
// or as child.
func (s *Store) IsSplitTransaction(ctx context.Context, id int64) (bool, error) {
	var isSplit bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM transactions
			WHERE id = ? AND parent_transaction_id IS NOT NULL
		) OR EXISTS (
			SELECT 1 FROM transactions WHERE parent_transaction_id = ?
		);
	`, id, id).Scan(&isSplit)
	if err != nil {
		return false, fmt.Errorf("failed to check split membership: %w", err)
	}
	return isSplit, nil
}

func (s *Store) relationshipWarnings(ctx context.Context, id int64, verb string) ([]string, error) {
	var warnings []string

	hasAllocations, err := s.HasPaymentAllocations(ctx, id)
	if err != nil {
		return nil, err
	}
	if hasAllocations {
		warnings = append(warnings,
			fmt.Sprintf("transaction #%d has payment allocations; %s it may leave them out of sync", id, verb))
	}

	isSplit, err := s.IsSplitTransaction(ctx, id)
	if err != nil {
		return nil, err
	}
	if isSplit {
		warnings = append(warnings,
			fmt.Sprintf("transaction #%d is part of a split; %s it may unbalance the original charge", id, verb))
	}

	return warnings, nil
}
