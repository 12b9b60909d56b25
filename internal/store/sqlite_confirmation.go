package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	sqlite "github.com/mattn/go-sqlite3"
)

const defaultHistoryLimit = 50

// RecordConfirmation appends one row to the journal. A zero CreatedAt is
// stamped with the current time.
func (s *Store) RecordConfirmation(c *Confirmation) (int64, error) {
	if !c.Outcome.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOutcome, c.Outcome)
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}

	stmt, err := s.db.Prepare(`
        INSERT INTO confirmations (correlation_id, transaction_id, payee, outcome, error, created_at)
        VALUES (?, ?, ?, ?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare confirmation SQL: %w", err)
	}
	defer stmt.Close()

	var id int64
	err = stmt.QueryRow(c.CorrelationID, c.TransactionID, c.Payee, string(c.Outcome), c.Error, c.CreatedAt.UnixMilli()).Scan(&id)
	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite.ErrConstraintUnique {
			return 0, ErrDuplicateCorrelation
		}
		return 0, fmt.Errorf("failed to insert confirmation: %w", err)
	}

	c.ID = id
	return id, nil
}

// ListConfirmations returns the most recent journal rows, newest first.
func (s *Store) ListConfirmations(limit int) ([]*Confirmation, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	rows, err := s.db.Query(`
        SELECT id, correlation_id, transaction_id, payee, outcome, error, created_at
        FROM confirmations
        ORDER BY created_at DESC, id DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query confirmations: %w", err)
	}
	defer rows.Close()

	return scanConfirmations(rows)
}

func (s *Store) GetConfirmationsByTransaction(txID int64) ([]*Confirmation, error) {
	rows, err := s.db.Query(`
        SELECT id, correlation_id, transaction_id, payee, outcome, error, created_at
        FROM confirmations
        WHERE transaction_id = ?
        ORDER BY created_at DESC, id DESC
    `, txID)
	if err != nil {
		return nil, fmt.Errorf("failed to query confirmations for transaction %d: %w", txID, err)
	}
	defer rows.Close()

	confirmations, err := scanConfirmations(rows)
	if err != nil {
		return nil, err
	}
	if len(confirmations) == 0 {
		return nil, ErrRecordNotFound
	}
	return confirmations, nil
}

func (s *Store) CountByOutcome() ([]OutcomeCount, error) {
	rows, err := s.db.Query(`
        SELECT outcome, COUNT(*)
        FROM confirmations
        GROUP BY outcome
        ORDER BY outcome
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to count confirmations: %w", err)
	}
	defer rows.Close()

	var counts []OutcomeCount
	for rows.Next() {
		var oc OutcomeCount
		var outcome string
		if err := rows.Scan(&outcome, &oc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan outcome count: %w", err)
		}
		oc.Outcome = Outcome(outcome)
		counts = append(counts, oc)
	}

	return counts, rows.Err()
}

func scanConfirmations(rows *sql.Rows) ([]*Confirmation, error) {
	var confirmations []*Confirmation
	for rows.Next() {
		c := &Confirmation{}
		var outcome string
		var createdAt int64

		err := rows.Scan(
			&c.ID, &c.CorrelationID, &c.TransactionID,
			&c.Payee, &outcome, &c.Error, &createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan confirmation: %w", err)
		}

		c.Outcome = Outcome(outcome)
		c.CreatedAt = time.UnixMilli(createdAt)
		confirmations = append(confirmations, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating confirmations: %w", err)
	}
	return confirmations, nil
}
