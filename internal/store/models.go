package store

import "time"

type Outcome string

const (
	OutcomeCommitted Outcome = "committed"
	OutcomeReverted  Outcome = "reverted"
)

func (o Outcome) Valid() bool {
	return o == OutcomeCommitted || o == OutcomeReverted
}

// Confirmation is one journal row: the terminal state of a single confirm.
type Confirmation struct {
	ID            int64
	CorrelationID string
	TransactionID int64
	Payee         string
	Outcome       Outcome
	Error         string
	CreatedAt     time.Time
}

// OutcomeCount is the number of journal rows per outcome.
type OutcomeCount struct {
	Outcome Outcome
	Count   int
}
