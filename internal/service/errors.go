package service

import (
	"errors"
	"fmt"

	"github.com/hance08/lunchbox/internal/month"
	"github.com/hance08/lunchbox/internal/state"
)

// DefaultFailureMessage is reported when a failed update carries no message.
const DefaultFailureMessage = "failed to validate transaction"

var (
	ErrTransactionNotFound = state.ErrTransactionNotFound
	ErrAlreadyCleared      = errors.New("transaction is already cleared")
	ErrPendingTransaction  = errors.New("pending transactions cannot be cleared")
	ErrConfirmInFlight     = errors.New("transaction is already being cleared")
	ErrSuperseded          = errors.New("fetch superseded by a newer range")
	ErrNoRange             = errors.New("no month selected")
)

// FetchError is returned when loading a month fails. The previously loaded
// collection, if any, stays in place.
type FetchError struct {
	Range month.Range
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to load transactions for %s: %v", e.Range.Title(), e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ConfirmError is returned when the remote update failed and the local
// patch was rolled back.
type ConfirmError struct {
	ID  int64
	Err error
}

func (e *ConfirmError) Error() string {
	return fmt.Sprintf("transaction %d: %s", e.ID, failureMessage(e.Err))
}

func (e *ConfirmError) Unwrap() error {
	return e.Err
}

func failureMessage(err error) string {
	if err == nil || err.Error() == "" {
		return DefaultFailureMessage
	}
	return err.Error()
}
