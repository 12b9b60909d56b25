package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/hance08/lunchbox/internal/model"
	"github.com/hance08/lunchbox/internal/review"
	"github.com/hance08/lunchbox/internal/state"
	"github.com/hance08/lunchbox/internal/store"
	"golang.org/x/sync/errgroup"
)

// Reporter receives the message of a confirm that was rolled back. It is
// called exactly once per failed confirm.
type Reporter func(id int64, message string)

// Confirmer clears transactions optimistically: the local collection is
// patched before the remote call and restored if that call fails.
type Confirmer struct {
	coll    *state.Collection
	source  TransactionSource
	journal store.Repository
	log     *log.Logger

	mu       sync.Mutex
	inFlight map[int64]struct{}
	reporter Reporter

	// Concurrency bounds ConfirmAll.
	Concurrency int
}

// ConfirmResult is the outcome of one id in a ConfirmAll batch.
type ConfirmResult struct {
	ID  int64
	Err error
}

func NewConfirmer(coll *state.Collection, source TransactionSource, journal store.Repository, l *log.Logger) *Confirmer {
	c := &Confirmer{
		coll:        coll,
		source:      source,
		journal:     journal,
		log:         l,
		inFlight:    make(map[int64]struct{}),
		Concurrency: 4,
	}
	c.reporter = func(id int64, message string) {
		c.log.Error("confirm failed", "id", id, "err", message)
	}
	return c
}

func (c *Confirmer) SetReporter(r Reporter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reporter = r
}

// InFlight reports whether a confirm for id is awaiting the remote call.
func (c *Confirmer) InFlight(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.inFlight[id]
	return ok
}

// Confirm marks the transaction cleared. Rejected requests return a
// sentinel error and touch neither the collection nor the remote service.
// A remote failure reverts the entry, reports once and returns a
// *ConfirmError.
func (c *Confirmer) Confirm(ctx context.Context, id int64) error {
	release, err := c.acquire(id)
	if err != nil {
		return err
	}
	defer release()

	tx, ok := c.coll.Get(id)
	if !ok {
		return ErrTransactionNotFound
	}

	switch {
	case tx.Status == model.StatusCleared:
		return ErrAlreadyCleared
	case tx.IsPending || tx.Status == model.StatusPending:
		return ErrPendingTransaction
	}

	correlationID := uuid.NewString()
	logger := c.log.With("id", id, "correlation_id", correlationID)

	patch := model.ClearedUpdate()
	snap, err := c.coll.ApplyPatch(id, patch)
	if err != nil {
		return err
	}
	logger.Debug("applied optimistic patch")

	if _, err := c.source.UpdateTransaction(ctx, id, patch); err != nil {
		if !c.coll.Revert(snap) {
			logger.Debug("collection replaced before failure, nothing to revert")
		}
		message := failureMessage(err)
		c.report(id, message)
		c.record(logger, correlationID, tx, store.OutcomeReverted, message)
		return &ConfirmError{ID: id, Err: err}
	}

	logger.Info("transaction cleared")
	c.record(logger, correlationID, tx, store.OutcomeCommitted, "")
	return nil
}

// ConfirmAll confirms ids concurrently. A failure on one id never cancels
// the others; results keep the order of ids.
func (c *Confirmer) ConfirmAll(ctx context.Context, ids []int64) ([]ConfirmResult, error) {
	results := make([]ConfirmResult, len(ids))

	var g errgroup.Group
	if c.Concurrency > 0 {
		g.SetLimit(c.Concurrency)
	}

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			results[i] = ConfirmResult{ID: id, Err: c.Confirm(ctx, id)}
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return results, errors.Join(errs...)
}

// Confirmable returns the ids in the loaded collection that can be cleared,
// in ascending order.
func (c *Confirmer) Confirmable() []int64 {
	var ids []int64
	for _, tx := range c.coll.Transactions() {
		if review.CanConfirm(tx) && !tx.IsGroupMember() {
			ids = append(ids, tx.ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (c *Confirmer) acquire(id int64) (func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, busy := c.inFlight[id]; busy {
		return nil, ErrConfirmInFlight
	}
	c.inFlight[id] = struct{}{}

	return func() {
		c.mu.Lock()
		delete(c.inFlight, id)
		c.mu.Unlock()
	}, nil
}

func (c *Confirmer) report(id int64, message string) {
	c.mu.Lock()
	r := c.reporter
	c.mu.Unlock()
	if r != nil {
		r(id, message)
	}
}

// record appends to the journal. Journal failures are logged and never
// change the outcome of the confirm.
func (c *Confirmer) record(logger *log.Logger, correlationID string, tx model.Transaction, outcome store.Outcome, message string) {
	if c.journal == nil {
		return
	}
	_, err := c.journal.RecordConfirmation(&store.Confirmation{
		CorrelationID: correlationID,
		TransactionID: tx.ID,
		Payee:         tx.Payee,
		Outcome:       outcome,
		Error:         message,
	})
	if err != nil {
		logger.Warn("failed to record confirmation", "err", err)
	}
}
