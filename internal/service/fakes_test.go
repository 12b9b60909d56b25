package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"cloud.google.com/go/civil"
	"github.com/hance08/lunchbox/internal/lunchmoney"
	"github.com/hance08/lunchbox/internal/model"
	"github.com/hance08/lunchbox/internal/store"
)

type listResult struct {
	txs []model.Transaction
	err error
}

// fakeSource serves ListTransactions from per-month channels so tests
// decide the order in which fetches resolve. It ignores cancellation to
// model a response that arrives anyway.
type fakeSource struct {
	mu      sync.Mutex
	lists   map[string]chan listResult
	started chan string
	params  []lunchmoney.ListParams

	updateFn func(ctx context.Context, id int64) error
	updates  atomic.Int32
	byID     map[int64]model.Transaction
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		lists:   make(map[string]chan listResult),
		started: make(chan string, 16),
		byID:    make(map[int64]model.Transaction),
	}
}

func (f *fakeSource) channel(key string) chan listResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch, ok := f.lists[key]
	if !ok {
		ch = make(chan listResult, 1)
		f.lists[key] = ch
	}
	return ch
}

// resolve queues the response of the fetch for the month key.
func (f *fakeSource) resolve(key string, txs []model.Transaction, err error) {
	f.channel(key) <- listResult{txs: txs, err: err}
}

func (f *fakeSource) ListTransactions(ctx context.Context, p lunchmoney.ListParams) ([]model.Transaction, error) {
	key := fmt.Sprintf("%04d-%02d", p.StartDate.Year, int(p.StartDate.Month))
	f.mu.Lock()
	f.params = append(f.params, p)
	f.mu.Unlock()

	f.started <- key
	res := <-f.channel(key)
	return res.txs, res.err
}

func (f *fakeSource) GetTransaction(ctx context.Context, id int64) (model.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tx, ok := f.byID[id]
	if !ok {
		return model.Transaction{}, &lunchmoney.APIError{StatusCode: 404}
	}
	return tx, nil
}

func (f *fakeSource) UpdateTransaction(ctx context.Context, id int64, update model.TransactionUpdate) (lunchmoney.UpdateResult, error) {
	f.updates.Add(1)
	if f.updateFn != nil {
		if err := f.updateFn(ctx, id); err != nil {
			return lunchmoney.UpdateResult{}, err
		}
	}
	return lunchmoney.UpdateResult{Updated: true}, nil
}

type fakeJournal struct {
	mu      sync.Mutex
	entries []*store.Confirmation
	err     error
}

func (j *fakeJournal) RecordConfirmation(c *store.Confirmation) (int64, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.err != nil {
		return 0, j.err
	}
	c.ID = int64(len(j.entries) + 1)
	j.entries = append(j.entries, c)
	return c.ID, nil
}

func (j *fakeJournal) ListConfirmations(limit int) ([]*store.Confirmation, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]*store.Confirmation, 0, len(j.entries))
	for i := len(j.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, j.entries[i])
	}
	return out, nil
}

func (j *fakeJournal) GetConfirmationsByTransaction(txID int64) ([]*store.Confirmation, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	var out []*store.Confirmation
	for _, c := range j.entries {
		if c.TransactionID == txID {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil, store.ErrRecordNotFound
	}
	return out, nil
}

func (j *fakeJournal) CountByOutcome() ([]store.OutcomeCount, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	counts := map[store.Outcome]int{}
	for _, c := range j.entries {
		counts[c.Outcome]++
	}
	var out []store.OutcomeCount
	for _, o := range []store.Outcome{store.OutcomeCommitted, store.OutcomeReverted} {
		if counts[o] > 0 {
			out = append(out, store.OutcomeCount{Outcome: o, Count: counts[o]})
		}
	}
	return out, nil
}

func (j *fakeJournal) Close() error { return nil }

func (j *fakeJournal) outcomes() []store.Outcome {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]store.Outcome, len(j.entries))
	for i, c := range j.entries {
		out[i] = c.Outcome
	}
	return out
}

func date(s string) civil.Date {
	d, err := civil.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func txn(id int64, day string, status model.Status) model.Transaction {
	created := time.Date(2026, 10, 1, 0, 0, int(id), 0, time.UTC)
	return model.Transaction{ID: id, Date: date(day), Payee: fmt.Sprintf("payee %d", id), Status: status, CreatedAt: &created}
}
