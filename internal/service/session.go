package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hance08/lunchbox/internal/lunchmoney"
	"github.com/hance08/lunchbox/internal/model"
	"github.com/hance08/lunchbox/internal/month"
	"github.com/hance08/lunchbox/internal/review"
	"github.com/hance08/lunchbox/internal/state"
	gocache "github.com/patrickmn/go-cache"
)

type SessionOptions struct {
	// CacheTTL keeps fetched months around for repainting; zero disables it.
	CacheTTL        time.Duration
	Strict          bool
	DebitAsNegative bool
	TagID           int64
	Logger          *log.Logger
}

// Session owns the collection of the active month. Only the latest
// SetRange call may replace it.
type Session struct {
	source TransactionSource
	coll   *state.Collection
	cache  *gocache.Cache
	opts   SessionOptions
	log    *log.Logger

	mu      sync.Mutex
	token   uint64
	cancel  context.CancelFunc
	current month.Range
	hasCurr bool

	viewMu  sync.Mutex
	viewKey string
	viewSet bool
	view    review.View
	builds  int
}

func NewSession(source TransactionSource, coll *state.Collection, opts SessionOptions) *Session {
	s := &Session{
		source: source,
		coll:   coll,
		opts:   opts,
		log:    opts.Logger,
	}
	if s.log == nil {
		s.log = log.Default()
	}
	if opts.CacheTTL > 0 {
		s.cache = gocache.New(opts.CacheTTL, 2*opts.CacheTTL)
		coll.Subscribe(s.refreshCache)
	}
	return s
}

func (s *Session) Collection() *state.Collection {
	return s.coll
}

// Range returns the month currently loaded into the collection.
func (s *Session) Range() (month.Range, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.hasCurr
}

// SetTag narrows later fetches to one tag; zero clears the filter.
func (s *Session) SetTag(tagID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts.TagID = tagID
}

// SetRange fetches r and replaces the collection with it. A call made while
// an earlier one is still waiting supersedes it: the earlier fetch is
// cancelled and its response, should it still arrive, is dropped with
// ErrSuperseded. On failure the previous collection is kept and a
// *FetchError is returned.
func (s *Session) SetRange(ctx context.Context, r month.Range) error {
	fetchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.token++
	token := s.token
	s.cancel = cancel
	params := lunchmoney.ListParams{
		StartDate:       r.Start,
		EndDate:         r.End,
		TagID:           s.opts.TagID,
		DebitAsNegative: s.opts.DebitAsNegative,
	}
	s.mu.Unlock()

	s.log.Debug("fetching month", "range", r.Key(), "token", token)
	txs, err := s.source.ListTransactions(fetchCtx, params)

	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.token {
		s.log.Debug("dropping superseded fetch", "range", r.Key(), "token", token)
		return ErrSuperseded
	}
	s.cancel = nil

	if err != nil {
		return &FetchError{Range: r, Err: err}
	}

	if err := review.Validate(txs); err != nil {
		if s.opts.Strict {
			return &FetchError{Range: r, Err: fmt.Errorf("malformed transactions: %w", err)}
		}
		s.log.Warn("malformed transactions in response", "range", r.Key(), "err", err)
	}

	s.current = r
	s.hasCurr = true
	s.coll.Replace(s.cacheKey(r), txs)
	return nil
}

// Refresh refetches the current month.
func (s *Session) Refresh(ctx context.Context) error {
	r, ok := s.Range()
	if !ok {
		return ErrNoRange
	}
	return s.SetRange(ctx, r)
}

// Cached returns the last known transactions of r, if still fresh, so a
// revisited month can be shown while it is refetched.
func (s *Session) Cached(r month.Range) ([]model.Transaction, bool) {
	if s.cache == nil {
		return nil, false
	}
	s.mu.Lock()
	key := s.cacheKey(r)
	s.mu.Unlock()

	v, ok := s.cache.Get(key)
	if !ok {
		return nil, false
	}
	txs := v.([]model.Transaction)
	out := make([]model.Transaction, len(txs))
	for i, tx := range txs {
		out[i] = tx.Clone()
	}
	return out, true
}

// View returns the review of the loaded collection. Within one fetch it is
// rebuilt only when the id:status fingerprint changes; every refetch
// rebuilds it.
func (s *Session) View() review.View {
	rangeKey, generation, txs := s.coll.Read()
	key := fmt.Sprintf("%s#%d|%s", rangeKey, generation, review.Fingerprint(txs))

	s.viewMu.Lock()
	defer s.viewMu.Unlock()

	if s.viewSet && key == s.viewKey {
		return s.view
	}
	s.view = review.Build(txs)
	s.viewKey = key
	s.viewSet = true
	s.builds++
	return s.view
}

// Search builds a review restricted to transactions matching query.
func (s *Session) Search(query string) review.View {
	if query == "" {
		return s.View()
	}
	return review.Build(review.Filter(s.coll.Transactions(), query))
}

// Lookup finds a transaction in the loaded month, falling back to the
// remote service.
func (s *Session) Lookup(ctx context.Context, id int64) (model.Transaction, error) {
	if tx, ok := s.coll.Get(id); ok {
		return tx, nil
	}
	tx, err := s.source.GetTransaction(ctx, id)
	if err != nil {
		var apiErr *lunchmoney.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return model.Transaction{}, ErrTransactionNotFound
		}
		return model.Transaction{}, err
	}
	return tx, nil
}

// cacheKey must be called with s.mu held.
func (s *Session) cacheKey(r month.Range) string {
	if s.opts.TagID != 0 {
		return fmt.Sprintf("%s?tag=%d", r.Key(), s.opts.TagID)
	}
	return r.Key()
}

func (s *Session) refreshCache(ev state.Event) {
	key := s.coll.RangeKey()
	if key == "" {
		return
	}
	s.cache.Set(key, s.coll.Transactions(), gocache.DefaultExpiration)
}
