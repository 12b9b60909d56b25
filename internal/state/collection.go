package state

import (
	"errors"
	"sync"

	"github.com/hance08/lunchbox/internal/model"
)

var ErrTransactionNotFound = errors.New("transaction not found in the loaded month")

type EventKind int

const (
	EventReplaced EventKind = iota
	EventPatched
	EventReverted
)

func (k EventKind) String() string {
	switch k {
	case EventReplaced:
		return "replaced"
	case EventPatched:
		return "patched"
	case EventReverted:
		return "reverted"
	default:
		return "unknown"
	}
}

// Event describes one change to the collection. ID is zero for replacements.
type Event struct {
	Kind       EventKind
	ID         int64
	Generation uint64
}

// Snapshot holds the pre-patch state of a single entry.
type Snapshot struct {
	generation uint64
	entry      model.Transaction
}

func (s Snapshot) ID() int64 { return s.entry.ID }

func (s Snapshot) Transaction() model.Transaction { return s.entry.Clone() }

// Collection owns the transactions of the active month. It is written only
// by a wholesale Replace after a fetch, or by ApplyPatch/Revert for a single
// entry.
type Collection struct {
	mu          sync.RWMutex
	rangeKey    string
	generation  uint64
	loaded      bool
	items       []model.Transaction
	index       map[int64]int
	subscribers []func(Event)
}

func New() *Collection {
	return &Collection{index: make(map[int64]int)}
}

// Subscribe registers fn for every later change. Callbacks run synchronously
// after the write lock is released.
func (c *Collection) Subscribe(fn func(Event)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

// Replace swaps in a freshly fetched collection and returns its generation.
func (c *Collection) Replace(rangeKey string, transactions []model.Transaction) uint64 {
	items := make([]model.Transaction, len(transactions))
	index := make(map[int64]int, len(transactions))
	for i, tx := range transactions {
		items[i] = tx.Clone()
		index[tx.ID] = i
	}

	c.mu.Lock()
	c.generation++
	c.rangeKey = rangeKey
	c.loaded = true
	c.items = items
	c.index = index
	ev := Event{Kind: EventReplaced, Generation: c.generation}
	subs := c.subscribers
	c.mu.Unlock()

	notify(subs, ev)
	return ev.Generation
}

// Transactions returns a deep copy of the current collection.
func (c *Collection) Transactions() []model.Transaction {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.Transaction, len(c.items))
	for i, tx := range c.items {
		out[i] = tx.Clone()
	}
	return out
}

// Read returns the range key, generation and a deep copy of the entries,
// all taken under one lock.
func (c *Collection) Read() (rangeKey string, generation uint64, transactions []model.Transaction) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.Transaction, len(c.items))
	for i, tx := range c.items {
		out[i] = tx.Clone()
	}
	return c.rangeKey, c.generation, out
}

func (c *Collection) Get(id int64) (model.Transaction, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[id]
	if !ok {
		return model.Transaction{}, false
	}
	return c.items[i].Clone(), true
}

func (c *Collection) RangeKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rangeKey
}

func (c *Collection) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}

// Loaded reports whether any fetch has populated the collection yet.
func (c *Collection) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// ApplyPatch applies patch to the entry with the given id in place and
// returns a snapshot of the entry as it was before.
func (c *Collection) ApplyPatch(id int64, patch model.TransactionUpdate) (Snapshot, error) {
	c.mu.Lock()
	i, ok := c.index[id]
	if !ok {
		c.mu.Unlock()
		return Snapshot{}, ErrTransactionNotFound
	}

	snap := Snapshot{generation: c.generation, entry: c.items[i].Clone()}
	c.items[i] = patch.Apply(c.items[i])
	ev := Event{Kind: EventPatched, ID: id, Generation: c.generation}
	subs := c.subscribers
	c.mu.Unlock()

	notify(subs, ev)
	return snap, nil
}

// Revert restores the entry captured by s. It does nothing and returns false
// when the collection has been replaced since the snapshot was taken.
func (c *Collection) Revert(s Snapshot) bool {
	c.mu.Lock()
	if s.generation != c.generation {
		c.mu.Unlock()
		return false
	}
	i, ok := c.index[s.entry.ID]
	if !ok {
		c.mu.Unlock()
		return false
	}

	c.items[i] = s.entry.Clone()
	ev := Event{Kind: EventReverted, ID: s.entry.ID, Generation: c.generation}
	subs := c.subscribers
	c.mu.Unlock()

	notify(subs, ev)
	return true
}

func notify(subs []func(Event), ev Event) {
	for _, fn := range subs {
		fn(ev)
	}
}
