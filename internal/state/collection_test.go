package state

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/hance08/lunchbox/internal/model"
)

func sample() []model.Transaction {
	d, _ := civil.ParseDate("2026-10-03")
	return []model.Transaction{
		{ID: 1, Date: d, Status: model.StatusUncleared, Payee: "A"},
		{ID: 5, Date: d, Status: model.StatusUncleared, Payee: "B", Tags: []model.Tag{{ID: 1, Name: "x"}}},
	}
}

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) record(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) kinds() []EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]EventKind, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Kind
	}
	return out
}

func TestReplaceAndRead(t *testing.T) {
	c := New()
	if c.Loaded() {
		t.Fatal("new collection should not be loaded")
	}

	gen := c.Replace("2026-10", sample())

	if gen != 1 || c.Generation() != 1 {
		t.Errorf("unexpected generation %d", gen)
	}
	if !c.Loaded() || c.Len() != 2 || c.RangeKey() != "2026-10" {
		t.Errorf("unexpected state: loaded=%v len=%d range=%s", c.Loaded(), c.Len(), c.RangeKey())
	}
	if tx, ok := c.Get(5); !ok || tx.Payee != "B" {
		t.Errorf("Get(5) = %+v, %v", tx, ok)
	}
}

func TestReadIsConsistent(t *testing.T) {
	c := New()
	c.Replace("2026-10", sample())
	c.Replace("2026-11", sample()[:1])

	key, gen, txs := c.Read()
	if key != "2026-11" || gen != 2 || len(txs) != 1 {
		t.Errorf("Read() = %q, %d, %d entries", key, gen, len(txs))
	}

	txs[0].Payee = "changed"
	if got, _ := c.Get(txs[0].ID); got.Payee == "changed" {
		t.Error("collection aliased by Read copy")
	}
}

func TestTransactionsReturnsDeepCopy(t *testing.T) {
	c := New()
	c.Replace("2026-10", sample())

	txs := c.Transactions()
	txs[1].Status = model.StatusCleared
	txs[1].Tags[0].Name = "changed"

	got, _ := c.Get(5)
	if got.Status != model.StatusUncleared || got.Tags[0].Name != "x" {
		t.Errorf("collection aliased by reader copy: %+v", got)
	}
}

func TestApplyPatchIsVisibleImmediately(t *testing.T) {
	c := New()
	c.Replace("2026-10", sample())
	rec := &recorder{}
	c.Subscribe(rec.record)

	snap, err := c.ApplyPatch(5, model.ClearedUpdate())
	if err != nil {
		t.Fatalf("ApplyPatch: %v", err)
	}

	got, _ := c.Get(5)
	if got.Status != model.StatusCleared {
		t.Errorf("expected cleared, got %s", got.Status)
	}
	if snap.ID() != 5 || snap.Transaction().Status != model.StatusUncleared {
		t.Errorf("snapshot should hold pre-patch entry: %+v", snap.Transaction())
	}
	if !reflect.DeepEqual(rec.kinds(), []EventKind{EventPatched}) {
		t.Errorf("events = %v", rec.kinds())
	}
}

func TestRevertRestoresExactEntry(t *testing.T) {
	c := New()
	c.Replace("2026-10", sample())
	before, _ := c.Get(5)
	rec := &recorder{}
	c.Subscribe(rec.record)

	snap, _ := c.ApplyPatch(5, model.ClearedUpdate())
	if !c.Revert(snap) {
		t.Fatal("expected revert to apply")
	}

	after, _ := c.Get(5)
	if !reflect.DeepEqual(before, after) {
		t.Errorf("entry not restored:\nbefore %+v\nafter  %+v", before, after)
	}
	if !reflect.DeepEqual(rec.kinds(), []EventKind{EventPatched, EventReverted}) {
		t.Errorf("events = %v", rec.kinds())
	}
}

func TestRevertLeavesOtherEntriesAlone(t *testing.T) {
	c := New()
	c.Replace("2026-10", sample())

	snap5, _ := c.ApplyPatch(5, model.ClearedUpdate())
	if _, err := c.ApplyPatch(1, model.ClearedUpdate()); err != nil {
		t.Fatalf("ApplyPatch(1): %v", err)
	}
	c.Revert(snap5)

	one, _ := c.Get(1)
	five, _ := c.Get(5)
	if one.Status != model.StatusCleared {
		t.Errorf("independent patch on 1 was lost: %s", one.Status)
	}
	if five.Status != model.StatusUncleared {
		t.Errorf("5 not reverted: %s", five.Status)
	}
}

func TestRevertAfterReplaceIsNoop(t *testing.T) {
	c := New()
	c.Replace("2026-10", sample())
	snap, _ := c.ApplyPatch(5, model.ClearedUpdate())

	fresh := sample()
	fresh[1].Status = model.StatusCleared
	c.Replace("2026-10", fresh)

	rec := &recorder{}
	c.Subscribe(rec.record)
	if c.Revert(snap) {
		t.Error("revert should not apply to a replaced collection")
	}

	got, _ := c.Get(5)
	if got.Status != model.StatusCleared {
		t.Errorf("refetched state overwritten: %s", got.Status)
	}
	if len(rec.kinds()) != 0 {
		t.Errorf("unexpected events: %v", rec.kinds())
	}
}

func TestApplyPatchUnknownID(t *testing.T) {
	c := New()
	c.Replace("2026-10", sample())

	_, err := c.ApplyPatch(42, model.ClearedUpdate())
	if !errors.Is(err, ErrTransactionNotFound) {
		t.Errorf("expected ErrTransactionNotFound, got %v", err)
	}
}

func TestReplaceCopiesInput(t *testing.T) {
	input := sample()
	c := New()
	c.Replace("2026-10", input)

	input[0].Payee = "mutated"

	got, _ := c.Get(1)
	if got.Payee != "A" {
		t.Errorf("collection aliased caller slice: %s", got.Payee)
	}
}
