package service

import (
	"testing"

	"github.com/hance08/lunchbox/internal/store"
)

func TestHistoryService(t *testing.T) {
	journal := &fakeJournal{}
	for i, o := range []store.Outcome{store.OutcomeCommitted, store.OutcomeReverted, store.OutcomeCommitted} {
		journal.RecordConfirmation(&store.Confirmation{TransactionID: int64(i % 2), Outcome: o})
	}
	hs := NewHistoryService(journal)

	recent, err := hs.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 || recent[0].ID != 3 {
		t.Errorf("unexpected recent entries: %+v", recent)
	}

	entries, err := hs.ForTransaction(0)
	if err != nil || len(entries) != 2 {
		t.Errorf("ForTransaction(0) = %d entries, %v", len(entries), err)
	}

	none, err := hs.ForTransaction(99)
	if err != nil || none == nil || len(none) != 0 {
		t.Errorf("ForTransaction(99) = %v, %v; want empty slice", none, err)
	}

	committed, reverted, err := hs.Summary()
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if committed != 2 || reverted != 1 {
		t.Errorf("Summary() = %d, %d", committed, reverted)
	}
}
