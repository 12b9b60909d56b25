package service

import (
	"errors"
	"fmt"

	"github.com/hance08/lunchbox/internal/store"
)

type HistoryService struct {
	repo store.Repository
}

func NewHistoryService(repo store.Repository) *HistoryService {
	return &HistoryService{repo: repo}
}

// Recent returns the latest journal entries, newest first.
func (hs *HistoryService) Recent(limit int) ([]*store.Confirmation, error) {
	entries, err := hs.repo.ListConfirmations(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load confirmation history: %w", err)
	}
	return entries, nil
}

// ForTransaction returns the journal entries of one transaction; an empty
// slice when it was never confirmed from here.
func (hs *HistoryService) ForTransaction(txID int64) ([]*store.Confirmation, error) {
	entries, err := hs.repo.GetConfirmationsByTransaction(txID)
	if errors.Is(err, store.ErrRecordNotFound) {
		return []*store.Confirmation{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load history of transaction %d: %w", txID, err)
	}
	return entries, nil
}

// Summary counts committed and reverted confirmations.
func (hs *HistoryService) Summary() (committed, reverted int, err error) {
	counts, err := hs.repo.CountByOutcome()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to summarise history: %w", err)
	}
	for _, oc := range counts {
		switch oc.Outcome {
		case store.OutcomeCommitted:
			committed = oc.Count
		case store.OutcomeReverted:
			reverted = oc.Count
		}
	}
	return committed, reverted, nil
}
