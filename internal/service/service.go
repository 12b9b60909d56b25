package service

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/hance08/lunchbox/internal/config"
	"github.com/hance08/lunchbox/internal/logger"
	"github.com/hance08/lunchbox/internal/lunchmoney"
	"github.com/hance08/lunchbox/internal/model"
	"github.com/hance08/lunchbox/internal/state"
	"github.com/hance08/lunchbox/internal/store"
)

// TransactionSource is the remote side of the review: *lunchmoney.Client.
type TransactionSource interface {
	ListTransactions(ctx context.Context, p lunchmoney.ListParams) ([]model.Transaction, error)
	GetTransaction(ctx context.Context, id int64) (model.Transaction, error)
	UpdateTransaction(ctx context.Context, id int64, update model.TransactionUpdate) (lunchmoney.UpdateResult, error)
}

type Service struct {
	Session   *Session
	Confirmer *Confirmer
	History   *HistoryService
}

// NewService wires one collection between the session that fills it and
// the confirmer that patches it.
func NewService(source TransactionSource, repo store.Repository, cfg *config.Config, l *log.Logger) *Service {
	coll := state.New()

	session := NewSession(source, coll, SessionOptions{
		CacheTTL:        cfg.Cache.TTL,
		Strict:          cfg.Review.Strict,
		DebitAsNegative: cfg.API.DebitAsNegative,
		Logger:          logger.Component(l, "session"),
	})

	return &Service{
		Session:   session,
		Confirmer: NewConfirmer(coll, source, repo, logger.Component(l, "confirmer")),
		History:   NewHistoryService(repo),
	}
}
