package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hance08/lunchbox/internal/constants"
	"github.com/hance08/lunchbox/internal/errhandler"
	"github.com/hance08/lunchbox/internal/model"
	"github.com/hance08/lunchbox/internal/month"
	"github.com/hance08/lunchbox/internal/review"
	"github.com/hance08/lunchbox/internal/service"
	"github.com/hance08/lunchbox/internal/ui"
	"github.com/hance08/lunchbox/internal/ui/prompts"
	"github.com/hance08/lunchbox/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type reviewFlags struct {
	Month       string
	Search      string
	Tag         int64
	Interactive bool
}

type reviewRunner struct {
	svc     *service.Service
	flags   *reviewFlags
	query   string
	current month.Range
}

func NewReviewCmd(svc *service.Service) *cobra.Command {
	flags := &reviewFlags{}

	cmd := &cobra.Command{
		Use:     "review",
		Aliases: []string{"r"},
		Short:   "Review the transactions of a month",
		Long: `Review a month of transactions grouped by day.

Pending transactions are listed first. Every other transaction is grouped
under its day, most recent day first. Use --interactive to clear
transactions, search and switch months without leaving the review.`,
		Example: `  lunchbox review
  lunchbox review --month 2026-09 --search coffee
  lunchbox review -i`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &reviewRunner{
				svc:   svc,
				flags: flags,
				query: flags.Search,
			}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&flags.Month, "month", "m", "", "Month to review as YYYY-MM (defaults to the current month)")
	cmd.Flags().StringVarP(&flags.Search, "search", "s", "", "Only show transactions matching every word")
	cmd.Flags().Int64VarP(&flags.Tag, "tag", "t", 0, "Only fetch transactions carrying this tag id")
	cmd.Flags().BoolVarP(&flags.Interactive, "interactive", "i", false, "Keep the review open and act on it")

	return cmd
}

func (r *reviewRunner) Run(ctx context.Context) error {
	rng, err := month.ParseOrCurrent(r.flags.Month, time.Now())
	if err != nil {
		return err
	}

	if r.flags.Tag > 0 {
		r.svc.Session.SetTag(r.flags.Tag)
	}

	if err := r.load(ctx, rng); err != nil {
		return err
	}
	if err := r.render(); err != nil {
		return err
	}

	if !r.flags.Interactive {
		return nil
	}
	return r.loop(ctx)
}

func (r *reviewRunner) load(ctx context.Context, rng month.Range) error {
	err := ui.WithSpinner(fmt.Sprintf("Loading %s...", rng.Title()), func() error {
		return r.svc.Session.SetRange(ctx, rng)
	})
	if errors.Is(err, service.ErrSuperseded) {
		return nil
	}
	if err != nil {
		return err
	}
	r.current = rng
	return nil
}

func (r *reviewRunner) title() string {
	if r.query == "" {
		return r.current.Title()
	}
	return fmt.Sprintf("%s - matching %q", r.current.Title(), r.query)
}

func (r *reviewRunner) render() error {
	return views.RenderReview(r.title(), r.svc.Session.Search(r.query))
}

func (r *reviewRunner) loop(ctx context.Context) error {
	for {
		candidates := r.confirmable()

		action, err := prompts.PromptReviewAction(len(candidates) > 0)
		if err != nil {
			if errhandler.IsCancelled(err) {
				return nil
			}
			return err
		}

		switch action {
		case prompts.ActionClear:
			err = r.clear(ctx, candidates)
		case prompts.ActionShow:
			err = r.show()
		case prompts.ActionSearch:
			err = r.search()
		case prompts.ActionMonth:
			err = r.switchMonth(ctx)
		case prompts.ActionRefresh:
			err = r.refresh(ctx)
		case prompts.ActionQuit:
			return nil
		}

		if err != nil {
			if errhandler.IsCancelled(err) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			var fetchErr *service.FetchError
			if errors.As(err, &fetchErr) {
				pterm.Error.Println(capitalize(err.Error()))
				pterm.Info.Println("Keeping the previously loaded transactions")
				continue
			}
			return err
		}
	}
}

// confirmable lists the transactions of the current search that can be cleared.
func (r *reviewRunner) confirmable() []model.Transaction {
	coll := r.svc.Session.Collection()

	var txs []model.Transaction
	for _, id := range r.svc.Confirmer.Confirmable() {
		if tx, ok := coll.Get(id); ok {
			txs = append(txs, tx)
		}
	}
	return review.Filter(txs, r.query)
}

func (r *reviewRunner) clear(ctx context.Context, candidates []model.Transaction) error {
	id, err := prompts.PromptTransaction("Clear which transaction?", candidates)
	if err != nil {
		return err
	}

	err = r.svc.Confirmer.Confirm(ctx, id)

	var confirmErr *service.ConfirmError
	switch {
	case err == nil:
		pterm.Success.Printf("Transaction %d cleared\n", id)
	case errors.As(err, &confirmErr):
		// already reported and rolled back
	case errors.Is(err, service.ErrAlreadyCleared),
		errors.Is(err, service.ErrPendingTransaction),
		errors.Is(err, service.ErrConfirmInFlight):
		pterm.Warning.Printf("Transaction %d skipped: %v\n", id, err)
	default:
		return err
	}

	return r.render()
}

func (r *reviewRunner) show() error {
	view := r.svc.Session.Search(r.query)
	txs := append(append([]model.Transaction{}, view.Pending...), view.Settled()...)
	if len(txs) == 0 {
		pterm.Info.Println("No transactions to show")
		return nil
	}

	id, err := prompts.PromptTransaction("Show which transaction?", txs)
	if err != nil {
		return err
	}

	tx, ok := view.Find(id)
	if !ok {
		return service.ErrTransactionNotFound
	}
	history, err := r.svc.History.ForTransaction(id)
	if err != nil {
		return err
	}
	return views.RenderTransactionDetail(tx, review.PayeeURL(constants.WebURL, tx), history)
}

func (r *reviewRunner) search() error {
	query, err := prompts.PromptInput("Search (leave empty to show everything)", r.query, nil)
	if err != nil {
		return err
	}
	r.query = query
	return r.render()
}

func (r *reviewRunner) switchMonth(ctx context.Context) error {
	picked, err := prompts.PromptMonth(month.Choices(time.Now()), r.current)
	if err != nil {
		return err
	}

	// repaint from the cache while the fresh copy loads
	if cached, ok := r.svc.Session.Cached(picked); ok {
		title := fmt.Sprintf("%s (cached)", picked.Title())
		if err := views.RenderReview(title, review.Build(review.Filter(cached, r.query))); err != nil {
			return err
		}
	}

	if err := r.load(ctx, picked); err != nil {
		return err
	}
	return r.render()
}

func (r *reviewRunner) refresh(ctx context.Context) error {
	err := ui.WithSpinner("Refreshing...", func() error {
		return r.svc.Session.Refresh(ctx)
	})
	if errors.Is(err, service.ErrSuperseded) {
		return nil
	}
	if err != nil {
		return err
	}
	return r.render()
}
