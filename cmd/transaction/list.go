package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/hance08/lunchbox/internal/constants"
	"github.com/hance08/lunchbox/internal/model"
	"github.com/hance08/lunchbox/internal/month"
	"github.com/hance08/lunchbox/internal/review"
	"github.com/hance08/lunchbox/internal/service"
	"github.com/hance08/lunchbox/internal/ui"
	"github.com/hance08/lunchbox/internal/ui/views"
	"github.com/hance08/lunchbox/internal/utils"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Month  string
	Search string
}

type listRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List the transactions of a month",
		Long: `List the transactions of a month as a flat table.

Pending transactions come first, followed by the rest in review order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&flags.Month, "month", "m", "", "Month to list as YYYY-MM (defaults to the current month)")
	cmd.Flags().StringVarP(&flags.Search, "search", "s", "", "Only list transactions matching every word")

	return cmd
}

func (r *listRunner) Run(ctx context.Context) error {
	rng, err := month.ParseOrCurrent(r.flags.Month, time.Now())
	if err != nil {
		return err
	}

	err = ui.WithSpinner(fmt.Sprintf("Loading %s...", rng.Title()), func() error {
		return r.svc.Session.SetRange(ctx, rng)
	})
	if err != nil {
		return err
	}

	view := r.svc.Session.Search(r.flags.Search)

	var viewItems []views.TransactionListItem
	for _, tx := range view.Pending {
		viewItems = append(viewItems, listItem(tx))
	}
	for _, tx := range view.Settled() {
		viewItems = append(viewItems, listItem(tx))
	}

	return views.NewTransactionListView().Render(rng.Title(), viewItems)
}

func listItem(tx model.Transaction) views.TransactionListItem {
	return views.TransactionListItem{
		ID:      tx.ID,
		Date:    tx.Date.String(),
		Payee:   utils.Truncate(review.Subtitle(tx), constants.MaxPayeeLen),
		Account: tx.AccountName(),
		Amount:  utils.FormatAmount(tx.Amount, tx.Currency),
		Status:  tx.Status,
		Pending: review.IsPending(tx),
	}
}
