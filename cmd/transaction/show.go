package transaction

import (
	"context"
	"errors"

	"github.com/hance08/lunchbox/internal/constants"
	"github.com/hance08/lunchbox/internal/review"
	"github.com/hance08/lunchbox/internal/service"
	"github.com/hance08/lunchbox/internal/ui/views"
	"github.com/hance08/lunchbox/internal/validation"
	"github.com/spf13/cobra"
)

type ShowCommandRunner struct {
	svc *service.Service
}

func NewShowCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "show <transaction-id>",
		Short: "Show transaction details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ShowCommandRunner{
				svc: svc,
			}
			return runner.Run(cmd.Context(), args)
		},
	}
}

func (r *ShowCommandRunner) Run(ctx context.Context, args []string) error {
	txID, err := validation.ParseTransactionID(args[0])
	if err != nil {
		return err
	}

	tx, err := r.svc.Session.Lookup(ctx, txID)
	if errors.Is(err, service.ErrTransactionNotFound) {
		return errors.New("transaction not found")
	}
	if err != nil {
		return err
	}

	history, err := r.svc.History.ForTransaction(txID)
	if err != nil {
		return err
	}

	return views.RenderTransactionDetail(tx, review.PayeeURL(constants.WebURL, tx), history)
}
