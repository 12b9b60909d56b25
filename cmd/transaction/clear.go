package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hance08/lunchbox/internal/month"
	"github.com/hance08/lunchbox/internal/service"
	"github.com/hance08/lunchbox/internal/ui"
	"github.com/hance08/lunchbox/internal/ui/views"
	"github.com/hance08/lunchbox/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type clearFlags struct {
	Month string
	Yes   bool
}

type clearRunner struct {
	svc   *service.Service
	flags *clearFlags
}

func NewClearCmd(svc *service.Service) *cobra.Command {
	flags := &clearFlags{}

	cmd := &cobra.Command{
		Use:   "clear <transaction-id>...",
		Short: "Mark transactions as cleared",
		Long: `Mark one or more transactions of a month as cleared.

The transactions are shown as cleared immediately. If the server rejects
one, it is rolled back and the server's message is printed.`,
		Example: `  lunchbox transaction clear 1024
  lunchbox tx clear 1024 1025 --month 2026-09 --yes`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &clearRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(cmd.Context(), args)
		},
	}

	cmd.Flags().StringVarP(&flags.Month, "month", "m", "", "Month the transactions belong to as YYYY-MM (defaults to the current month)")
	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (r *clearRunner) Run(ctx context.Context, args []string) error {
	ids, err := validation.ParseTransactionIDs(args)
	if err != nil {
		return err
	}

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

	if !r.flags.Yes {
		ok, err := r.confirm(ids)
		if err != nil {
			return err
		}
		if !ok {
			pterm.Info.Println("Nothing was cleared")
			return nil
		}
	}

	results, _ := r.svc.Confirmer.ConfirmAll(ctx, ids)
	cleared := views.RenderClearResults(results)

	ui.PrintSeparator()
	if cleared < len(ids) {
		return fmt.Errorf("%d of %d transactions were not cleared", len(ids)-cleared, len(ids))
	}
	return nil
}

func (r *clearRunner) confirm(ids []int64) (bool, error) {
	labels := make([]string, len(ids))
	for i, id := range ids {
		labels[i] = fmt.Sprintf("#%d", id)
		if tx, ok := r.svc.Session.Collection().Get(id); ok {
			labels[i] = fmt.Sprintf("#%d %s", id, tx.Payee)
		}
	}

	return ui.Confirm(fmt.Sprintf("Clear %s?", strings.Join(labels, ", ")), true)
}
