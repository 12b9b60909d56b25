package cmd

import (
	"fmt"

	"github.com/hance08/lunchbox/internal/constants"
	"github.com/hance08/lunchbox/internal/service"
	"github.com/hance08/lunchbox/internal/ui/views"
	"github.com/spf13/cobra"
)

type historyFlags struct {
	Limit int
}

type historyRunner struct {
	svc   *service.Service
	flags *historyFlags
}

func NewHistoryCmd(svc *service.Service) *cobra.Command {
	flags := &historyFlags{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent clear attempts",
		Long: `Show the local journal of clear attempts.

Every attempt is recorded as cleared or rolled back, together with the
error the server returned.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &historyRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", constants.DefaultHistoryLimit, "Maximum number of entries to display")

	return cmd
}

func (r *historyRunner) Run() error {
	if r.flags.Limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", r.flags.Limit)
	}

	entries, err := r.svc.History.Recent(r.flags.Limit)
	if err != nil {
		return err
	}

	committed, reverted, err := r.svc.History.Summary()
	if err != nil {
		return err
	}

	return views.RenderHistory(entries, committed, reverted)
}
