package cmd

import (
	"time"

	"github.com/hance08/lunchbox/internal/month"
	"github.com/hance08/lunchbox/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewMonthsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "months",
		Short: "List the months that can be reviewed",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			return views.RenderMonths(month.Choices(now), month.Of(now))
		},
	}
}
