package transaction

import (
	"github.com/hance08/lunchbox/internal/service"
	"github.com/spf13/cobra"
)

// NewTransactionCmd groups the commands that act on single transactions.
func NewTransactionCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Manage transactions",
		Long:    "Manage transactions: list a month, view details, or mark transactions as cleared.",
	}

	cmd.AddCommand(NewListCmd(svc))
	cmd.AddCommand(NewShowCmd(svc))
	cmd.AddCommand(NewClearCmd(svc))

	return cmd
}
