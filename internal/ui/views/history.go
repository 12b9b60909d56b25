package views

import (
	"fmt"

	"github.com/hance08/lunchbox/internal/constants"
	"github.com/hance08/lunchbox/internal/store"
	"github.com/hance08/lunchbox/internal/utils"
	"github.com/pterm/pterm"
)

func RenderHistory(entries []*store.Confirmation, committed, reverted int) error {
	if len(entries) == 0 {
		pterm.Warning.Println("No confirmations recorded yet")
		return nil
	}

	pterm.DefaultSection.Printf("Recent confirmations (showing %d)", len(entries))

	tableData := pterm.TableData{
		{"When", "ID", "Payee", "Outcome", "Error"},
	}
	for _, c := range entries {
		tableData = append(tableData, []string{
			c.CreatedAt.Local().Format(constants.TimeFormat),
			fmt.Sprintf("%d", c.TransactionID),
			utils.Truncate(c.Payee, constants.MaxPayeeLen),
			colorOutcome(c.Outcome),
			orDash(c.Error),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("All time: %d cleared, %d rolled back\n", committed, reverted)
	return nil
}

func colorOutcome(o store.Outcome) string {
	switch o {
	case store.OutcomeCommitted:
		return pterm.Green("cleared")
	case store.OutcomeReverted:
		return pterm.Red("rolled back")
	default:
		return string(o)
	}
}
