package views

import (
	"github.com/hance08/lunchbox/internal/month"
	"github.com/pterm/pterm"
)

func RenderMonths(choices []month.Range, current month.Range) error {
	tableData := pterm.TableData{
		{"Key", "Month", "From", "To"},
	}
	for _, r := range choices {
		title := r.Title()
		if r == current {
			title = pterm.Cyan(title + " (current)")
		}
		tableData = append(tableData, []string{r.Key(), title, r.Start.String(), r.End.String()})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
