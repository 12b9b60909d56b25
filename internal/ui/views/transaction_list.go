package views

import (
	"fmt"

	"github.com/hance08/lunchbox/internal/model"
	"github.com/pterm/pterm"
)

type TransactionListItem struct {
	ID      int64
	Date    string
	Payee   string
	Account string
	Amount  string
	Status  model.Status
	Pending bool
}

type TransactionListView struct{}

func NewTransactionListView() *TransactionListView {
	return &TransactionListView{}
}

func (v *TransactionListView) Render(title string, items []TransactionListItem) error {
	if len(items) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	pterm.DefaultSection.Println(title)

	tableData := pterm.TableData{
		{"ID", "Date", "Payee", "Account", "Amount", "Status"},
	}

	for _, item := range items {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", item.ID),
			item.Date,
			item.Payee,
			item.Account,
			item.Amount,
			colorStatus(item.Status, item.Pending),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(items))
	return nil
}

func colorStatus(status model.Status, pending bool) string {
	if pending {
		return pterm.Gray("pending")
	}
	switch status {
	case model.StatusCleared:
		return pterm.Green(string(status))
	case model.StatusUncleared:
		return pterm.Yellow(string(status))
	case model.StatusPending:
		return pterm.Gray(string(status))
	default:
		return string(status)
	}
}
