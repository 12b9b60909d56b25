package views

import (
	"fmt"
	"strings"

	"github.com/hance08/lunchbox/internal/constants"
	"github.com/hance08/lunchbox/internal/model"
	"github.com/hance08/lunchbox/internal/review"
	"github.com/hance08/lunchbox/internal/store"
	"github.com/hance08/lunchbox/internal/ui"
	"github.com/hance08/lunchbox/internal/utils"
	"github.com/pterm/pterm"
)

func RenderTransactionDetail(tx model.Transaction, payeeURL string, history []*store.Confirmation) error {
	pterm.Println()
	ui.PrintL2Title("Transaction Info")

	infoData := pterm.TableData{
		{"Field", "Value"},
		{"ID", fmt.Sprintf("%d", tx.ID)},
		{"Date", tx.Date.String()},
		{"Payee", tx.Payee},
		{"Amount", utils.FormatAmount(tx.Amount, tx.Currency)},
		{"Status", colorStatus(tx.Status, tx.IsPending)},
		{"Category", orDash(tx.CategoryName)},
		{"Account", orDash(tx.AccountName())},
		{"Notes", orDash(tx.Notes)},
		{"Tags", orDash(tagNames(tx.Tags))},
	}
	if tx.RecurringPayee != nil {
		infoData = append(infoData, []string{"Recurring", *tx.RecurringPayee})
	}
	if tx.CreatedAt != nil {
		infoData = append(infoData, []string{"Created", tx.CreatedAt.Local().Format(constants.TimeFormat)})
	}

	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render(); err != nil {
		return err
	}

	if review.CanConfirm(tx) {
		pterm.Info.Printf("Clear it with: %s transaction clear %d\n", constants.AppName, tx.ID)
	}
	pterm.Println(pterm.Gray("View payee in Lunch Money: " + payeeURL))

	if len(history) == 0 {
		return nil
	}

	pterm.Println()
	ui.PrintL2Title("Confirmations")
	historyData := pterm.TableData{
		{"When", "Outcome", "Error"},
	}
	for _, c := range history {
		historyData = append(historyData, []string{
			c.CreatedAt.Local().Format(constants.TimeFormat),
			colorOutcome(c.Outcome),
			orDash(c.Error),
		})
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(historyData).
		Render()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
