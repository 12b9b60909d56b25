package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/hance08/lunchbox/internal/constants"
	"github.com/hance08/lunchbox/internal/model"
	"github.com/hance08/lunchbox/internal/review"
	"github.com/hance08/lunchbox/internal/ui"
	"github.com/hance08/lunchbox/internal/utils"
	"github.com/pterm/pterm"
)

const dayTitleLayout = "Monday, Jan 2"

// CategoryMarker is the coloured glyph shown in front of each row.
func CategoryMarker(c review.Category) string {
	switch c {
	case review.CategoryCleared:
		return pterm.Green("✔")
	case review.CategoryRecurringCleared:
		return pterm.Green("↻")
	case review.CategoryUncleared:
		return pterm.Yellow("○")
	case review.CategoryPending:
		return pterm.Gray("…")
	default:
		return pterm.Gray("·")
	}
}

// ReviewRows turns transactions into table rows, header included.
func ReviewRows(txs []model.Transaction) pterm.TableData {
	data := pterm.TableData{
		{"", "ID", "Payee", "Amount", "Category", "Account", "Tags"},
	}

	for _, tx := range txs {
		amount := utils.FormatAmount(tx.Amount, tx.Currency)
		if tx.Amount.IsNegative() {
			amount = pterm.Green(amount)
		}

		category := tx.CategoryName
		if category == "" {
			category = "-"
		}
		account := tx.AccountName()
		if account == "" {
			account = "-"
		}

		data = append(data, []string{
			CategoryMarker(review.Classify(tx)),
			fmt.Sprintf("%d", tx.ID),
			utils.Truncate(review.Subtitle(tx), constants.MaxPayeeLen),
			amount,
			category,
			account,
			tagNames(tx.Tags),
		})
	}
	return data
}

// RenderReview prints the pending list followed by one section per day.
func RenderReview(title string, v review.View) error {
	ui.PrintL1Title("%s", title)

	if v.IsEmpty() {
		pterm.Info.Println("No transactions found")
		return nil
	}

	if len(v.Pending) > 0 {
		pterm.DefaultSection.WithLevel(2).Printf("Pending (%d)", len(v.Pending))
		if err := renderRows(v.Pending); err != nil {
			return err
		}
	}

	toReview := 0
	for _, day := range v.Days {
		pterm.DefaultSection.WithLevel(2).Println(day.Date.In(time.UTC).Format(dayTitleLayout))
		if err := renderRows(day.Transactions); err != nil {
			return err
		}
		for _, tx := range day.Transactions {
			if review.CanConfirm(tx) {
				toReview++
			}
		}
	}

	pterm.Println()
	pterm.Info.Printf("%d transactions, %d pending, %d left to review\n", v.Len(), len(v.Pending), toReview)
	return nil
}

func renderRows(txs []model.Transaction) error {
	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(ReviewRows(txs)).
		Render()
}

func tagNames(tags []model.Tag) string {
	if len(tags) == 0 {
		return ""
	}
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.Name
	}
	return strings.Join(names, ", ")
}
