package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/hance08/lunchbox/internal/model"
	"github.com/hance08/lunchbox/internal/month"
	"github.com/hance08/lunchbox/internal/review"
	"github.com/hance08/lunchbox/internal/utils"
)

type ReviewAction string

const (
	ActionClear   ReviewAction = "clear"
	ActionShow    ReviewAction = "show"
	ActionSearch  ReviewAction = "search"
	ActionMonth   ReviewAction = "month"
	ActionRefresh ReviewAction = "refresh"
	ActionQuit    ReviewAction = "quit"
)

func PromptReviewAction(canClear bool) (ReviewAction, error) {
	action := ActionQuit
	if canClear {
		action = ActionClear
	}

	var opts []huh.Option[ReviewAction]
	if canClear {
		opts = append(opts, huh.NewOption("Clear a transaction", ActionClear))
	}
	opts = append(opts,
		huh.NewOption("Show details", ActionShow),
		huh.NewOption("Search", ActionSearch),
		huh.NewOption("Switch month", ActionMonth),
		huh.NewOption("Refresh", ActionRefresh),
		huh.NewOption("Quit", ActionQuit),
	)

	err := huh.NewSelect[ReviewAction]().
		Title("What next?").
		Options(opts...).
		Value(&action).
		Run()
	return action, err
}

// PromptMonth lets the user pick one of choices, preselecting current.
func PromptMonth(choices []month.Range, current month.Range) (month.Range, error) {
	selected := current.Key()

	opts := make([]huh.Option[string], len(choices))
	for i, r := range choices {
		opts[i] = huh.NewOption(r.Title(), r.Key())
	}

	err := huh.NewSelect[string]().
		Title("Select month").
		Options(opts...).
		Value(&selected).
		Run()
	if err != nil {
		return month.Range{}, err
	}
	return month.Parse(selected)
}

// PromptTransaction picks one transaction by id.
func PromptTransaction(title string, txs []model.Transaction) (int64, error) {
	if len(txs) == 0 {
		return 0, fmt.Errorf("no transactions to choose from")
	}

	selected := txs[0].ID
	opts := make([]huh.Option[int64], len(txs))
	for i, tx := range txs {
		label := fmt.Sprintf("%s  %-30s %12s  #%d",
			tx.Date.String(),
			utils.Truncate(review.Subtitle(tx), 30),
			utils.FormatAmount(tx.Amount, tx.Currency),
			tx.ID,
		)
		opts[i] = huh.NewOption(label, tx.ID)
	}

	err := huh.NewSelect[int64]().
		Title(title).
		Options(opts...).
		Value(&selected).
		Height(15).
		Run()
	return selected, err
}
