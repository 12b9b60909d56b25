package review

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hance08/lunchbox/internal/model"
)

type Category int

const (
	CategoryOther Category = iota
	CategoryCleared
	CategoryRecurringCleared
	CategoryUncleared
	CategoryPending
)

func (c Category) String() string {
	switch c {
	case CategoryCleared:
		return "Cleared"
	case CategoryRecurringCleared:
		return "Recurring"
	case CategoryUncleared:
		return "Uncleared"
	case CategoryPending:
		return "Pending"
	default:
		return "Other"
	}
}

// Classify maps status, recurring type and the pending flag onto the
// display category used for the row marker.
func Classify(tx model.Transaction) Category {
	switch {
	case tx.IsPending:
		return CategoryPending
	case tx.Status == model.StatusCleared && tx.RecurringType == nil:
		return CategoryCleared
	case tx.Status == model.StatusCleared && *tx.RecurringType == model.RecurringCleared:
		return CategoryRecurringCleared
	case tx.Status == model.StatusUncleared:
		return CategoryUncleared
	case tx.Status == model.StatusPending:
		return CategoryPending
	default:
		return CategoryOther
	}
}

// Subtitle shows the recurring payee for matched recurring items.
func Subtitle(tx model.Transaction) string {
	if tx.RecurringPayee != nil && tx.RecurringType != nil && *tx.RecurringType == model.RecurringCleared {
		return *tx.RecurringPayee
	}
	return tx.Payee
}

// CanConfirm reports whether the clear action applies to tx.
func CanConfirm(tx model.Transaction) bool {
	return tx.Status != model.StatusCleared && tx.Status != model.StatusPending && !tx.IsPending
}

// Keywords are the searchable strings of a transaction.
func Keywords(tx model.Transaction) []string {
	candidates := []string{string(tx.Status), tx.Payee, "", tx.Notes, tx.DisplayNote}
	if tx.RecurringPayee != nil {
		candidates[2] = *tx.RecurringPayee
	}

	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// Filter keeps transactions where every term of query matches a keyword.
func Filter(transactions []model.Transaction, query string) []model.Transaction {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return transactions
	}

	out := make([]model.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if matchesAll(Keywords(tx), terms) {
			out = append(out, tx)
		}
	}
	return out
}

func matchesAll(keywords []string, terms []string) bool {
	haystack := strings.ToLower(strings.Join(keywords, "\n"))
	for _, term := range terms {
		if !strings.Contains(haystack, term) {
			return false
		}
	}
	return true
}

// PayeeURL links to every transaction of the payee within its month in the web app.
func PayeeURL(webURL string, tx model.Transaction) string {
	q := url.Values{}
	q.Set("match", "all")
	q.Set("payee_exact", tx.Payee)
	q.Set("time", "month")

	return fmt.Sprintf("%s/transactions/%04d/%02d?%s",
		strings.TrimRight(webURL, "/"), tx.Date.Year, int(tx.Date.Month), q.Encode())
}
