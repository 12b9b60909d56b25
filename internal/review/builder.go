package review

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/hance08/lunchbox/internal/model"
)

// Day is one settled section of the review, keyed by its ISO date.
type Day struct {
	Key          string
	Date         civil.Date
	Transactions []model.Transaction
}

// View is the derived review model. Days are ordered by key, most recent first.
type View struct {
	Pending []model.Transaction
	Days    []Day
}

// Build partitions transactions into the pending attention list and the
// day-grouped settled sections. It never mutates its input.
func Build(transactions []model.Transaction) View {
	pending := make([]model.Transaction, 0)
	byDay := make(map[string][]model.Transaction)
	dates := make(map[string]civil.Date)

	for _, tx := range transactions {
		switch {
		case IsPending(tx):
			pending = append(pending, tx)
		case tx.IsGroupMember():
			// represented through its group
		default:
			key := tx.DayKey()
			byDay[key] = append(byDay[key], tx)
			dates[key] = tx.Date
		}
	}

	slices.SortStableFunc(pending, compareByDayThenBase)

	keys := make([]string, 0, len(byDay))
	for key := range byDay {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(a, b string) int { return strings.Compare(b, a) })

	days := make([]Day, 0, len(keys))
	for _, key := range keys {
		txs := byDay[key]
		slices.SortStableFunc(txs, compareByCreatedAt)
		days = append(days, Day{Key: key, Date: dates[key], Transactions: txs})
	}

	return View{Pending: pending, Days: days}
}

// IsPending reports whether a transaction belongs in the pending list.
func IsPending(tx model.Transaction) bool {
	return tx.Status == model.StatusPending || tx.IsPending
}

// compareByDayThenBase orders by day descending, then base amount descending.
func compareByDayThenBase(a, b model.Transaction) int {
	if c := strings.Compare(b.DayKey(), a.DayKey()); c != 0 {
		return c
	}
	return b.ToBase.Cmp(a.ToBase)
}

// compareByCreatedAt orders newest first; a missing timestamp sorts last.
func compareByCreatedAt(a, b model.Transaction) int {
	switch {
	case a.CreatedAt == nil && b.CreatedAt == nil:
		return 0
	case a.CreatedAt == nil:
		return 1
	case b.CreatedAt == nil:
		return -1
	default:
		return b.CreatedAt.Compare(*a.CreatedAt)
	}
}

func (v View) Keys() []string {
	keys := make([]string, len(v.Days))
	for i, d := range v.Days {
		keys[i] = d.Key
	}
	return keys
}

func (v View) Day(key string) (Day, bool) {
	for _, d := range v.Days {
		if d.Key == key {
			return d, true
		}
	}
	return Day{}, false
}

// Settled flattens the day sections in display order.
func (v View) Settled() []model.Transaction {
	var out []model.Transaction
	for _, d := range v.Days {
		out = append(out, d.Transactions...)
	}
	return out
}

func (v View) Len() int {
	n := len(v.Pending)
	for _, d := range v.Days {
		n += len(d.Transactions)
	}
	return n
}

func (v View) IsEmpty() bool {
	return v.Len() == 0
}

// Find looks a transaction up among the displayed entries.
func (v View) Find(id int64) (model.Transaction, bool) {
	for _, tx := range v.Pending {
		if tx.ID == id {
			return tx, true
		}
	}
	for _, d := range v.Days {
		for _, tx := range d.Transactions {
			if tx.ID == id {
				return tx, true
			}
		}
	}
	return model.Transaction{}, false
}

// Fingerprint identifies a collection by id and status; the view only needs
// rebuilding when it changes.
func Fingerprint(transactions []model.Transaction) string {
	parts := make([]string, len(transactions))
	for i, tx := range transactions {
		parts[i] = fmt.Sprintf("%d:%s", tx.ID, tx.Status)
	}
	return strings.Join(parts, ",")
}

// Validate reports transactions missing fields the builder relies on.
func Validate(transactions []model.Transaction) error {
	var errs []error
	for i, tx := range transactions {
		if tx.ID == 0 {
			errs = append(errs, fmt.Errorf("transaction #%d: missing id", i))
		}
		if !tx.Date.IsValid() {
			errs = append(errs, fmt.Errorf("transaction %d: missing or invalid date", tx.ID))
		}
	}
	return errors.Join(errs...)
}
