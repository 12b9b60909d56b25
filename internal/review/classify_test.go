package review

import (
	"reflect"
	"strings"
	"testing"

	"github.com/hance08/lunchbox/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		tx   model.Transaction
		want Category
	}{
		{"cleared", tx(1, "2026-10-01", withStatus(model.StatusCleared)), CategoryCleared},
		{"cleared recurring", tx(1, "2026-10-01", withStatus(model.StatusCleared), withRecurring(model.RecurringCleared, "")), CategoryRecurringCleared},
		{"cleared suggested recurring", tx(1, "2026-10-01", withStatus(model.StatusCleared), withRecurring(model.RecurringSuggested, "")), CategoryOther},
		{"uncleared", tx(1, "2026-10-01"), CategoryUncleared},
		{"uncleared recurring", tx(1, "2026-10-01", withRecurring(model.RecurringCleared, "")), CategoryUncleared},
		{"pending status", tx(1, "2026-10-01", withStatus(model.StatusPending)), CategoryPending},
		{"pending flag", tx(1, "2026-10-01", withPendingFlag()), CategoryPending},
		{"recurring suggested", tx(1, "2026-10-01", withStatus(model.StatusRecurringSuggested)), CategoryOther},
		{"unknown status", tx(1, "2026-10-01", withStatus("something")), CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.tx); got != tt.want {
				t.Errorf("Classify() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSubtitle(t *testing.T) {
	plain := tx(1, "2026-10-01", withPayee("AMZN MKTP"))
	if got := Subtitle(plain); got != "AMZN MKTP" {
		t.Errorf("Subtitle() = %q", got)
	}

	recurring := tx(1, "2026-10-01", withPayee("NFLX*1234"), withRecurring(model.RecurringCleared, "Netflix"))
	if got := Subtitle(recurring); got != "Netflix" {
		t.Errorf("Subtitle() = %q, want Netflix", got)
	}

	suggested := tx(1, "2026-10-01", withPayee("NFLX*1234"), withRecurring(model.RecurringSuggested, "Netflix"))
	if got := Subtitle(suggested); got != "NFLX*1234" {
		t.Errorf("Subtitle() = %q, want raw payee", got)
	}
}

func TestCanConfirm(t *testing.T) {
	tests := []struct {
		name string
		tx   model.Transaction
		want bool
	}{
		{"uncleared", tx(1, "2026-10-01"), true},
		{"recurring", tx(1, "2026-10-01", withStatus(model.StatusRecurring)), true},
		{"cleared", tx(1, "2026-10-01", withStatus(model.StatusCleared)), false},
		{"pending flag", tx(1, "2026-10-01", withPendingFlag()), false},
		{"pending status without flag", tx(1, "2026-10-01", withStatus(model.StatusPending)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanConfirm(tt.tx); got != tt.want {
				t.Errorf("CanConfirm() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeywordsAndFilter(t *testing.T) {
	a := tx(1, "2026-10-01", withPayee("Whole Foods"))
	a.Notes = "weekly groceries"
	b := tx(2, "2026-10-01", withPayee("NFLX"), withRecurring(model.RecurringCleared, "Netflix"))
	c := tx(3, "2026-10-01", withPayee("Shell"), withStatus(model.StatusCleared))

	if got := Keywords(a); !reflect.DeepEqual(got, []string{"uncleared", "Whole Foods", "weekly groceries"}) {
		t.Errorf("Keywords() = %v", got)
	}

	all := []model.Transaction{a, b, c}
	tests := []struct {
		query string
		want  []int64
	}{
		{"", []int64{1, 2, 3}},
		{"netflix", []int64{2}},
		{"GROCERIES", []int64{1}},
		{"uncleared foods", []int64{1}},
		{"cleared", []int64{1, 2, 3}},
		{"nothing-matches", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := ids(Filter(all, tt.query)); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestPayeeURL(t *testing.T) {
	got := PayeeURL("https://my.lunchmoney.app/", tx(1, "2026-03-09", withPayee("Joe's Cafe")))

	if !strings.HasPrefix(got, "https://my.lunchmoney.app/transactions/2026/03?") {
		t.Errorf("unexpected prefix: %s", got)
	}
	if !strings.Contains(got, "payee_exact=Joe%27s+Cafe") {
		t.Errorf("payee not encoded: %s", got)
	}
	if !strings.Contains(got, "match=all") || !strings.HasSuffix(got, "time=month") {
		t.Errorf("missing query parameters: %s", got)
	}
}
