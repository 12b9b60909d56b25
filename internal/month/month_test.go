package month

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
)

func TestOf(t *testing.T) {
	tests := []struct {
		name      string
		at        time.Time
		wantStart string
		wantEnd   string
	}{
		{"mid month", time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC), "2026-10-01", "2026-10-31"},
		{"leap february", time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC), "2024-02-01", "2024-02-29"},
		{"plain february", time.Date(2026, time.February, 28, 23, 0, 0, 0, time.UTC), "2026-02-01", "2026-02-28"},
		{"december", time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC), "2026-12-01", "2026-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Of(tt.at)
			if r.Start.String() != tt.wantStart || r.End.String() != tt.wantEnd {
				t.Errorf("Of() = %s, want %s..%s", r, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		wantKey string
		wantErr bool
	}{
		{"2026-10", "2026-10", false},
		{" 2026-03 ", "2026-03", false},
		{"2026-10-17", "2026-10", false},
		{"10/2026", "", true},
		{"", "", true},
		{"2026-13", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && r.Key() != tt.wantKey {
				t.Errorf("Parse(%q) key = %s, want %s", tt.input, r.Key(), tt.wantKey)
			}
		})
	}
}

func TestChoices(t *testing.T) {
	now := time.Date(2026, time.April, 9, 0, 0, 0, 0, time.UTC)

	got := Choices(now)

	want := []string{"2026-04", "2026-03", "2026-02", "2026-01"}
	if len(got) != len(want) {
		t.Fatalf("expected %d choices, got %d", len(want), len(got))
	}
	for i, r := range got {
		if r.Key() != want[i] {
			t.Errorf("choice %d = %s, want %s", i, r.Key(), want[i])
		}
	}
}

func TestChoicesInJanuary(t *testing.T) {
	got := Choices(time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC))
	if len(got) != 1 || got[0].Key() != "2026-01" {
		t.Fatalf("unexpected choices: %v", got)
	}
}

func TestRangeNavigationAndContains(t *testing.T) {
	r, err := Parse("2026-01")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if r.Previous().Key() != "2025-12" {
		t.Errorf("previous = %s", r.Previous().Key())
	}
	if r.Next().Key() != "2026-02" {
		t.Errorf("next = %s", r.Next().Key())
	}
	if r.Title() != "Jan 2026" {
		t.Errorf("title = %s", r.Title())
	}
	if !r.Contains(civil.Date{Year: 2026, Month: time.January, Day: 31}) {
		t.Error("expected last day to be contained")
	}
	if r.Contains(civil.Date{Year: 2026, Month: time.February, Day: 1}) {
		t.Error("did not expect next month to be contained")
	}
}

func TestParseOrCurrent(t *testing.T) {
	now := time.Date(2026, time.October, 15, 9, 0, 0, 0, time.UTC)

	r, err := ParseOrCurrent("  ", now)
	if err != nil || r.Key() != "2026-10" {
		t.Errorf("ParseOrCurrent(blank) = %v, %v", r.Key(), err)
	}

	r, err = ParseOrCurrent("2026-03", now)
	if err != nil || r.Key() != "2026-03" {
		t.Errorf("ParseOrCurrent(2026-03) = %v, %v", r.Key(), err)
	}

	if _, err := ParseOrCurrent("march", now); err == nil {
		t.Error("expected an error for an unparseable month")
	}
}
