package month

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

const (
	KeyLayout   = "2006-01"
	TitleLayout = "Jan 2006"
)

// Range is an inclusive calendar month boundary pair.
type Range struct {
	Start civil.Date
	End   civil.Date
}

// Of returns the month containing t.
func Of(t time.Time) Range {
	return OfDate(civil.DateOf(t))
}

func OfDate(d civil.Date) Range {
	start := civil.Date{Year: d.Year, Month: d.Month, Day: 1}
	end := civil.DateOf(start.In(time.UTC).AddDate(0, 1, -1))
	return Range{Start: start, End: end}
}

// Parse accepts "YYYY-MM" or a full "YYYY-MM-DD" date and returns its month.
func Parse(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if d, err := civil.ParseDate(s); err == nil {
		return OfDate(d), nil
	}
	t, err := time.Parse(KeyLayout, s)
	if err != nil {
		return Range{}, fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	return Of(t), nil
}

// ParseOrCurrent parses s, or returns the month containing now when s is empty.
func ParseOrCurrent(s string, now time.Time) (Range, error) {
	if strings.TrimSpace(s) == "" {
		return Of(now), nil
	}
	return Parse(s)
}

// Key identifies the month, e.g. "2026-10".
func (r Range) Key() string {
	return fmt.Sprintf("%04d-%02d", r.Start.Year, int(r.Start.Month))
}

func (r Range) Title() string {
	return r.Start.In(time.UTC).Format(TitleLayout)
}

func (r Range) Contains(d civil.Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

func (r Range) Previous() Range {
	return Of(r.Start.In(time.UTC).AddDate(0, -1, 0))
}

func (r Range) Next() Range {
	return Of(r.Start.In(time.UTC).AddDate(0, 1, 0))
}

func (r Range) String() string {
	return r.Start.String() + ".." + r.End.String()
}

// Choices lists every month from January of now's year up to now's month,
// most recent first.
func Choices(now time.Time) []Range {
	current := Of(now)
	first := OfDate(civil.Date{Year: current.Start.Year, Month: time.January, Day: 1})

	var out []Range
	for r := current; !r.Start.Before(first.Start); r = r.Previous() {
		out = append(out, r)
	}
	return out
}
