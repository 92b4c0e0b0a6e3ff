// Package period implements year-month parsing and month-based filtering of
// dated record lists.
package period

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Period is a calendar year-month. Month is 1-indexed; values outside 1-12
// are representable but match no real date.
type Period struct {
	Year  int
	Month int
}

// Parse parses a "YYYY-MM" string. The canonical form zero-pads the month,
// but a single-digit month is accepted.
func Parse(raw string) (Period, error) {
	parts := strings.Split(raw, "-")
	if len(parts) != 2 {
		return Period{}, fmt.Errorf("invalid period %q: want YYYY-MM", raw)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q: year is not a number", raw)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q: month is not a number", raw)
	}
	return Period{Year: year, Month: month}, nil
}

// Current returns the period containing the given instant.
func Current(now time.Time) Period {
	return Period{Year: now.Year(), Month: int(now.Month())}
}

// String renders the canonical zero-padded "YYYY-MM" form.
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// Contains reports whether t falls inside the period's calendar month.
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && int(t.Month()) == p.Month
}

// Dated is any record carrying a calendar date.
type Dated interface {
	When() time.Time
}

// FilterByMonth returns the subsequence of list whose dates fall in the
// month named by raw, preserving input order. A malformed period string
// yields an empty result rather than an error: every record fails the
// comparison, none match.
func FilterByMonth[T Dated](list []T, raw string) []T {
	out := []T{}
	p, err := Parse(raw)
	if err != nil {
		return out
	}
	for _, rec := range list {
		if p.Contains(rec.When()) {
			out = append(out, rec)
		}
	}
	return out
}
