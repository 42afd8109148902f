package domain

import (
	"fmt"
	"strings"
	"time"
)

// Period is a month/year reporting window.
type Period struct {
	Month time.Month
	Year  int
}

// NewPeriod validates the month/year pair.
func NewPeriod(month, year int) (Period, error) {
	if month < 1 || month > 12 || year < 2000 || year > 2100 {
		return Period{}, ErrInvalidPeriod
	}
	return Period{Month: time.Month(month), Year: year}, nil
}

// Start is the first day of the period.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End is the last day of the period. Day zero of the next month normalizes
// to the correct 28/29/30/31 length, leap years included.
func (p Period) End() time.Time {
	return time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, time.UTC)
}

// Contains reports whether t falls within [Start, End], date-only.
func (p Period) Contains(t time.Time) bool {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(p.Start()) && !d.After(p.End())
}

// CurrentPeriod is the period containing today.
func CurrentPeriod() Period {
	now := time.Now()
	return Period{Month: now.Month(), Year: now.Year()}
}

// IsZero reports whether no period was selected.
func (p Period) IsZero() bool {
	return p.Month == 0 && p.Year == 0
}

var monthNames = map[time.Month]string{
	time.January:   "Januari",
	time.February:  "Februari",
	time.March:     "Maret",
	time.April:     "April",
	time.May:       "Mei",
	time.June:      "Juni",
	time.July:      "Juli",
	time.August:    "Agustus",
	time.September: "September",
	time.October:   "Oktober",
	time.November:  "November",
	time.December:  "Desember",
}

// Label renders the period header, e.g. "Maret 2025".
func (p Period) Label() string {
	return fmt.Sprintf("%s %d", monthNames[p.Month], p.Year)
}

// Day-first forms come before ISO: the grid accepts "31-03-2025" and
// "31/03/2025" the way the operators write dates by hand.
var dateFormats = []string{
	"02-01-2006",
	"02/01/2006",
	"2-1-2006",
	"2/1/2006",
	"2006-01-02",
	"2006/01/02",
	"02 January 2006",
}

// ParseDate parses a journal date cell. The bool is false when the text is
// blank or matches no known form; callers drop such entries from period
// views without erroring.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	// Timestamps round-trip through the backup as RFC3339; keep the date part.
	if len(s) > 10 {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FilterByPeriod returns the entries whose date parses and falls inside p.
// Unparseable dates are excluded, not errored; the store is untouched.
func FilterByPeriod(entries []*JournalEntry, p Period) []*JournalEntry {
	out := make([]*JournalEntry, 0, len(entries))
	for _, e := range entries {
		t, ok := ParseDate(e.Date)
		if !ok || !p.Contains(t) {
			continue
		}
		out = append(out, e)
	}
	return out
}
