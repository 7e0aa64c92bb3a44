// Package valueobjects holds immutable values shared by the journal domain.
package valueobjects

import (
	"fmt"
	"time"
)

// DateKeyLayout is the canonical YYYY-MM-DD layout of a DateKey.
const DateKeyLayout = "2006-01-02"

// DateKey identifies one calendar day as "YYYY-MM-DD". It carries no zone:
// it is whatever wall-clock date the caller's location reported.
type DateKey string

// NewDateKey returns the calendar date of t in t's own location.
// Pass now.In(loc) to get the date for a specific time zone.
func NewDateKey(t time.Time) DateKey {
	return DateKey(fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day()))
}

// Today is the key for the calendar date of now.
func Today(now time.Time) DateKey {
	return NewDateKey(now)
}

// ParseDateKey validates s and returns it as a DateKey.
func ParseDateKey(s string) (DateKey, error) {
	if _, err := time.Parse(DateKeyLayout, s); err != nil {
		return "", fmt.Errorf("invalid date key %q: %w", s, err)
	}
	return DateKey(s), nil
}

// String implements fmt.Stringer.
func (k DateKey) String() string {
	return string(k)
}

// Valid reports whether the key is a real calendar date.
func (k DateKey) Valid() bool {
	_, err := time.Parse(DateKeyLayout, string(k))
	return err == nil
}

// Time returns local midnight of the key's date in loc. Time of day is not
// carried by a key, so NewDateKey(k.Time(loc)) == k.
func (k DateKey) Time(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateKeyLayout, string(k), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", string(k), err)
	}
	return t, nil
}

// civil is the key as UTC midnight. Day arithmetic happens here so that DST
// transitions in the caller's zone never skip or repeat a day.
func (k DateKey) civil() (time.Time, bool) {
	t, err := time.Parse(DateKeyLayout, string(k))
	return t, err == nil
}

// AddDays moves the key n calendar days. Invalid keys are returned unchanged.
func (k DateKey) AddDays(n int) DateKey {
	t, ok := k.civil()
	if !ok {
		return k
	}
	return NewDateKey(t.AddDate(0, 0, n))
}

// DaysSince returns the number of calendar days from other to k
// (positive when k is later). ok is false if either key is invalid.
func (k DateKey) DaysSince(other DateKey) (days int, ok bool) {
	a, okA := k.civil()
	b, okB := other.civil()
	if !okA || !okB {
		return 0, false
	}
	return int(a.Sub(b).Hours() / 24), true
}

// PastKeys returns n keys starting at today and going back one calendar day
// at a time: strictly descending, no duplicates.
func PastKeys(now time.Time, n int) []DateKey {
	if n <= 0 {
		return []DateKey{}
	}
	today := Today(now)
	keys := make([]DateKey, n)
	for i := 0; i < n; i++ {
		keys[i] = today.AddDays(-i)
	}
	return keys
}

// DateRange returns every key from start through end inclusive, ascending.
// It returns an empty slice when end precedes start.
func DateRange(start, end DateKey) []DateKey {
	span, ok := end.DaysSince(start)
	if !ok || span < 0 {
		return []DateKey{}
	}
	keys := make([]DateKey, 0, span+1)
	for i := 0; i <= span; i++ {
		keys = append(keys, start.AddDays(i))
	}
	return keys
}

// IsToday reports whether k is the calendar date of now.
func IsToday(k DateKey, now time.Time) bool {
	return k == Today(now)
}

// IsPast reports whether k sorts before today. Canonical keys compare
// lexicographically in chronological order.
func IsPast(k DateKey, now time.Time) bool {
	return k < Today(now)
}

// DisplayLabel renders a key for list headers: "Today", "Yesterday", or the
// long form "Monday, Jan 15". Only the calendar date of now is consulted.
func DisplayLabel(k DateKey, now time.Time) string {
	today := Today(now)
	switch k {
	case today:
		return "Today"
	case today.AddDays(-1):
		return "Yesterday"
	}
	t, ok := k.civil()
	if !ok {
		return string(k)
	}
	return t.Format("Monday, Jan 2")
}

// ShortLabel renders a key as "Jan 15, 2024".
func ShortLabel(k DateKey) string {
	t, ok := k.civil()
	if !ok {
		return string(k)
	}
	return t.Format("Jan 2, 2006")
}

// RelativeLabel renders the distance from k to today in coarse units.
func RelativeLabel(k DateKey, now time.Time) string {
	days, ok := Today(now).DaysSince(k)
	if !ok {
		return string(k)
	}
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	case days < 365:
		return fmt.Sprintf("%d months ago", days/30)
	default:
		return fmt.Sprintf("%d years ago", days/365)
	}
}
