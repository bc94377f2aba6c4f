package booking

import (
	"errors"
	"time"
)

// Errors returned by DateSet.Add. The tour form shows them inline next to
// the date picker.
var (
	ErrPastDate      = errors.New("date is before today")
	ErrDuplicateDate = errors.New("date already added")
)

// DateSet is the ordered set of calendar days edited by the tour form.
// Days are normalized to UTC midnight on the way in; insertion order is
// preserved because that is the order the upstream stores and the form
// displays.
type DateSet struct {
	days []time.Time
}

// normalizeDay strips the time of day, keeping the UTC calendar date.
func normalizeDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// NewDateSet builds a set from existing tour dates, deduplicating by
// calendar day while keeping first-seen order. Used when seeding the edit
// form from a stored tour.
func NewDateSet(dates []time.Time) *DateSet {
	s := &DateSet{}
	for _, d := range dates {
		day := normalizeDay(d)
		if !s.contains(day) {
			s.days = append(s.days, day)
		}
	}
	return s
}

// ParseDateSet rebuilds a set from the canonical strings round-tripped
// through the form's hidden fields. Unparseable values are dropped.
func ParseDateSet(vals []string) *DateSet {
	s := &DateSet{}
	for _, v := range vals {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			// The form also posts bare days from the date input.
			t, err = time.Parse(DayFormat, v)
			if err != nil {
				continue
			}
		}
		day := normalizeDay(t)
		if !s.contains(day) {
			s.days = append(s.days, day)
		}
	}
	return s
}

func (s *DateSet) contains(day time.Time) bool {
	for _, d := range s.days {
		if d.Equal(day) {
			return true
		}
	}
	return false
}

// Add inserts d at the end of the set. It fails when d's calendar day is
// before today (as of "now") or when the same day is already present.
func (s *DateSet) Add(d, now time.Time) error {
	day := normalizeDay(d)
	if day.Before(normalizeDay(now)) {
		return ErrPastDate
	}
	if s.contains(day) {
		return ErrDuplicateDate
	}
	s.days = append(s.days, day)
	return nil
}

// Remove deletes the day at position i, reporting whether i was in range.
func (s *DateSet) Remove(i int) bool {
	if i < 0 || i >= len(s.days) {
		return false
	}
	s.days = append(s.days[:i], s.days[i+1:]...)
	return true
}

// Len returns the number of days in the set.
func (s *DateSet) Len() int { return len(s.days) }

// Days returns the set in insertion order.
func (s *DateSet) Days() []time.Time {
	out := make([]time.Time, len(s.days))
	copy(out, s.days)
	return out
}

// Canonical serializes the set for submission: each day as its absolute
// UTC-midnight instant in RFC3339. Re-parsing the result yields the same
// set of calendar days regardless of order.
func (s *DateSet) Canonical() []string {
	out := make([]string, len(s.days))
	for i, d := range s.days {
		out[i] = d.Format(time.RFC3339)
	}
	return out
}
