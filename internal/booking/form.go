// Package booking holds the form logic of the admin UI as pure functions:
// the reservation form's dependent-field derivation (tour → selectable
// dates → price) and the tour form's available-date set. Nothing in here
// performs I/O, which is what keeps the behavior testable without
// rendering a page.
package booking

import (
	"strconv"
	"strings"
	"time"

	"github.com/rmonterol/tour-admin/internal/model"
)

// DayFormat is how calendar days travel through forms and query strings.
const DayFormat = "2006-01-02"

// Day reduces an instant to its calendar day in UTC. The upstream stores
// dates as absolute instants; only the UTC day is meaningful here.
func Day(t time.Time) string {
	return t.UTC().Format(DayFormat)
}

// FormState is everything the reservation form derives from its two
// inputs: the days the chosen tour can be booked and the price preview.
type FormState struct {
	Dates []string `json:"dates"`
	Price float64  `json:"price"`
}

// DeriveFormState recomputes the derived fields from the selected tour and
// the people count. It is called on tour change, on people change and when
// seeding the edit form, always from scratch, so a previously chosen date
// can never survive a tour switch by accident.
//
// With no tour selected there are no selectable dates and the price is 0.
// Otherwise price = tour price * people, with people coerced to at least 1
// for the preview (final submission still validates people >= 1).
func DeriveFormState(tour *model.Tour, people int) FormState {
	if tour == nil {
		return FormState{Dates: []string{}}
	}
	dates := make([]string, 0, len(tour.AvailableDates))
	seen := make(map[string]bool, len(tour.AvailableDates))
	for _, d := range tour.AvailableDates {
		day := Day(d)
		if !seen[day] {
			seen[day] = true
			dates = append(dates, day)
		}
	}
	return FormState{
		Dates: dates,
		Price: tour.Price * float64(CoercePeople(people)),
	}
}

// DeriveEditState seeds the form for an existing reservation. The
// reservation's own day is merged into the selectable set in
// chronological position even when the tour's dates changed server-side
// since the booking was made; otherwise the stored choice could not
// render. Picking a different day is still constrained to the tour's
// current list plus this one.
func DeriveEditState(tour *model.Tour, current time.Time, people int) FormState {
	st := DeriveFormState(tour, people)
	if current.IsZero() {
		return st
	}
	day := Day(current)
	for _, d := range st.Dates {
		if d == day {
			return st
		}
	}
	i := 0
	for i < len(st.Dates) && st.Dates[i] < day {
		i++
	}
	st.Dates = append(st.Dates[:i], append([]string{day}, st.Dates[i:]...)...)
	return st
}

// CoercePeople clamps a party size to the minimum of 1.
func CoercePeople(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// ParsePeople converts raw form input into a party size. Non-numeric or
// sub-1 input previews as a single person.
func ParsePeople(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 1
	}
	return CoercePeople(n)
}

// FieldErrors maps form field names to inline error text. A non-empty map
// blocks submission; no upstream call is made.
type FieldErrors map[string]string

// Any reports whether at least one field failed validation.
func (fe FieldErrors) Any() bool { return len(fe) > 0 }

// ValidateReservation checks a reservation payload against the currently
// selectable dates. Customer, tour, date and people are all required; the
// date must be one of the days the form offered.
func ValidateReservation(in model.ReservationInput, selectable []string) FieldErrors {
	fe := FieldErrors{}
	if in.CustomerID == "" {
		fe["customerId"] = "customer is required"
	}
	if in.TourID == "" {
		fe["tourId"] = "tour is required"
	}
	if in.People < 1 {
		fe["people"] = "people must be at least 1"
	}
	if in.Date == "" {
		fe["date"] = "date is required"
	} else {
		found := false
		for _, d := range selectable {
			if d == in.Date {
				found = true
				break
			}
		}
		if !found {
			fe["date"] = "date is not available for this tour"
		}
	}
	switch in.Status {
	case "", model.StatusPending, model.StatusConfirmed, model.StatusCancelled:
	default:
		fe["status"] = "unknown status"
	}
	return fe
}

// ParseOptionalFloat maps an empty numeric input to "unset" instead of
// zero, per the tour form contract. Invalid input is also unset; the
// upstream rejects a tour without a price.
func ParseOptionalFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// ParseOptionalInt is ParseOptionalFloat for integer fields.
func ParseOptionalInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
