package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmonterol/tour-admin/internal/model"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDeriveFormState_NoTour(t *testing.T) {
	st := DeriveFormState(nil, 3)
	assert.Empty(t, st.Dates)
	assert.Equal(t, 0.0, st.Price)
}

func TestDeriveFormState_PriceAndDates(t *testing.T) {
	tour := &model.Tour{
		Price: 50,
		AvailableDates: []time.Time{
			day("2030-05-01"),
			day("2030-05-08"),
			// Same calendar day at a different hour must not duplicate.
			day("2030-05-01").Add(9 * time.Hour),
		},
	}

	st := DeriveFormState(tour, 3)
	assert.Equal(t, []string{"2030-05-01", "2030-05-08"}, st.Dates)
	assert.Equal(t, 150.0, st.Price)
}

func TestDeriveFormState_PeopleCoercion(t *testing.T) {
	tour := &model.Tour{Price: 50}

	tests := []struct {
		name   string
		people int
		want   float64
	}{
		{"normal", 2, 100},
		{"zero previews as one", 0, 50},
		{"negative previews as one", -4, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveFormState(tour, tt.people).Price)
		})
	}
}

func TestParsePeople(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"3", 3},
		{" 2 ", 2},
		{"0", 1},
		{"-1", 1},
		{"", 1},
		{"abc", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePeople(tt.in), "input %q", tt.in)
	}
}

func TestDeriveEditState_MergesStoredDate(t *testing.T) {
	tour := &model.Tour{
		Price:          20,
		AvailableDates: []time.Time{day("2030-05-01"), day("2030-05-20")},
	}

	// The reservation's day is gone from the tour: it is merged back in
	// chronological position so the stored choice still renders.
	st := DeriveEditState(tour, day("2030-05-10"), 2)
	assert.Equal(t, []string{"2030-05-01", "2030-05-10", "2030-05-20"}, st.Dates)
	assert.Equal(t, 40.0, st.Price)
}

func TestDeriveEditState_StoredDateStillPresent(t *testing.T) {
	tour := &model.Tour{
		Price:          20,
		AvailableDates: []time.Time{day("2030-05-01"), day("2030-05-20")},
	}

	st := DeriveEditState(tour, day("2030-05-20"), 1)
	assert.Equal(t, []string{"2030-05-01", "2030-05-20"}, st.Dates)
}

// An edit submitted without touching any field must validate against the
// derived state even when the tour's dates moved on since the booking.
func TestUnchangedEditStillValidates(t *testing.T) {
	tour := &model.Tour{
		ID:             "t1",
		Price:          50,
		AvailableDates: []time.Time{day("2030-05-01")},
	}
	stored := day("2030-04-20") // no longer offered by the tour

	in := model.ReservationInput{
		CustomerID: "c1",
		TourID:     tour.ID,
		Date:       Day(stored),
		People:     2,
		Status:     model.StatusConfirmed,
	}
	st := DeriveEditState(tour, stored, in.People)
	assert.False(t, ValidateReservation(in, st.Dates).Any())
}

func TestValidateReservation(t *testing.T) {
	selectable := []string{"2030-05-01", "2030-05-08"}
	valid := model.ReservationInput{
		CustomerID: "c1",
		TourID:     "t1",
		Date:       "2030-05-01",
		People:     3,
		Status:     model.StatusPending,
	}

	t.Run("valid input passes", func(t *testing.T) {
		assert.False(t, ValidateReservation(valid, selectable).Any())
	})

	tests := []struct {
		name  string
		mut   func(*model.ReservationInput)
		field string
	}{
		{"missing customer", func(in *model.ReservationInput) { in.CustomerID = "" }, "customerId"},
		{"missing tour", func(in *model.ReservationInput) { in.TourID = "" }, "tourId"},
		{"missing date", func(in *model.ReservationInput) { in.Date = "" }, "date"},
		{"date not selectable", func(in *model.ReservationInput) { in.Date = "2030-06-01" }, "date"},
		{"zero people", func(in *model.ReservationInput) { in.People = 0 }, "people"},
		{"unknown status", func(in *model.ReservationInput) { in.Status = "archived" }, "status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mut(&in)
			fe := ValidateReservation(in, selectable)
			require.True(t, fe.Any())
			assert.Contains(t, fe, tt.field)
		})
	}
}

func TestParseOptionalNumbers(t *testing.T) {
	assert.Nil(t, ParseOptionalFloat(""))
	assert.Nil(t, ParseOptionalFloat("  "))
	assert.Nil(t, ParseOptionalFloat("abc"))
	require.NotNil(t, ParseOptionalFloat("12.5"))
	assert.Equal(t, 12.5, *ParseOptionalFloat("12.5"))

	assert.Nil(t, ParseOptionalInt(""))
	require.NotNil(t, ParseOptionalInt("8"))
	assert.Equal(t, 8, *ParseOptionalInt("8"))
}
