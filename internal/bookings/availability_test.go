package bookings

import (
	"testing"
	"time"
)

func mkBooking(start, end string) Booking {
	s, err := ParseDate(start)
	if err != nil {
		panic(err)
	}
	e, err := ParseDate(end)
	if err != nil {
		panic(err)
	}
	return Booking{ID: "b-" + start, PropertyID: 1, StartDate: s, EndDate: e}
}

func TestIsBlockedInclusiveBounds(t *testing.T) {
	b := mkBooking("2024-05-10", "2024-05-14")

	cases := []struct {
		date    string
		blocked bool
	}{
		{"2024-05-09", false},
		{"2024-05-10", true}, // start boundary counts
		{"2024-05-12", true},
		{"2024-05-14", true}, // end boundary counts
		{"2024-05-15", false},
	}
	for _, tc := range cases {
		d, _ := ParseDate(tc.date)
		if got := IsBlocked(d, []Booking{b}); got != tc.blocked {
			t.Errorf("IsBlocked(%s) = %v, want %v", tc.date, got, tc.blocked)
		}
	}
}

func TestIsBlockedNoBookings(t *testing.T) {
	if IsBlocked(Today(), nil) {
		t.Error("expected no blocked dates with no bookings")
	}
}

func TestIsBlockedMultipleBookings(t *testing.T) {
	existing := []Booking{
		mkBooking("2024-05-01", "2024-05-03"),
		mkBooking("2024-05-20", "2024-05-22"),
	}
	d, _ := ParseDate("2024-05-21")
	if !IsBlocked(d, existing) {
		t.Error("expected date in second booking to be blocked")
	}
	d, _ = ParseDate("2024-05-10")
	if IsBlocked(d, existing) {
		t.Error("expected gap between bookings to be free")
	}
}

func TestBlockedDates(t *testing.T) {
	existing := []Booking{mkBooking("2024-05-10", "2024-05-12")}
	from := NewDate(2024, time.May, 8)
	to := NewDate(2024, time.May, 14)

	got := BlockedDates(existing, from, to)
	want := []string{"2024-05-10", "2024-05-11", "2024-05-12"}
	if len(got) != len(want) {
		t.Fatalf("expected %d blocked dates, got %d", len(want), len(got))
	}
	for i, d := range got {
		if d.String() != want[i] {
			t.Errorf("blocked[%d] = %s, want %s", i, d, want[i])
		}
	}
}
