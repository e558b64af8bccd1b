package bookings

import (
	"testing"
	"time"
)

func TestNightsEndExclusive(t *testing.T) {
	start := NewDate(2024, time.January, 1)
	end := NewDate(2024, time.January, 4)
	sel := Selection{Start: &start, End: &end}

	if got := Nights(sel); got != 3 {
		t.Errorf("Nights = %d, want 3", got)
	}
}

func TestNightsOneNightStay(t *testing.T) {
	start := NewDate(2024, time.January, 1)
	end := start.AddDays(1)
	sel := Selection{Start: &start, End: &end}

	if got := Nights(sel); got != 1 {
		t.Errorf("Nights = %d, want 1", got)
	}
}

func TestNightsIncompleteSelection(t *testing.T) {
	start := NewDate(2024, time.January, 1)

	if got := Nights(Selection{}); got != 0 {
		t.Errorf("Nights(empty) = %d, want 0", got)
	}
	if got := Nights(Selection{Start: &start}); got != 0 {
		t.Errorf("Nights(start only) = %d, want 0", got)
	}
	if got := Nights(Selection{End: &start}); got != 0 {
		t.Errorf("Nights(end only) = %d, want 0", got)
	}
}

func TestTotal(t *testing.T) {
	if got := Total(3, 100); got != 300 {
		t.Errorf("Total(3, 100) = %d, want 300", got)
	}
	if got := Total(0, 450); got != 0 {
		t.Errorf("Total(0, 450) = %d, want 0", got)
	}
}
