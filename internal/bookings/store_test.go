package bookings

import (
	"context"
	"errors"
	"testing"
)

func TestInMemoryStoreCreateAndList(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	b := mkBooking("2024-07-01", "2024-07-04")
	b.ID = ""
	if err := store.Create(ctx, &b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.ID == "" {
		t.Error("expected Create to assign an id")
	}
	if b.CreatedAt.IsZero() {
		t.Error("expected Create to set created_at")
	}

	list, err := store.ListByProperty(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(list))
	}
	if list[0].StartDate.String() != "2024-07-01" {
		t.Errorf("unexpected start date %s", list[0].StartDate)
	}
}

func TestInMemoryStoreScopedByProperty(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	b1 := mkBooking("2024-07-01", "2024-07-04")
	b2 := mkBooking("2024-08-01", "2024-08-04")
	b2.PropertyID = 2
	if err := store.Create(ctx, &b1); err != nil {
		t.Fatal(err)
	}
	if err := store.Create(ctx, &b2); err != nil {
		t.Fatal(err)
	}

	list, err := store.ListByProperty(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].PropertyID != 2 {
		t.Errorf("expected only property 2 bookings, got %+v", list)
	}
}

func TestInMemoryStoreFailNextCreate(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()
	boom := errors.New("store down")
	store.FailNextCreate(boom)

	b := mkBooking("2024-07-01", "2024-07-04")
	if err := store.Create(ctx, &b); !errors.Is(err, boom) {
		t.Fatalf("expected injected error, got %v", err)
	}

	// Failure is one-shot; the retry succeeds.
	if err := store.Create(ctx, &b); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}

	list, _ := store.ListByProperty(ctx, 1)
	if len(list) != 1 {
		t.Errorf("expected exactly one row after failed first attempt, got %d", len(list))
	}
}
