package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
)

func TestPostgresStoreListByProperty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	created := time.Date(2024, time.April, 1, 10, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows([]string{"id", "property_id", "user_id", "start_date", "end_date", "created_at"}).
		AddRow("b1", int64(1), "u1",
			time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.May, 14, 0, 0, 0, 0, time.UTC),
			created,
		)
	mock.ExpectQuery("SELECT id, property_id, user_id, start_date, end_date, created_at").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	store := NewPostgresStoreWithDB(mock)
	list, err := store.ListByProperty(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(list))
	}
	if list[0].StartDate.String() != "2024-05-10" || list[0].EndDate.String() != "2024-05-14" {
		t.Errorf("date mismatch: [%s, %s]", list[0].StartDate, list[0].EndDate)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresStoreListError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery("SELECT id, property_id").
		WithArgs(int64(7)).
		WillReturnError(errors.New("connection refused"))

	store := NewPostgresStoreWithDB(mock)
	if _, err := store.ListByProperty(context.Background(), 7); err == nil {
		t.Fatal("expected error from failing query")
	}
}

func TestPostgresStoreCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	b := mkBooking("2024-05-10", "2024-05-14")
	b.UserID = "u1"

	created := time.Date(2024, time.April, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(b.ID, b.PropertyID, b.UserID, b.StartDate.Time(), b.EndDate.Time()).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(created))

	store := NewPostgresStoreWithDB(mock)
	if err := store.Create(context.Background(), &b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.CreatedAt.Equal(created) {
		t.Errorf("expected created_at from RETURNING, got %v", b.CreatedAt)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresStoreCreateError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(errors.New("insert failed"))

	store := NewPostgresStoreWithDB(mock)
	b := mkBooking("2024-05-10", "2024-05-14")
	if err := store.Create(context.Background(), &b); err == nil {
		t.Fatal("expected error from failing insert")
	}
}
