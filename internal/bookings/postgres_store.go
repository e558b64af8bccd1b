package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxDB is the slice of pgxpool.Pool the store uses, small enough for
// pgxmock to stand in during tests.
type pgxDB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresStore persists bookings in the relational database.
type PostgresStore struct {
	db pgxDB
}

// NewPostgresStore initializes a store backed by pgxpool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	if pool == nil {
		panic("bookings: pgx pool required")
	}
	return &PostgresStore{db: pool}
}

// NewPostgresStoreWithDB allows injecting mocks for tests.
func NewPostgresStoreWithDB(db pgxDB) *PostgresStore {
	return &PostgresStore{db: db}
}

// ListByProperty returns every booking row for the property, earliest first.
func (s *PostgresStore) ListByProperty(ctx context.Context, propertyID int64) ([]Booking, error) {
	query := `
		SELECT id, property_id, user_id, start_date, end_date, created_at
		FROM bookings
		WHERE property_id = $1
		ORDER BY start_date
	`
	rows, err := s.db.Query(ctx, query, propertyID)
	if err != nil {
		return nil, fmt.Errorf("bookings: list by property: %w", err)
	}
	defer rows.Close()

	var out []Booking
	for rows.Next() {
		var (
			b     Booking
			start time.Time
			end   time.Time
		)
		if err := rows.Scan(&b.ID, &b.PropertyID, &b.UserID, &start, &end, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("bookings: scan row: %w", err)
		}
		b.StartDate = DateOf(start)
		b.EndDate = DateOf(end)
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("bookings: iterate rows: %w", err)
	}
	return out, nil
}

// Create inserts a new booking row. Dates are stored as SQL DATE columns so
// the YYYY-MM-DD value survives round trips without zone drift.
func (s *PostgresStore) Create(ctx context.Context, b *Booking) error {
	query := `
		INSERT INTO bookings (id, property_id, user_id, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	if err := s.db.QueryRow(ctx, query,
		b.ID,
		b.PropertyID,
		b.UserID,
		b.StartDate.Time(),
		b.EndDate.Time(),
	).Scan(&b.CreatedAt); err != nil {
		return fmt.Errorf("bookings: insert failed: %w", err)
	}
	return nil
}
