package bookings

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is the narrow boundary to the remote reservation table. The booking
// flow needs exactly these two operations, which keeps it testable against an
// in-memory fake.
type Store interface {
	ListByProperty(ctx context.Context, propertyID int64) ([]Booking, error)
	Create(ctx context.Context, b *Booking) error
}

// InMemoryStore keeps bookings in process memory. It backs tests and local
// runs without a database. There is no overlap constraint here either, which
// mirrors the remote table.
type InMemoryStore struct {
	mu       sync.RWMutex
	byProp   map[int64][]Booking
	failNext error
}

// NewInMemoryStore creates an empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{byProp: make(map[int64][]Booking)}
}

// ListByProperty returns the bookings recorded for a property.
func (s *InMemoryStore) ListByProperty(ctx context.Context, propertyID int64) ([]Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.byProp[propertyID]
	out := make([]Booking, len(rows))
	copy(out, rows)
	return out, nil
}

// Create appends a booking row, assigning an ID and creation time when unset.
func (s *InMemoryStore) Create(ctx context.Context, b *Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failNext != nil {
		err := s.failNext
		s.failNext = nil
		return err
	}

	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	s.byProp[b.PropertyID] = append(s.byProp[b.PropertyID], *b)
	return nil
}

// FailNextCreate makes the next Create call return err, simulating a store
// outage in tests.
func (s *InMemoryStore) FailNextCreate(err error) {
	s.mu.Lock()
	s.failNext = err
	s.mu.Unlock()
}
