package catalog

import "context"

// Repository defines the interface for property lookup
type Repository interface {
	List(ctx context.Context) ([]Property, error)
	GetByID(ctx context.Context, id int64) (*Property, error)
}

// InMemoryRepository serves the static property list. Order is stable so the
// landing page grid renders deterministically.
type InMemoryRepository struct {
	properties []Property
}

// NewInMemoryRepository creates a repository seeded with the featured
// properties.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{properties: seedProperties()}
}

// List returns all properties.
func (r *InMemoryRepository) List(ctx context.Context) ([]Property, error) {
	out := make([]Property, len(r.properties))
	copy(out, r.properties)
	return out, nil
}

// GetByID returns the property with the given id.
func (r *InMemoryRepository) GetByID(ctx context.Context, id int64) (*Property, error) {
	for _, p := range r.properties {
		if p.ID == id {
			prop := p
			return &prop, nil
		}
	}
	return nil, ErrPropertyNotFound
}
