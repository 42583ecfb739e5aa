package schedule

import (
	"context"
	"sync"
)

// Repository defines the interface for event storage.
type Repository interface {
	List(ctx context.Context) ([]Event, error)
	GetByID(ctx context.Context, eventID int) (*Event, error)
}

// InMemoryRepository holds events in memory. Tests seed it directly.
type InMemoryRepository struct {
	mu     sync.RWMutex
	events []Event
}

// NewInMemoryRepository creates a repository with the given events.
func NewInMemoryRepository(events []Event) *InMemoryRepository {
	return &InMemoryRepository{events: append([]Event(nil), events...)}
}

// List returns all events in publication order.
func (r *InMemoryRepository) List(ctx context.Context) ([]Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Event(nil), r.events...), nil
}

// GetByID returns the event with the given id.
func (r *InMemoryRepository) GetByID(ctx context.Context, eventID int) (*Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.events {
		if r.events[i].EventID == eventID {
			e := r.events[i]
			return &e, nil
		}
	}
	return nil, ErrEventNotFound
}
