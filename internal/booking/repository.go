package booking

import (
	"context"
	"strings"
	"sync"
)

// Repository persists bookings.
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	FindPending(ctx context.Context, email string) (*Booking, error)
	Cancel(ctx context.Context, email, appointmentID string) error
}

// InMemoryRepository holds bookings in memory for tests.
type InMemoryRepository struct {
	mu       sync.RWMutex
	bookings []Booking
}

// NewInMemoryRepository creates an empty in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// Create appends a copy of the booking.
func (r *InMemoryRepository) Create(ctx context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	cp.Email = strings.ToLower(strings.TrimSpace(b.Email))
	r.bookings = append(r.bookings, cp)
	return nil
}

// FindPending returns the user's pending booking, if any.
func (r *InMemoryRepository) FindPending(ctx context.Context, email string) (*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	email = strings.ToLower(strings.TrimSpace(email))
	for i := len(r.bookings) - 1; i >= 0; i-- {
		if r.bookings[i].Email == email && r.bookings[i].Status == StatusPending {
			cp := r.bookings[i]
			return &cp, nil
		}
	}
	return nil, ErrBookingNotFound
}

// Cancel marks the user's pending booking for an appointment cancelled.
func (r *InMemoryRepository) Cancel(ctx context.Context, email, appointmentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	email = strings.ToLower(strings.TrimSpace(email))
	for i := range r.bookings {
		b := &r.bookings[i]
		if b.Email == email && b.AppointmentID == appointmentID && b.Status == StatusPending {
			b.Status = StatusCancelled
			return nil
		}
	}
	return ErrBookingNotFound
}
