// Package contact receives contact-form submissions, stores them and
// forwards a copy to the support inbox.
package contact

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ErrInvalidSubmission is returned when a required field is missing or the
// email does not look like one.
var ErrInvalidSubmission = errors.New("name, email and message are required")

// Message is one contact-form submission.
type Message struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Subject   string
	Body      string
	CreatedAt time.Time
}

// Validate normalizes and checks the submission.
func (m *Message) Validate() error {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))
	m.Phone = strings.TrimSpace(m.Phone)
	m.Subject = strings.TrimSpace(m.Subject)
	m.Body = strings.TrimSpace(m.Body)
	if m.Name == "" || m.Body == "" || !emailRe.MatchString(m.Email) {
		return ErrInvalidSubmission
	}
	if m.Subject == "" {
		m.Subject = "Website enquiry"
	}
	return nil
}

// Repository stores contact messages.
type Repository interface {
	Create(ctx context.Context, m *Message) error
}

// Querier is the subset of pgxpool.Pool the repository needs. Satisfied by
// *pgxpool.Pool and by pgxmock pools in tests.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository persists messages in the contact_messages table.
type PostgresRepository struct {
	pool Querier
}

// NewPostgresRepository creates a repository backed by a pgx pool.
func NewPostgresRepository(pool Querier) *PostgresRepository {
	if pool == nil {
		panic("contact: pgx pool required")
	}
	return &PostgresRepository{pool: pool}
}

// Create inserts a contact message row.
func (r *PostgresRepository) Create(ctx context.Context, m *Message) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO contact_messages (id, name, email, phone, subject, body, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.Name, m.Email, m.Phone, m.Subject, m.Body, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("contact: insert: %w", err)
	}
	return nil
}

// InMemoryRepository holds messages in memory for tests.
type InMemoryRepository struct {
	mu       sync.RWMutex
	messages []Message
}

// NewInMemoryRepository creates an empty in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// Create appends a copy of the message.
func (r *InMemoryRepository) Create(ctx context.Context, m *Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, *m)
	return nil
}

// Messages returns a copy of everything stored.
func (r *InMemoryRepository) Messages() []Message {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Message(nil), r.messages...)
}
