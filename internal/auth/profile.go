package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Profile is the cached subset of a user's prior booking submission, returned
// on login so forms can prefill. Having a profile says nothing about whether
// the user also holds a valid session token; the two are checked
// independently.
type Profile struct {
	Email       string  `json:"email"`
	Name        string  `json:"name,omitempty"`
	Phone       string  `json:"phone,omitempty"`
	DateOfBirth string  `json:"dateOfBirth,omitempty"`
	Height      float64 `json:"height,omitempty"`
	Weight      float64 `json:"weight,omitempty"`
	Gender      string  `json:"gender,omitempty"`
}

// IsComplete reports whether the profile carries everything a booking needs.
func (p *Profile) IsComplete() bool {
	return p.Name != "" && p.DateOfBirth != "" && p.Phone != ""
}

// ProfileRepository stores user profiles keyed by email.
type ProfileRepository interface {
	Get(ctx context.Context, email string) (*Profile, error)
	Upsert(ctx context.Context, p *Profile) error
}

// ErrProfileNotFound is returned when no profile exists for an email.
var ErrProfileNotFound = errors.New("profile not found")

// Querier is the subset of pgxpool.Pool the repository needs. Satisfied by
// *pgxpool.Pool and by pgxmock pools in tests.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresProfileRepository persists profiles in the user_profiles table.
type PostgresProfileRepository struct {
	pool Querier
}

// NewPostgresProfileRepository creates a repository backed by a pgx pool.
func NewPostgresProfileRepository(pool Querier) *PostgresProfileRepository {
	if pool == nil {
		panic("auth: pgx pool required")
	}
	return &PostgresProfileRepository{pool: pool}
}

// Get loads the profile for an email.
func (r *PostgresProfileRepository) Get(ctx context.Context, email string) (*Profile, error) {
	var p Profile
	err := r.pool.QueryRow(ctx,
		`SELECT email, name, phone, date_of_birth, height, weight, gender
		 FROM user_profiles WHERE email = $1`,
		normalizeEmail(email),
	).Scan(&p.Email, &p.Name, &p.Phone, &p.DateOfBirth, &p.Height, &p.Weight, &p.Gender)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("auth: load profile: %w", err)
	}
	return &p, nil
}

// Upsert writes the profile, replacing any previous submission.
func (r *PostgresProfileRepository) Upsert(ctx context.Context, p *Profile) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO user_profiles (email, name, phone, date_of_birth, height, weight, gender, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (email) DO UPDATE SET
		   name = EXCLUDED.name, phone = EXCLUDED.phone,
		   date_of_birth = EXCLUDED.date_of_birth, height = EXCLUDED.height,
		   weight = EXCLUDED.weight, gender = EXCLUDED.gender,
		   updated_at = EXCLUDED.updated_at`,
		normalizeEmail(p.Email), p.Name, p.Phone, p.DateOfBirth, p.Height, p.Weight, p.Gender,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("auth: upsert profile: %w", err)
	}
	return nil
}

// InMemoryProfileRepository is the test/dev implementation.
type InMemoryProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]*Profile
}

// NewInMemoryProfileRepository creates an empty in-memory repository.
func NewInMemoryProfileRepository() *InMemoryProfileRepository {
	return &InMemoryProfileRepository{profiles: make(map[string]*Profile)}
}

// Get returns the stored profile for an email.
func (r *InMemoryProfileRepository) Get(ctx context.Context, email string) (*Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[normalizeEmail(email)]
	if !ok {
		return nil, ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

// Upsert stores a copy of the profile.
func (r *InMemoryProfileRepository) Upsert(ctx context.Context, p *Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	cp.Email = normalizeEmail(p.Email)
	r.profiles[cp.Email] = &cp
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
