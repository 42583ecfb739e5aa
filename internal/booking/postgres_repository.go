package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgxpool.Pool the repository needs. Satisfied by
// *pgxpool.Pool and by pgxmock pools in tests.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository persists bookings in the bookings table.
type PostgresRepository struct {
	pool Querier
}

// NewPostgresRepository creates a repository backed by a pgx pool.
func NewPostgresRepository(pool Querier) *PostgresRepository {
	if pool == nil {
		panic("booking: pgx pool required")
	}
	return &PostgresRepository{pool: pool}
}

const bookingColumns = `id, ref_number, email, appointment_id, event_id, landmark, area,
	display_date, full_date, slot_time, name, date_of_birth, phone, coupon,
	base_price, discount, final_price, status, created_at`

// Create inserts a booking row.
func (r *PostgresRepository) Create(ctx context.Context, b *Booking) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO bookings (`+bookingColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		b.ID, b.RefNumber, strings.ToLower(strings.TrimSpace(b.Email)), b.AppointmentID,
		b.EventID, b.Landmark, b.Area, b.Date, b.FullDate, b.SlotTime, b.Name,
		b.DateOfBirth, b.Phone, b.Coupon, b.BasePrice, b.Discount, b.FinalPrice,
		b.Status, b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("booking: insert: %w", err)
	}
	return nil
}

// FindPending returns the newest pending booking for an email.
func (r *PostgresRepository) FindPending(ctx context.Context, email string) (*Booking, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings
		 WHERE email = $1 AND status = $2
		 ORDER BY created_at DESC LIMIT 1`,
		strings.ToLower(strings.TrimSpace(email)), StatusPending,
	)
	var b Booking
	err := row.Scan(
		&b.ID, &b.RefNumber, &b.Email, &b.AppointmentID, &b.EventID, &b.Landmark,
		&b.Area, &b.Date, &b.FullDate, &b.SlotTime, &b.Name, &b.DateOfBirth,
		&b.Phone, &b.Coupon, &b.BasePrice, &b.Discount, &b.FinalPrice,
		&b.Status, &b.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("booking: find pending: %w", err)
	}
	return &b, nil
}

// Cancel flips a pending booking to cancelled. Cancelling a booking the user
// does not hold is reported as not found.
func (r *PostgresRepository) Cancel(ctx context.Context, email, appointmentID string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE bookings SET status = $1
		 WHERE email = $2 AND appointment_id = $3 AND status = $4`,
		StatusCancelled, strings.ToLower(strings.TrimSpace(email)), appointmentID, StatusPending,
	)
	if err != nil {
		return fmt.Errorf("booking: cancel: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}
	return nil
}
