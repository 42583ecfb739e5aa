package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const eventColumns = `event_id, city, area, landmark, day, display_date, full_date,
	time_window, amount, is_full, is_private, location_url, promo`

// Querier is the subset of pgxpool.Pool the repository needs. Satisfied by
// *pgxpool.Pool and by pgxmock pools in tests.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository reads the published schedule from the events table.
type PostgresRepository struct {
	pool Querier
}

// NewPostgresRepository creates a repository backed by a pgx pool.
func NewPostgresRepository(pool Querier) *PostgresRepository {
	if pool == nil {
		panic("schedule: pgx pool required")
	}
	return &PostgresRepository{pool: pool}
}

// List returns all events ordered by city, area and date.
func (r *PostgresRepository) List(ctx context.Context) ([]Event, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+eventColumns+` FROM events ORDER BY city, area, event_id`)
	if err != nil {
		return nil, fmt.Errorf("schedule: list events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("schedule: list events: %w", err)
	}
	return events, nil
}

// GetByID returns one event.
func (r *PostgresRepository) GetByID(ctx context.Context, eventID int) (*Event, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE event_id = $1`, eventID)
	e, err := scanEvent(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEventNotFound
	}
	return e, err
}

func scanEvent(row pgx.Row) (*Event, error) {
	var e Event
	err := row.Scan(
		&e.EventID, &e.City, &e.Area, &e.Landmark, &e.Day, &e.DisplayDate,
		&e.FullDate, &e.TimeWindow, &e.Amount, &e.IsFull, &e.IsPrivate,
		&e.LocationURL, &e.Promo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("schedule: scan event: %w", err)
	}
	return &e, nil
}
