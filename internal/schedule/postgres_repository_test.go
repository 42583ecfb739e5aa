package schedule

import (
	"context"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eventRowColumns = []string{
	"event_id", "city", "area", "landmark", "day", "display_date", "full_date",
	"time_window", "amount", "is_full", "is_private", "location_url", "promo",
}

func TestPostgresRepositoryList(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM events ORDER BY").
		WillReturnRows(pgxmock.NewRows(eventRowColumns).
			AddRow(1, "Bangalore", "HSR Layout", "Cult.fit HSR Layout", "Saturday",
				"Sep 6", "2026-09-06", "9 AM - 7 PM", 2999, false, false,
				"https://maps.google.com/?q=Cult.fit", "").
			AddRow(2, "Mumbai", "Bandra West", "Gold's Gym Bandra", "Sunday",
				"Sep 7", "2026-09-07", "10 AM - 6 PM", 2999, true, false, "", "FIRST50"))

	repo := NewPostgresRepository(mock)
	events, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Cult.fit HSR Layout", events[0].Landmark)
	assert.True(t, events[1].IsFull)
	assert.Equal(t, "FIRST50", events[1].Promo)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepositoryGetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM events WHERE event_id").
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows(eventRowColumns).
			AddRow(1, "Bangalore", "HSR Layout", "Cult.fit HSR Layout", "Saturday",
				"Sep 6", "2026-09-06", "9 AM - 7 PM", 2999, false, false, "", ""))

	repo := NewPostgresRepository(mock)
	event, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "9 AM - 7 PM", event.TimeWindow)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepositoryGetByIDNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM events WHERE event_id").
		WithArgs(99).
		WillReturnRows(pgxmock.NewRows(eventRowColumns))

	repo := NewPostgresRepository(mock)
	_, err = repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrEventNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
