package auth

import (
	"context"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryProfileRepository(t *testing.T) {
	repo := NewInMemoryProfileRepository()
	ctx := context.Background()

	_, err := repo.Get(ctx, "asha@example.com")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	require.NoError(t, repo.Upsert(ctx, &Profile{
		Email: " Asha@Example.com ",
		Name:  "Asha Rao",
	}))

	p, err := repo.Get(ctx, "ASHA@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", p.Name)
	assert.False(t, p.IsComplete())

	require.NoError(t, repo.Upsert(ctx, &Profile{
		Email:       "asha@example.com",
		Name:        "Asha Rao",
		Phone:       "9876543210",
		DateOfBirth: "1990-04-12",
	}))
	p, err = repo.Get(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.True(t, p.IsComplete())
}

func TestPostgresProfileRepositoryGet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM user_profiles").
		WithArgs("asha@example.com").
		WillReturnRows(pgxmock.NewRows([]string{
			"email", "name", "phone", "date_of_birth", "height", "weight", "gender",
		}).AddRow("asha@example.com", "Asha Rao", "9876543210", "1990-04-12", 165.0, 61.5, "female"))

	repo := NewPostgresProfileRepository(mock)
	p, err := repo.Get(context.Background(), "Asha@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", p.Name)
	assert.Equal(t, 165.0, p.Height)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProfileRepositoryUpsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO user_profiles").
		WithArgs("asha@example.com", "Asha Rao", "9876543210", "1990-04-12",
			165.0, 61.5, "female", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := NewPostgresProfileRepository(mock)
	require.NoError(t, repo.Upsert(context.Background(), &Profile{
		Email:       "Asha@Example.com",
		Name:        "Asha Rao",
		Phone:       "9876543210",
		DateOfBirth: "1990-04-12",
		Height:      165,
		Weight:      61.5,
		Gender:      "female",
	}))
	require.NoError(t, mock.ExpectationsWereMet())
}
