package pgsql

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/resale_hub/internal/apperrors"
	"github.com/SscSPs/resale_hub/internal/core/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgxUserRepository_SaveUser_DuplicateUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := newPgxUserRepository(mock)
	mock.ExpectExec("INSERT INTO users").
		WithArgs("u1", "seller", pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	err = repo.SaveUser(context.Background(), domain.User{UserID: "u1", Username: "seller"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Contains(t, err.Error(), "seller")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgxUserRepository_FindUserByUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := newPgxUserRepository(mock)
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery("FROM users").
		WithArgs("Seller").
		WillReturnRows(pgxmock.NewRows([]string{
			"user_id", "username", "password_hash", "name", "deleted_at",
			"created_at", "created_by", "last_updated_at", "last_updated_by",
		}).AddRow("u1", "seller", "hash", "Sam", nil, now, "u1", now, "u1"))

	user, err := repo.FindUserByUsername(context.Background(), "Seller")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.UserID)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.Nil(t, user.DeletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
