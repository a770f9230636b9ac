package pgsql

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/resale_hub/internal/apperrors"
	"github.com/SscSPs/resale_hub/internal/core/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var settingsColumns = []string{"user_id", "theme", "currency_code", "previous_currency_code", "updated_at"}

func TestPgxSettingsRepository_FindSettings(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := newPgxSettingsRepository(mock)
	updated := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM user_settings").
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows(settingsColumns).AddRow("user-1", "light", "GBP", nil, updated))

	s, err := repo.FindSettings(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, s.Theme)
	assert.Equal(t, domain.GBP, s.Currency)
	assert.Nil(t, s.PreviousCurrency)
	assert.Equal(t, updated, s.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgxSettingsRepository_FindSettings_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := newPgxSettingsRepository(mock)
	mock.ExpectQuery("FROM user_settings").
		WithArgs("user-2").
		WillReturnRows(pgxmock.NewRows(settingsColumns))

	s, err := repo.FindSettings(context.Background(), "user-2")
	assert.Nil(t, s)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPgxSettingsRepository_SaveSettingsTx(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := newPgxSettingsRepository(mock)
	ctx := context.Background()
	settings := domain.DefaultSettings("user-1").WithCurrency(domain.USD)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO user_settings").
		WithArgs("user-1", "dark", "USD", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	tx, err := mock.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.SaveSettingsTx(ctx, tx, settings))
	require.NoError(t, tx.Commit(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}
