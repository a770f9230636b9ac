package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/resale_hub/internal/apperrors"
	"github.com/SscSPs/resale_hub/internal/core/domain"
	portsrepo "github.com/SscSPs/resale_hub/internal/core/ports/repositories"
	"github.com/SscSPs/resale_hub/internal/models"
	"github.com/SscSPs/resale_hub/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type PgxSettingsRepository struct {
	BaseRepository
}

func newPgxSettingsRepository(pool PgxPool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

const upsertSettingsQuery = `
	INSERT INTO user_settings (user_id, theme, currency_code, previous_currency_code, updated_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (user_id) DO UPDATE SET
		theme = EXCLUDED.theme,
		currency_code = EXCLUDED.currency_code,
		previous_currency_code = EXCLUDED.previous_currency_code,
		updated_at = EXCLUDED.updated_at;
`

// execer is satisfied by both the pool and pgx.Tx.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (r *PgxSettingsRepository) FindSettings(ctx context.Context, userID string) (*domain.Settings, error) {
	query := `
		SELECT user_id, theme, currency_code, previous_currency_code, updated_at
		FROM user_settings
		WHERE user_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query settings", err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Settings])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to collect settings row", err)
	}
	settings := mapping.ToDomainSettings(m)
	return &settings, nil
}

func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	return saveSettings(ctx, r.Pool, settings)
}

func (r *PgxSettingsRepository) SaveSettingsTx(ctx context.Context, tx pgx.Tx, settings domain.Settings) error {
	return saveSettings(ctx, tx, settings)
}

func saveSettings(ctx context.Context, db execer, settings domain.Settings) error {
	m := mapping.ToModelSettings(settings)
	_, err := db.Exec(ctx, upsertSettingsQuery,
		m.UserID,
		m.Theme,
		m.CurrencyCode,
		m.PreviousCurrency,
		m.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save settings for user "+settings.UserID, err)
	}
	return nil
}
