package repositories

import (
	"context"

	"github.com/SscSPs/resale_hub/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// SettingsRepositoryFacade persists per-user preferences.
type SettingsRepositoryFacade interface {
	// FindSettings returns apperrors.ErrNotFound when the user never saved settings.
	FindSettings(ctx context.Context, userID string) (*domain.Settings, error)

	SaveSettings(ctx context.Context, settings domain.Settings) error

	// SaveSettingsTx upserts settings inside tx.
	SaveSettingsTx(ctx context.Context, tx pgx.Tx, settings domain.Settings) error
}
