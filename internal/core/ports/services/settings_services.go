package services

import (
	"context"

	"github.com/SscSPs/resale_hub/internal/core/domain"
)

// SettingsSvcFacade manages per-user display preferences.
type SettingsSvcFacade interface {
	// GetSettings returns stored settings, or defaults when none exist.
	GetSettings(ctx context.Context, userID string) (*domain.Settings, error)

	SetTheme(ctx context.Context, userID string, theme domain.Theme) (*domain.Settings, error)

	// SetCurrency switches the display currency and converts every stored item
	// price of the user from the previous currency. It returns the number of
	// converted items.
	SetCurrency(ctx context.Context, userID string, currency domain.CurrencyCode) (*domain.Settings, int, error)
}
