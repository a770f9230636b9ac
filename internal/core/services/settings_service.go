package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/resale_hub/internal/apperrors"
	"github.com/SscSPs/resale_hub/internal/core/domain"
	portsrepo "github.com/SscSPs/resale_hub/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/resale_hub/internal/core/ports/services"
)

type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
	itemRepo     portsrepo.ItemRepositoryWithTx
	converter    portssvc.CurrencyConverterSvc
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade, itemRepo portsrepo.ItemRepositoryWithTx, converter portssvc.CurrencyConverterSvc) portssvc.SettingsSvcFacade {
	return &settingsService{
		settingsRepo: settingsRepo,
		itemRepo:     itemRepo,
		converter:    converter,
	}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context, userID string) (*domain.Settings, error) {
	settings, err := s.settingsRepo.FindSettings(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			defaults := domain.DefaultSettings(userID)
			return &defaults, nil
		}
		s.LogError(ctx, err, "Failed to load settings")
		return nil, err
	}
	return settings, nil
}

func (s *settingsService) SetTheme(ctx context.Context, userID string, theme domain.Theme) (*domain.Settings, error) {
	if !theme.IsValid() {
		return nil, fmt.Errorf("%w: unknown theme %q", apperrors.ErrValidation, theme)
	}
	settings, err := s.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	settings.Theme = theme
	settings.UpdatedAt = time.Now().UTC()

	if err := s.settingsRepo.SaveSettings(ctx, *settings); err != nil {
		s.LogError(ctx, err, "Failed to save theme", slog.String("theme", string(theme)))
		return nil, err
	}
	return settings, nil
}

func (s *settingsService) SetCurrency(ctx context.Context, userID string, currency domain.CurrencyCode) (*domain.Settings, int, error) {
	if !currency.IsValid() {
		return nil, 0, apperrors.NewInvalidCurrencyError(string(currency))
	}
	current, err := s.GetSettings(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	updated := current.WithCurrency(currency)
	updated.UpdatedAt = time.Now().UTC()

	if !updated.NeedsPriceConversion() {
		if err := s.settingsRepo.SaveSettings(ctx, updated); err != nil {
			s.LogError(ctx, err, "Failed to save currency")
			return nil, 0, err
		}
		return &updated, 0, nil
	}

	converted, err := s.convertAllPrices(ctx, userID, updated)
	if err != nil {
		return nil, 0, err
	}

	s.LogInfo(ctx, "Display currency changed",
		slog.String("from", string(*updated.PreviousCurrency)),
		slog.String("to", string(updated.Currency)),
		slog.Int("converted_items", converted))
	return &updated, converted, nil
}

// convertAllPrices rewrites every item price and the settings row in one transaction.
func (s *settingsService) convertAllPrices(ctx context.Context, userID string, settings domain.Settings) (int, error) {
	tx, err := s.itemRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin currency switch")
		return 0, err
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := s.itemRepo.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back currency switch")
		}
	}()

	items, err := s.itemRepo.ListItemsForUpdateTx(ctx, tx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to lock items for conversion")
		return 0, err
	}

	pending := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if item.Currency != settings.Currency {
			pending = append(pending, item)
		}
	}

	converted, err := s.converter.ConvertItemPrices(ctx, pending, settings.Currency)
	if err != nil {
		return 0, err
	}
	for i := range converted {
		converted[i].LastUpdatedAt = settings.UpdatedAt
		converted[i].LastUpdatedBy = userID
	}

	if err := s.itemRepo.UpdateItemPricesTx(ctx, tx, converted); err != nil {
		s.LogError(ctx, err, "Failed to write converted prices")
		return 0, err
	}
	if err := s.settingsRepo.SaveSettingsTx(ctx, tx, settings); err != nil {
		s.LogError(ctx, err, "Failed to save currency")
		return 0, err
	}
	if err := s.itemRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit currency switch")
		return 0, err
	}
	committed = true
	return len(converted), nil
}
