package dto

import (
	"time"

	"github.com/SscSPs/resale_hub/internal/core/domain"
)

// UpdateThemeRequest changes the UI theme.
type UpdateThemeRequest struct {
	Theme string `json:"theme" binding:"required,oneof=light dark system"`
}

// UpdateCurrencyRequest changes the display currency.
type UpdateCurrencyRequest struct {
	Currency string `json:"currency" binding:"required,currency_code"`
}

// SettingsResponse defines the data returned for user settings.
type SettingsResponse struct {
	Theme            domain.Theme         `json:"theme"`
	Currency         domain.CurrencyCode  `json:"currency"`
	PreviousCurrency *domain.CurrencyCode `json:"previousCurrency,omitempty"`
	UpdatedAt        time.Time            `json:"updatedAt"`
}

// UpdateCurrencyResponse reports the new settings and how many item prices were converted.
type UpdateCurrencyResponse struct {
	Settings       SettingsResponse `json:"settings"`
	ConvertedItems int              `json:"convertedItems"`
}

// ToSettingsResponse converts domain.Settings to SettingsResponse DTO
func ToSettingsResponse(s *domain.Settings) SettingsResponse {
	return SettingsResponse{
		Theme:            s.Theme,
		Currency:         s.Currency,
		PreviousCurrency: s.PreviousCurrency,
		UpdatedAt:        s.UpdatedAt,
	}
}
