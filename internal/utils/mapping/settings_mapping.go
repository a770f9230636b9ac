package mapping

import (
	"github.com/SscSPs/resale_hub/internal/core/domain"
	"github.com/SscSPs/resale_hub/internal/models"
)

// ToModelSettings converts domain Settings to a model Settings
func ToModelSettings(d domain.Settings) models.Settings {
	m := models.Settings{
		UserID:       d.UserID,
		Theme:        string(d.Theme),
		CurrencyCode: string(d.Currency),
		UpdatedAt:    d.UpdatedAt,
	}
	if d.PreviousCurrency != nil {
		prev := string(*d.PreviousCurrency)
		m.PreviousCurrency = &prev
	}
	return m
}

// ToDomainSettings converts model Settings to domain Settings
func ToDomainSettings(m models.Settings) domain.Settings {
	d := domain.Settings{
		UserID:    m.UserID,
		Theme:     domain.Theme(m.Theme),
		Currency:  domain.CurrencyCode(m.CurrencyCode),
		UpdatedAt: m.UpdatedAt,
	}
	if m.PreviousCurrency != nil {
		prev := domain.CurrencyCode(*m.PreviousCurrency)
		d.PreviousCurrency = &prev
	}
	return d
}
