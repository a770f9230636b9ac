package domain

import "time"

// Theme is the UI colour scheme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// IsValid reports whether t is a known theme.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// Settings holds per-user display preferences.
type Settings struct {
	UserID           string        `json:"userID"`
	Theme            Theme         `json:"theme"`
	Currency         CurrencyCode  `json:"currency"`
	PreviousCurrency *CurrencyCode `json:"previousCurrency,omitempty"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// DefaultSettings returns the settings a user starts with.
func DefaultSettings(userID string) Settings {
	return Settings{
		UserID:   userID,
		Theme:    ThemeDark,
		Currency: ReferenceCurrency,
	}
}

// WithCurrency switches the currency and remembers the one it replaced.
func (s Settings) WithCurrency(code CurrencyCode) Settings {
	prev := s.Currency
	s.PreviousCurrency = &prev
	s.Currency = code
	return s
}

// NeedsPriceConversion reports whether the last currency change should be
// propagated to stored prices.
func (s Settings) NeedsPriceConversion() bool {
	return s.PreviousCurrency != nil && *s.PreviousCurrency != s.Currency
}
