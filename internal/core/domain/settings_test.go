package domain_test

import (
	"testing"

	"github.com/SscSPs/resale_hub/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_WithCurrency(t *testing.T) {
	s := domain.DefaultSettings("u1")
	assert.Equal(t, domain.ThemeDark, s.Theme)
	assert.Equal(t, domain.EUR, s.Currency)
	assert.False(t, s.NeedsPriceConversion())

	changed := s.WithCurrency(domain.USD)
	require.NotNil(t, changed.PreviousCurrency)
	assert.Equal(t, domain.EUR, *changed.PreviousCurrency)
	assert.Equal(t, domain.USD, changed.Currency)
	assert.True(t, changed.NeedsPriceConversion())

	same := changed.WithCurrency(domain.USD)
	assert.False(t, same.NeedsPriceConversion())
	assert.Nil(t, s.PreviousCurrency, "original value must be untouched")
}

func TestTheme_IsValid(t *testing.T) {
	assert.True(t, domain.ThemeSystem.IsValid())
	assert.False(t, domain.Theme("neon").IsValid())
}

func TestItem_ConvertPrices(t *testing.T) {
	sale := decimal.RequireFromString("150")
	item := domain.Item{
		PurchasePrice: decimal.RequireFromString("100"),
		SalePrice:     &sale,
		Currency:      domain.EUR,
	}

	got, err := item.ConvertPrices(domain.USD)
	require.NoError(t, err)
	assert.Equal(t, domain.USD, got.Currency)
	assert.Equal(t, "108.00", got.PurchasePrice.StringFixed(2))
	require.NotNil(t, got.SalePrice)
	assert.Equal(t, "162.00", got.SalePrice.StringFixed(2))
	assert.Equal(t, "150", item.SalePrice.String(), "source item is not mutated")

	item.Currency = "JPY"
	_, err = item.ConvertPrices(domain.USD)
	assert.Error(t, err)
}
