package domain_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/resale_hub/internal/apperrors"
	"github.com/SscSPs/resale_hub/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleAmounts = []float64{0, 0.01, 1, 9.99, 19.95, 42.5, 100, 249.99, 1234.56, -75.25, 99999.99}

func TestConvertCurrency_Concrete(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		from   domain.CurrencyCode
		to     domain.CurrencyCode
		want   float64
	}{
		{"EUR to USD", 100, domain.EUR, domain.USD, 108},
		{"USD to EUR", 100, domain.USD, domain.EUR, 92.59},
		{"EUR to GBP", 100, domain.EUR, domain.GBP, 85},
		{"GBP to CHF", 50, domain.GBP, domain.CHF, 56.47},
		{"negative amount", -100, domain.EUR, domain.USD, -108},
		{"zero", 0, domain.CHF, domain.GBP, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ConvertCurrency(tt.amount, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertCurrency_SameCurrencyIsIdentity(t *testing.T) {
	// No rounding is applied on a no-op conversion.
	for _, code := range domain.SupportedCurrencies() {
		for _, amount := range []float64{1.23456, 0.005, -3.14159, 100} {
			got, err := domain.ConvertCurrency(amount, code, code)
			require.NoError(t, err)
			assert.Equal(t, amount, got, "%s -> %s", code, code)
		}
	}
}

func TestConvertCurrency_RoundsHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		amount float64
		from   domain.CurrencyCode
		to     domain.CurrencyCode
		want   float64
	}{
		{0.1, domain.EUR, domain.GBP, 0.09},   // 0.085
		{-0.1, domain.EUR, domain.GBP, -0.09}, // -0.085
		{0.12, domain.CHF, domain.EUR, 0.13},  // 0.125
		{0.54, domain.USD, domain.GBP, 0.43},  // 0.425
	}
	for _, tt := range tests {
		got, err := domain.ConvertCurrency(tt.amount, tt.from, tt.to)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%v %s -> %s", tt.amount, tt.from, tt.to)
	}

	got, err := domain.ConvertCurrency(1.005, domain.EUR, domain.EUR)
	require.NoError(t, err)
	assert.Equal(t, 1.005, got, "identity path must not round")
}

func TestConvertCurrency_RoundTrip(t *testing.T) {
	round2 := func(v float64) float64 {
		return decimal.NewFromFloat(v).Round(2).InexactFloat64()
	}
	for _, a := range domain.SupportedCurrencies() {
		for _, b := range domain.SupportedCurrencies() {
			for _, x := range sampleAmounts {
				there, err := domain.ConvertCurrency(x, a, b)
				require.NoError(t, err)
				back, err := domain.ConvertCurrency(there, b, a)
				require.NoError(t, err)
				assert.InDelta(t, round2(x), round2(back), 0.01+1e-9, "%v %s -> %s -> %s", x, a, b, a)
			}
		}
	}
}

func TestConvertCurrency_InvalidCurrency(t *testing.T) {
	_, err := domain.ConvertCurrency(10, "JPY", domain.EUR)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCurrency)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	var icErr *apperrors.InvalidCurrencyError
	require.True(t, errors.As(err, &icErr))
	assert.Equal(t, "JPY", icErr.Code)

	_, err = domain.ConvertCurrency(10, domain.EUR, "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCurrency)

	// Identity shortcut must not mask an unsupported code.
	_, err = domain.ConvertCurrency(10, "XXX", "XXX")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCurrency)
}

func TestGetExchangeRate(t *testing.T) {
	rate, err := domain.GetExchangeRate(domain.EUR, domain.GBP)
	require.NoError(t, err)
	assert.Equal(t, 0.85, rate)

	rate, err = domain.GetExchangeRate(domain.EUR, domain.USD)
	require.NoError(t, err)
	assert.Equal(t, 1.08, rate)

	for _, c := range domain.SupportedCurrencies() {
		rate, err := domain.GetExchangeRate(c, c)
		require.NoError(t, err)
		assert.Equal(t, float64(1), rate)
	}

	for _, a := range domain.SupportedCurrencies() {
		for _, b := range domain.SupportedCurrencies() {
			ab, err := domain.GetExchangeRate(a, b)
			require.NoError(t, err)
			ba, err := domain.GetExchangeRate(b, a)
			require.NoError(t, err)
			assert.InDelta(t, ab, 1/ba, 1e-12, "%s/%s", a, b)
		}
	}

	_, err = domain.GetExchangeRate(domain.USD, "BTC")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCurrency)
}

func TestRateTable(t *testing.T) {
	assert.Equal(t, []domain.CurrencyCode{domain.EUR, domain.USD, domain.GBP, domain.CHF}, domain.SupportedCurrencies())

	ref, err := domain.RateFor(domain.ReferenceCurrency)
	require.NoError(t, err)
	assert.Equal(t, 1.0, ref)

	for _, c := range domain.SupportedCurrencies() {
		rate, err := domain.RateFor(c)
		require.NoError(t, err)
		assert.Greater(t, rate, 0.0)
	}
}

func TestParseCurrencyCode(t *testing.T) {
	code, err := domain.ParseCurrencyCode(" usd ")
	require.NoError(t, err)
	assert.Equal(t, domain.USD, code)

	_, err = domain.ParseCurrencyCode("dollars")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCurrency)
	assert.Contains(t, err.Error(), "dollars")
}

func TestConvertPrice(t *testing.T) {
	got, err := domain.ConvertPrice(decimal.RequireFromString("100"), domain.USD, domain.EUR)
	require.NoError(t, err)
	assert.Equal(t, "92.59", got.StringFixed(2))

	same := decimal.RequireFromString("19.999")
	got, err = domain.ConvertPrice(same, domain.GBP, domain.GBP)
	require.NoError(t, err)
	assert.True(t, same.Equal(got))

	_, err = domain.ConvertPrice(same, "NOK", "NOK")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCurrency)
}
