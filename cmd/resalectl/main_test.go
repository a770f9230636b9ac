package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/SscSPs/resale_hub/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvertCmd(t *testing.T) {
	out, err := run(t, "convert", "100", "eur", "USD")
	require.NoError(t, err)
	assert.Equal(t, "108 USD\n", out)

	out, err = run(t, "convert", "100", "USD", "GBP")
	require.NoError(t, err)
	assert.Equal(t, "78.7 GBP\n", out)
}

func TestConvertCmd_Errors(t *testing.T) {
	_, err := run(t, "convert", "abc", "EUR", "USD")
	assert.ErrorContains(t, err, "invalid amount")

	_, err = run(t, "convert", "10", "EUR", "JPY")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCurrency))
	assert.Contains(t, err.Error(), "JPY")

	_, err = run(t, "convert", "10", "EUR")
	assert.Error(t, err)
}

func TestRateCmd(t *testing.T) {
	out, err := run(t, "rate", "CHF", "CHF")
	require.NoError(t, err)
	assert.Equal(t, "1 CHF = 1.000000 CHF\n", out)
}

func TestCurrenciesCmd(t *testing.T) {
	out, err := run(t, "currencies")
	require.NoError(t, err)
	assert.Contains(t, out, "EUR")
	assert.Contains(t, out, "1.08")
	assert.Contains(t, out, "0.96")
}

func TestClassifyCmd(t *testing.T) {
	out, err := run(t, "classify", "Vintage", "Levi's", "denim", "jacket")
	require.NoError(t, err)
	assert.Contains(t, out, "brand:    Levi's")
	assert.Contains(t, out, "category: Jeans")

	out, err = run(t, "classify", "zzz")
	require.NoError(t, err)
	assert.Contains(t, out, "brand:    -")
}

func TestCategoriesCmd(t *testing.T) {
	out, err := run(t, "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "Sneakers\nBoots\n")
}
