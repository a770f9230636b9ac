package domain

import (
	"math"
	"strings"

	"github.com/SscSPs/resale_hub/internal/apperrors"
	"github.com/shopspring/decimal"
)

// CurrencyCode is one of the currencies the application can price items in.
type CurrencyCode string

const (
	EUR CurrencyCode = "EUR"
	USD CurrencyCode = "USD"
	GBP CurrencyCode = "GBP"
	CHF CurrencyCode = "CHF"
)

// ReferenceCurrency is the currency every rate in the table is expressed against.
const ReferenceCurrency = EUR

// monetaryPlaces is the number of decimals a converted amount is rounded to.
const monetaryPlaces = 2

type currencyRate struct {
	code CurrencyCode
	rate float64 // units of this currency per one unit of ReferenceCurrency
}

// baseRates is fixed at build time. The reference entry must stay exactly 1.0.
var baseRates = []currencyRate{
	{EUR, 1.0},
	{USD, 1.08},
	{GBP, 0.85},
	{CHF, 0.96},
}

var rateIndex = func() map[CurrencyCode]float64 {
	m := make(map[CurrencyCode]float64, len(baseRates))
	for _, r := range baseRates {
		m[r.code] = r.rate
	}
	return m
}()

// IsValid reports whether c is a supported currency code.
func (c CurrencyCode) IsValid() bool {
	_, ok := rateIndex[c]
	return ok
}

func (c CurrencyCode) String() string {
	return string(c)
}

// SupportedCurrencies returns the supported codes in table order.
func SupportedCurrencies() []CurrencyCode {
	codes := make([]CurrencyCode, len(baseRates))
	for i, r := range baseRates {
		codes[i] = r.code
	}
	return codes
}

// ParseCurrencyCode normalizes s (trim + upper case) and validates it.
func ParseCurrencyCode(s string) (CurrencyCode, error) {
	code := CurrencyCode(strings.ToUpper(strings.TrimSpace(s)))
	if !code.IsValid() {
		return "", apperrors.NewInvalidCurrencyError(s)
	}
	return code, nil
}

// RateFor returns the value of one unit of the reference currency in code.
func RateFor(code CurrencyCode) (float64, error) {
	rate, ok := rateIndex[code]
	if !ok {
		return 0, apperrors.NewInvalidCurrencyError(string(code))
	}
	return rate, nil
}

func ratePair(from, to CurrencyCode) (float64, float64, error) {
	fromRate, err := RateFor(from)
	if err != nil {
		return 0, 0, err
	}
	toRate, err := RateFor(to)
	if err != nil {
		return 0, 0, err
	}
	return fromRate, toRate, nil
}

// ConvertCurrency converts amount between two supported currencies through the
// reference currency and rounds the result to two decimals, half away from zero.
// Same-currency conversion returns amount untouched.
func ConvertCurrency(amount float64, from, to CurrencyCode) (float64, error) {
	fromRate, toRate, err := ratePair(from, to)
	if err != nil {
		return 0, err
	}
	if from == to {
		return amount, nil
	}

	target := amount / fromRate * toRate
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return target, nil
	}
	return decimal.NewFromFloat(target).Round(monetaryPlaces).InexactFloat64(), nil
}

// ConvertPrice is ConvertCurrency for decimal prices.
func ConvertPrice(price decimal.Decimal, from, to CurrencyCode) (decimal.Decimal, error) {
	if from == to {
		if _, _, err := ratePair(from, to); err != nil {
			return decimal.Zero, err
		}
		return price, nil
	}
	converted, err := ConvertCurrency(price.InexactFloat64(), from, to)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromFloat(converted).Round(monetaryPlaces), nil
}

// GetExchangeRate returns how many units of to equal one unit of from. No rounding.
func GetExchangeRate(from, to CurrencyCode) (float64, error) {
	fromRate, toRate, err := ratePair(from, to)
	if err != nil {
		return 0, err
	}
	if from == to {
		return 1, nil
	}
	return toRate / fromRate, nil
}
