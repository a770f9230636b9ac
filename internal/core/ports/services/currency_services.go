package services

import (
	"context"

	"github.com/SscSPs/resale_hub/internal/core/domain"
	"github.com/SscSPs/resale_hub/internal/dto"
)

// CurrencyReaderSvc exposes the fixed rate table.
type CurrencyReaderSvc interface {
	// ListCurrencies returns every supported currency with its rate against the reference currency.
	ListCurrencies(ctx context.Context) []dto.CurrencyResponse
}

// CurrencyConverterSvc converts amounts between supported currencies.
type CurrencyConverterSvc interface {
	// Convert converts amount; codes are parsed case-insensitively.
	Convert(ctx context.Context, amount float64, from, to string) (*dto.ConvertCurrencyResponse, error)

	// GetExchangeRate returns the pairwise rate between two codes.
	GetExchangeRate(ctx context.Context, from, to string) (*dto.ExchangeRateResponse, error)

	// ConvertItemPrices re-expresses the item prices in another currency.
	ConvertItemPrices(ctx context.Context, items []domain.Item, to domain.CurrencyCode) ([]domain.Item, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyConverterSvc
}
