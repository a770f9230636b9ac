package dto

import "github.com/SscSPs/resale_hub/internal/core/domain"

// CurrencyResponse describes one supported currency.
type CurrencyResponse struct {
	CurrencyCode    domain.CurrencyCode `json:"currencyCode"`
	RateToReference float64             `json:"rateToReference"`
	IsReference     bool                `json:"isReference"`
}

// ConvertCurrencyQuery holds the query parameters of a conversion request.
type ConvertCurrencyQuery struct {
	Amount *float64 `form:"amount" binding:"required"`
	From   string   `form:"from" binding:"required,currency_code"`
	To     string   `form:"to" binding:"required,currency_code"`
}

// ConvertCurrencyResponse is the result of a conversion.
type ConvertCurrencyResponse struct {
	Amount    float64             `json:"amount"`
	From      domain.CurrencyCode `json:"from"`
	To        domain.CurrencyCode `json:"to"`
	Converted float64             `json:"converted"`
}

// ExchangeRateResponse is the pairwise exchange rate between two currencies.
type ExchangeRateResponse struct {
	From domain.CurrencyCode `json:"from"`
	To   domain.CurrencyCode `json:"to"`
	Rate float64             `json:"rate"`
}
