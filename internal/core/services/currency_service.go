package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/SscSPs/resale_hub/internal/apperrors"
	"github.com/SscSPs/resale_hub/internal/core/domain"
	portssvc "github.com/SscSPs/resale_hub/internal/core/ports/services"
	"github.com/SscSPs/resale_hub/internal/dto"
)

// currencyService serves the compiled-in rate table. It has no storage.
type currencyService struct {
	BaseService
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService() portssvc.CurrencySvcFacade {
	return &currencyService{}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) ListCurrencies(ctx context.Context) []dto.CurrencyResponse {
	codes := domain.SupportedCurrencies()
	res := make([]dto.CurrencyResponse, 0, len(codes))
	for _, code := range codes {
		rate, _ := domain.RateFor(code)
		res = append(res, dto.CurrencyResponse{
			CurrencyCode:    code,
			RateToReference: rate,
			IsReference:     code == domain.ReferenceCurrency,
		})
	}
	return res
}

func (s *currencyService) parsePair(ctx context.Context, from, to string) (domain.CurrencyCode, domain.CurrencyCode, error) {
	fromCode, err := domain.ParseCurrencyCode(from)
	if err != nil {
		s.LogDebug(ctx, "Rejected source currency", slog.String("from", from))
		return "", "", err
	}
	toCode, err := domain.ParseCurrencyCode(to)
	if err != nil {
		s.LogDebug(ctx, "Rejected target currency", slog.String("to", to))
		return "", "", err
	}
	return fromCode, toCode, nil
}

func (s *currencyService) Convert(ctx context.Context, amount float64, from, to string) (*dto.ConvertCurrencyResponse, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, fmt.Errorf("%w: amount must be a finite number", apperrors.ErrValidation)
	}
	fromCode, toCode, err := s.parsePair(ctx, from, to)
	if err != nil {
		return nil, err
	}
	converted, err := domain.ConvertCurrency(amount, fromCode, toCode)
	if err != nil {
		return nil, err
	}
	return &dto.ConvertCurrencyResponse{
		Amount:    amount,
		From:      fromCode,
		To:        toCode,
		Converted: converted,
	}, nil
}

func (s *currencyService) GetExchangeRate(ctx context.Context, from, to string) (*dto.ExchangeRateResponse, error) {
	fromCode, toCode, err := s.parsePair(ctx, from, to)
	if err != nil {
		return nil, err
	}
	rate, err := domain.GetExchangeRate(fromCode, toCode)
	if err != nil {
		return nil, err
	}
	return &dto.ExchangeRateResponse{From: fromCode, To: toCode, Rate: rate}, nil
}

// ConvertItemPrices returns converted copies; the input slice is left untouched.
func (s *currencyService) ConvertItemPrices(ctx context.Context, items []domain.Item, to domain.CurrencyCode) ([]domain.Item, error) {
	out := make([]domain.Item, 0, len(items))
	for _, item := range items {
		converted, err := item.ConvertPrices(to)
		if err != nil {
			s.LogError(ctx, err, "Failed to convert item prices",
				slog.String("item_id", item.ItemID),
				slog.String("from", string(item.Currency)),
				slog.String("to", string(to)))
			return nil, fmt.Errorf("failed to convert item %s: %w", item.ItemID, err)
		}
		out = append(out, converted)
	}
	return out, nil
}
