package services

import (
	"context"

	"github.com/SscSPs/resale_hub/internal/core/domain"
)

// ClassifierSvcFacade detects brand and category from free-text item names.
type ClassifierSvcFacade interface {
	// Classify runs both detectors; names shorter than the auto-detect minimum yield an empty result.
	Classify(ctx context.Context, itemName string) domain.ItemClassification

	// ListCategories returns category labels in match order.
	ListCategories(ctx context.Context) []string

	// ListBrands returns brand names in match order.
	ListBrands(ctx context.Context) []string
}
