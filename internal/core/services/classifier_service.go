package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/SscSPs/resale_hub/internal/core/domain"
	portssvc "github.com/SscSPs/resale_hub/internal/core/ports/services"
)

// minAutoDetectLength is the shortest trimmed name worth classifying.
const minAutoDetectLength = 3

type classifierService struct {
	BaseService
}

// NewClassifierService creates a new classifier service.
func NewClassifierService() portssvc.ClassifierSvcFacade {
	return &classifierService{}
}

var _ portssvc.ClassifierSvcFacade = (*classifierService)(nil)

func (s *classifierService) Classify(ctx context.Context, itemName string) domain.ItemClassification {
	name := strings.TrimSpace(itemName)
	if utf8.RuneCountInString(name) < minAutoDetectLength {
		return domain.ItemClassification{}
	}
	result := domain.ParseItemName(name)
	s.LogDebug(ctx, "Classified item name",
		"brand", result.DetectedBrand,
		"category", result.DetectedCategory)
	return result
}

func (s *classifierService) ListCategories(ctx context.Context) []string {
	return domain.Categories()
}

func (s *classifierService) ListBrands(ctx context.Context) []string {
	return domain.Brands()
}
