package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/resale_hub/internal/core/domain"
	"github.com/SscSPs/resale_hub/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func TestClassifierService_Classify(t *testing.T) {
	svc := services.NewClassifierService()
	ctx := context.Background()

	tests := []struct {
		name  string
		input string
		want  domain.ItemClassification
	}{
		{"below minimum length", "ni", domain.ItemClassification{}},
		{"padding does not count", "   hm  ", domain.ItemClassification{}},
		{"counts characters not bytes", " 👟é ", domain.ItemClassification{}},
		{"brand and category", "Supreme hoodie", domain.ItemClassification{DetectedBrand: "Supreme", DetectedCategory: "Hoodies"}},
		{"trimmed before detection", "  Nike Air Max 90  ", domain.ItemClassification{DetectedBrand: "Nike", DetectedCategory: "Sneakers"}},
		{"nothing detected", "mystery box", domain.ItemClassification{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Classify(ctx, tt.input))
		})
	}
}

func TestClassifierService_Lists(t *testing.T) {
	svc := services.NewClassifierService()
	ctx := context.Background()

	categories := svc.ListCategories(ctx)
	assert.Equal(t, "Sneakers", categories[0])
	assert.Equal(t, "Home & Living", categories[len(categories)-1])

	brands := svc.ListBrands(ctx)
	assert.Equal(t, "Nike", brands[0])
	brands[0] = "changed"
	assert.Equal(t, "Nike", svc.ListBrands(ctx)[0])
}
