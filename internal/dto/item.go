package dto

import (
	"time"

	"github.com/SscSPs/resale_hub/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateItemRequest defines the data needed to add an inventory item.
// Brand and Category are detected from Name when left empty; Currency
// defaults to the user's display currency.
type CreateItemRequest struct {
	Name          string           `json:"name" binding:"notblank,max=200"`
	Brand         string           `json:"brand" binding:"omitempty,max=100"`
	Category      string           `json:"category" binding:"omitempty,max=100"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice" binding:"required" swaggertype:"string"`
	SalePrice     *decimal.Decimal `json:"salePrice,omitempty" swaggertype:"string"`
	Currency      string           `json:"currency" binding:"omitempty,currency_code"`
	Status        string           `json:"status" binding:"omitempty,oneof=IN_STOCK LISTED SOLD"`
}

// ListItemsParams holds pagination query parameters.
type ListItemsParams struct {
	Limit     int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// ItemResponse defines the data returned for an item.
type ItemResponse struct {
	ItemID        string              `json:"itemID"`
	Name          string              `json:"name"`
	Brand         string              `json:"brand"`
	Category      string              `json:"category"`
	PurchasePrice decimal.Decimal     `json:"purchasePrice" swaggertype:"string"`
	SalePrice     *decimal.Decimal    `json:"salePrice,omitempty" swaggertype:"string"`
	Currency      domain.CurrencyCode `json:"currency"`
	Status        domain.ItemStatus   `json:"status"`
	CreatedAt     time.Time           `json:"createdAt"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
}

// ListItemsResponse is one page of items.
type ListItemsResponse struct {
	Items     []ItemResponse `json:"items"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// ToItemResponse converts a domain.Item to ItemResponse DTO
func ToItemResponse(i *domain.Item) ItemResponse {
	return ItemResponse{
		ItemID:        i.ItemID,
		Name:          i.Name,
		Brand:         i.Brand,
		Category:      i.Category,
		PurchasePrice: i.PurchasePrice,
		SalePrice:     i.SalePrice,
		Currency:      i.Currency,
		Status:        i.Status,
		CreatedAt:     i.CreatedAt,
		LastUpdatedAt: i.LastUpdatedAt,
	}
}

// ToListItemResponse converts a slice of domain items to DTOs.
func ToListItemResponse(items []domain.Item) []ItemResponse {
	res := make([]ItemResponse, len(items))
	for i := range items {
		res[i] = ToItemResponse(&items[i])
	}
	return res
}
