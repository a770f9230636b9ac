package services

import (
	"context"

	"github.com/SscSPs/resale_hub/internal/core/domain"
	"github.com/SscSPs/resale_hub/internal/dto"
)

// ItemReaderSvc defines read operations for inventory items
type ItemReaderSvc interface {
	GetItemByID(ctx context.Context, userID, itemID string) (*domain.Item, error)
	ListItems(ctx context.Context, userID string, params dto.ListItemsParams) (*dto.ListItemsResponse, error)
}

// ItemWriterSvc defines write operations for inventory items
type ItemWriterSvc interface {
	// CreateItem persists an item, filling brand and category from the name when omitted.
	CreateItem(ctx context.Context, userID string, req dto.CreateItemRequest) (*domain.Item, error)
}

// ItemSvcFacade combines all item-related service interfaces
type ItemSvcFacade interface {
	ItemReaderSvc
	ItemWriterSvc
}
