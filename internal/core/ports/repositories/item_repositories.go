package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/resale_hub/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ItemCursor marks the last row of a previous page.
type ItemCursor struct {
	CreatedAt time.Time
	ItemID    string
}

// ItemReader defines read operations for inventory items
type ItemReader interface {
	FindItemByID(ctx context.Context, ownerUserID, itemID string) (*domain.Item, error)

	// ListItems returns up to limit items, newest first, starting after cursor when set.
	ListItems(ctx context.Context, ownerUserID string, limit int, cursor *ItemCursor) ([]domain.Item, error)

	// ListItemsForUpdateTx locks and returns every item of the user inside tx.
	ListItemsForUpdateTx(ctx context.Context, tx pgx.Tx, ownerUserID string) ([]domain.Item, error)
}

// ItemWriter defines write operations for inventory items
type ItemWriter interface {
	SaveItem(ctx context.Context, item domain.Item) error

	// UpdateItemPricesTx rewrites prices and currency of the given items inside tx.
	UpdateItemPricesTx(ctx context.Context, tx pgx.Tx, items []domain.Item) error
}

// ItemRepositoryFacade combines all item-related repository interfaces
type ItemRepositoryFacade interface {
	ItemReader
	ItemWriter
}

// ItemRepositoryWithTx extends ItemRepositoryFacade with transaction capabilities
type ItemRepositoryWithTx interface {
	ItemRepositoryFacade
	TransactionManager
}
