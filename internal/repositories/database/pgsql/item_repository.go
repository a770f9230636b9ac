package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/resale_hub/internal/apperrors"
	"github.com/SscSPs/resale_hub/internal/core/domain"
	portsrepo "github.com/SscSPs/resale_hub/internal/core/ports/repositories"
	"github.com/SscSPs/resale_hub/internal/models"
	"github.com/SscSPs/resale_hub/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxItemRepository struct {
	BaseRepository
}

func newPgxItemRepository(pool PgxPool) portsrepo.ItemRepositoryWithTx {
	return &PgxItemRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxItemRepository implements portsrepo.ItemRepositoryWithTx
var _ portsrepo.ItemRepositoryWithTx = (*PgxItemRepository)(nil)

const itemSelectQuery = `
SELECT item_id, owner_user_id, name, brand, category,
	purchase_price, sale_price, currency_code, status,
	created_at, created_by, last_updated_at, last_updated_by
FROM items
`

func collectItems(rows pgx.Rows) ([]domain.Item, error) {
	defer rows.Close()
	modelItems, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Item])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Item{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect item rows", err)
	}
	return mapping.ToDomainItemSlice(modelItems), nil
}

func (r *PgxItemRepository) FindItemByID(ctx context.Context, ownerUserID, itemID string) (*domain.Item, error) {
	rows, err := r.Pool.Query(ctx, itemSelectQuery+`WHERE owner_user_id = $1 AND item_id = $2`, ownerUserID, itemID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query item "+itemID, err)
	}
	items, err := collectItems(rows)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &items[0], nil
}

// ListItems uses keyset pagination on (created_at, item_id), newest first.
func (r *PgxItemRepository) ListItems(ctx context.Context, ownerUserID string, limit int, cursor *portsrepo.ItemCursor) ([]domain.Item, error) {
	if limit <= 0 {
		limit = 20
	}
	var (
		rows pgx.Rows
		err  error
	)
	if cursor == nil {
		rows, err = r.Pool.Query(ctx, itemSelectQuery+`
			WHERE owner_user_id = $1
			ORDER BY created_at DESC, item_id DESC
			LIMIT $2`, ownerUserID, limit)
	} else {
		rows, err = r.Pool.Query(ctx, itemSelectQuery+`
			WHERE owner_user_id = $1 AND (created_at, item_id) < ($2, $3)
			ORDER BY created_at DESC, item_id DESC
			LIMIT $4`, ownerUserID, cursor.CreatedAt, cursor.ItemID, limit)
	}
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query items", err)
	}
	return collectItems(rows)
}

func (r *PgxItemRepository) ListItemsForUpdateTx(ctx context.Context, tx pgx.Tx, ownerUserID string) ([]domain.Item, error) {
	rows, err := tx.Query(ctx, itemSelectQuery+`
		WHERE owner_user_id = $1
		ORDER BY item_id
		FOR UPDATE`, ownerUserID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock items", err)
	}
	return collectItems(rows)
}

func (r *PgxItemRepository) SaveItem(ctx context.Context, item domain.Item) error {
	m := mapping.ToModelItem(item)
	query := `
		INSERT INTO items (
			item_id, owner_user_id, name, brand, category,
			purchase_price, sale_price, currency_code, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ItemID,
		m.OwnerUserID,
		m.Name,
		m.Brand,
		m.Category,
		m.PurchasePrice,
		m.SalePrice,
		m.CurrencyCode,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "item "+item.ItemID+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save item "+item.ItemID, err)
	}
	return nil
}

// UpdateItemPricesTx writes converted prices back in a single batch.
func (r *PgxItemRepository) UpdateItemPricesTx(ctx context.Context, tx pgx.Tx, items []domain.Item) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		UPDATE items
		SET purchase_price = $3, sale_price = $4, currency_code = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE owner_user_id = $1 AND item_id = $2;
	`
	batch := &pgx.Batch{}
	for _, item := range items {
		m := mapping.ToModelItem(item)
		batch.Queue(query,
			m.OwnerUserID,
			m.ItemID,
			m.PurchasePrice,
			m.SalePrice,
			m.CurrencyCode,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		ct, err := br.Exec()
		if err != nil {
			if batchErr == nil {
				batchErr = fmt.Errorf("failed to update prices of item %s: %w", items[i].ItemID, err)
			}
		} else if ct.RowsAffected() == 0 && batchErr == nil {
			batchErr = fmt.Errorf("%w: item %s vanished during price update", apperrors.ErrNotFound, items[i].ItemID)
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close price update batch: %w", err)
	}
	if batchErr != nil {
		return apperrors.NewAppError(500, "failed to update item prices", batchErr)
	}
	return nil
}
