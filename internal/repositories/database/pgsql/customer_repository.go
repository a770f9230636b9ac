package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/resale_hub/internal/apperrors"
	"github.com/SscSPs/resale_hub/internal/core/domain"
	portsrepo "github.com/SscSPs/resale_hub/internal/core/ports/repositories"
	"github.com/SscSPs/resale_hub/internal/models"
	"github.com/SscSPs/resale_hub/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool PgxPool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

const customerSelectQuery = `
SELECT customer_id, owner_user_id, name, email, phone, platform, notes, image,
	total_purchases, last_purchase,
	created_at, created_by, last_updated_at, last_updated_by
FROM customers
`

func (r *PgxCustomerRepository) getCustomers(ctx context.Context, filterQuery string, args ...any) ([]domain.Customer, error) {
	rows, err := r.Pool.Query(ctx, customerSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query customers", err)
	}
	defer rows.Close()
	modelCustomers, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Customer])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Customer{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect customer rows", err)
	}
	return mapping.ToDomainCustomerSlice(modelCustomers), nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, ownerUserID, customerID string) (*domain.Customer, error) {
	customers, err := r.getCustomers(ctx, `WHERE owner_user_id = $1 AND customer_id = $2`, ownerUserID, customerID)
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &customers[0], nil
}

func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, ownerUserID string, limit, offset int) ([]domain.Customer, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return r.getCustomers(ctx, `
		WHERE owner_user_id = $1
		ORDER BY created_at DESC, customer_id DESC
		LIMIT $2 OFFSET $3`, ownerUserID, limit, offset)
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		INSERT INTO customers (
			customer_id, owner_user_id, name, email, phone, platform, notes, image,
			total_purchases, last_purchase,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CustomerID,
		m.OwnerUserID,
		m.Name,
		m.Email,
		m.Phone,
		m.Platform,
		m.Notes,
		m.Image,
		m.TotalPurchases,
		m.LastPurchase,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "customer "+customer.CustomerID+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save customer "+customer.CustomerID, err)
	}
	return nil
}

func (r *PgxCustomerRepository) DeleteCustomer(ctx context.Context, ownerUserID, customerID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM customers WHERE owner_user_id = $1 AND customer_id = $2;`, ownerUserID, customerID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete customer "+customerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
