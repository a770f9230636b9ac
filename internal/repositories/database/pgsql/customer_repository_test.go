package pgsql

import (
	"context"
	"testing"

	"github.com/SscSPs/resale_hub/internal/apperrors"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgxCustomerRepository_DeleteCustomer(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := newPgxCustomerRepository(mock)
	mock.ExpectExec("DELETE FROM customers").
		WithArgs("user-1", "cust-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("DELETE FROM customers").
		WithArgs("user-1", "cust-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, repo.DeleteCustomer(context.Background(), "user-1", "cust-1"))
	assert.ErrorIs(t, repo.DeleteCustomer(context.Background(), "user-1", "cust-1"), apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgxCustomerRepository_ListCustomers_DefaultsPaging(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := newPgxCustomerRepository(mock)
	mock.ExpectQuery("FROM customers").
		WithArgs("user-1", 20, 0).
		WillReturnRows(pgxmock.NewRows([]string{
			"customer_id", "owner_user_id", "name", "email", "phone", "platform", "notes", "image",
			"total_purchases", "last_purchase",
			"created_at", "created_by", "last_updated_at", "last_updated_by",
		}))

	customers, err := repo.ListCustomers(context.Background(), "user-1", -1, -5)
	require.NoError(t, err)
	assert.Empty(t, customers)
	assert.NoError(t, mock.ExpectationsWereMet())
}
