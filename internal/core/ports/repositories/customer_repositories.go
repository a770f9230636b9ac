package repositories

import (
	"context"

	"github.com/SscSPs/resale_hub/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a customer owned by ownerUserID.
	FindCustomerByID(ctx context.Context, ownerUserID, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves all customers of a user, most recently created first.
	ListCustomers(ctx context.Context, ownerUserID string, limit, offset int) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	DeleteCustomer(ctx context.Context, ownerUserID, customerID string) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
