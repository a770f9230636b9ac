package services

import (
	"context"

	"github.com/SscSPs/resale_hub/internal/core/domain"
	"github.com/SscSPs/resale_hub/internal/dto"
)

// CustomerReaderSvc defines read operations for customers
type CustomerReaderSvc interface {
	GetCustomerByID(ctx context.Context, userID, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, userID string, limit, offset int) ([]domain.Customer, error)
}

// CustomerWriterSvc defines write operations for customers
type CustomerWriterSvc interface {
	// CreateCustomer validates and persists a new customer owned by userID.
	CreateCustomer(ctx context.Context, userID string, req dto.CreateCustomerRequest) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, userID, customerID string) error
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}
