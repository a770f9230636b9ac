package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/resale_hub/internal/core/domain"
	portsrepo "github.com/SscSPs/resale_hub/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/resale_hub/internal/core/ports/services"
	"github.com/SscSPs/resale_hub/internal/dto"
	"github.com/SscSPs/resale_hub/internal/utils"
	"github.com/google/uuid"
)

type customerService struct {
	BaseService
	customerRepo  portsrepo.CustomerRepositoryFacade
	maxImageBytes int
}

// CustomerServiceOption is a functional option for configuring the customer service
type CustomerServiceOption func(*customerService)

// WithMaxImageBytes overrides the decoded image size limit.
func WithMaxImageBytes(n int) CustomerServiceOption {
	return func(s *customerService) {
		if n > 0 {
			s.maxImageBytes = n
		}
	}
}

// NewCustomerService creates a new customer service.
func NewCustomerService(repo portsrepo.CustomerRepositoryFacade, options ...CustomerServiceOption) portssvc.CustomerSvcFacade {
	svc := &customerService{
		customerRepo:  repo,
		maxImageBytes: utils.DefaultMaxImageBytes,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (s *customerService) CreateCustomer(ctx context.Context, userID string, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	req.Normalize()
	if err := s.ValidateStruct(req); err != nil {
		s.LogDebug(ctx, "Customer request failed validation", slog.String("error", err.Error()))
		return nil, err
	}
	if req.Image != "" {
		if err := utils.ValidateImageDataURL(req.Image, s.maxImageBytes); err != nil {
			s.LogDebug(ctx, "Customer image rejected", slog.String("error", err.Error()))
			return nil, err
		}
	}

	now := time.Now().UTC()
	customer := domain.Customer{
		CustomerID:     uuid.NewString(),
		OwnerUserID:    userID,
		Name:           req.Name,
		Email:          optionalString(req.Email),
		Phone:          optionalString(req.Phone),
		Platform:       req.Platform,
		Notes:          optionalString(req.Notes),
		Image:          optionalString(req.Image),
		TotalPurchases: 0,
		LastPurchase:   now,
		AuditFields:    domain.NewAuditFields(userID, now),
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer", slog.String("customer_id", customer.CustomerID))
		return nil, err
	}

	s.LogInfo(ctx, "Customer created", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, userID, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, userID, customerID)
	if err != nil {
		s.LogDebug(ctx, "Customer lookup failed", slog.String("customer_id", customerID), slog.String("error", err.Error()))
		return nil, err
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context, userID string, limit, offset int) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx, userID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return nil, err
	}
	return customers, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, userID, customerID string) error {
	if err := s.customerRepo.DeleteCustomer(ctx, userID, customerID); err != nil {
		s.LogDebug(ctx, "Customer delete failed", slog.String("customer_id", customerID), slog.String("error", err.Error()))
		return err
	}
	s.LogInfo(ctx, "Customer deleted", slog.String("customer_id", customerID))
	return nil
}
