package mapping

import (
	"github.com/SscSPs/resale_hub/internal/core/domain"
	"github.com/SscSPs/resale_hub/internal/models"
)

// ToModelCustomer converts a domain Customer to a model Customer
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:     d.CustomerID,
		OwnerUserID:    d.OwnerUserID,
		Name:           d.Name,
		Email:          d.Email,
		Phone:          d.Phone,
		Platform:       d.Platform,
		Notes:          d.Notes,
		Image:          d.Image,
		TotalPurchases: d.TotalPurchases,
		LastPurchase:   d.LastPurchase,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:     m.CustomerID,
		OwnerUserID:    m.OwnerUserID,
		Name:           m.Name,
		Email:          m.Email,
		Phone:          m.Phone,
		Platform:       m.Platform,
		Notes:          m.Notes,
		Image:          m.Image,
		TotalPurchases: m.TotalPurchases,
		LastPurchase:   m.LastPurchase,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCustomerSlice converts a slice of model Customers to domain Customers
func ToDomainCustomerSlice(ms []models.Customer) []domain.Customer {
	ds := make([]domain.Customer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCustomer(m)
	}
	return ds
}
