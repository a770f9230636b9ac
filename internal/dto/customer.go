package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/resale_hub/internal/core/domain"
)

// CreateCustomerRequest defines the data needed to add a customer.
// The same tags are checked again by the service after trimming.
type CreateCustomerRequest struct {
	Name     string `json:"name" binding:"notblank,max=100"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone" binding:"omitempty,max=50"`
	Platform string `json:"platform" binding:"notblank,max=50"`
	Notes    string `json:"notes" binding:"omitempty,max=500"`
	Image    string `json:"image" binding:"omitempty,startswith=data:image/"`
}

// Normalize trims surrounding whitespace from every text field.
func (r *CreateCustomerRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Platform = strings.TrimSpace(r.Platform)
	r.Notes = strings.TrimSpace(r.Notes)
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID     string    `json:"customerID"`
	Name           string    `json:"name"`
	Email          *string   `json:"email,omitempty"`
	Phone          *string   `json:"phone,omitempty"`
	Platform       string    `json:"platform"`
	Notes          *string   `json:"notes,omitempty"`
	Image          *string   `json:"image,omitempty"`
	TotalPurchases int       `json:"totalPurchases"`
	LastPurchase   time.Time `json:"lastPurchase"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:     c.CustomerID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Platform:       c.Platform,
		Notes:          c.Notes,
		Image:          c.Image,
		TotalPurchases: c.TotalPurchases,
		LastPurchase:   c.LastPurchase,
		CreatedAt:      c.CreatedAt,
	}
}

// ToListCustomerResponse converts a slice of domain customers to DTOs.
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i := range customers {
		res[i] = ToCustomerResponse(&customers[i])
	}
	return res
}

// ListCustomersParams holds offset pagination query parameters.
type ListCustomersParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}
