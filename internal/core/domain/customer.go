package domain

import "time"

// Customer is a buyer the reseller keeps track of.
type Customer struct {
	CustomerID     string    `json:"customerID"`
	OwnerUserID    string    `json:"ownerUserID"`
	Name           string    `json:"name"`
	Email          *string   `json:"email,omitempty"`
	Phone          *string   `json:"phone,omitempty"`
	Platform       string    `json:"platform"` // where the customer buys, e.g. eBay, Vinted
	Notes          *string   `json:"notes,omitempty"`
	Image          *string   `json:"image,omitempty"` // data URL
	TotalPurchases int       `json:"totalPurchases"`
	LastPurchase   time.Time `json:"lastPurchase"`
	AuditFields
}
