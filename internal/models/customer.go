package models

import "time"

// Customer is a row of the customers table. Optional columns are nullable.
type Customer struct {
	CustomerID     string    `db:"customer_id"`
	OwnerUserID    string    `db:"owner_user_id"`
	Name           string    `db:"name"`
	Email          *string   `db:"email"`
	Phone          *string   `db:"phone"`
	Platform       string    `db:"platform"`
	Notes          *string   `db:"notes"`
	Image          *string   `db:"image"`
	TotalPurchases int       `db:"total_purchases"`
	LastPurchase   time.Time `db:"last_purchase"`
	AuditFields
}
