package models

import "github.com/shopspring/decimal"

// Item is a row of the items table.
type Item struct {
	ItemID        string              `db:"item_id"`
	OwnerUserID   string              `db:"owner_user_id"`
	Name          string              `db:"name"`
	Brand         string              `db:"brand"`
	Category      string              `db:"category"`
	PurchasePrice decimal.Decimal     `db:"purchase_price"`
	SalePrice     decimal.NullDecimal `db:"sale_price"`
	CurrencyCode  string              `db:"currency_code"`
	Status        string              `db:"status"`
	AuditFields
}
