package domain

import "github.com/shopspring/decimal"

// ItemStatus tracks where an inventory item is in its resale lifecycle.
type ItemStatus string

const (
	ItemInStock ItemStatus = "IN_STOCK"
	ItemListed  ItemStatus = "LISTED"
	ItemSold    ItemStatus = "SOLD"
)

// Item is a piece of inventory. Prices are expressed in Currency.
type Item struct {
	ItemID        string           `json:"itemID"`
	OwnerUserID   string           `json:"ownerUserID"`
	Name          string           `json:"name"`
	Brand         string           `json:"brand"`
	Category      string           `json:"category"`
	PurchasePrice decimal.Decimal  `json:"purchasePrice"`
	SalePrice     *decimal.Decimal `json:"salePrice,omitempty"`
	Currency      CurrencyCode     `json:"currency"`
	Status        ItemStatus       `json:"status"`
	AuditFields
}

// ConvertPrices returns a copy of the item with every price expressed in to.
func (i Item) ConvertPrices(to CurrencyCode) (Item, error) {
	purchase, err := ConvertPrice(i.PurchasePrice, i.Currency, to)
	if err != nil {
		return Item{}, err
	}
	i.PurchasePrice = purchase
	if i.SalePrice != nil {
		sale, err := ConvertPrice(*i.SalePrice, i.Currency, to)
		if err != nil {
			return Item{}, err
		}
		i.SalePrice = &sale
	}
	i.Currency = to
	return i, nil
}
