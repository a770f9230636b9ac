package mapping

import (
	"github.com/SscSPs/resale_hub/internal/core/domain"
	"github.com/SscSPs/resale_hub/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelItem converts a domain Item to a model Item
func ToModelItem(d domain.Item) models.Item {
	m := models.Item{
		ItemID:        d.ItemID,
		OwnerUserID:   d.OwnerUserID,
		Name:          d.Name,
		Brand:         d.Brand,
		Category:      d.Category,
		PurchasePrice: d.PurchasePrice,
		CurrencyCode:  string(d.Currency),
		Status:        string(d.Status),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
	if d.SalePrice != nil {
		m.SalePrice = decimal.NewNullDecimal(*d.SalePrice)
	}
	return m
}

// ToDomainItem converts a model Item to a domain Item
func ToDomainItem(m models.Item) domain.Item {
	d := domain.Item{
		ItemID:        m.ItemID,
		OwnerUserID:   m.OwnerUserID,
		Name:          m.Name,
		Brand:         m.Brand,
		Category:      m.Category,
		PurchasePrice: m.PurchasePrice,
		Currency:      domain.CurrencyCode(m.CurrencyCode),
		Status:        domain.ItemStatus(m.Status),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.SalePrice.Valid {
		sale := m.SalePrice.Decimal
		d.SalePrice = &sale
	}
	return d
}

// ToDomainItemSlice converts a slice of model Items to domain Items
func ToDomainItemSlice(ms []models.Item) []domain.Item {
	ds := make([]domain.Item, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainItem(m)
	}
	return ds
}
