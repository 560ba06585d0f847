package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon,omitempty"`
	SortOrder int       `json:"sort_order"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// MenuItem is a catalog entry. Price fields are decimal so that unit
// prices and cart totals stay exact in pesos and centavos.
type MenuItem struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	BasePrice     decimal.Decimal  `json:"base_price"`
	DiscountPrice *decimal.Decimal `json:"discount_price,omitempty"`
	IsOnDiscount  bool             `json:"is_on_discount"`
	ImageURL      string           `json:"image_url,omitempty"`
	IsAvailable   bool             `json:"is_available"`
	IsPopular     bool             `json:"is_popular"`
	CategoryID    string           `json:"category_id"`
	Variations    []Variation      `json:"variations,omitempty"`
	AddOns        []AddOn          `json:"add_ons,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// EffectivePrice is the price charged for one unit before variation and
// add-on deltas: the discount price while the item is on discount, the
// base price otherwise.
func (m MenuItem) EffectivePrice() decimal.Decimal {
	if m.IsOnDiscount && m.DiscountPrice != nil {
		return *m.DiscountPrice
	}
	return m.BasePrice
}

// FindVariation looks up one of the item's variations by id.
func (m MenuItem) FindVariation(id string) *Variation {
	for i := range m.Variations {
		if m.Variations[i].ID == id {
			return &m.Variations[i]
		}
	}
	return nil
}

// FindAddOn looks up one of the item's add-ons by id.
func (m MenuItem) FindAddOn(id string) *AddOn {
	for i := range m.AddOns {
		if m.AddOns[i].ID == id {
			return &m.AddOns[i]
		}
	}
	return nil
}

// Variation is a mutually exclusive size or style choice. Price is a
// signed delta added on top of the item's effective price.
type Variation struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// AddOn is an optional extra. Category is a grouping label for the
// customization dialog only; it plays no part in pricing.
type AddOn struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category,omitempty"`
	Price    decimal.Decimal `json:"price"`
}
