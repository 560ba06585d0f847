package models

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// CartItem is one cart line: a purchasable configuration and its
// quantity. UnitPrice is frozen when the line is created; later catalog
// changes never reprice lines already in the cart. Changing the
// customization of a line means removing it and adding a new one.
type CartItem struct {
	ID         string          `json:"id"`
	MenuItemID string          `json:"menu_item_id"`
	Name       string          `json:"name"`
	ImageURL   string          `json:"image_url,omitempty"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
	Variation  *Variation      `json:"variation,omitempty"`
	AddOns     []AddOn         `json:"add_ons,omitempty"`
}

// Subtotal is unit price times quantity for this line.
func (ci CartItem) Subtotal() decimal.Decimal {
	return ci.UnitPrice.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

// LineID derives the cart line identity for a configuration. Two
// selections of the same item, variation and add-on multiset map to the
// same line; any difference in the selection makes a separate line.
// Variation and add-on ids are tagged because they are only unique
// within their own option list, so an item may carry both a variation
// and an add-on named "large".
func LineID(menuItemID string, variation *Variation, addOns []AddOn) string {
	parts := []string{menuItemID}
	if variation != nil {
		parts = append(parts, "v:"+variation.ID)
	}
	if len(addOns) > 0 {
		ids := make([]string, len(addOns))
		for i, a := range addOns {
			ids[i] = "a:" + a.ID
		}
		sort.Strings(ids)
		parts = append(parts, ids...)
	}
	return strings.Join(parts, "|")
}

// Cart holds the lines of one shopping session in insertion order.
// Every operation is total: out-of-range quantities are normalized and
// unknown line ids are ignored rather than reported.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Add prices the configuration and either merges it into the line with
// the same identity or appends a new line. A quantity below one is
// treated as one. The only possible failure is the pricing guard.
func (c *Cart) Add(item MenuItem, quantity int, variation *Variation, addOns []AddOn) (CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	unitPrice, err := UnitPrice(item, variation, addOns)
	if err != nil {
		return CartItem{}, err
	}

	id := LineID(item.ID, variation, addOns)
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Quantity += quantity
			return c.Items[i], nil
		}
	}

	line := CartItem{
		ID:         id,
		MenuItemID: item.ID,
		Name:       item.Name,
		ImageURL:   item.ImageURL,
		UnitPrice:  unitPrice,
		Quantity:   quantity,
		Variation:  variation,
		AddOns:     addOns,
	}
	c.Items = append(c.Items, line)
	return line, nil
}

// UpdateQuantity sets an existing line's quantity. A quantity of zero
// or less removes the line. Unknown line ids are a no-op; this never
// creates lines.
func (c *Cart) UpdateQuantity(lineID string, quantity int) {
	for i := range c.Items {
		if c.Items[i].ID == lineID {
			if quantity <= 0 {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
			} else {
				c.Items[i].Quantity = quantity
			}
			return
		}
	}
}

// Remove drops a line unconditionally; absent lines are a no-op.
func (c *Cart) Remove(lineID string) {
	c.UpdateQuantity(lineID, 0)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// TotalPrice sums unit price times quantity over all lines. An empty
// cart totals zero.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Items {
		total = total.Add(line.Subtotal())
	}
	return total
}

// TotalCount sums line quantities, the number the cart badge shows.
func (c *Cart) TotalCount() int {
	count := 0
	for _, line := range c.Items {
		count += line.Quantity
	}
	return count
}

// Find returns the line with the given id, or nil.
func (c *Cart) Find(lineID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ID == lineID {
			return &c.Items[i]
		}
	}
	return nil
}
