package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// UnitPrice computes the price of one unit of item under the given
// customization: the item's effective price, plus the variation delta
// when a variation is chosen, plus one charge per add-on occurrence.
// addOns is the flattened form produced by AddOnSelection.Flatten, so
// an add-on taken twice appears twice.
//
// A negative result means the catalog data is broken (a variation delta
// below the price it applies to); that is surfaced as an error instead
// of being clamped so bad catalog rows cannot hide behind a zero price.
func UnitPrice(item MenuItem, variation *Variation, addOns []AddOn) (decimal.Decimal, error) {
	price := item.EffectivePrice()
	if variation != nil {
		price = price.Add(variation.Price)
	}
	for _, addOn := range addOns {
		price = price.Add(addOn.Price)
	}
	if price.IsNegative() {
		return decimal.Zero, fmt.Errorf("computed unit price for item %s is negative (%s)", item.ID, price)
	}
	return price, nil
}
