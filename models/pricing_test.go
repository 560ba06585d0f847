package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dp(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func testItem() MenuItem {
	return MenuItem{
		ID:            "koi-pellets",
		Name:          "Premium Koi Pellets",
		BasePrice:     d("100.00"),
		DiscountPrice: dp("80.00"),
		IsOnDiscount:  true,
		IsAvailable:   true,
		CategoryID:    "fish-food",
		Variations: []Variation{
			{ID: "1kg", Name: "1 kg", Price: d("0")},
			{ID: "5kg", Name: "5 kg", Price: d("20.00")},
		},
		AddOns: []AddOn{
			{ID: "extra", Name: "Extra Scoop", Price: d("5.00")},
			{ID: "vitamins", Name: "Vitamin Booster", Price: d("60.00")},
		},
	}
}

func TestEffectivePrice(t *testing.T) {
	item := testItem()
	assert.True(t, item.EffectivePrice().Equal(d("80.00")))

	item.IsOnDiscount = false
	assert.True(t, item.EffectivePrice().Equal(d("100.00")))

	item.IsOnDiscount = true
	item.DiscountPrice = nil
	assert.True(t, item.EffectivePrice().Equal(d("100.00")))
}

func TestUnitPrice_BasePriceOnly(t *testing.T) {
	item := testItem()
	item.IsOnDiscount = false

	price, err := UnitPrice(item, nil, nil)
	require.NoError(t, err)
	assert.True(t, price.Equal(d("100.00")))
}

func TestUnitPrice_DiscountApplies(t *testing.T) {
	item := testItem()

	price, err := UnitPrice(item, nil, nil)
	require.NoError(t, err)
	assert.True(t, price.Equal(d("80.00")))
	assert.True(t, item.DiscountPrice.LessThan(item.BasePrice))
}

func TestUnitPrice_VariationOnEffectivePrice(t *testing.T) {
	item := testItem()
	variation := item.FindVariation("5kg")
	require.NotNil(t, variation)

	// discount applies under the variation too
	price, err := UnitPrice(item, variation, nil)
	require.NoError(t, err)
	assert.True(t, price.Equal(d("100.00")))

	item.IsOnDiscount = false
	price, err = UnitPrice(item, variation, nil)
	require.NoError(t, err)
	assert.True(t, price.Equal(d("120.00")))
}

func TestUnitPrice_AddOnOccurrences(t *testing.T) {
	item := testItem()
	extra := *item.FindAddOn("extra")
	vitamins := *item.FindAddOn("vitamins")

	// (extra, 2) and (vitamins, 1) flattened
	price, err := UnitPrice(item, nil, []AddOn{extra, extra, vitamins})
	require.NoError(t, err)
	assert.True(t, price.Equal(d("150.00")), "80 + 2x5 + 60, got %s", price)
}

func TestUnitPrice_FullScenario(t *testing.T) {
	item := testItem()
	variation := item.FindVariation("5kg")
	extra := *item.FindAddOn("extra")

	price, err := UnitPrice(item, variation, []AddOn{extra, extra})
	require.NoError(t, err)
	assert.True(t, price.Equal(d("110.00")), "80 + 20 + 10, got %s", price)
}

func TestUnitPrice_NegativeResultIsError(t *testing.T) {
	item := testItem()
	bad := Variation{ID: "broken", Name: "Broken", Price: d("-500.00")}

	_, err := UnitPrice(item, &bad, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")
}

func TestUnitPrice_Idempotent(t *testing.T) {
	item := testItem()
	variation := item.FindVariation("5kg")
	addOns := []AddOn{*item.FindAddOn("extra")}

	first, err := UnitPrice(item, variation, addOns)
	require.NoError(t, err)
	second, err := UnitPrice(item, variation, addOns)
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
}
