package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddMergesIdenticalSelections(t *testing.T) {
	item := testItem()
	variation := item.FindVariation("5kg")
	extra := *item.FindAddOn("extra")
	addOns := []AddOn{extra, extra}

	var cart Cart
	_, err := cart.Add(item, 1, variation, addOns)
	require.NoError(t, err)
	assert.True(t, cart.TotalPrice().Equal(d("110.00")))

	_, err = cart.Add(item, 2, variation, addOns)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.True(t, cart.TotalPrice().Equal(d("330.00")))
	assert.Equal(t, 3, cart.TotalCount())
}

func TestCart_DistinctSelectionsAreDistinctLines(t *testing.T) {
	item := testItem()

	var cart Cart
	_, err := cart.Add(item, 1, item.FindVariation("1kg"), nil)
	require.NoError(t, err)
	_, err = cart.Add(item, 1, item.FindVariation("5kg"), nil)
	require.NoError(t, err)
	_, err = cart.Add(item, 1, nil, nil)
	require.NoError(t, err)

	assert.Len(t, cart.Items, 3)
}

func TestCart_LineIDIgnoresAddOnOrder(t *testing.T) {
	item := testItem()
	extra := *item.FindAddOn("extra")
	vitamins := *item.FindAddOn("vitamins")

	a := LineID(item.ID, nil, []AddOn{extra, vitamins})
	b := LineID(item.ID, nil, []AddOn{vitamins, extra})
	assert.Equal(t, a, b)

	c := LineID(item.ID, nil, []AddOn{extra, extra, vitamins})
	assert.NotEqual(t, a, c)
}

func TestCart_SharedVariationAndAddOnIDsStayDistinct(t *testing.T) {
	item := MenuItem{
		ID:          "sponge-filter",
		Name:        "Sponge Filter",
		BasePrice:   d("250.00"),
		IsAvailable: true,
		Variations:  []Variation{{ID: "large", Name: "Large", Price: d("20.00")}},
		AddOns:      []AddOn{{ID: "large", Name: "Large Airline Kit", Price: d("30.00")}},
	}

	var cart Cart
	withVariation, err := cart.Add(item, 1, item.FindVariation("large"), nil)
	require.NoError(t, err)
	withAddOn, err := cart.Add(item, 1, nil, []AddOn{*item.FindAddOn("large")})
	require.NoError(t, err)

	// same option id on both lists must not merge the two configurations
	require.Len(t, cart.Items, 2)
	assert.NotEqual(t, withVariation.ID, withAddOn.ID)
	assert.True(t, withVariation.UnitPrice.Equal(d("270.00")))
	assert.True(t, withAddOn.UnitPrice.Equal(d("280.00")))
	assert.True(t, cart.TotalPrice().Equal(d("550.00")))
}

func TestCart_UnitPriceFrozenAtAddTime(t *testing.T) {
	item := testItem()

	var cart Cart
	_, err := cart.Add(item, 1, nil, nil)
	require.NoError(t, err)

	// catalog reprice after the line exists
	item.BasePrice = d("999.00")
	item.IsOnDiscount = false
	_, err = cart.Add(item, 1, nil, nil)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.True(t, cart.Items[0].UnitPrice.Equal(d("80.00")))
}

func TestCart_UpdateQuantityRoundTrip(t *testing.T) {
	item := testItem()

	var cart Cart
	line, err := cart.Add(item, 3, nil, nil)
	require.NoError(t, err)

	cart.UpdateQuantity(line.ID, 0)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.TotalPrice().IsZero())
	assert.Equal(t, 0, cart.TotalCount())
}

func TestCart_UpdateQuantityOnRemovedLineIsNoop(t *testing.T) {
	item := testItem()

	var cart Cart
	line, err := cart.Add(item, 1, nil, nil)
	require.NoError(t, err)

	cart.UpdateQuantity(line.ID, 0)
	// repeated decrements after removal must not create or error
	cart.UpdateQuantity(line.ID, -1)
	cart.UpdateQuantity(line.ID, -2)
	assert.Empty(t, cart.Items)

	// update never creates lines, even with a positive quantity
	cart.UpdateQuantity(line.ID, 5)
	assert.Empty(t, cart.Items)
}

func TestCart_AddNormalizesQuantity(t *testing.T) {
	item := testItem()

	var cart Cart
	line, err := cart.Add(item, 0, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)

	line, err = cart.Add(item, -3, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, line.Quantity)
}

func TestCart_AddRejectsNegativeUnitPrice(t *testing.T) {
	item := testItem()
	bad := Variation{ID: "broken", Name: "Broken", Price: d("-500.00")}

	var cart Cart
	_, err := cart.Add(item, 1, &bad, nil)
	require.Error(t, err)
	assert.Empty(t, cart.Items)
}

func TestCart_RemoveAndClear(t *testing.T) {
	item := testItem()

	var cart Cart
	line, err := cart.Add(item, 2, nil, nil)
	require.NoError(t, err)
	_, err = cart.Add(item, 1, item.FindVariation("5kg"), nil)
	require.NoError(t, err)

	cart.Remove(line.ID)
	assert.Len(t, cart.Items, 1)
	cart.Remove("no-such-line")
	assert.Len(t, cart.Items, 1)

	cart.Clear()
	assert.Empty(t, cart.Items)
	assert.True(t, cart.TotalPrice().IsZero())
}

func TestCart_SequentialIncrementsAreNotLost(t *testing.T) {
	item := testItem()

	var cart Cart
	line, err := cart.Add(item, 1, nil, nil)
	require.NoError(t, err)

	// two rapid "+" clicks, each applied against the observed quantity
	cart.UpdateQuantity(line.ID, cart.Find(line.ID).Quantity+1)
	cart.UpdateQuantity(line.ID, cart.Find(line.ID).Quantity+1)

	assert.Equal(t, 3, cart.Find(line.ID).Quantity)
}
