package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddOnSelection_SetQuantity(t *testing.T) {
	item := testItem()
	extra := *item.FindAddOn("extra")
	vitamins := *item.FindAddOn("vitamins")

	var sel AddOnSelection

	sel.SetQuantity(extra, 2)
	assert.Equal(t, 2, sel.Quantity("extra"))
	assert.Equal(t, 1, sel.Len())

	// replacement, not accumulation
	sel.SetQuantity(extra, 3)
	assert.Equal(t, 3, sel.Quantity("extra"))
	assert.Equal(t, 1, sel.Len())

	// same value twice is idempotent
	sel.SetQuantity(vitamins, 1)
	before := sel.Entries()
	sel.SetQuantity(vitamins, 1)
	assert.Equal(t, before, sel.Entries())
}

func TestAddOnSelection_ZeroRemoves(t *testing.T) {
	item := testItem()
	extra := *item.FindAddOn("extra")

	var sel AddOnSelection
	sel.SetQuantity(extra, 5)
	sel.SetQuantity(extra, 0)

	assert.Equal(t, 0, sel.Quantity("extra"))
	assert.Equal(t, 0, sel.Len())

	// setting zero on an unselected add-on stays empty
	sel.SetQuantity(extra, -1)
	assert.Equal(t, 0, sel.Len())

	// re-selecting after removal carries no residual state
	sel.SetQuantity(extra, 2)
	assert.Equal(t, 2, sel.Quantity("extra"))
}

func TestAddOnSelection_FlattenGroupRoundTrip(t *testing.T) {
	item := testItem()
	extra := *item.FindAddOn("extra")
	vitamins := *item.FindAddOn("vitamins")

	var sel AddOnSelection
	sel.SetQuantity(extra, 2)
	sel.SetQuantity(vitamins, 1)

	flat := sel.Flatten()
	require.Len(t, flat, 3)
	assert.Equal(t, "extra", flat[0].ID)
	assert.Equal(t, "extra", flat[1].ID)
	assert.Equal(t, "vitamins", flat[2].ID)

	grouped := GroupAddOns(flat)
	require.Len(t, grouped, 2)
	assert.Equal(t, "extra", grouped[0].ID)
	assert.Equal(t, 2, grouped[0].Quantity)
	assert.Equal(t, "vitamins", grouped[1].ID)
	assert.Equal(t, 1, grouped[1].Quantity)
}

func TestAddOnSelection_EmptyFlattens(t *testing.T) {
	var sel AddOnSelection
	assert.Nil(t, sel.Flatten())
	assert.Nil(t, GroupAddOns(nil))
}
