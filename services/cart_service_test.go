package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naoh-aquatics/models"
)

type fakeMenu struct {
	items map[string]models.MenuItem
}

func (f *fakeMenu) GetMenuItemByID(ctx context.Context, id string) (*models.MenuItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, fmt.Errorf("no rows in result set")
	}
	return &item, nil
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dp(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func fixtureService() *CartService {
	menu := &fakeMenu{items: map[string]models.MenuItem{
		"koi-pellets": {
			ID:            "koi-pellets",
			Name:          "Premium Koi Pellets",
			BasePrice:     d("100.00"),
			DiscountPrice: dp("80.00"),
			IsOnDiscount:  true,
			IsAvailable:   true,
			Variations: []models.Variation{
				{ID: "5kg", Name: "5 kg", Price: d("20.00")},
			},
			AddOns: []models.AddOn{
				{ID: "extra", Name: "Extra Scoop", Price: d("5.00")},
			},
		},
		"java-fern": {
			ID:          "java-fern",
			Name:        "Java Fern",
			BasePrice:   d("120.00"),
			IsAvailable: false,
		},
	}}
	return newCartServiceWith(newMemoryCartStore(), menu)
}

func TestCartService_AddItem(t *testing.T) {
	svc := fixtureService()
	ctx := context.Background()
	variationID := "5kg"

	cart, err := svc.AddItem(ctx, "sess-1", models.AddToCartRequest{
		MenuItemID:  "koi-pellets",
		Quantity:    1,
		VariationID: &variationID,
		AddOns:      []models.SelectedAddOnRequest{{ID: "extra", Quantity: 2}},
	})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.True(t, cart.Items[0].UnitPrice.Equal(d("110.00")))
	assert.True(t, cart.TotalPrice().Equal(d("110.00")))
	assert.Len(t, cart.Items[0].AddOns, 2)
}

func TestCartService_AddItemValidation(t *testing.T) {
	svc := fixtureService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", models.AddToCartRequest{MenuItemID: "no-such-item"})
	assert.ErrorContains(t, err, "not found")

	_, err = svc.AddItem(ctx, "sess-1", models.AddToCartRequest{MenuItemID: "java-fern"})
	assert.ErrorContains(t, err, "not available")

	badVariation := "no-such-variation"
	_, err = svc.AddItem(ctx, "sess-1", models.AddToCartRequest{
		MenuItemID:  "koi-pellets",
		VariationID: &badVariation,
	})
	assert.ErrorContains(t, err, "unknown variation")

	_, err = svc.AddItem(ctx, "sess-1", models.AddToCartRequest{
		MenuItemID: "koi-pellets",
		AddOns:     []models.SelectedAddOnRequest{{ID: "no-such-addon", Quantity: 1}},
	})
	assert.ErrorContains(t, err, "unknown add-on")

	// nothing above should have touched the cart
	cart, err := svc.GetCart(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartService_RepeatedAddsMerge(t *testing.T) {
	svc := fixtureService()
	ctx := context.Background()
	req := models.AddToCartRequest{MenuItemID: "koi-pellets", Quantity: 1}

	_, err := svc.AddItem(ctx, "sess-1", req)
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, "sess-1", req)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.True(t, cart.TotalPrice().Equal(d("160.00")))
}

func TestCartService_SessionsAreIsolated(t *testing.T) {
	svc := fixtureService()
	ctx := context.Background()
	req := models.AddToCartRequest{MenuItemID: "koi-pellets", Quantity: 1}

	_, err := svc.AddItem(ctx, "sess-1", req)
	require.NoError(t, err)

	other, err := svc.GetCart(ctx, "sess-2")
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}

func TestCartService_UpdateRemoveClear(t *testing.T) {
	svc := fixtureService()
	ctx := context.Background()

	cart, err := svc.AddItem(ctx, "sess-1", models.AddToCartRequest{MenuItemID: "koi-pellets", Quantity: 3})
	require.NoError(t, err)
	lineID := cart.Items[0].ID

	cart, err = svc.UpdateItem(ctx, "sess-1", lineID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, cart.Items[0].Quantity)

	cart, err = svc.UpdateItem(ctx, "sess-1", lineID, 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	// stale decrement after removal is a no-op
	cart, err = svc.UpdateItem(ctx, "sess-1", lineID, -1)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	_, err = svc.AddItem(ctx, "sess-1", models.AddToCartRequest{MenuItemID: "koi-pellets"})
	require.NoError(t, err)
	require.NoError(t, svc.ClearCart(ctx, "sess-1"))

	cart, err = svc.GetCart(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.TotalPrice().IsZero())
}
