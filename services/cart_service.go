package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"naoh-aquatics/config"
	"naoh-aquatics/models"
	"naoh-aquatics/repositories"
)

type menuGetter interface {
	GetMenuItemByID(ctx context.Context, id string) (*models.MenuItem, error)
}

// CartService applies cart operations against the session store. The
// mutex serializes every read-modify-write cycle, so two rapid add or
// update requests land as two distinct, ordered mutations and neither
// is lost.
type CartService struct {
	store CartStore
	menu  menuGetter
	mu    sync.Mutex
}

func NewCartService() *CartService {
	var store CartStore
	if config.RedisClient != nil {
		store = newRedisCartStore(config.RedisClient)
	} else {
		store = newMemoryCartStore()
	}
	return &CartService{store: store, menu: repositories.NewMenuRepository()}
}

func newCartServiceWith(store CartStore, menu menuGetter) *CartService {
	return &CartService{store: store, menu: menu}
}

func (s *CartService) GetCart(ctx context.Context, token string) (*models.Cart, error) {
	return s.store.Load(ctx, token)
}

// AddItem validates the requested configuration against the live
// catalog, prices it, and merges it into the session cart. The unit
// price recorded on the line is final from this moment on.
func (s *CartService) AddItem(ctx context.Context, token string, req models.AddToCartRequest) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.menu.GetMenuItemByID(ctx, req.MenuItemID)
	if err != nil {
		return nil, fmt.Errorf("menu item %s not found", req.MenuItemID)
	}
	if !item.IsAvailable {
		return nil, errors.New("menu item is not available")
	}

	var variation *models.Variation
	if req.VariationID != nil && *req.VariationID != "" {
		variation = item.FindVariation(*req.VariationID)
		if variation == nil {
			return nil, fmt.Errorf("unknown variation %s for item %s", *req.VariationID, item.ID)
		}
	}

	var selection models.AddOnSelection
	for _, sel := range req.AddOns {
		addOn := item.FindAddOn(sel.ID)
		if addOn == nil {
			return nil, fmt.Errorf("unknown add-on %s for item %s", sel.ID, item.ID)
		}
		selection.SetQuantity(*addOn, sel.Quantity)
	}

	cart, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	if _, err := cart.Add(*item, req.Quantity, variation, selection.Flatten()); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, token, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateItem sets a line's quantity; zero or less removes the line and
// unknown lines are left alone, matching the aggregate's semantics.
func (s *CartService) UpdateItem(ctx context.Context, token, lineID string, quantity int) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	cart.UpdateQuantity(lineID, quantity)
	if err := s.store.Save(ctx, token, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) RemoveItem(ctx context.Context, token, lineID string) (*models.Cart, error) {
	return s.UpdateItem(ctx, token, lineID, 0)
}

func (s *CartService) ClearCart(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Delete(ctx, token)
}
