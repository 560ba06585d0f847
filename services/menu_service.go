package services

import (
	"context"
	"errors"
	"math"

	"naoh-aquatics/models"
	"naoh-aquatics/repositories"
)

type MenuService struct {
	menuRepo *repositories.MenuRepository
}

func NewMenuService() *MenuService {
	return &MenuService{menuRepo: repositories.NewMenuRepository()}
}

func (s *MenuService) GetCategories(ctx context.Context) ([]models.Category, error) {
	return s.menuRepo.GetCategories(ctx)
}

func (s *MenuService) GetMenu(ctx context.Context, filter repositories.MenuFilter) (*models.PaginationResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	items, total, err := s.menuRepo.GetMenuItems(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &models.PaginationResponse{
		Success: true,
		Message: "Menu retrieved successfully",
		Data:    items,
		Meta: models.MetaData{
			Page:       filter.Page,
			Limit:      filter.Limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		},
	}, nil
}

func (s *MenuService) GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error) {
	return s.menuRepo.GetMenuItemByID(ctx, id)
}

// validateDiscount enforces the catalog invariant at ingestion time: a
// discounted item must carry a discount price strictly below its base
// price.
func validateDiscount(item *models.MenuItem) error {
	if !item.IsOnDiscount {
		return nil
	}
	if item.DiscountPrice == nil {
		return errors.New("discount price is required when item is on discount")
	}
	if !item.DiscountPrice.LessThan(item.BasePrice) {
		return errors.New("discount price must be lower than base price")
	}
	return nil
}

func (s *MenuService) CreateMenuItem(ctx context.Context, req models.CreateMenuItemRequest) (*models.MenuItem, error) {
	item := &models.MenuItem{
		ID:            req.ID,
		Name:          req.Name,
		Description:   req.Description,
		BasePrice:     req.BasePrice,
		DiscountPrice: req.DiscountPrice,
		IsOnDiscount:  req.IsOnDiscount,
		ImageURL:      req.ImageURL,
		IsAvailable:   true,
		IsPopular:     req.IsPopular,
		CategoryID:    req.CategoryID,
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	for _, v := range req.Variations {
		item.Variations = append(item.Variations, models.Variation{ID: v.ID, Name: v.Name, Price: v.Price})
	}
	for _, a := range req.AddOns {
		item.AddOns = append(item.AddOns, models.AddOn{ID: a.ID, Name: a.Name, Category: a.Category, Price: a.Price})
	}

	if item.BasePrice.IsNegative() {
		return nil, errors.New("base price must not be negative")
	}
	if err := validateDiscount(item); err != nil {
		return nil, err
	}

	if err := s.menuRepo.CreateMenuItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) UpdateMenuItem(ctx context.Context, id string, req models.UpdateMenuItemRequest) (*models.MenuItem, error) {
	item, err := s.menuRepo.GetMenuItemByID(ctx, id)
	if err != nil {
		return nil, errors.New("menu item not found")
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.BasePrice != nil {
		item.BasePrice = *req.BasePrice
	}
	if req.DiscountPrice != nil {
		item.DiscountPrice = req.DiscountPrice
	}
	if req.IsOnDiscount != nil {
		item.IsOnDiscount = *req.IsOnDiscount
	}
	if req.ImageURL != nil {
		item.ImageURL = *req.ImageURL
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if req.IsPopular != nil {
		item.IsPopular = *req.IsPopular
	}
	if req.CategoryID != "" {
		item.CategoryID = req.CategoryID
	}
	if req.Variations != nil {
		item.Variations = nil
		for _, v := range req.Variations {
			item.Variations = append(item.Variations, models.Variation{ID: v.ID, Name: v.Name, Price: v.Price})
		}
	}
	if req.AddOns != nil {
		item.AddOns = nil
		for _, a := range req.AddOns {
			item.AddOns = append(item.AddOns, models.AddOn{ID: a.ID, Name: a.Name, Category: a.Category, Price: a.Price})
		}
	}

	if item.BasePrice.IsNegative() {
		return nil, errors.New("base price must not be negative")
	}
	if err := validateDiscount(item); err != nil {
		return nil, err
	}

	if err := s.menuRepo.UpdateMenuItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) DeleteMenuItem(ctx context.Context, id string) error {
	return s.menuRepo.DeleteMenuItem(ctx, id)
}

func (s *MenuService) CreateCategory(ctx context.Context, req models.CategoryRequest) (*models.Category, error) {
	cat := &models.Category{
		ID:        req.ID,
		Name:      req.Name,
		Icon:      req.Icon,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}
	if req.IsActive != nil {
		cat.IsActive = *req.IsActive
	}
	if err := s.menuRepo.CreateCategory(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *MenuService) UpdateCategory(ctx context.Context, id string, req models.CategoryRequest) (*models.Category, error) {
	cat := &models.Category{
		ID:        id,
		Name:      req.Name,
		Icon:      req.Icon,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}
	if req.IsActive != nil {
		cat.IsActive = *req.IsActive
	}
	if err := s.menuRepo.UpdateCategory(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *MenuService) DeleteCategory(ctx context.Context, id string) error {
	return s.menuRepo.DeleteCategory(ctx, id)
}
