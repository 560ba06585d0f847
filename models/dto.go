package models

import "github.com/shopspring/decimal"

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required,min=3"`
	Phone    string `json:"phone" binding:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SelectedAddOnRequest struct {
	ID       string `json:"id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

type AddToCartRequest struct {
	MenuItemID  string                 `json:"menu_item_id" binding:"required"`
	Quantity    int                    `json:"quantity"`
	VariationID *string                `json:"variation_id"`
	AddOns      []SelectedAddOnRequest `json:"add_ons"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CheckoutRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"omitempty,email"`
	CustomerPhone string `json:"customer_phone"`
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
	Notes         string `json:"notes"`
}

type CategoryRequest struct {
	ID        string `json:"id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

type VariationRequest struct {
	ID    string          `json:"id" binding:"required"`
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price"`
}

type AddOnRequest struct {
	ID       string          `json:"id" binding:"required"`
	Name     string          `json:"name" binding:"required"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
}

type CreateMenuItemRequest struct {
	ID            string             `json:"id" binding:"required"`
	Name          string             `json:"name" binding:"required"`
	Description   string             `json:"description"`
	BasePrice     decimal.Decimal    `json:"base_price" binding:"required"`
	DiscountPrice *decimal.Decimal   `json:"discount_price"`
	IsOnDiscount  bool               `json:"is_on_discount"`
	ImageURL      string             `json:"image_url"`
	IsAvailable   *bool              `json:"is_available"`
	IsPopular     bool               `json:"is_popular"`
	CategoryID    string             `json:"category_id" binding:"required"`
	Variations    []VariationRequest `json:"variations"`
	AddOns        []AddOnRequest     `json:"add_ons"`
}

type UpdateMenuItemRequest struct {
	Name          string             `json:"name"`
	Description   *string            `json:"description"`
	BasePrice     *decimal.Decimal   `json:"base_price"`
	DiscountPrice *decimal.Decimal   `json:"discount_price"`
	IsOnDiscount  *bool              `json:"is_on_discount"`
	ImageURL      *string            `json:"image_url"`
	IsAvailable   *bool              `json:"is_available"`
	IsPopular     *bool              `json:"is_popular"`
	CategoryID    string             `json:"category_id"`
	Variations    []VariationRequest `json:"variations"`
	AddOns        []AddOnRequest     `json:"add_ons"`
}

type UpdateSettingsRequest struct {
	SiteName string  `json:"site_name"`
	Tagline  *string `json:"tagline"`
	LogoURL  *string `json:"logo_url"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
}

type CartResponse struct {
	SessionToken string          `json:"session_token"`
	Items        []CartItem      `json:"items"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	TotalCount   int             `json:"total_count"`
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type MetaData struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type PaginationResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Meta    MetaData    `json:"meta"`
}
