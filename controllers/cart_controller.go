package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"naoh-aquatics/models"
	"naoh-aquatics/services"
)

const cartSessionHeader = "X-Cart-Session"

type CartController struct {
	cartService *services.CartService
}

func NewCartController(cartService *services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// sessionToken reads the caller's cart session token, minting a fresh
// one for first-time visitors. The token is echoed on every response so
// the storefront can persist it.
func (ctrl *CartController) sessionToken(c *gin.Context) string {
	token := c.GetHeader(cartSessionHeader)
	if token == "" {
		token = uuid.NewString()
	}
	c.Header(cartSessionHeader, token)
	return token
}

func cartResponse(token string, cart *models.Cart) models.CartResponse {
	items := cart.Items
	if items == nil {
		items = []models.CartItem{}
	}
	return models.CartResponse{
		SessionToken: token,
		Items:        items,
		TotalPrice:   cart.TotalPrice(),
		TotalCount:   cart.TotalCount(),
	}
}

// GetCart godoc
// @Summary Get cart
// @Description Get the session cart with totals
// @Tags Cart
// @Produce json
// @Param X-Cart-Session header string false "Cart session token"
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	token := ctrl.sessionToken(c)

	cart, err := ctrl.cartService.GetCart(c.Request.Context(), token)
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to load cart", Error: err.Error()})
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Cart retrieved", Data: cartResponse(token, cart)})
}

// AddItem godoc
// @Summary Add item to cart
// @Description Add a configured item to the cart; identical configurations merge into one line
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-Session header string false "Cart session token"
// @Param request body models.AddToCartRequest true "Item configuration"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	token := ctrl.sessionToken(c)

	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	cart, err := ctrl.cartService.AddItem(c.Request.Context(), token, req)
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Failed to add item", Error: err.Error()})
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Item added to cart", Data: cartResponse(token, cart)})
}

// UpdateItem godoc
// @Summary Update cart line quantity
// @Description Set a line's quantity; zero or less removes the line
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-Session header string false "Cart session token"
// @Param lineId path string true "Cart line id"
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.Response
// @Router /cart/items/{lineId} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	token := ctrl.sessionToken(c)

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	cart, err := ctrl.cartService.UpdateItem(c.Request.Context(), token, c.Param("lineId"), req.Quantity)
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to update cart", Error: err.Error()})
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Cart updated", Data: cartResponse(token, cart)})
}

// RemoveItem godoc
// @Summary Remove cart line
// @Tags Cart
// @Produce json
// @Param X-Cart-Session header string false "Cart session token"
// @Param lineId path string true "Cart line id"
// @Success 200 {object} models.Response
// @Router /cart/items/{lineId} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	token := ctrl.sessionToken(c)

	cart, err := ctrl.cartService.RemoveItem(c.Request.Context(), token, c.Param("lineId"))
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to update cart", Error: err.Error()})
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Item removed", Data: cartResponse(token, cart)})
}

// ClearCart godoc
// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Param X-Cart-Session header string false "Cart session token"
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	token := ctrl.sessionToken(c)

	if err := ctrl.cartService.ClearCart(c.Request.Context(), token); err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to clear cart", Error: err.Error()})
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Cart cleared", Data: cartResponse(token, &models.Cart{})})
}
