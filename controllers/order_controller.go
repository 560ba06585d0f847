package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"naoh-aquatics/models"
	"naoh-aquatics/repositories"
	"naoh-aquatics/services"
)

type OrderController struct {
	checkoutService *services.CheckoutService
	orderRepo       *repositories.OrderRepository
}

func NewOrderController(cartService *services.CartService) *OrderController {
	return &OrderController{
		checkoutService: services.NewCheckoutService(cartService),
		orderRepo:       repositories.NewOrderRepository(),
	}
}

// Checkout godoc
// @Summary Checkout
// @Description Turn the session cart into an order and clear the cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-Session header string false "Cart session token"
// @Param request body models.CheckoutRequest true "Customer details"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *OrderController) Checkout(c *gin.Context) {
	token := c.GetHeader(cartSessionHeader)
	if token == "" {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Cart session required"})
		return
	}

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	order, err := ctrl.checkoutService.Checkout(c.Request.Context(), token, req)
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Checkout failed", Error: err.Error()})
		return
	}
	c.JSON(201, models.Response{Success: true, Message: "Order placed", Data: order})
}

// GetAllOrders godoc
// @Summary Get all orders
// @Description Get orders with pagination (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Filter by status"
// @Success 200 {object} models.PaginationResponse
// @Router /admin/orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	orders, total, err := ctrl.orderRepo.GetOrders(c.Request.Context(), page, limit, c.Query("status"))
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to retrieve orders", Error: err.Error()})
		return
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	c.JSON(200, models.PaginationResponse{
		Success: true,
		Message: "Orders retrieved",
		Data:    orders,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	})
}

// GetOrderByID godoc
// @Summary Get one order
// @Description Get an order with its line items (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order id"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid order id"})
		return
	}

	order, err := ctrl.orderRepo.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(404, models.ErrorResponse{Success: false, Message: "Order not found"})
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Order retrieved", Data: order})
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order id"
// @Param request body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Router /admin/orders/{id}/status [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid order id"})
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	if err := ctrl.orderRepo.UpdateOrderStatus(c.Request.Context(), id, req.Status); err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to update order status", Error: err.Error()})
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Order status updated"})
}
