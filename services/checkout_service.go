package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"naoh-aquatics/models"
	"naoh-aquatics/repositories"
)

type CheckoutService struct {
	carts    *CartService
	orders   *repositories.OrderRepository
	settings *repositories.SettingsRepository
	email    *EmailService
}

func NewCheckoutService(carts *CartService) *CheckoutService {
	svc := &CheckoutService{
		carts:    carts,
		orders:   repositories.NewOrderRepository(),
		settings: repositories.NewSettingsRepository(),
	}

	email, err := NewEmailService()
	if err != nil {
		log.Println("Order receipt emails disabled:", err)
	} else {
		svc.email = email
	}
	return svc
}

// Checkout snapshots the session cart into a persisted order and clears
// the cart. The order total and line list are taken from the same cart
// read, so they always agree.
func (s *CheckoutService) Checkout(ctx context.Context, token string, req models.CheckoutRequest) (*models.Order, error) {
	cart, err := s.carts.GetCart(ctx, token)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, errors.New("cart is empty")
	}

	order := &models.Order{
		OrderNumber:   "NA-" + strings.ToUpper(uuid.NewString()[:8]),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Address:       req.Address,
		PaymentMethod: optionalString(req.PaymentMethod),
		Notes:         optionalString(req.Notes),
		Status:        models.OrderStatusPending,
		TotalAmount:   cart.TotalPrice(),
	}

	for _, line := range cart.Items {
		item := models.OrderItem{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			UnitPrice:  line.UnitPrice,
			Quantity:   line.Quantity,
		}
		if line.Variation != nil {
			item.VariationName = &line.Variation.Name
		}
		if summary := summarizeAddOns(line.AddOns); summary != "" {
			item.AddOnsSummary = &summary
		}
		order.Items = append(order.Items, item)
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.carts.ClearCart(ctx, token); err != nil {
		log.Printf("Failed to clear cart for session %s: %v", token, err)
	}

	if s.email != nil && order.CustomerEmail != "" {
		siteName := "Naoh Aquatics PH"
		if settings, err := s.settings.GetSettings(ctx); err == nil {
			siteName = settings.SiteName
		}
		go func(order models.Order) {
			if err := s.email.SendOrderReceipt(order.CustomerEmail, siteName, &order); err != nil {
				log.Printf("Failed to send receipt for order %s: %v", order.OrderNumber, err)
			}
		}(*order)
	}

	return order, nil
}

// summarizeAddOns renders a flattened add-on list as display text, e.g.
// "Air Stone x2, Extra Pump".
func summarizeAddOns(addOns []models.AddOn) string {
	grouped := models.GroupAddOns(addOns)
	parts := make([]string, 0, len(grouped))
	for _, g := range grouped {
		if g.Quantity > 1 {
			parts = append(parts, fmt.Sprintf("%s x%d", g.Name, g.Quantity))
		} else {
			parts = append(parts, g.Name)
		}
	}
	return strings.Join(parts, ", ")
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
