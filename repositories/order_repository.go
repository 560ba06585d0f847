package repositories

import (
	"context"
	"time"

	"naoh-aquatics/config"
	"naoh-aquatics/models"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// CreateOrder persists the order header and its line snapshot in one
// transaction.
func (r *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	query := `INSERT INTO orders
	          (order_number, customer_name, customer_email, customer_phone, address,
	           payment_method, notes, status, total_amount, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	          RETURNING id, created_at, updated_at`
	err = tx.QueryRow(ctx, query,
		order.OrderNumber, order.CustomerName, order.CustomerEmail, order.CustomerPhone,
		order.Address, order.PaymentMethod, order.Notes, order.Status, order.TotalAmount, now, now,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO order_items
			 (order_id, menu_item_id, name, variation_name, add_ons_summary, unit_price, quantity)
			 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
			item.OrderID, item.MenuItemID, item.Name, item.VariationName,
			item.AddOnsSummary, item.UnitPrice, item.Quantity,
		).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) GetOrders(ctx context.Context, page, limit int, status string) ([]models.Order, int, error) {
	where := ""
	countArgs := []interface{}{}
	if status != "" {
		where = " WHERE status = $1"
		countArgs = append(countArgs, status)
	}

	var total int
	if err := config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM orders"+where, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	args := append([]interface{}{}, countArgs...)
	query := `SELECT id, order_number, customer_name, COALESCE(customer_email, ''),
	                 COALESCE(customer_phone, ''), COALESCE(address, ''), payment_method, notes,
	                 status, total_amount, created_at, updated_at
	          FROM orders` + where + ` ORDER BY created_at DESC`
	if status != "" {
		query += " LIMIT $2 OFFSET $3"
	} else {
		query += " LIMIT $1 OFFSET $2"
	}
	args = append(args, limit, offset)

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
			&o.Address, &o.PaymentMethod, &o.Notes, &o.Status, &o.TotalAmount,
			&o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, total, rows.Err()
}

func (r *OrderRepository) GetOrderByID(ctx context.Context, id int) (*models.Order, error) {
	query := `SELECT id, order_number, customer_name, COALESCE(customer_email, ''),
	                 COALESCE(customer_phone, ''), COALESCE(address, ''), payment_method, notes,
	                 status, total_amount, created_at, updated_at
	          FROM orders WHERE id = $1`

	var o models.Order
	err := config.DB.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.OrderNumber, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.Address, &o.PaymentMethod, &o.Notes, &o.Status, &o.TotalAmount,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	rows, err := config.DB.Query(ctx,
		`SELECT id, order_id, menu_item_id, name, variation_name, add_ons_summary, unit_price, quantity
		 FROM order_items WHERE order_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.MenuItemID, &item.Name,
			&item.VariationName, &item.AddOnsSummary, &item.UnitPrice, &item.Quantity,
		); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}
	return &o, rows.Err()
}

func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, id int, status string) error {
	query := `UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`
	_, err := config.DB.Exec(ctx, query, status, time.Now(), id)
	return err
}
