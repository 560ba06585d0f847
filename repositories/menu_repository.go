package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"naoh-aquatics/config"
	"naoh-aquatics/models"
)

type MenuRepository struct{}

func NewMenuRepository() *MenuRepository {
	return &MenuRepository{}
}

// MenuFilter narrows the catalog listing. Zero values mean "no filter".
type MenuFilter struct {
	Category           string
	Search             string
	PopularOnly        bool
	IncludeUnavailable bool
	Page               int
	Limit              int
}

func (r *MenuRepository) GetCategories(ctx context.Context) ([]models.Category, error) {
	query := `SELECT id, name, icon, sort_order, is_active, created_at
	          FROM categories WHERE is_active = true ORDER BY sort_order, name`

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Icon, &cat.SortOrder, &cat.IsActive, &cat.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func (r *MenuRepository) CreateCategory(ctx context.Context, cat *models.Category) error {
	query := `INSERT INTO categories (id, name, icon, sort_order, is_active, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at`
	return config.DB.QueryRow(ctx, query,
		cat.ID, cat.Name, cat.Icon, cat.SortOrder, cat.IsActive, time.Now(),
	).Scan(&cat.CreatedAt)
}

func (r *MenuRepository) UpdateCategory(ctx context.Context, cat *models.Category) error {
	query := `UPDATE categories SET name = $1, icon = $2, sort_order = $3, is_active = $4 WHERE id = $5`
	_, err := config.DB.Exec(ctx, query, cat.Name, cat.Icon, cat.SortOrder, cat.IsActive, cat.ID)
	return err
}

func (r *MenuRepository) DeleteCategory(ctx context.Context, id string) error {
	query := `UPDATE categories SET is_active = false WHERE id = $1`
	_, err := config.DB.Exec(ctx, query, id)
	return err
}

func (r *MenuRepository) GetMenuItems(ctx context.Context, filter MenuFilter) ([]models.MenuItem, int, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	paramIndex := 1

	if !filter.IncludeUnavailable {
		where += " AND is_available = true"
	}
	if filter.Category != "" {
		where += fmt.Sprintf(" AND category_id = $%d", paramIndex)
		args = append(args, filter.Category)
		paramIndex++
	}
	if filter.Search != "" {
		where += fmt.Sprintf(" AND name ILIKE $%d", paramIndex)
		args = append(args, "%"+filter.Search+"%")
		paramIndex++
	}
	if filter.PopularOnly {
		where += " AND is_popular = true"
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM menu_items " + where
	if err := config.DB.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	query := `SELECT id, name, description, base_price, discount_price, is_on_discount,
	                 COALESCE(image_url, ''), is_available, is_popular, category_id, created_at, updated_at
	          FROM menu_items ` + where +
		fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", paramIndex, paramIndex+1)
	args = append(args, filter.Limit, offset)

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachOptions(ctx, items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *MenuRepository) GetMenuItemByID(ctx context.Context, id string) (*models.MenuItem, error) {
	query := `SELECT id, name, description, base_price, discount_price, is_on_discount,
	                 COALESCE(image_url, ''), is_available, is_popular, category_id, created_at, updated_at
	          FROM menu_items WHERE id = $1`

	row := config.DB.QueryRow(ctx, query, id)
	item, err := scanMenuItem(row)
	if err != nil {
		return nil, err
	}

	items := []models.MenuItem{item}
	if err := r.attachOptions(ctx, items); err != nil {
		return nil, err
	}
	return &items[0], nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMenuItem(row rowScanner) (models.MenuItem, error) {
	var item models.MenuItem
	var discount decimal.NullDecimal
	err := row.Scan(
		&item.ID, &item.Name, &item.Description, &item.BasePrice, &discount,
		&item.IsOnDiscount, &item.ImageURL, &item.IsAvailable, &item.IsPopular,
		&item.CategoryID, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return models.MenuItem{}, err
	}
	if discount.Valid {
		item.DiscountPrice = &discount.Decimal
	}
	return item, nil
}

// attachOptions loads variations and add-ons for the given items in two
// queries and distributes them by menu_item_id.
func (r *MenuRepository) attachOptions(ctx context.Context, items []models.MenuItem) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]string, len(items))
	index := make(map[string]*models.MenuItem, len(items))
	for i := range items {
		ids[i] = items[i].ID
		index[items[i].ID] = &items[i]
	}

	rows, err := config.DB.Query(ctx,
		`SELECT menu_item_id, id, name, price FROM variations WHERE menu_item_id = ANY($1) ORDER BY name`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var itemID string
		var v models.Variation
		if err := rows.Scan(&itemID, &v.ID, &v.Name, &v.Price); err != nil {
			return err
		}
		if item, ok := index[itemID]; ok {
			item.Variations = append(item.Variations, v)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = config.DB.Query(ctx,
		`SELECT menu_item_id, id, name, COALESCE(category, ''), price FROM add_ons WHERE menu_item_id = ANY($1) ORDER BY category, name`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var itemID string
		var a models.AddOn
		if err := rows.Scan(&itemID, &a.ID, &a.Name, &a.Category, &a.Price); err != nil {
			return err
		}
		if item, ok := index[itemID]; ok {
			item.AddOns = append(item.AddOns, a)
		}
	}
	return rows.Err()
}

func (r *MenuRepository) CreateMenuItem(ctx context.Context, item *models.MenuItem) error {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	query := `INSERT INTO menu_items
	          (id, name, description, base_price, discount_price, is_on_discount,
	           image_url, is_available, is_popular, category_id, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	          RETURNING created_at, updated_at`
	err = tx.QueryRow(ctx, query,
		item.ID, item.Name, item.Description, item.BasePrice, discountValue(item.DiscountPrice),
		item.IsOnDiscount, item.ImageURL, item.IsAvailable, item.IsPopular, item.CategoryID, now, now,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return err
	}

	if err := insertOptions(ctx, tx, item); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *MenuRepository) UpdateMenuItem(ctx context.Context, item *models.MenuItem) error {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `UPDATE menu_items SET name = $1, description = $2, base_price = $3, discount_price = $4,
	          is_on_discount = $5, image_url = $6, is_available = $7, is_popular = $8,
	          category_id = $9, updated_at = $10 WHERE id = $11`
	_, err = tx.Exec(ctx, query,
		item.Name, item.Description, item.BasePrice, discountValue(item.DiscountPrice),
		item.IsOnDiscount, item.ImageURL, item.IsAvailable, item.IsPopular,
		item.CategoryID, time.Now(), item.ID,
	)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM variations WHERE menu_item_id = $1`, item.ID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM add_ons WHERE menu_item_id = $1`, item.ID); err != nil {
		return err
	}
	if err := insertOptions(ctx, tx, item); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *MenuRepository) DeleteMenuItem(ctx context.Context, id string) error {
	query := `UPDATE menu_items SET is_available = false, updated_at = $1 WHERE id = $2`
	_, err := config.DB.Exec(ctx, query, time.Now(), id)
	return err
}

func insertOptions(ctx context.Context, tx pgx.Tx, item *models.MenuItem) error {
	for _, v := range item.Variations {
		_, err := tx.Exec(ctx,
			`INSERT INTO variations (id, menu_item_id, name, price) VALUES ($1, $2, $3, $4)`,
			v.ID, item.ID, v.Name, v.Price)
		if err != nil {
			return err
		}
	}
	for _, a := range item.AddOns {
		_, err := tx.Exec(ctx,
			`INSERT INTO add_ons (id, menu_item_id, name, category, price) VALUES ($1, $2, $3, $4, $5)`,
			a.ID, item.ID, a.Name, a.Category, a.Price)
		if err != nil {
			return err
		}
	}
	return nil
}

func discountValue(d *decimal.Decimal) interface{} {
	if d == nil {
		return nil
	}
	return *d
}
