package repositories

import (
	"context"
	"time"

	"naoh-aquatics/config"
	"naoh-aquatics/models"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, email, password, role, COALESCE(full_name, ''), COALESCE(phone, ''), created_at, updated_at
	          FROM users WHERE email = $1`

	var u models.User
	err := config.DB.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.Password, &u.Role, &u.FullName, &u.Phone, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	query := `SELECT id, email, password, role, COALESCE(full_name, ''), COALESCE(phone, ''), created_at, updated_at
	          FROM users WHERE id = $1`

	var u models.User
	err := config.DB.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.Password, &u.Role, &u.FullName, &u.Phone, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int
	err := config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE email = $1`, email).Scan(&count)
	return count > 0, err
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	now := time.Now()
	query := `INSERT INTO users (email, password, role, full_name, phone, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at`
	return config.DB.QueryRow(ctx, query,
		u.Email, u.Password, u.Role, u.FullName, u.Phone, now, now,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}
