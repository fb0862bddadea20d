package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/01moynul/shopfront-api/internal/models"
	"github.com/jmoiron/sqlx"
)

const cartColumns = `id, user_id, product_id, quantity, added_at`

type CartRepository struct {
	DB *sqlx.DB
}

func NewCartRepository(db *sqlx.DB) *CartRepository {
	return &CartRepository{DB: db}
}

func (r *CartRepository) FindByUserID(ctx context.Context, userID int64) ([]models.CartItem, error) {
	items := []models.CartItem{}
	query := `SELECT ` + cartColumns + ` FROM cart_items WHERE user_id = ? ORDER BY added_at ASC`
	if err := r.DB.SelectContext(ctx, &items, query, userID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CartRepository) FindByID(ctx context.Context, id int64) (*models.CartItem, error) {
	return r.findOne(ctx, `SELECT `+cartColumns+` FROM cart_items WHERE id = ?`, id)
}

func (r *CartRepository) FindByUserAndProduct(ctx context.Context, userID, productID int64) (*models.CartItem, error) {
	return r.findOne(ctx, `SELECT `+cartColumns+` FROM cart_items WHERE user_id = ? AND product_id = ?`, userID, productID)
}

// Create inserts item and returns the persisted row.
func (r *CartRepository) Create(ctx context.Context, item *models.CartItem) (*models.CartItem, error) {
	query := `
        INSERT INTO cart_items (user_id, product_id, quantity, added_at)
        VALUES (:user_id, :product_id, :quantity, :added_at)
    `
	res, err := r.DB.NamedExecContext(ctx, query, item)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	stored := *item
	stored.ID = id
	return &stored, nil
}

func (r *CartRepository) Update(ctx context.Context, item *models.CartItem) (bool, error) {
	query := `UPDATE cart_items SET quantity = :quantity, added_at = :added_at WHERE id = :id`
	res, err := r.DB.NamedExecContext(ctx, query, item)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (r *CartRepository) Delete(ctx context.Context, userID, productID int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM cart_items WHERE user_id = ? AND product_id = ?", userID, productID)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (r *CartRepository) DeleteAllByUserID(ctx context.Context, userID int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM cart_items WHERE user_id = ?", userID)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (r *CartRepository) findOne(ctx context.Context, query string, args ...any) (*models.CartItem, error) {
	var item models.CartItem
	err := r.DB.GetContext(ctx, &item, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}
