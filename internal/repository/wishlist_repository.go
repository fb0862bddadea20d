package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/01moynul/shopfront-api/internal/models"
	"github.com/jmoiron/sqlx"
)

type WishlistRepository struct {
	DB *sqlx.DB
}

func NewWishlistRepository(db *sqlx.DB) *WishlistRepository {
	return &WishlistRepository{DB: db}
}

func (r *WishlistRepository) FindByUserID(ctx context.Context, userID int64) ([]models.WishlistItem, error) {
	items := []models.WishlistItem{}
	query := `SELECT id, user_id, product_id, added_at FROM wishlist_items WHERE user_id = ? ORDER BY added_at ASC`
	if err := r.DB.SelectContext(ctx, &items, query, userID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *WishlistRepository) FindByUserAndProduct(ctx context.Context, userID, productID int64) (*models.WishlistItem, error) {
	var item models.WishlistItem
	query := `SELECT id, user_id, product_id, added_at FROM wishlist_items WHERE user_id = ? AND product_id = ?`
	err := r.DB.GetContext(ctx, &item, query, userID, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *WishlistRepository) Create(ctx context.Context, item *models.WishlistItem) (*models.WishlistItem, error) {
	query := `
        INSERT INTO wishlist_items (user_id, product_id, added_at)
        VALUES (:user_id, :product_id, :added_at)
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

func (r *WishlistRepository) Delete(ctx context.Context, userID, productID int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM wishlist_items WHERE user_id = ? AND product_id = ?", userID, productID)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (r *WishlistRepository) DeleteAllByUserID(ctx context.Context, userID int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM wishlist_items WHERE user_id = ?", userID)
	if err != nil {
		return false, err
	}
	return affected(res)
}
