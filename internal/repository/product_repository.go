package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/01moynul/shopfront-api/internal/models"
	"github.com/jmoiron/sqlx"
)

const productColumns = `id, code, name, description, image, category, price, quantity,
	internal_reference, shelf_id, inventory_status, rating, created_at, updated_at`

type ProductRepository struct {
	DB *sqlx.DB
}

func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`
	if err := r.DB.SelectContext(ctx, &products, query); err != nil {
		return nil, err
	}
	return products, nil
}

// FindByID returns nil, nil when no row matches.
func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ?`
	err := r.DB.GetContext(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Create inserts p and returns the generated id.
func (r *ProductRepository) Create(ctx context.Context, p *models.Product) (int64, error) {
	query := `
        INSERT INTO products (
            code, name, description, image, category, price, quantity,
            internal_reference, shelf_id, inventory_status, rating, created_at, updated_at
        )
        VALUES (
            :code, :name, :description, :image, :category, :price, :quantity,
            :internal_reference, :shelf_id, :inventory_status, :rating, :created_at, :updated_at
        )
    `
	res, err := r.DB.NamedExecContext(ctx, query, p)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update overwrites every mutable column and reports whether a row matched.
func (r *ProductRepository) Update(ctx context.Context, p *models.Product) (bool, error) {
	query := `
        UPDATE products
        SET code = :code,
            name = :name,
            description = :description,
            image = :image,
            category = :category,
            price = :price,
            quantity = :quantity,
            internal_reference = :internal_reference,
            shelf_id = :shelf_id,
            inventory_status = :inventory_status,
            rating = :rating,
            updated_at = :updated_at
        WHERE id = :id
    `
	res, err := r.DB.NamedExecContext(ctx, query, p)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func affected(res sql.Result) (bool, error) {
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
