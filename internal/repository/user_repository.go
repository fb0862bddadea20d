package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/01moynul/shopfront-api/internal/apperr"
	"github.com/01moynul/shopfront-api/internal/models"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// errDuplicateEntry is the MySQL server error for a unique key violation.
const errDuplicateEntry = 1062

const userColumns = `id, username, firstname, email, password_hash, is_active, created_at`

type UserRepository struct {
	DB *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// Create inserts u and reads the stored row back, generated id included.
func (r *UserRepository) Create(ctx context.Context, u *models.User) (*models.User, error) {
	query := `
        INSERT INTO users (username, firstname, email, password_hash, is_active, created_at)
        VALUES (:username, :firstname, :email, :password_hash, :is_active, :created_at)
    `
	res, err := r.DB.NamedExecContext(ctx, query, u)
	if err != nil {
		// A concurrent registration can pass the service's email pre-check;
		// the unique index on email catches it here.
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) && myErr.Number == errDuplicateEntry {
			return nil, apperr.Conflict("user with email '%s' already exists", u.Email)
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	stored, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, errors.New("inserted user not found")
	}
	return stored, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	err := r.DB.GetContext(ctx, &user, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
