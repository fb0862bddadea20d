package services

import (
	"context"

	"github.com/01moynul/shopfront-api/internal/models"
)

// Store ports. Implementations live in internal/repository; lookups return
// nil, nil when nothing matches.

type ProductRepository interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id int64) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) (int64, error)
	Update(ctx context.Context, p *models.Product) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ProductFinder is the read side the cart and wishlist need.
type ProductFinder interface {
	FindByID(ctx context.Context, id int64) (*models.Product, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type CartRepository interface {
	FindByUserID(ctx context.Context, userID int64) ([]models.CartItem, error)
	FindByID(ctx context.Context, id int64) (*models.CartItem, error)
	FindByUserAndProduct(ctx context.Context, userID, productID int64) (*models.CartItem, error)
	Create(ctx context.Context, item *models.CartItem) (*models.CartItem, error)
	Update(ctx context.Context, item *models.CartItem) (bool, error)
	Delete(ctx context.Context, userID, productID int64) (bool, error)
	DeleteAllByUserID(ctx context.Context, userID int64) (bool, error)
}

type WishlistRepository interface {
	FindByUserID(ctx context.Context, userID int64) ([]models.WishlistItem, error)
	FindByUserAndProduct(ctx context.Context, userID, productID int64) (*models.WishlistItem, error)
	Create(ctx context.Context, item *models.WishlistItem) (*models.WishlistItem, error)
	Delete(ctx context.Context, userID, productID int64) (bool, error)
	DeleteAllByUserID(ctx context.Context, userID int64) (bool, error)
}

// PasswordHasher is satisfied by auth.BcryptHasher.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) (bool, error)
}
