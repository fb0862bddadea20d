package handlers

import (
	"context"

	"github.com/01moynul/shopfront-api/internal/models"
	"github.com/01moynul/shopfront-api/internal/services"
	"go.uber.org/zap"
)

// Service ports the handlers depend on. The concrete types live in
// internal/services.

type ProductService interface {
	ListAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) (*models.Product, error)
	Update(ctx context.Context, p *models.Product) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type UserService interface {
	Create(ctx context.Context, user *models.User, password string) (*models.User, error)
	ValidateCredentials(ctx context.Context, email, password string) (services.AuthResult, error)
}

type CartService interface {
	ListItems(ctx context.Context, userID int64) ([]models.CartItem, error)
	AddOrUpdate(ctx context.Context, item *models.CartItem) (*models.CartItem, error)
	Remove(ctx context.Context, userID, productID int64) (bool, error)
	Clear(ctx context.Context, userID int64) (bool, error)
}

type WishlistService interface {
	List(ctx context.Context, userID int64) ([]models.WishlistItem, error)
	Add(ctx context.Context, item *models.WishlistItem) (*models.WishlistItem, error)
	Remove(ctx context.Context, userID, productID int64) (bool, error)
	Clear(ctx context.Context, userID int64) (bool, error)
}

// TokenGenerator is satisfied by auth.TokenIssuer.
type TokenGenerator interface {
	GenerateToken(user *models.User) (string, error)
}

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Products ProductService
	Users    UserService
	Carts    CartService
	Wishlist WishlistService
	Tokens   TokenGenerator
	Logger   *zap.Logger
}
