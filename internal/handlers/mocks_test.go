package handlers

import (
	"context"

	"github.com/01moynul/shopfront-api/internal/models"
	"github.com/01moynul/shopfront-api/internal/services"
	"github.com/stretchr/testify/mock"
)

type mockProducts struct{ mock.Mock }

func (m *mockProducts) ListAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]models.Product)
	return out, args.Error(1)
}

func (m *mockProducts) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Product)
	return p, args.Error(1)
}

func (m *mockProducts) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(*models.Product)
	return created, args.Error(1)
}

func (m *mockProducts) Update(ctx context.Context, p *models.Product) (bool, error) {
	args := m.Called(ctx, p)
	return args.Bool(0), args.Error(1)
}

func (m *mockProducts) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockUsers struct{ mock.Mock }

func (m *mockUsers) Create(ctx context.Context, u *models.User, password string) (*models.User, error) {
	args := m.Called(ctx, u, password)
	stored, _ := args.Get(0).(*models.User)
	return stored, args.Error(1)
}

func (m *mockUsers) ValidateCredentials(ctx context.Context, email, password string) (services.AuthResult, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(services.AuthResult), args.Error(1)
}

type mockCarts struct{ mock.Mock }

func (m *mockCarts) ListItems(ctx context.Context, userID int64) ([]models.CartItem, error) {
	args := m.Called(ctx, userID)
	out, _ := args.Get(0).([]models.CartItem)
	return out, args.Error(1)
}

func (m *mockCarts) AddOrUpdate(ctx context.Context, item *models.CartItem) (*models.CartItem, error) {
	args := m.Called(ctx, item)
	out, _ := args.Get(0).(*models.CartItem)
	return out, args.Error(1)
}

func (m *mockCarts) Remove(ctx context.Context, userID, productID int64) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *mockCarts) Clear(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

type mockWishlist struct{ mock.Mock }

func (m *mockWishlist) List(ctx context.Context, userID int64) ([]models.WishlistItem, error) {
	args := m.Called(ctx, userID)
	out, _ := args.Get(0).([]models.WishlistItem)
	return out, args.Error(1)
}

func (m *mockWishlist) Add(ctx context.Context, item *models.WishlistItem) (*models.WishlistItem, error) {
	args := m.Called(ctx, item)
	out, _ := args.Get(0).(*models.WishlistItem)
	return out, args.Error(1)
}

func (m *mockWishlist) Remove(ctx context.Context, userID, productID int64) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *mockWishlist) Clear(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

type mockTokens struct{ mock.Mock }

func (m *mockTokens) GenerateToken(u *models.User) (string, error) {
	args := m.Called(u)
	return args.String(0), args.Error(1)
}
