package services

import (
	"context"

	"github.com/01moynul/shopfront-api/internal/models"
	"github.com/stretchr/testify/mock"
)

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) FindAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

func (m *mockProductRepo) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Product)
	return p, args.Error(1)
}

func (m *mockProductRepo) Create(ctx context.Context, p *models.Product) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepo) Update(ctx context.Context, p *models.Product) (bool, error) {
	args := m.Called(ctx, p)
	return args.Bool(0), args.Error(1)
}

func (m *mockProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	args := m.Called(ctx, u)
	stored, _ := args.Get(0).(*models.User)
	return stored, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

type mockCartRepo struct{ mock.Mock }

func (m *mockCartRepo) FindByUserID(ctx context.Context, userID int64) ([]models.CartItem, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]models.CartItem)
	return items, args.Error(1)
}

func (m *mockCartRepo) FindByID(ctx context.Context, id int64) (*models.CartItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*models.CartItem)
	return item, args.Error(1)
}

func (m *mockCartRepo) FindByUserAndProduct(ctx context.Context, userID, productID int64) (*models.CartItem, error) {
	args := m.Called(ctx, userID, productID)
	item, _ := args.Get(0).(*models.CartItem)
	return item, args.Error(1)
}

func (m *mockCartRepo) Create(ctx context.Context, item *models.CartItem) (*models.CartItem, error) {
	args := m.Called(ctx, item)
	created, _ := args.Get(0).(*models.CartItem)
	return created, args.Error(1)
}

func (m *mockCartRepo) Update(ctx context.Context, item *models.CartItem) (bool, error) {
	args := m.Called(ctx, item)
	return args.Bool(0), args.Error(1)
}

func (m *mockCartRepo) Delete(ctx context.Context, userID, productID int64) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *mockCartRepo) DeleteAllByUserID(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

type mockHasher struct{ mock.Mock }

func (m *mockHasher) Hash(plaintext string) (string, error) {
	args := m.Called(plaintext)
	return args.String(0), args.Error(1)
}

func (m *mockHasher) Verify(plaintext, hash string) (bool, error) {
	args := m.Called(plaintext, hash)
	return args.Bool(0), args.Error(1)
}

// memoryCart is an in-memory CartRepository for multi-step scenarios.
type memoryCart struct {
	nextID int64
	rows   map[int64]*models.CartItem
}

func newMemoryCart() *memoryCart {
	return &memoryCart{rows: map[int64]*models.CartItem{}}
}

func (c *memoryCart) FindByUserID(_ context.Context, userID int64) ([]models.CartItem, error) {
	var out []models.CartItem
	for _, row := range c.rows {
		if row.UserID == userID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (c *memoryCart) FindByID(_ context.Context, id int64) (*models.CartItem, error) {
	if row, ok := c.rows[id]; ok {
		cp := *row
		return &cp, nil
	}
	return nil, nil
}

func (c *memoryCart) FindByUserAndProduct(_ context.Context, userID, productID int64) (*models.CartItem, error) {
	for _, row := range c.rows {
		if row.UserID == userID && row.ProductID == productID {
			cp := *row
			return &cp, nil
		}
	}
	return nil, nil
}

func (c *memoryCart) Create(_ context.Context, item *models.CartItem) (*models.CartItem, error) {
	c.nextID++
	stored := *item
	stored.ID = c.nextID
	c.rows[stored.ID] = &stored
	cp := stored
	return &cp, nil
}

func (c *memoryCart) Update(_ context.Context, item *models.CartItem) (bool, error) {
	if _, ok := c.rows[item.ID]; !ok {
		return false, nil
	}
	cp := *item
	c.rows[item.ID] = &cp
	return true, nil
}

func (c *memoryCart) Delete(_ context.Context, userID, productID int64) (bool, error) {
	for id, row := range c.rows {
		if row.UserID == userID && row.ProductID == productID {
			delete(c.rows, id)
			return true, nil
		}
	}
	return false, nil
}

func (c *memoryCart) DeleteAllByUserID(_ context.Context, userID int64) (bool, error) {
	removed := false
	for id, row := range c.rows {
		if row.UserID == userID {
			delete(c.rows, id)
			removed = true
		}
	}
	return removed, nil
}

// memoryWishlist is an in-memory WishlistRepository.
type memoryWishlist struct {
	nextID  int64
	rows    []models.WishlistItem
	creates int
}

func (w *memoryWishlist) FindByUserID(_ context.Context, userID int64) ([]models.WishlistItem, error) {
	var out []models.WishlistItem
	for _, row := range w.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (w *memoryWishlist) FindByUserAndProduct(_ context.Context, userID, productID int64) (*models.WishlistItem, error) {
	for _, row := range w.rows {
		if row.UserID == userID && row.ProductID == productID {
			cp := row
			return &cp, nil
		}
	}
	return nil, nil
}

func (w *memoryWishlist) Create(_ context.Context, item *models.WishlistItem) (*models.WishlistItem, error) {
	w.creates++
	w.nextID++
	stored := *item
	stored.ID = w.nextID
	w.rows = append(w.rows, stored)
	return &stored, nil
}

func (w *memoryWishlist) Delete(_ context.Context, userID, productID int64) (bool, error) {
	for i, row := range w.rows {
		if row.UserID == userID && row.ProductID == productID {
			w.rows = append(w.rows[:i], w.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (w *memoryWishlist) DeleteAllByUserID(_ context.Context, userID int64) (bool, error) {
	kept := w.rows[:0]
	for _, row := range w.rows {
		if row.UserID != userID {
			kept = append(kept, row)
		}
	}
	removed := len(kept) != len(w.rows)
	w.rows = kept
	return removed, nil
}
