package services

import (
	"context"
	"testing"
	"time"

	"github.com/01moynul/shopfront-api/internal/apperr"
	"github.com/01moynul/shopfront-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestWishlistService(w WishlistRepository, products ProductFinder) *WishlistService {
	s := NewWishlistService(w, products, zap.NewNop())
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestWishlistAddIsIdempotent(t *testing.T) {
	products := &mockProductRepo{}
	products.On("FindByID", mock.Anything, int64(10)).Return(&models.Product{ID: 10}, nil)
	store := &memoryWishlist{}
	s := newTestWishlistService(store, products)
	ctx := context.Background()

	first, err := s.Add(ctx, &models.WishlistItem{UserID: 1, ProductID: 10})
	require.NoError(t, err)
	assert.Equal(t, fixedNow, first.AddedAt)

	second, err := s.Add(ctx, &models.WishlistItem{UserID: 1, ProductID: 10})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	items, err := s.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, store.creates)
}

func TestWishlistAddUnknownProduct(t *testing.T) {
	products := &mockProductRepo{}
	products.On("FindByID", mock.Anything, int64(99)).Return(nil, nil).Once()
	store := &memoryWishlist{}

	_, err := newTestWishlistService(store, products).Add(context.Background(), &models.WishlistItem{UserID: 1, ProductID: 99})

	require.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Zero(t, store.creates)
}

func TestWishlistRemoveAndClear(t *testing.T) {
	products := &mockProductRepo{}
	products.On("FindByID", mock.Anything, mock.Anything).Return(&models.Product{ID: 1}, nil)
	store := &memoryWishlist{}
	s := newTestWishlistService(store, products)
	ctx := context.Background()

	for _, pid := range []int64{10, 11, 12} {
		_, err := s.Add(ctx, &models.WishlistItem{UserID: 1, ProductID: pid})
		require.NoError(t, err)
	}
	_, err := s.Add(ctx, &models.WishlistItem{UserID: 2, ProductID: 10})
	require.NoError(t, err)

	removed, err := s.Remove(ctx, 1, 11)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.Remove(ctx, 1, 11)
	require.NoError(t, err)
	assert.False(t, removed)

	cleared, err := s.Clear(ctx, 1)
	require.NoError(t, err)
	assert.True(t, cleared)

	left, err := s.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, left)

	other, err := s.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, other, 1)
}
