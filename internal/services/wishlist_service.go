package services

import (
	"context"
	"fmt"
	"time"

	"github.com/01moynul/shopfront-api/internal/apperr"
	"github.com/01moynul/shopfront-api/internal/models"
	"go.uber.org/zap"
)

type WishlistService struct {
	wishlist WishlistRepository
	products ProductFinder
	logger   *zap.Logger
	now      func() time.Time
}

// NewWishlistService builds a WishlistService that times additions in UTC.
func NewWishlistService(wishlist WishlistRepository, products ProductFinder, log *zap.Logger) *WishlistService {
	return &WishlistService{
		wishlist: wishlist,
		products: products,
		logger:   log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *WishlistService) List(ctx context.Context, userID int64) ([]models.WishlistItem, error) {
	return s.wishlist.FindByUserID(ctx, userID)
}

// Add is idempotent: a product already on the wishlist is returned as stored.
func (s *WishlistService) Add(ctx context.Context, item *models.WishlistItem) (*models.WishlistItem, error) {
	product, err := s.products.FindByID(ctx, item.ProductID)
	if err != nil {
		return nil, fmt.Errorf("find product %d: %w", item.ProductID, err)
	}
	if product == nil {
		return nil, apperr.NotFound("no product found with id %d", item.ProductID)
	}

	existing, err := s.wishlist.FindByUserAndProduct(ctx, item.UserID, item.ProductID)
	if err != nil {
		return nil, fmt.Errorf("find wishlist item: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	item.AddedAt = s.now()
	created, err := s.wishlist.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("create wishlist item: %w", err)
	}
	s.logger.Debug("wishlist item added",
		zap.Int64("user_id", item.UserID),
		zap.Int64("product_id", item.ProductID),
	)
	return created, nil
}

func (s *WishlistService) Remove(ctx context.Context, userID, productID int64) (bool, error) {
	return s.wishlist.Delete(ctx, userID, productID)
}

func (s *WishlistService) Clear(ctx context.Context, userID int64) (bool, error) {
	return s.wishlist.DeleteAllByUserID(ctx, userID)
}
