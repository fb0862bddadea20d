package services

import (
	"context"
	"fmt"
	"time"

	"github.com/01moynul/shopfront-api/internal/apperr"
	"github.com/01moynul/shopfront-api/internal/models"
	"go.uber.org/zap"
)

// CartService guards quantities and stock for items entering a cart.
//
// The stock check reads the product's on-hand quantity without a lock or a
// transaction, so concurrent adds for the same product can both pass it.
type CartService struct {
	carts    CartRepository
	products ProductFinder
	logger   *zap.Logger
	now      func() time.Time
}

// NewCartService builds a CartService that times additions in UTC.
func NewCartService(carts CartRepository, products ProductFinder, log *zap.Logger) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
		logger:   log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// ListItems returns the user's cart, oldest addition first.
func (s *CartService) ListItems(ctx context.Context, userID int64) ([]models.CartItem, error) {
	return s.carts.FindByUserID(ctx, userID)
}

func (s *CartService) GetItem(ctx context.Context, cartItemID int64) (*models.CartItem, error) {
	return s.carts.FindByID(ctx, cartItemID)
}

// AddOrUpdate inserts item, or merges its quantity into the row the user
// already holds for the same product.
func (s *CartService) AddOrUpdate(ctx context.Context, item *models.CartItem) (*models.CartItem, error) {
	// 1. Reject empty or negative quantities before touching the store.
	if item.Quantity <= 0 {
		return nil, apperr.InvalidArgument("quantity", "must be greater than zero, got %d", item.Quantity)
	}

	// 2. The product must exist; its quantity is the stock we check against.
	product, err := s.products.FindByID(ctx, item.ProductID)
	if err != nil {
		return nil, fmt.Errorf("find product %d: %w", item.ProductID, err)
	}
	if product == nil {
		return nil, apperr.NotFound("no product found with id %d", item.ProductID)
	}

	// 3. Look for the row this user already holds for the product.
	existing, err := s.carts.FindByUserAndProduct(ctx, item.UserID, item.ProductID)
	if err != nil {
		return nil, fmt.Errorf("find cart item: %w", err)
	}

	// 4. No row yet: insert a fresh one.
	if existing == nil {
		item.AddedAt = s.now()
		if product.Quantity < item.Quantity {
			return nil, insufficientStock(product)
		}

		created, err := s.carts.Create(ctx, item)
		if err != nil {
			return nil, fmt.Errorf("create cart item: %w", err)
		}
		s.logger.Debug("cart item added",
			zap.Int64("user_id", item.UserID),
			zap.Int64("product_id", item.ProductID),
			zap.Int("quantity", item.Quantity),
		)
		return created, nil
	}

	// 5. Row exists: merge quantities and re-check stock on the total.
	newQuantity := existing.Quantity + item.Quantity
	existing.AddedAt = s.now()
	if product.Quantity < newQuantity {
		return nil, insufficientStock(product)
	}
	existing.Quantity = newQuantity

	updated, err := s.carts.Update(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("update cart item %d: %w", existing.ID, err)
	}
	// The row can vanish between the lookup and the write.
	if !updated {
		return nil, apperr.NotFound("cart item %d no longer exists", existing.ID)
	}
	s.logger.Debug("cart item merged",
		zap.Int64("cart_item_id", existing.ID),
		zap.Int("quantity", existing.Quantity),
	)
	return existing, nil
}

// Remove deletes the user's row for productID. It reports false when the
// product exists but was not in the cart.
func (s *CartService) Remove(ctx context.Context, userID, productID int64) (bool, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return false, fmt.Errorf("find product %d: %w", productID, err)
	}
	if product == nil {
		return false, apperr.NotFound("no product found with id %d", productID)
	}
	return s.carts.Delete(ctx, userID, productID)
}

func (s *CartService) Clear(ctx context.Context, userID int64) (bool, error) {
	return s.carts.DeleteAllByUserID(ctx, userID)
}

func insufficientStock(p *models.Product) error {
	return apperr.Conflict("not enough stock for product %s, available quantity: %d", p.Name, p.Quantity)
}
