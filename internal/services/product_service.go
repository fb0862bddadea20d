package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/01moynul/shopfront-api/internal/apperr"
	"github.com/01moynul/shopfront-api/internal/models"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

// ProductService applies catalog rules over a ProductRepository.
type ProductService struct {
	repo   ProductRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewProductService builds a ProductService stamping unix timestamps from the wall clock.
func NewProductService(repo ProductRepository, log *zap.Logger) *ProductService {
	return &ProductService{repo: repo, logger: log, now: time.Now}
}

func (s *ProductService) ListAll(ctx context.Context) ([]models.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProductService) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Create stamps both timestamps and derives a code from the name when none is given.
func (s *ProductService) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, apperr.InvalidArgument("name", "product name cannot be empty")
	}
	if strings.TrimSpace(p.Code) == "" {
		p.Code = slug.Make(p.Name)
	}

	now := s.now().Unix()
	p.CreatedAt = now
	p.UpdatedAt = now

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	p.ID = id

	s.logger.Info("product created", zap.Int64("product_id", p.ID), zap.String("code", p.Code))
	return p, nil
}

// Update overwrites every mutable field of the stored product. It returns
// false without an error when no product has p.ID.
func (s *ProductService) Update(ctx context.Context, p *models.Product) (bool, error) {
	existing, err := s.repo.FindByID(ctx, p.ID)
	if err != nil {
		return false, fmt.Errorf("find product %d: %w", p.ID, err)
	}
	if existing == nil {
		return false, nil
	}

	existing.Code = p.Code
	existing.Name = p.Name
	existing.Description = p.Description
	existing.Image = p.Image
	existing.Category = p.Category
	existing.Price = p.Price
	existing.Quantity = p.Quantity
	existing.InternalReference = p.InternalReference
	existing.ShelfID = p.ShelfID
	existing.InventoryStatus = p.InventoryStatus
	existing.Rating = p.Rating
	existing.UpdatedAt = s.now().Unix()

	return s.repo.Update(ctx, existing)
}

func (s *ProductService) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, apperr.InvalidArgument("id", "must be positive, got %d", id)
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("find product %d: %w", id, err)
	}
	if existing == nil {
		return false, apperr.NotFound("no product found with id %d", id)
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete product %d: %w", id, err)
	}
	if deleted {
		s.logger.Info("product deleted", zap.Int64("product_id", id))
	}
	return deleted, nil
}
