package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/SergeyBogomolovv/furniture-resale/pkg/utils"

	"github.com/google/uuid"
)

type ProductRepo interface {
	GetProductByID(ctx context.Context, productID string) (entities.Product, error)
	ListProducts(ctx context.Context, f entities.ProductFilter) ([]entities.Product, int, error)
	// SaveProduct replaces the whole stored document.
	SaveProduct(ctx context.Context, p entities.Product) error
	DeleteProduct(ctx context.Context, productID string) error
}

type productService struct {
	logger *slog.Logger
	repo   ProductRepo
	cache  Cache
}

func NewProductService(logger *slog.Logger, repo ProductRepo, cache Cache) *productService {
	return &productService{
		logger: logger.With(slog.String("service", "product")),
		repo:   repo,
		cache:  cache,
	}
}

func productKey(productID string) string { return "product:" + productID }

func (s *productService) GetProductByID(ctx context.Context, productID string) (entities.Product, error) {
	if data, ok := s.cache.Get(productKey(productID)); ok {
		var p entities.Product
		if err := p.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal product", slog.String("product_id", productID), slog.Any("error", err))
			return entities.Product{}, err
		}
		return p, nil
	}

	var p entities.Product
	fn := func() error {
		var err error
		p, err = s.repo.GetProductByID(ctx, productID)
		return err
	}
	if err := utils.Retry(retryConfig, fn, entities.ErrProductNotFound); err != nil {
		return entities.Product{}, err
	}

	if data, err := p.Marshal(); err != nil {
		s.logger.Error("failed to marshal product", slog.String("product_id", productID), slog.Any("error", err))
	} else {
		s.cache.Set(productKey(productID), data)
	}
	return p, nil
}

func (s *productService) ListProducts(ctx context.Context, f entities.ProductFilter) ([]entities.Product, int, error) {
	return s.repo.ListProducts(ctx, f)
}

// SaveProduct creates a product when p has no id, otherwise it overwrites
// every field of the existing one. The discount rate is always derived from
// the prices.
func (s *productService) SaveProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	if p.Status == "" {
		p.Status = entities.ProductOnSale
	}
	if err := validateProduct(p); err != nil {
		return entities.Product{}, err
	}

	now := time.Now().UTC()
	if p.ID == "" {
		p.ID = uuid.NewString()
		p.CreatedAt = now
	} else {
		existing, err := s.repo.GetProductByID(ctx, p.ID)
		if err != nil {
			return entities.Product{}, err
		}
		p.CreatedAt = existing.CreatedAt
	}
	p.UpdatedAt = now
	p.Pricing = p.Pricing.WithDiscount()

	if err := s.repo.SaveProduct(ctx, p); err != nil {
		return entities.Product{}, err
	}
	s.cache.Delete(productKey(p.ID))

	s.logger.Info("product saved", slog.String("product_id", p.ID))
	return p, nil
}

func validateProduct(p entities.Product) error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return fmt.Errorf("%w: name is required", entities.ErrInvalidProduct)
	case strings.TrimSpace(p.Category) == "":
		return fmt.Errorf("%w: category is required", entities.ErrInvalidProduct)
	case !p.Status.Valid():
		return fmt.Errorf("%w: unknown status %q", entities.ErrInvalidProduct, p.Status)
	case p.Pricing.OriginalPrice < 0 || p.Pricing.SalePrice < 0:
		return fmt.Errorf("%w: negative price", entities.ErrInvalidProduct)
	case p.Stock < 0:
		return fmt.Errorf("%w: negative stock", entities.ErrInvalidProduct)
	}
	return nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	if err := s.repo.DeleteProduct(ctx, productID); err != nil {
		return err
	}
	s.cache.Delete(productKey(productID))
	return nil
}
