package services

import (
	"context"
	"errors"
	"log"
	"time"

	"rentmart/internal/caching"
	"rentmart/internal/models"
	"rentmart/internal/repositories"

	"github.com/google/uuid"
)

const productCacheTTL = 10 * time.Minute

type ProductService interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Product, error)
	ListPhysical(ctx context.Context) ([]*models.Product, error)
	ListSizes(ctx context.Context, productID uuid.UUID) ([]*models.ProductSize, error)
	BulkUpdatePrices(ctx context.Context, updates []*models.ProductPriceUpdate) error
}

type productService struct {
	productRepo  repositories.ProductRepository
	bundleRepo   repositories.BundleRepository
	cacheService caching.CacheService
}

func NewProductService(productRepo repositories.ProductRepository, bundleRepo repositories.BundleRepository, cacheService caching.CacheService) ProductService {
	return &productService{
		productRepo:  productRepo,
		bundleRepo:   bundleRepo,
		cacheService: cacheService,
	}
}

func (s *productService) Create(ctx context.Context, product *models.Product) error {
	if product.Name == "" {
		return errors.New("product name is required")
	}
	if product.RentalPrice < 0 {
		return errors.New("rental price cannot be negative")
	}
	if product.StockTotal < 0 {
		return errors.New("stock total cannot be negative")
	}
	switch product.ColorSlot {
	case models.ColorSlotDefault, models.ColorSlotTablecloth, models.ColorSlotBow:
	default:
		return errors.New("unknown color slot")
	}
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	return s.productRepo.Create(ctx, product)
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if s.cacheService != nil {
		cached, err := s.cacheService.GetProduct(ctx, id)
		if err != nil {
			log.Printf("WARN: product cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cacheService != nil {
		if err := s.cacheService.SetProduct(ctx, product, productCacheTTL); err != nil {
			log.Printf("WARN: product cache write failed: %v", err)
		}
	}
	return product, nil
}

func (s *productService) Update(ctx context.Context, product *models.Product) error {
	if product.Name == "" {
		return errors.New("product name is required")
	}
	if err := s.productRepo.Update(ctx, product); err != nil {
		return err
	}
	s.invalidate(ctx, product.ID)
	return nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	// a deleted bundle must not leave orphaned component rows behind
	if err := s.bundleRepo.DeleteComponents(ctx, id); err != nil {
		return err
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *productService) List(ctx context.Context) ([]*models.Product, error) {
	return s.productRepo.List(ctx)
}

func (s *productService) ListPhysical(ctx context.Context) ([]*models.Product, error) {
	return s.productRepo.ListPhysical(ctx)
}

func (s *productService) ListSizes(ctx context.Context, productID uuid.UUID) ([]*models.ProductSize, error) {
	return s.productRepo.ListSizes(ctx, productID)
}

func (s *productService) BulkUpdatePrices(ctx context.Context, updates []*models.ProductPriceUpdate) error {
	for _, update := range updates {
		if update.RentalPrice < 0 {
			return errors.New("rental price cannot be negative")
		}
	}
	for _, update := range updates {
		if err := s.productRepo.UpdateRentalPrice(ctx, update.ProductID, update.RentalPrice); err != nil {
			return err
		}
		s.invalidate(ctx, update.ProductID)
	}
	return nil
}

func (s *productService) invalidate(ctx context.Context, productID uuid.UUID) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.DeleteProduct(ctx, productID); err != nil {
		log.Printf("WARN: product cache invalidation failed: %v", err)
	}
	if err := s.cacheService.InvalidateAvailability(ctx); err != nil {
		log.Printf("WARN: availability cache invalidation failed: %v", err)
	}
	if err := s.cacheService.DeleteBundleDescription(ctx, productID); err != nil {
		log.Printf("WARN: bundle description cache invalidation failed: %v", err)
	}
}
