package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"rentmart/internal/caching"
	"rentmart/internal/models"
	"rentmart/internal/repositories"

	"github.com/google/uuid"
)

type InventoryService interface {
	SetStockTotal(ctx context.Context, productID uuid.UUID, stockTotal int) error
	AdjustStockTotal(ctx context.Context, productID uuid.UUID, change int) error
	AddColor(ctx context.Context, color *models.ProductColor) error
	SetColorStock(ctx context.Context, colorID uuid.UUID, stockAvailable int) error
	RemoveColor(ctx context.Context, colorID uuid.UUID) error
	ListColors(ctx context.Context, productID uuid.UUID) ([]*models.ProductColor, error)

	// TotalPieceCount sums the stock of every physical product, counting
	// color-bearing products by their color rows.
	TotalPieceCount(ctx context.Context) (int, error)
}

type inventoryService struct {
	productRepo  repositories.ProductRepository
	colorRepo    repositories.ProductColorRepository
	cacheService caching.CacheService
}

func NewInventoryService(productRepo repositories.ProductRepository, colorRepo repositories.ProductColorRepository, cacheService caching.CacheService) InventoryService {
	return &inventoryService{
		productRepo:  productRepo,
		colorRepo:    colorRepo,
		cacheService: cacheService,
	}
}

func (s *inventoryService) SetStockTotal(ctx context.Context, productID uuid.UUID, stockTotal int) error {
	if stockTotal < 0 {
		return errors.New("stock total cannot be negative")
	}
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product.HasColors {
		return errors.New("stock of a color-bearing product is managed per color")
	}
	if err := s.productRepo.UpdateStockTotal(ctx, productID, stockTotal); err != nil {
		return err
	}
	s.invalidate(ctx, productID)
	return nil
}

func (s *inventoryService) AdjustStockTotal(ctx context.Context, productID uuid.UUID, change int) error {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product.HasColors {
		return errors.New("stock of a color-bearing product is managed per color")
	}
	newTotal := product.StockTotal + change
	if newTotal < 0 {
		return fmt.Errorf("stock cannot go below zero (current %d, change %d)", product.StockTotal, change)
	}
	if err := s.productRepo.UpdateStockTotal(ctx, productID, newTotal); err != nil {
		return err
	}
	s.invalidate(ctx, productID)
	return nil
}

func (s *inventoryService) AddColor(ctx context.Context, color *models.ProductColor) error {
	if color.Color == "" {
		return errors.New("color label is required")
	}
	if color.StockAvailable < 0 {
		return errors.New("color stock cannot be negative")
	}
	if color.ID == uuid.Nil {
		color.ID = uuid.New()
	}
	if err := s.colorRepo.Create(ctx, color); err != nil {
		return err
	}
	s.invalidate(ctx, color.ProductID)
	return nil
}

func (s *inventoryService) SetColorStock(ctx context.Context, colorID uuid.UUID, stockAvailable int) error {
	if stockAvailable < 0 {
		return errors.New("color stock cannot be negative")
	}
	color, err := s.colorRepo.GetByID(ctx, colorID)
	if err != nil {
		return err
	}
	if err := s.colorRepo.UpdateStock(ctx, colorID, stockAvailable); err != nil {
		return err
	}
	s.invalidate(ctx, color.ProductID)
	return nil
}

func (s *inventoryService) RemoveColor(ctx context.Context, colorID uuid.UUID) error {
	color, err := s.colorRepo.GetByID(ctx, colorID)
	if err != nil {
		return err
	}
	if err := s.colorRepo.Delete(ctx, colorID); err != nil {
		return err
	}
	s.invalidate(ctx, color.ProductID)
	return nil
}

func (s *inventoryService) ListColors(ctx context.Context, productID uuid.UUID) ([]*models.ProductColor, error) {
	return s.colorRepo.ListByProduct(ctx, productID)
}

func (s *inventoryService) TotalPieceCount(ctx context.Context) (int, error) {
	products, err := s.productRepo.ListPhysical(ctx)
	if err != nil {
		return 0, err
	}
	colors, err := s.colorRepo.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	colorTotals := make(map[uuid.UUID]int)
	for _, c := range colors {
		colorTotals[c.ProductID] += c.StockAvailable
	}

	total := 0
	for _, product := range products {
		if product.HasColors {
			total += colorTotals[product.ID]
		} else {
			total += product.StockTotal
		}
	}
	return total, nil
}

func (s *inventoryService) invalidate(ctx context.Context, productID uuid.UUID) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.DeleteProduct(ctx, productID); err != nil {
		log.Printf("WARN: product cache invalidation failed: %v", err)
	}
	if err := s.cacheService.InvalidateAvailability(ctx); err != nil {
		log.Printf("WARN: availability cache invalidation failed: %v", err)
	}
}
