package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"rentmart/internal/caching"
	"rentmart/internal/models"
	"rentmart/internal/repositories"

	"github.com/google/uuid"
)

const availabilityCacheTTL = 5 * time.Minute

type AvailabilityService interface {
	// ComputeAvailability reports, for every physical product, how many units
	// are committed by active orders on the given date and how many remain.
	ComputeAvailability(ctx context.Context, date time.Time) ([]*models.AvailabilitySnapshot, error)

	// FallbackAvailability reports every product as fully available. Used when
	// the order fetch fails and the caller chooses to degrade rather than block.
	FallbackAvailability(ctx context.Context) ([]*models.AvailabilitySnapshot, error)
}

type availabilityService struct {
	productRepo   repositories.ProductRepository
	colorRepo     repositories.ProductColorRepository
	bundleRepo    repositories.BundleRepository
	orderRepo     repositories.OrderRepository
	orderItemRepo repositories.OrderItemRepository
	cacheService  caching.CacheService
}

func NewAvailabilityService(productRepo repositories.ProductRepository, colorRepo repositories.ProductColorRepository, bundleRepo repositories.BundleRepository, orderRepo repositories.OrderRepository, orderItemRepo repositories.OrderItemRepository, cacheService caching.CacheService) AvailabilityService {
	return &availabilityService{
		productRepo:   productRepo,
		colorRepo:     colorRepo,
		bundleRepo:    bundleRepo,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		cacheService:  cacheService,
	}
}

func (s *availabilityService) ComputeAvailability(ctx context.Context, date time.Time) ([]*models.AvailabilitySnapshot, error) {
	if s.cacheService != nil {
		cached, err := s.cacheService.GetAvailability(ctx, date)
		if err != nil {
			log.Printf("WARN: availability cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	catalog, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load product catalog: %w", err)
	}

	colors, err := s.colorRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load color stock: %w", err)
	}

	orders, err := s.orderRepo.ListByEventDate(ctx, date, models.ActiveOrderStatuses())
	if err != nil {
		return nil, fmt.Errorf("failed to load orders for %s: %w", date.Format("2006-01-02"), err)
	}

	var items []*models.OrderItem
	if len(orders) > 0 {
		orderIDs := make([]uuid.UUID, 0, len(orders))
		for _, order := range orders {
			orderIDs = append(orderIDs, order.ID)
		}
		items, err = s.orderItemRepo.ListByOrderIDs(ctx, orderIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load order items: %w", err)
		}
	}

	inUse, err := s.accumulateUsage(ctx, catalog, items)
	if err != nil {
		return nil, err
	}

	snapshots := buildSnapshots(catalog, colors, inUse)

	if s.cacheService != nil {
		if err := s.cacheService.SetAvailability(ctx, date, snapshots, availabilityCacheTTL); err != nil {
			log.Printf("WARN: availability cache write failed: %v", err)
		}
	}
	return snapshots, nil
}

// accumulateUsage walks every order line and builds per-product per-color
// in-use counters. Bundle lines are decomposed into their components; the
// persisted component artifact lines are skipped so expansion is counted
// exactly once, from the current bundle definition.
func (s *availabilityService) accumulateUsage(ctx context.Context, catalog []*models.Product, items []*models.OrderItem) (map[uuid.UUID]map[string]int, error) {
	byID := make(map[uuid.UUID]*models.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	inUse := make(map[uuid.UUID]map[string]int)
	add := func(productID uuid.UUID, color string, qty int) {
		if inUse[productID] == nil {
			inUse[productID] = make(map[string]int)
		}
		inUse[productID][color] += qty
	}

	componentCache := make(map[uuid.UUID][]*models.BundleComponent)

	for _, item := range items {
		if item.IsBundleComponent {
			continue
		}
		product, ok := byID[item.ProductID]
		if !ok {
			// line references a product removed from the catalog
			continue
		}

		if !product.IsBundle {
			var color string
			if product.HasColors {
				color = item.EffectiveColor(product)
			}
			add(product.ID, color, item.Quantity)
			continue
		}

		components, ok := componentCache[product.ID]
		if !ok {
			var err error
			components, err = s.bundleRepo.ListComponents(ctx, product.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to load components of bundle %s: %w", product.ID, err)
			}
			componentCache[product.ID] = components
		}

		for _, component := range components {
			target, ok := byID[component.ComponentProductID]
			if !ok {
				// component product no longer exists, skip just this entry
				continue
			}
			var color string
			if target.HasColors {
				color = item.EffectiveColor(target)
			}
			add(target.ID, color, item.Quantity*component.Quantity)
		}
	}
	return inUse, nil
}

// buildSnapshots nets the usage counters against stock. Color-bearing
// products total from their color rows; a color consumed by an order but not
// registered still counts as in use.
func buildSnapshots(catalog []*models.Product, colors []*models.ProductColor, inUse map[uuid.UUID]map[string]int) []*models.AvailabilitySnapshot {
	colorTotals := make(map[uuid.UUID]int)
	for _, c := range colors {
		colorTotals[c.ProductID] += c.StockAvailable
	}

	var snapshots []*models.AvailabilitySnapshot
	for _, product := range catalog {
		if product.IsBundle {
			continue
		}

		total := product.StockTotal
		if product.HasColors {
			total = colorTotals[product.ID]
		}

		used := 0
		for _, qty := range inUse[product.ID] {
			used += qty
		}

		available := total - used
		if available < 0 {
			available = 0
		}

		snapshots = append(snapshots, &models.AvailabilitySnapshot{
			ProductID:   product.ID,
			ProductName: product.Name,
			Total:       total,
			InUse:       used,
			Available:   available,
		})
	}
	return snapshots
}

func (s *availabilityService) FallbackAvailability(ctx context.Context) ([]*models.AvailabilitySnapshot, error) {
	catalog, err := s.productRepo.ListPhysical(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load product catalog: %w", err)
	}
	colors, err := s.colorRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load color stock: %w", err)
	}
	return buildSnapshots(catalog, colors, nil), nil
}
