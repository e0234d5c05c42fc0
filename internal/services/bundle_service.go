package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"rentmart/internal/caching"
	"rentmart/internal/models"
	"rentmart/internal/repositories"

	"github.com/google/uuid"
)

const bundleDescriptionCacheTTL = 30 * time.Minute

type BundleService interface {
	// DescribeBundle renders a bundle as "10 Chair + 1 Long Table + ...".
	// It returns an empty string when the bundle has no components or the
	// lookup fails; it never returns an error to the caller.
	DescribeBundle(ctx context.Context, bundleID uuid.UUID) string

	// ExpandOrderLines turns the user-entered lines of a new order into the
	// full persisted set: each bundle line is kept as-is and followed by one
	// zero-priced component line per bundle component.
	ExpandOrderLines(ctx context.Context, lines []*models.OrderItem) ([]*models.OrderItem, error)

	ListComponents(ctx context.Context, bundleID uuid.UUID) ([]*models.BundleComponent, error)
	SetComponents(ctx context.Context, bundleID uuid.UUID, components []*models.BundleComponent) error
}

type bundleService struct {
	bundleRepo   repositories.BundleRepository
	productRepo  repositories.ProductRepository
	cacheService caching.CacheService
}

func NewBundleService(bundleRepo repositories.BundleRepository, productRepo repositories.ProductRepository, cacheService caching.CacheService) BundleService {
	return &bundleService{
		bundleRepo:   bundleRepo,
		productRepo:  productRepo,
		cacheService: cacheService,
	}
}

func (s *bundleService) DescribeBundle(ctx context.Context, bundleID uuid.UUID) string {
	if s.cacheService != nil {
		cached, err := s.cacheService.GetBundleDescription(ctx, bundleID)
		if err != nil {
			log.Printf("WARN: bundle description cache read failed: %v", err)
		} else if cached != "" {
			return cached
		}
	}

	components, err := s.bundleRepo.ListComponents(ctx, bundleID)
	if err != nil {
		log.Printf("WARN: could not describe bundle %s: %v", bundleID, err)
		return ""
	}
	if len(components) == 0 {
		return ""
	}

	parts := make([]string, 0, len(components))
	for _, component := range components {
		parts = append(parts, fmt.Sprintf("%d %s", component.Quantity, component.ComponentName))
	}
	description := strings.Join(parts, " + ")

	if s.cacheService != nil {
		if err := s.cacheService.SetBundleDescription(ctx, bundleID, description, bundleDescriptionCacheTTL); err != nil {
			log.Printf("WARN: bundle description cache write failed: %v", err)
		}
	}
	return description
}

func (s *bundleService) ExpandOrderLines(ctx context.Context, lines []*models.OrderItem) ([]*models.OrderItem, error) {
	var expanded []*models.OrderItem
	for _, line := range lines {
		expanded = append(expanded, line)

		product, err := s.productRepo.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve product %s: %w", line.ProductID, err)
		}
		if !product.IsBundle {
			continue
		}

		components, err := s.bundleRepo.ListComponents(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to load components of bundle %s: %w", line.ProductID, err)
		}

		for _, component := range components {
			target, err := s.productRepo.GetByID(ctx, component.ComponentProductID)
			if err != nil {
				// component product no longer exists, skip just this entry
				log.Printf("WARN: bundle %s references missing component %s, skipping", line.ProductID, component.ComponentProductID)
				continue
			}

			componentLine := &models.OrderItem{
				ID:                uuid.New(),
				OrderID:           line.OrderID,
				ProductID:         target.ID,
				ProductName:       target.Name,
				Quantity:          line.Quantity * component.Quantity,
				UnitPrice:         0,
				Subtotal:          0,
				IsBundleComponent: true,
			}
			// the component inherits the color picked for its slot on the
			// bundle line, so each sub-item draws from its own color pool
			if target.HasColors {
				if color := line.EffectiveColor(target); color != "" {
					componentLine.Color = &color
				}
			}
			expanded = append(expanded, componentLine)
		}
	}
	return expanded, nil
}

func (s *bundleService) ListComponents(ctx context.Context, bundleID uuid.UUID) ([]*models.BundleComponent, error) {
	return s.bundleRepo.ListComponents(ctx, bundleID)
}

func (s *bundleService) SetComponents(ctx context.Context, bundleID uuid.UUID, components []*models.BundleComponent) error {
	for _, component := range components {
		if component.Quantity <= 0 {
			return fmt.Errorf("component quantity must be positive")
		}
	}
	if err := s.bundleRepo.DeleteComponents(ctx, bundleID); err != nil {
		return err
	}
	for _, component := range components {
		component.BundleID = bundleID
		if err := s.bundleRepo.AddComponent(ctx, component); err != nil {
			return err
		}
	}
	if s.cacheService != nil {
		if err := s.cacheService.DeleteBundleDescription(ctx, bundleID); err != nil {
			log.Printf("WARN: bundle description cache invalidation failed: %v", err)
		}
	}
	return nil
}
