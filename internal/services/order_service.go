package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"rentmart/internal/caching"
	"rentmart/internal/models"
	"rentmart/internal/repositories"

	"github.com/google/uuid"
)

const idempotencyKeyTTL = 10 * time.Minute

var (
	ErrDuplicateSubmission     = errors.New("an identical order submission is already being processed")
	ErrInvalidStatusTransition = errors.New("order status transition not allowed")
	ErrOrderHasNoLines         = errors.New("order must have at least one line item")
)

type OrderService interface {
	Create(ctx context.Context, order *models.Order, idempotencyKey string) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	List(ctx context.Context, status string, limit, offset int) ([]*models.Order, error)
	ListForDate(ctx context.Context, date time.Time) ([]*models.Order, error)
	Update(ctx context.Context, order *models.Order) error
	MarkDelivered(ctx context.Context, id uuid.UUID, deliveredBy string) error
	MarkPickedUp(ctx context.Context, id uuid.UUID, pickedUpBy string) error
	Cancel(ctx context.Context, id uuid.UUID) error
	SetPaid(ctx context.Context, id uuid.UUID, paid bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type orderService struct {
	orderRepo     repositories.OrderRepository
	orderItemRepo repositories.OrderItemRepository
	bundleService BundleService
	cacheService  caching.CacheService
}

func NewOrderService(orderRepo repositories.OrderRepository, orderItemRepo repositories.OrderItemRepository, bundleService BundleService, cacheService caching.CacheService) OrderService {
	return &orderService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		bundleService: bundleService,
		cacheService:  cacheService,
	}
}

func (s *orderService) Create(ctx context.Context, order *models.Order, idempotencyKey string) error {
	if order.CustomerName == "" {
		return errors.New("customer name is required")
	}
	if order.EventDate.IsZero() {
		return errors.New("event date is required")
	}
	if order.Venue == "" {
		return errors.New("venue is required")
	}
	if len(order.Items) == 0 {
		return ErrOrderHasNoLines
	}
	for _, item := range order.Items {
		if item.Quantity <= 0 {
			return errors.New("line item quantity must be positive")
		}
		if item.UnitPrice < 0 {
			return errors.New("line item price cannot be negative")
		}
	}

	if idempotencyKey != "" && s.cacheService != nil {
		acquired, err := s.cacheService.AcquireIdempotencyKey(ctx, idempotencyKey, idempotencyKeyTTL)
		if err != nil {
			log.Printf("WARN: idempotency key check failed, continuing without guard: %v", err)
		} else if !acquired {
			return ErrDuplicateSubmission
		}
	}

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.Status == "" {
		order.Status = models.OrderStatusUpcoming
	}

	total := 0.0
	for _, item := range order.Items {
		item.Subtotal = float64(item.Quantity) * item.UnitPrice
		total += item.Subtotal
	}
	order.Total = total

	expanded, err := s.bundleService.ExpandOrderLines(ctx, order.Items)
	if err != nil {
		return fmt.Errorf("failed to expand order lines: %w", err)
	}
	for _, item := range expanded {
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		item.OrderID = order.ID
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	if err := s.orderItemRepo.CreateMany(ctx, expanded); err != nil {
		return fmt.Errorf("failed to create order items: %w", err)
	}
	order.Items = expanded

	s.invalidateAvailability(ctx)
	return nil
}

func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.orderItemRepo.ListByOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (s *orderService) List(ctx context.Context, status string, limit, offset int) ([]*models.Order, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	if status == "" {
		return s.orderRepo.List(ctx, limit, offset)
	}
	return s.orderRepo.ListByStatus(ctx, status, limit, offset)
}

// ListForDate returns the day's active orders with their line items attached.
func (s *orderService) ListForDate(ctx context.Context, date time.Time) ([]*models.Order, error) {
	orders, err := s.orderRepo.ListByEventDate(ctx, date, models.ActiveOrderStatuses())
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	orderIDs := make([]uuid.UUID, 0, len(orders))
	for _, order := range orders {
		orderIDs = append(orderIDs, order.ID)
	}
	items, err := s.orderItemRepo.ListByOrderIDs(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	byOrder := make(map[uuid.UUID][]*models.OrderItem)
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}
	for _, order := range orders {
		order.Items = byOrder[order.ID]
	}
	return orders, nil
}

func (s *orderService) Update(ctx context.Context, order *models.Order) error {
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return err
	}
	s.invalidateAvailability(ctx)
	return nil
}

func (s *orderService) MarkDelivered(ctx context.Context, id uuid.UUID, deliveredBy string) error {
	return s.transition(ctx, id, models.OrderStatusDelivered, func(order *models.Order) {
		now := time.Now()
		order.DeliveredBy = &deliveredBy
		order.DeliveredAt = &now
	})
}

func (s *orderService) MarkPickedUp(ctx context.Context, id uuid.UUID, pickedUpBy string) error {
	return s.transition(ctx, id, models.OrderStatusCompleted, func(order *models.Order) {
		now := time.Now()
		order.PickedUpBy = &pickedUpBy
		order.PickedUpAt = &now
	})
}

func (s *orderService) Cancel(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, models.OrderStatusCancelled, nil)
}

func (s *orderService) transition(ctx context.Context, id uuid.UUID, to string, apply func(*models.Order)) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !models.ValidOrderStatusTransition(order.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, order.Status, to)
	}
	order.Status = to
	if apply != nil {
		apply(order)
	}
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return err
	}
	s.invalidateAvailability(ctx)
	return nil
}

func (s *orderService) SetPaid(ctx context.Context, id uuid.UUID, paid bool) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	order.Paid = paid
	return s.orderRepo.Update(ctx, order)
}

func (s *orderService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.orderItemRepo.DeleteByOrder(ctx, id); err != nil {
		return err
	}
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateAvailability(ctx)
	return nil
}

func (s *orderService) invalidateAvailability(ctx context.Context) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.InvalidateAvailability(ctx); err != nil {
		log.Printf("WARN: availability cache invalidation failed: %v", err)
	}
}
