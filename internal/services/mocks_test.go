package services

import (
	"context"
	"time"

	"rentmart/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) List(ctx context.Context) ([]*models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *MockProductRepository) ListPhysical(ctx context.Context) ([]*models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateStockTotal(ctx context.Context, id uuid.UUID, stockTotal int) error {
	args := m.Called(ctx, id, stockTotal)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateRentalPrice(ctx context.Context, id uuid.UUID, rentalPrice float64) error {
	args := m.Called(ctx, id, rentalPrice)
	return args.Error(0)
}

func (m *MockProductRepository) ListSizes(ctx context.Context, productID uuid.UUID) ([]*models.ProductSize, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ProductSize), args.Error(1)
}

type MockProductColorRepository struct {
	mock.Mock
}

func (m *MockProductColorRepository) Create(ctx context.Context, color *models.ProductColor) error {
	args := m.Called(ctx, color)
	return args.Error(0)
}

func (m *MockProductColorRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ProductColor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductColor), args.Error(1)
}

func (m *MockProductColorRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*models.ProductColor, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ProductColor), args.Error(1)
}

func (m *MockProductColorRepository) ListAll(ctx context.Context) ([]*models.ProductColor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ProductColor), args.Error(1)
}

func (m *MockProductColorRepository) UpdateStock(ctx context.Context, id uuid.UUID, stockAvailable int) error {
	args := m.Called(ctx, id, stockAvailable)
	return args.Error(0)
}

func (m *MockProductColorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBundleRepository struct {
	mock.Mock
}

func (m *MockBundleRepository) ListComponents(ctx context.Context, bundleID uuid.UUID) ([]*models.BundleComponent, error) {
	args := m.Called(ctx, bundleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.BundleComponent), args.Error(1)
}

func (m *MockBundleRepository) AddComponent(ctx context.Context, component *models.BundleComponent) error {
	args := m.Called(ctx, component)
	return args.Error(0)
}

func (m *MockBundleRepository) DeleteComponents(ctx context.Context, bundleID uuid.UUID) error {
	args := m.Called(ctx, bundleID)
	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) List(ctx context.Context, limit, offset int) ([]*models.Order, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByStatus(ctx context.Context, status string, limit, offset int) ([]*models.Order, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByEventDate(ctx context.Context, date time.Time, statuses []string) ([]*models.Order, error) {
	args := m.Called(ctx, date, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]*models.Order, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Order), args.Error(1)
}

func (m *MockOrderRepository) CountByDateRange(ctx context.Context, start, end time.Time) (int, error) {
	args := m.Called(ctx, start, end)
	return args.Int(0), args.Error(1)
}

type MockOrderItemRepository struct {
	mock.Mock
}

func (m *MockOrderItemRepository) CreateMany(ctx context.Context, items []*models.OrderItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockOrderItemRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*models.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.OrderItem), args.Error(1)
}

func (m *MockOrderItemRepository) ListByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) ([]*models.OrderItem, error) {
	args := m.Called(ctx, orderIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.OrderItem), args.Error(1)
}

func (m *MockOrderItemRepository) DeleteByOrder(ctx context.Context, orderID uuid.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type MockSalonEventRepository struct {
	mock.Mock
}

func (m *MockSalonEventRepository) Create(ctx context.Context, event *models.SalonEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockSalonEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SalonEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SalonEvent), args.Error(1)
}

func (m *MockSalonEventRepository) Update(ctx context.Context, event *models.SalonEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockSalonEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSalonEventRepository) List(ctx context.Context, limit, offset int) ([]*models.SalonEvent, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SalonEvent), args.Error(1)
}

func (m *MockSalonEventRepository) ListByEventDate(ctx context.Context, date time.Time, statuses []string) ([]*models.SalonEvent, error) {
	args := m.Called(ctx, date, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SalonEvent), args.Error(1)
}

func (m *MockSalonEventRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]*models.SalonEvent, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SalonEvent), args.Error(1)
}

func (m *MockSalonEventRepository) CountByDateRange(ctx context.Context, start, end time.Time) (int, error) {
	args := m.Called(ctx, start, end)
	return args.Int(0), args.Error(1)
}

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCacheService) SetProduct(ctx context.Context, product *models.Product, ttl time.Duration) error {
	args := m.Called(ctx, product, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *MockCacheService) GetAvailability(ctx context.Context, date time.Time) ([]*models.AvailabilitySnapshot, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AvailabilitySnapshot), args.Error(1)
}

func (m *MockCacheService) SetAvailability(ctx context.Context, date time.Time, snapshots []*models.AvailabilitySnapshot, ttl time.Duration) error {
	args := m.Called(ctx, date, snapshots, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteAvailability(ctx context.Context, date time.Time) error {
	args := m.Called(ctx, date)
	return args.Error(0)
}

func (m *MockCacheService) GetBundleDescription(ctx context.Context, bundleID uuid.UUID) (string, error) {
	args := m.Called(ctx, bundleID)
	return args.String(0), args.Error(1)
}

func (m *MockCacheService) SetBundleDescription(ctx context.Context, bundleID uuid.UUID, description string, ttl time.Duration) error {
	args := m.Called(ctx, bundleID, description, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteBundleDescription(ctx context.Context, bundleID uuid.UUID) error {
	args := m.Called(ctx, bundleID)
	return args.Error(0)
}

func (m *MockCacheService) AcquireIdempotencyKey(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheService) InvalidateAvailability(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCacheService) SetString(ctx context.Context, key string, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheService) GetString(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCacheService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
