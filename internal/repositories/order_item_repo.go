package repositories

import (
	"context"

	"rentmart/internal/models"

	"github.com/google/uuid"
)

type OrderItemRepository interface {
	CreateMany(ctx context.Context, items []*models.OrderItem) error
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*models.OrderItem, error)
	ListByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) ([]*models.OrderItem, error)
	DeleteByOrder(ctx context.Context, orderID uuid.UUID) error
}

type orderItemRepo struct {
	db Database
}

func NewOrderItemRepo(db Database) OrderItemRepository {
	return &orderItemRepo{db: db}
}

func (r *orderItemRepo) CreateMany(ctx context.Context, items []*models.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, subtotal, is_bundle_component, color, tablecloth_color, bow_color, size, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
	`
	for _, item := range items {
		_, err := r.db.Exec(ctx, query, item.ID, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice, item.Subtotal, item.IsBundleComponent, item.Color, item.TableclothColor, item.BowColor, item.Size)
		if err != nil {
			return err
		}
	}
	return nil
}

const orderItemColumns = `oi.id, oi.order_id, oi.product_id, oi.quantity, oi.unit_price, oi.subtotal, oi.is_bundle_component, oi.color, oi.tablecloth_color, oi.bow_color, oi.size, oi.created_at, p.name`

func scanOrderItem(row interface{ Scan(dest ...any) error }) (*models.OrderItem, error) {
	item := &models.OrderItem{}
	err := row.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.Subtotal, &item.IsBundleComponent, &item.Color, &item.TableclothColor, &item.BowColor, &item.Size, &item.CreatedAt, &item.ProductName)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *orderItemRepo) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*models.OrderItem, error) {
	query := `
		SELECT ` + orderItemColumns + `
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY oi.created_at ASC
	`
	return r.queryItems(ctx, query, orderID)
}

// ListByOrderIDs loads the items of several orders in one round trip.
func (r *orderItemRepo) ListByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) ([]*models.OrderItem, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT ` + orderItemColumns + `
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.order_id, oi.created_at ASC
	`
	return r.queryItems(ctx, query, orderIDs)
}

func (r *orderItemRepo) DeleteByOrder(ctx context.Context, orderID uuid.UUID) error {
	query := `DELETE FROM order_items WHERE order_id = $1`
	_, err := r.db.Exec(ctx, query, orderID)
	return err
}

func (r *orderItemRepo) queryItems(ctx context.Context, query string, args ...any) ([]*models.OrderItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.OrderItem
	for rows.Next() {
		item, err := scanOrderItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
