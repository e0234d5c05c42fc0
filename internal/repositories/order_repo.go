package repositories

import (
	"context"
	"time"

	"rentmart/internal/models"

	"github.com/google/uuid"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	Update(ctx context.Context, order *models.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Order, error)
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]*models.Order, error)
	ListByEventDate(ctx context.Context, date time.Time, statuses []string) ([]*models.Order, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]*models.Order, error)
	CountByDateRange(ctx context.Context, start, end time.Time) (int, error)
}

type orderRepo struct {
	db Database
}

func NewOrderRepo(db Database) OrderRepository {
	return &orderRepo{db: db}
}

const orderColumns = `id, customer_name, customer_phone, event_date, event_time, venue, venue_detail, comments, total, paid, deposit, status, delivered_by, delivered_at, picked_up_by, picked_up_at, created_at, updated_at`

func scanOrder(row interface{ Scan(dest ...any) error }) (*models.Order, error) {
	order := &models.Order{}
	err := row.Scan(&order.ID, &order.CustomerName, &order.CustomerPhone, &order.EventDate, &order.EventTime, &order.Venue, &order.VenueDetail, &order.Comments, &order.Total, &order.Paid, &order.Deposit, &order.Status, &order.DeliveredBy, &order.DeliveredAt, &order.PickedUpBy, &order.PickedUpAt, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepo) Create(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO orders (id, customer_name, customer_phone, event_date, event_time, venue, venue_detail, comments, total, paid, deposit, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, order.ID, order.CustomerName, order.CustomerPhone, order.EventDate, order.EventTime, order.Venue, order.VenueDetail, order.Comments, order.Total, order.Paid, order.Deposit, order.Status)
	return err
}

func (r *orderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
	`
	return scanOrder(r.db.QueryRow(ctx, query, id))
}

func (r *orderRepo) Update(ctx context.Context, order *models.Order) error {
	query := `
		UPDATE orders
		SET customer_name = $1, customer_phone = $2, event_date = $3, event_time = $4, venue = $5, venue_detail = $6, comments = $7, total = $8, paid = $9, deposit = $10, status = $11, delivered_by = $12, delivered_at = $13, picked_up_by = $14, picked_up_at = $15, updated_at = NOW()
		WHERE id = $16
	`
	_, err := r.db.Exec(ctx, query, order.CustomerName, order.CustomerPhone, order.EventDate, order.EventTime, order.Venue, order.VenueDetail, order.Comments, order.Total, order.Paid, order.Deposit, order.Status, order.DeliveredBy, order.DeliveredAt, order.PickedUpBy, order.PickedUpAt, order.ID)
	return err
}

func (r *orderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM orders WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *orderRepo) List(ctx context.Context, limit, offset int) ([]*models.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		ORDER BY event_date ASC, event_time ASC
		LIMIT $1 OFFSET $2
	`
	return r.queryOrders(ctx, query, limit, offset)
}

func (r *orderRepo) ListByStatus(ctx context.Context, status string, limit, offset int) ([]*models.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE status = $1
		ORDER BY event_date ASC, event_time ASC
		LIMIT $2 OFFSET $3
	`
	return r.queryOrders(ctx, query, status, limit, offset)
}

// ListByEventDate returns orders whose event falls on the given calendar day
// and whose status is one of the given states.
func (r *orderRepo) ListByEventDate(ctx context.Context, date time.Time, statuses []string) ([]*models.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE event_date = $1 AND status = ANY($2)
		ORDER BY event_time ASC
	`
	return r.queryOrders(ctx, query, date, statuses)
}

func (r *orderRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]*models.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE event_date >= $1 AND event_date <= $2
		ORDER BY event_date ASC
	`
	return r.queryOrders(ctx, query, start, end)
}

func (r *orderRepo) CountByDateRange(ctx context.Context, start, end time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM orders WHERE event_date >= $1 AND event_date <= $2`
	var count int
	err := r.db.QueryRow(ctx, query, start, end).Scan(&count)
	return count, err
}

func (r *orderRepo) queryOrders(ctx context.Context, query string, args ...any) ([]*models.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
