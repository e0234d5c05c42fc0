package repositories

import (
	"context"
	"time"

	"rentmart/internal/models"

	"github.com/google/uuid"
)

type SalonEventRepository interface {
	Create(ctx context.Context, event *models.SalonEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SalonEvent, error)
	Update(ctx context.Context, event *models.SalonEvent) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.SalonEvent, error)
	ListByEventDate(ctx context.Context, date time.Time, statuses []string) ([]*models.SalonEvent, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]*models.SalonEvent, error)
	CountByDateRange(ctx context.Context, start, end time.Time) (int, error)
}

type salonEventRepo struct {
	db Database
}

func NewSalonEventRepo(db Database) SalonEventRepository {
	return &salonEventRepo{db: db}
}

const salonEventColumns = `id, customer_name, customer_phone, event_date, start_time, event_type, guest_count, price, paid, deposit, conditions, notes, status, created_at, updated_at`

func scanSalonEvent(row interface{ Scan(dest ...any) error }) (*models.SalonEvent, error) {
	event := &models.SalonEvent{}
	err := row.Scan(&event.ID, &event.CustomerName, &event.CustomerPhone, &event.EventDate, &event.StartTime, &event.EventType, &event.GuestCount, &event.Price, &event.Paid, &event.Deposit, &event.Conditions, &event.Notes, &event.Status, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (r *salonEventRepo) Create(ctx context.Context, event *models.SalonEvent) error {
	query := `
		INSERT INTO salon_events (id, customer_name, customer_phone, event_date, start_time, event_type, guest_count, price, paid, deposit, conditions, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, event.ID, event.CustomerName, event.CustomerPhone, event.EventDate, event.StartTime, event.EventType, event.GuestCount, event.Price, event.Paid, event.Deposit, event.Conditions, event.Notes, event.Status)
	return err
}

func (r *salonEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.SalonEvent, error) {
	query := `
		SELECT ` + salonEventColumns + `
		FROM salon_events
		WHERE id = $1
	`
	return scanSalonEvent(r.db.QueryRow(ctx, query, id))
}

func (r *salonEventRepo) Update(ctx context.Context, event *models.SalonEvent) error {
	query := `
		UPDATE salon_events
		SET customer_name = $1, customer_phone = $2, event_date = $3, start_time = $4, event_type = $5, guest_count = $6, price = $7, paid = $8, deposit = $9, conditions = $10, notes = $11, status = $12, updated_at = NOW()
		WHERE id = $13
	`
	_, err := r.db.Exec(ctx, query, event.CustomerName, event.CustomerPhone, event.EventDate, event.StartTime, event.EventType, event.GuestCount, event.Price, event.Paid, event.Deposit, event.Conditions, event.Notes, event.Status, event.ID)
	return err
}

func (r *salonEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM salon_events WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *salonEventRepo) List(ctx context.Context, limit, offset int) ([]*models.SalonEvent, error) {
	query := `
		SELECT ` + salonEventColumns + `
		FROM salon_events
		ORDER BY event_date ASC, start_time ASC
		LIMIT $1 OFFSET $2
	`
	return r.queryEvents(ctx, query, limit, offset)
}

func (r *salonEventRepo) ListByEventDate(ctx context.Context, date time.Time, statuses []string) ([]*models.SalonEvent, error) {
	query := `
		SELECT ` + salonEventColumns + `
		FROM salon_events
		WHERE event_date = $1 AND status = ANY($2)
		ORDER BY start_time ASC
	`
	return r.queryEvents(ctx, query, date, statuses)
}

func (r *salonEventRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]*models.SalonEvent, error) {
	query := `
		SELECT ` + salonEventColumns + `
		FROM salon_events
		WHERE event_date >= $1 AND event_date <= $2
		ORDER BY event_date ASC
	`
	return r.queryEvents(ctx, query, start, end)
}

func (r *salonEventRepo) CountByDateRange(ctx context.Context, start, end time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM salon_events WHERE event_date >= $1 AND event_date <= $2`
	var count int
	err := r.db.QueryRow(ctx, query, start, end).Scan(&count)
	return count, err
}

func (r *salonEventRepo) queryEvents(ctx context.Context, query string, args ...any) ([]*models.SalonEvent, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.SalonEvent
	for rows.Next() {
		event, err := scanSalonEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}
