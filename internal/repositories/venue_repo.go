package repositories

import (
	"context"

	"rentmart/internal/models"

	"github.com/google/uuid"
)

type VenueRepository interface {
	Create(ctx context.Context, venue *models.Venue) error
	ListActive(ctx context.Context) ([]*models.Venue, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type venueRepo struct {
	db Database
}

func NewVenueRepo(db Database) VenueRepository {
	return &venueRepo{db: db}
}

func (r *venueRepo) Create(ctx context.Context, venue *models.Venue) error {
	query := `
		INSERT INTO venues (id, name, active, position)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query, venue.ID, venue.Name, venue.Active, venue.Position)
	return err
}

func (r *venueRepo) ListActive(ctx context.Context) ([]*models.Venue, error) {
	query := `
		SELECT id, name, active, position
		FROM venues
		WHERE active = true
		ORDER BY position ASC, name ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var venues []*models.Venue
	for rows.Next() {
		venue := &models.Venue{}
		if err := rows.Scan(&venue.ID, &venue.Name, &venue.Active, &venue.Position); err != nil {
			return nil, err
		}
		venues = append(venues, venue)
	}
	return venues, rows.Err()
}

func (r *venueRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM venues WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
