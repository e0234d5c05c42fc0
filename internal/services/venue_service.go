package services

import (
	"context"
	"errors"

	"rentmart/internal/models"
	"rentmart/internal/repositories"

	"github.com/google/uuid"
)

type VenueService interface {
	Create(ctx context.Context, venue *models.Venue) error
	ListActive(ctx context.Context) ([]*models.Venue, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type venueService struct {
	venueRepo repositories.VenueRepository
}

func NewVenueService(venueRepo repositories.VenueRepository) VenueService {
	return &venueService{venueRepo: venueRepo}
}

func (s *venueService) Create(ctx context.Context, venue *models.Venue) error {
	if venue.Name == "" {
		return errors.New("venue name is required")
	}
	if venue.ID == uuid.Nil {
		venue.ID = uuid.New()
	}
	venue.Active = true
	return s.venueRepo.Create(ctx, venue)
}

func (s *venueService) ListActive(ctx context.Context) ([]*models.Venue, error) {
	return s.venueRepo.ListActive(ctx)
}

func (s *venueService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.venueRepo.Delete(ctx, id)
}
