package services

import (
	"context"
	"errors"
	"time"

	"rentmart/internal/models"
	"rentmart/internal/repositories"

	"github.com/google/uuid"
)

type SalonService interface {
	Create(ctx context.Context, event *models.SalonEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SalonEvent, error)
	Update(ctx context.Context, event *models.SalonEvent) error
	Cancel(ctx context.Context, id uuid.UUID) error
	Complete(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.SalonEvent, error)
	ListForDate(ctx context.Context, date time.Time) ([]*models.SalonEvent, error)
}

type salonService struct {
	salonRepo repositories.SalonEventRepository
}

func NewSalonService(salonRepo repositories.SalonEventRepository) SalonService {
	return &salonService{salonRepo: salonRepo}
}

func (s *salonService) Create(ctx context.Context, event *models.SalonEvent) error {
	if event.CustomerName == "" {
		return errors.New("customer name is required")
	}
	if event.EventDate.IsZero() {
		return errors.New("event date is required")
	}
	if event.Price < 0 {
		return errors.New("price cannot be negative")
	}
	if event.GuestCount != nil && *event.GuestCount <= 0 {
		return errors.New("guest count must be positive")
	}

	// one salon booking per day, the hall cannot be double-booked
	existing, err := s.salonRepo.ListByEventDate(ctx, event.EventDate, []string{models.SalonEventStatusConfirmed})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return errors.New("the salon is already booked for that date")
	}

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Status == "" {
		event.Status = models.SalonEventStatusConfirmed
	}
	return s.salonRepo.Create(ctx, event)
}

func (s *salonService) GetByID(ctx context.Context, id uuid.UUID) (*models.SalonEvent, error) {
	return s.salonRepo.GetByID(ctx, id)
}

func (s *salonService) Update(ctx context.Context, event *models.SalonEvent) error {
	if event.CustomerName == "" {
		return errors.New("customer name is required")
	}
	return s.salonRepo.Update(ctx, event)
}

func (s *salonService) Cancel(ctx context.Context, id uuid.UUID) error {
	return s.setStatus(ctx, id, models.SalonEventStatusCancelled)
}

func (s *salonService) Complete(ctx context.Context, id uuid.UUID) error {
	return s.setStatus(ctx, id, models.SalonEventStatusCompleted)
}

func (s *salonService) setStatus(ctx context.Context, id uuid.UUID, status string) error {
	event, err := s.salonRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event.Status != models.SalonEventStatusConfirmed {
		return errors.New("only a confirmed booking can change state")
	}
	event.Status = status
	return s.salonRepo.Update(ctx, event)
}

func (s *salonService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.salonRepo.Delete(ctx, id)
}

func (s *salonService) List(ctx context.Context, limit, offset int) ([]*models.SalonEvent, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.salonRepo.List(ctx, limit, offset)
}

func (s *salonService) ListForDate(ctx context.Context, date time.Time) ([]*models.SalonEvent, error) {
	return s.salonRepo.ListByEventDate(ctx, date, []string{models.SalonEventStatusConfirmed, models.SalonEventStatusCompleted})
}
