package service

import (
	"context"
	"fmt"

	"github.com/rehobothspace/venue-booking/internal/dto"
	"github.com/rehobothspace/venue-booking/internal/models"
	"github.com/rehobothspace/venue-booking/internal/repository"
)

type EventService interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	UpdateEvent(ctx context.Context, id uint, req *dto.UpdateEventRequest) (*models.Event, error)
	// GetEvent returns an event only if it is available for booking.
	GetEvent(ctx context.Context, id uint) (*models.Event, error)
	// ListEvents returns the public catalog: available events only.
	ListEvents(ctx context.Context) ([]models.Event, error)
	// ListAllEvents returns every event regardless of availability.
	ListAllEvents(ctx context.Context) ([]models.Event, error)
}

type eventService struct {
	repo repository.EventRepository
}

func NewEventService(repo repository.EventRepository) EventService {
	return &eventService{repo: repo}
}

func (s *eventService) CreateEvent(ctx context.Context, event *models.Event) error {
	if event.EventType == "" {
		event.EventType = models.EventTypeOther
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id uint, req *dto.UpdateEventRequest) (*models.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrEventNotFound
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.EventType != nil {
		event.EventType = models.EventType(*req.EventType)
	}
	if req.ImageURL != nil {
		event.ImageURL = *req.ImageURL
	}
	if req.Capacity != nil {
		event.Capacity = *req.Capacity
	}
	if req.PricePerPerson != nil {
		event.PricePerPerson = *req.PricePerPerson
	}
	if req.Available != nil {
		event.Available = *req.Available
	}

	if err := s.repo.Save(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetEvent(ctx context.Context, id uint) (*models.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrEventNotFound
	}
	if !event.Available {
		return nil, ErrEventNotFound
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	return s.repo.FindAvailable(ctx)
}

func (s *eventService) ListAllEvents(ctx context.Context) ([]models.Event, error) {
	return s.repo.FindAll(ctx)
}
