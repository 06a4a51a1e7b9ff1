package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/church-cms/internal/domain"
	"github.com/spec-kit/church-cms/internal/repository"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

// EventService manages church events.
type EventService struct {
	events repository.EventRepository
}

// NewEventService builds the service.
func NewEventService(events repository.EventRepository) *EventService {
	return &EventService{events: events}
}

// EventInput carries event fields for create and update.
type EventInput struct {
	Title                string
	Description          string
	StartDate            time.Time
	EndDate              *time.Time
	StartTime            string
	EndTime              string
	Location             string
	Address              string
	Category             string
	ImageURL             string
	RegistrationRequired bool
	RegistrationLink     string
	MaxAttendees         *int
	Published            bool
	Featured             bool
}

// Create stores a new event.
func (s *EventService) Create(ctx context.Context, input EventInput, createdBy string) (*domain.Event, error) {
	if input.Title == "" || input.StartDate.IsZero() {
		return nil, apperrors.NewValidationError("title and start date are required")
	}
	if input.Category == "" {
		input.Category = "Service"
	}

	event := &domain.Event{
		Title:                input.Title,
		Description:          input.Description,
		StartDate:            input.StartDate,
		EndDate:              input.EndDate,
		StartTime:            input.StartTime,
		EndTime:              input.EndTime,
		Location:             input.Location,
		Address:              input.Address,
		Category:             input.Category,
		ImageURL:             input.ImageURL,
		RegistrationRequired: input.RegistrationRequired,
		RegistrationLink:     input.RegistrationLink,
		MaxAttendees:         input.MaxAttendees,
		Published:            input.Published,
		Featured:             input.Featured,
		CreatedBy:            createdBy,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Get returns one event.
func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("event")
		}
		return nil, err
	}
	return event, nil
}

// List returns events matching the filter.
func (s *EventService) List(ctx context.Context, filter repository.EventFilter) ([]domain.Event, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	return s.events.List(ctx, filter)
}

// Update applies event changes.
func (s *EventService) Update(ctx context.Context, id string, input EventInput) (*domain.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("event")
		}
		return nil, err
	}

	event.Title = input.Title
	event.Description = input.Description
	event.StartDate = input.StartDate
	event.EndDate = input.EndDate
	event.StartTime = input.StartTime
	event.EndTime = input.EndTime
	event.Location = input.Location
	event.Address = input.Address
	event.Category = input.Category
	event.ImageURL = input.ImageURL
	event.RegistrationRequired = input.RegistrationRequired
	event.RegistrationLink = input.RegistrationLink
	event.MaxAttendees = input.MaxAttendees
	event.Published = input.Published
	event.Featured = input.Featured

	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete removes an event.
func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := s.events.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("event")
		}
		return err
	}
	return nil
}
