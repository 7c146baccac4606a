package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/shiftdesk/shiftdesk-api/internal/dto"
	"github.com/shiftdesk/shiftdesk-api/internal/models"
	appErrors "github.com/shiftdesk/shiftdesk-api/pkg/errors"
)

type personalEventStore interface {
	ListByUser(ctx context.Context, userID string) ([]models.PersonalEvent, error)
	FindByID(ctx context.Context, id string) (*models.PersonalEvent, error)
	Create(ctx context.Context, event *models.PersonalEvent) error
	Update(ctx context.Context, event *models.PersonalEvent) error
	Delete(ctx context.Context, userID, eventID string) error
}

// PersonalEventService manages the occupied-date ranges that feed the
// availability check. Events are personal; only the owner can mutate them.
type PersonalEventService struct {
	events    personalEventStore
	cache     scheduleCacheInvalidator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPersonalEventService creates a service instance.
func NewPersonalEventService(events personalEventStore, cache scheduleCacheInvalidator, validate *validator.Validate, logger *zap.Logger) *PersonalEventService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PersonalEventService{events: events, cache: cache, validator: validate, logger: logger}
}

// List returns the caller's events.
func (s *PersonalEventService) List(ctx context.Context, userID string) ([]models.PersonalEvent, error) {
	events, err := s.events.ListByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list personal events")
	}
	return events, nil
}

// Create registers a new event for the caller. All-day events drop their
// time bounds.
func (s *PersonalEventService) Create(ctx context.Context, userID string, req dto.CreatePersonalEventRequest) (*models.PersonalEvent, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}
	if req.EndDate < req.StartDate {
		return nil, appErrors.Clone(appErrors.ErrValidation, "end_date must not precede start_date")
	}

	event := &models.PersonalEvent{
		UserID:      userID,
		Title:       req.Title,
		EventType:   req.EventType,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsAllDay:    req.IsAllDay,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Description: req.Description,
	}
	if event.IsAllDay {
		event.StartTime = nil
		event.EndTime = nil
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create personal event")
	}

	s.invalidate(ctx)
	return event, nil
}

// Update rewrites an event the caller owns.
func (s *PersonalEventService) Update(ctx context.Context, userID, eventID string, req dto.UpdatePersonalEventRequest) (*models.PersonalEvent, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}
	if req.EndDate < req.StartDate {
		return nil, appErrors.Clone(appErrors.ErrValidation, "end_date must not precede start_date")
	}

	existing, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "personal event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load personal event")
	}
	if existing.UserID != userID {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "event belongs to another user")
	}

	existing.Title = req.Title
	existing.EventType = req.EventType
	existing.StartDate = req.StartDate
	existing.EndDate = req.EndDate
	existing.IsAllDay = req.IsAllDay
	existing.StartTime = req.StartTime
	existing.EndTime = req.EndTime
	existing.Description = req.Description
	if existing.IsAllDay {
		existing.StartTime = nil
		existing.EndTime = nil
	}

	if err := s.events.Update(ctx, existing); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update personal event")
	}

	s.invalidate(ctx)
	return existing, nil
}

// Delete removes an event the caller owns.
func (s *PersonalEventService) Delete(ctx context.Context, userID, eventID string) error {
	if err := s.events.Delete(ctx, userID, eventID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "personal event not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete personal event")
	}

	s.invalidate(ctx)
	return nil
}

func (s *PersonalEventService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, "schedule:*"); err != nil {
		s.logger.Warn("failed to invalidate schedule cache", zap.Error(err))
	}
}
