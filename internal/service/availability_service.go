package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shiftdesk/shiftdesk-api/internal/models"
	"github.com/shiftdesk/shiftdesk-api/internal/schedule"
	appErrors "github.com/shiftdesk/shiftdesk-api/pkg/errors"
)

type assignmentSlotReader interface {
	FindByUserAndDate(ctx context.Context, userID, date string) (*models.ShiftAssignment, error)
}

type eventCoverageReader interface {
	ListCoveringDate(ctx context.Context, userID, date string) ([]models.PersonalEvent, error)
}

type userReader interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// AvailabilityService answers whether a user is available on a date, with a
// warning describing the noteworthy combinations.
type AvailabilityService struct {
	users       userReader
	assignments assignmentSlotReader
	events      eventCoverageReader
}

// NewAvailabilityService creates a service instance.
func NewAvailabilityService(users userReader, assignments assignmentSlotReader, events eventCoverageReader) *AvailabilityService {
	return &AvailabilityService{users: users, assignments: assignments, events: events}
}

// Check combines the user's assignment for the date with personal events
// covering it. Unknown users are a not-found error, not an empty result.
func (s *AvailabilityService) Check(ctx context.Context, userID, date string) (*schedule.Availability, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user")
	}

	assignment, err := s.assignments.FindByUserAndDate(ctx, userID, date)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignment")
	}

	events, err := s.events.ListCoveringDate(ctx, userID, date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load personal events")
	}

	result := schedule.CheckAvailability(assignment, events)
	return &result, nil
}
