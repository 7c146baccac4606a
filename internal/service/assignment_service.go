package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/shiftdesk/shiftdesk-api/internal/dto"
	"github.com/shiftdesk/shiftdesk-api/internal/models"
	"github.com/shiftdesk/shiftdesk-api/internal/repository"
	appErrors "github.com/shiftdesk/shiftdesk-api/pkg/errors"
)

type shiftTemplateReader interface {
	FindByID(ctx context.Context, id string) (*models.ShiftTemplate, error)
}

type shiftAssignmentStore interface {
	Upsert(ctx context.Context, assignment *models.ShiftAssignment) error
	BulkUpsert(ctx context.Context, assignments []models.ShiftAssignment, atomic bool) ([]repository.BulkFailure, error)
	Delete(ctx context.Context, userID, date string) error
	ListByUserAndRange(ctx context.Context, userID, startDate, endDate string) ([]models.ShiftAssignment, error)
}

type scheduleCacheInvalidator interface {
	Invalidate(ctx context.Context, pattern string) error
}

// AssignmentService mutates shift assignments. Every operation requires the
// acting caller to hold the admin role; the check lives here, not in storage.
type AssignmentService struct {
	templates   shiftTemplateReader
	assignments shiftAssignmentStore
	cache       scheduleCacheInvalidator
	validator   *validator.Validate
	logger      *zap.Logger
	atomicBatch bool
}

// NewAssignmentService creates a service instance.
func NewAssignmentService(
	templates shiftTemplateReader,
	assignments shiftAssignmentStore,
	cache scheduleCacheInvalidator,
	validate *validator.Validate,
	logger *zap.Logger,
	atomicBatch bool,
) *AssignmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssignmentService{
		templates:   templates,
		assignments: assignments,
		cache:       cache,
		validator:   validate,
		logger:      logger,
		atomicBatch: atomicBatch,
	}
}

// Assign snapshots the template onto the (user, date) slot, replacing any
// prior assignment there. Last write wins.
func (s *AssignmentService) Assign(ctx context.Context, actor *models.JWTClaims, req dto.AssignShiftRequest) (*models.ShiftAssignment, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}

	template, err := s.templates.FindByID(ctx, req.ShiftTemplateID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "shift template not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load shift template")
	}

	assignment := template.Snapshot(req.UserID, req.Date, actor.UserID)
	if err := s.assignments.Upsert(ctx, &assignment); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store assignment")
	}

	s.invalidateWeek(ctx)
	return &assignment, nil
}

// Remove clears the slot. Removing an empty slot succeeds, which makes
// caller-side retries safe.
func (s *AssignmentService) Remove(ctx context.Context, actor *models.JWTClaims, req dto.RemoveShiftRequest) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid removal payload")
	}

	if err := s.assignments.Delete(ctx, req.UserID, req.Date); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to remove assignment")
	}

	s.invalidateWeek(ctx)
	return nil
}

// BulkAssign writes the template snapshot to the cartesian product of
// users × dates. Batch failure semantics follow the configured mode.
func (s *AssignmentService) BulkAssign(ctx context.Context, actor *models.JWTClaims, req dto.BulkAssignRequest) (*dto.BulkAssignResult, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid bulk payload")
	}

	template, err := s.templates.FindByID(ctx, req.ShiftTemplateID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "shift template not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load shift template")
	}

	rows := make([]models.ShiftAssignment, 0, len(req.UserIDs)*len(req.Dates))
	for _, userID := range req.UserIDs {
		for _, date := range req.Dates {
			rows = append(rows, template.Snapshot(userID, date, actor.UserID))
		}
	}

	failures, err := s.assignments.BulkUpsert(ctx, rows, s.atomicBatch)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store bulk assignments")
	}

	s.invalidateWeek(ctx)
	return &dto.BulkAssignResult{
		Requested: len(rows),
		Assigned:  len(rows) - len(failures),
		Failed:    failures,
	}, nil
}

// Copy re-keys the source user's assignments in the range onto every target
// user at the same dates. A source with no assignments is a successful no-op.
func (s *AssignmentService) Copy(ctx context.Context, actor *models.JWTClaims, req dto.CopyShiftsRequest) (*dto.BulkAssignResult, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid copy payload")
	}
	if req.EndDate < req.StartDate {
		return nil, appErrors.Clone(appErrors.ErrValidation, "end_date must not precede start_date")
	}

	source, err := s.assignments.ListByUserAndRange(ctx, req.SourceUserID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load source assignments")
	}
	if len(source) == 0 {
		return &dto.BulkAssignResult{}, nil
	}

	rows := make([]models.ShiftAssignment, 0, len(source)*len(req.TargetUserIDs))
	for _, targetID := range req.TargetUserIDs {
		for _, src := range source {
			row := src
			row.ID = ""
			row.UserID = targetID
			row.CreatedBy = actor.UserID
			rows = append(rows, row)
		}
	}

	failures, err := s.assignments.BulkUpsert(ctx, rows, s.atomicBatch)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store copied assignments")
	}

	s.invalidateWeek(ctx)
	return &dto.BulkAssignResult{
		Requested: len(rows),
		Assigned:  len(rows) - len(failures),
		Failed:    failures,
	}, nil
}

func (s *AssignmentService) invalidateWeek(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, "schedule:*"); err != nil {
		s.logger.Warn("failed to invalidate schedule cache", zap.Error(err))
	}
}

func requireAdmin(actor *models.JWTClaims) error {
	if actor == nil {
		return appErrors.ErrUnauthorized
	}
	if actor.Role != models.RoleAdmin {
		return appErrors.Clone(appErrors.ErrForbidden, "admin role required")
	}
	return nil
}
