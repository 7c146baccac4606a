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

type shiftTemplateStore interface {
	List(ctx context.Context) ([]models.ShiftTemplate, error)
	FindByID(ctx context.Context, id string) (*models.ShiftTemplate, error)
	Create(ctx context.Context, template *models.ShiftTemplate) error
	Update(ctx context.Context, template *models.ShiftTemplate) error
	Delete(ctx context.Context, id string) error
}

// ShiftTemplateService manages the admin-owned shift catalogue. Edits never
// touch existing assignments, which keep their snapshot of the old window.
type ShiftTemplateService struct {
	templates shiftTemplateStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewShiftTemplateService creates a service instance.
func NewShiftTemplateService(templates shiftTemplateStore, validate *validator.Validate, logger *zap.Logger) *ShiftTemplateService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ShiftTemplateService{templates: templates, validator: validate, logger: logger}
}

// List returns the full catalogue. Reads are open to every member.
func (s *ShiftTemplateService) List(ctx context.Context) ([]models.ShiftTemplate, error) {
	templates, err := s.templates.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list shift templates")
	}
	return templates, nil
}

// Get returns one template.
func (s *ShiftTemplateService) Get(ctx context.Context, id string) (*models.ShiftTemplate, error) {
	template, err := s.templates.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "shift template not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load shift template")
	}
	return template, nil
}

// Create adds a template to the catalogue.
func (s *ShiftTemplateService) Create(ctx context.Context, actor *models.JWTClaims, req dto.CreateShiftTemplateRequest) (*models.ShiftTemplate, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid template payload")
	}
	if err := validateTemplateShape(req.StartTime, req.EndTime, req.IsOvernight, req.IsSplit, req.SplitStartTime, req.SplitEndTime); err != nil {
		return nil, err
	}

	template := &models.ShiftTemplate{
		Name:           req.Name,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		IsOvernight:    req.IsOvernight,
		IsSplit:        req.IsSplit,
		SplitStartTime: req.SplitStartTime,
		SplitEndTime:   req.SplitEndTime,
		CreatedBy:      actor.UserID,
	}
	if err := s.templates.Create(ctx, template); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create shift template")
	}
	return template, nil
}

// Update rewrites a template definition.
func (s *ShiftTemplateService) Update(ctx context.Context, actor *models.JWTClaims, id string, req dto.UpdateShiftTemplateRequest) (*models.ShiftTemplate, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid template payload")
	}
	if err := validateTemplateShape(req.StartTime, req.EndTime, req.IsOvernight, req.IsSplit, req.SplitStartTime, req.SplitEndTime); err != nil {
		return nil, err
	}

	existing, err := s.templates.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "shift template not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load shift template")
	}

	existing.Name = req.Name
	existing.StartTime = req.StartTime
	existing.EndTime = req.EndTime
	existing.IsOvernight = req.IsOvernight
	existing.IsSplit = req.IsSplit
	existing.SplitStartTime = req.SplitStartTime
	existing.SplitEndTime = req.SplitEndTime

	if err := s.templates.Update(ctx, existing); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "shift template not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update shift template")
	}
	return existing, nil
}

// Delete removes a template from the catalogue.
func (s *ShiftTemplateService) Delete(ctx context.Context, actor *models.JWTClaims, id string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.templates.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "shift template not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete shift template")
	}
	return nil
}

func validateTemplateShape(start, end string, overnight, split bool, splitStart, splitEnd *string) error {
	if !overnight && end <= start {
		return appErrors.Clone(appErrors.ErrValidation, "end_time must be after start_time unless the shift is overnight")
	}
	if overnight && end >= start {
		return appErrors.Clone(appErrors.ErrValidation, "overnight shifts must end before they start")
	}
	if split && (splitStart == nil || splitEnd == nil) {
		return appErrors.Clone(appErrors.ErrValidation, "split shifts require both split_start_time and split_end_time")
	}
	return nil
}
