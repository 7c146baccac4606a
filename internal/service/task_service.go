package service

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/shiftdesk/shiftdesk-api/internal/dto"
	"github.com/shiftdesk/shiftdesk-api/internal/models"
	"github.com/shiftdesk/shiftdesk-api/internal/repository"
	"github.com/shiftdesk/shiftdesk-api/internal/schedule"
	appErrors "github.com/shiftdesk/shiftdesk-api/pkg/errors"
)

type scheduledTaskStore interface {
	ListByUserAndDate(ctx context.Context, userID, date string) ([]models.ScheduledTask, error)
	FindByID(ctx context.Context, id string) (*models.ScheduledTask, error)
	Create(ctx context.Context, task *models.ScheduledTask) error
	Update(ctx context.Context, task *models.ScheduledTask) error
	Delete(ctx context.Context, userID, taskID string) error
}

type routineTaskStore interface {
	ListByUser(ctx context.Context, userID string) ([]models.RoutineTask, error)
	ListActiveByUser(ctx context.Context, userID string) ([]models.RoutineTask, error)
	FindByID(ctx context.Context, id string) (*models.RoutineTask, error)
	Create(ctx context.Context, task *models.RoutineTask) error
	Update(ctx context.Context, task *models.RoutineTask) error
	Deactivate(ctx context.Context, userID, taskID string) error
}

// TaskService manages ad-hoc scheduled tasks and recurring routines. Tasks
// are personal: every mutation is scoped to the acting user.
type TaskService struct {
	scheduled scheduledTaskStore
	routines  routineTaskStore
	validator *validator.Validate
	location  *time.Location
	logger    *zap.Logger
}

// NewTaskService creates a service instance.
func NewTaskService(scheduled scheduledTaskStore, routines routineTaskStore, validate *validator.Validate, location *time.Location, logger *zap.Logger) *TaskService {
	if validate == nil {
		validate = validator.New()
	}
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskService{scheduled: scheduled, routines: routines, validator: validate, location: location, logger: logger}
}

// ListScheduledForDate returns the user's ad-hoc tasks on one date.
func (s *TaskService) ListScheduledForDate(ctx context.Context, userID, date string) ([]models.ScheduledTask, error) {
	tasks, err := s.scheduled.ListByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list scheduled tasks")
	}
	return tasks, nil
}

// CreateScheduled plans a new ad-hoc task. A task overlapping an existing one
// for the same user and date is rejected.
func (s *TaskService) CreateScheduled(ctx context.Context, userID string, req dto.CreateScheduledTaskRequest) (*models.ScheduledTask, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid task payload")
	}
	if req.EndTime <= req.StartTime {
		return nil, appErrors.Clone(appErrors.ErrValidation, "end_time must be after start_time")
	}

	task := &models.ScheduledTask{
		UserID:        userID,
		Title:         req.Title,
		Description:   req.Description,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Status:        models.TaskStatusOngoing,
		IsRecurring:   req.IsRecurring,
		RecurringDays: pq.Int64Array(req.RecurringDays),
	}
	if err := s.scheduled.Create(ctx, task); err != nil {
		if errors.Is(err, repository.ErrTaskOverlap) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "task overlaps an existing task on this date")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create scheduled task")
	}
	return task, nil
}

// UpdateScheduled rewrites an existing task the acting user owns.
func (s *TaskService) UpdateScheduled(ctx context.Context, userID, taskID string, req dto.UpdateScheduledTaskRequest) (*models.ScheduledTask, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid task payload")
	}
	if req.EndTime <= req.StartTime {
		return nil, appErrors.Clone(appErrors.ErrValidation, "end_time must be after start_time")
	}

	existing, err := s.scheduled.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "task not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load task")
	}
	if existing.UserID != userID {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "task belongs to another user")
	}

	existing.Title = req.Title
	existing.Description = req.Description
	existing.Date = req.Date
	existing.StartTime = req.StartTime
	existing.EndTime = req.EndTime
	existing.Status = req.Status
	existing.IsRecurring = req.IsRecurring
	existing.RecurringDays = pq.Int64Array(req.RecurringDays)

	if err := s.scheduled.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrTaskOverlap) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "task overlaps an existing task on this date")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update scheduled task")
	}
	return existing, nil
}

// DeleteScheduled removes a task the acting user owns.
func (s *TaskService) DeleteScheduled(ctx context.Context, userID, taskID string) error {
	if err := s.scheduled.Delete(ctx, userID, taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "task not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete scheduled task")
	}
	return nil
}

// ListRoutines returns all of the user's routines, active or not.
func (s *TaskService) ListRoutines(ctx context.Context, userID string) ([]models.RoutineTask, error) {
	routines, err := s.routines.ListByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list routine tasks")
	}
	return routines, nil
}

// CreateRoutine registers a recurring task.
func (s *TaskService) CreateRoutine(ctx context.Context, userID string, req dto.CreateRoutineTaskRequest) (*models.RoutineTask, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid routine payload")
	}
	if err := validateRoutineShape(req.RepetitionType, req.WeeklyDays, req.SpecificDate); err != nil {
		return nil, err
	}

	routine := &models.RoutineTask{
		UserID:         userID,
		Title:          req.Title,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		RepetitionType: models.RepetitionType(req.RepetitionType),
		WeeklyDays:     pq.Int64Array(req.WeeklyDays),
		SpecificDate:   req.SpecificDate,
		IsActive:       true,
	}
	if err := s.routines.Create(ctx, routine); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create routine task")
	}
	return routine, nil
}

// UpdateRoutine rewrites a routine the acting user owns.
func (s *TaskService) UpdateRoutine(ctx context.Context, userID, routineID string, req dto.UpdateRoutineTaskRequest) (*models.RoutineTask, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid routine payload")
	}
	if err := validateRoutineShape(req.RepetitionType, req.WeeklyDays, req.SpecificDate); err != nil {
		return nil, err
	}

	existing, err := s.routines.FindByID(ctx, routineID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "routine task not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load routine task")
	}
	if existing.UserID != userID {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "routine belongs to another user")
	}

	existing.Title = req.Title
	existing.StartTime = req.StartTime
	existing.EndTime = req.EndTime
	existing.RepetitionType = models.RepetitionType(req.RepetitionType)
	existing.WeeklyDays = pq.Int64Array(req.WeeklyDays)
	existing.SpecificDate = req.SpecificDate

	if err := s.routines.Update(ctx, existing); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update routine task")
	}
	return existing, nil
}

// DeactivateRoutine soft-deletes a routine. The row stays for history.
func (s *TaskService) DeactivateRoutine(ctx context.Context, userID, routineID string) error {
	if err := s.routines.Deactivate(ctx, userID, routineID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "routine task not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to deactivate routine task")
	}
	return nil
}

// ListApplicableRoutines returns the user's active routines recurring on the
// given date.
func (s *TaskService) ListApplicableRoutines(ctx context.Context, userID, date string) ([]models.RoutineTask, error) {
	day, err := schedule.ParseDate(date, s.location)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid date, expected YYYY-MM-DD")
	}
	routines, err := s.routines.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list routine tasks")
	}
	return schedule.ApplicableTasks(routines, day), nil
}

// DayAgenda merges the user's ad-hoc tasks with the routines recurring on the
// date, sorted by start time.
func (s *TaskService) DayAgenda(ctx context.Context, userID, date string) (*dto.DayAgendaResponse, error) {
	day, err := schedule.ParseDate(date, s.location)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid date, expected YYYY-MM-DD")
	}

	tasks, err := s.scheduled.ListByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list scheduled tasks")
	}
	routines, err := s.routines.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list routine tasks")
	}
	applicable := schedule.ApplicableTasks(routines, day)

	items := make([]dto.AgendaItem, 0, len(tasks)+len(applicable))
	for _, t := range tasks {
		items = append(items, dto.AgendaItem{
			Source:    "scheduled",
			ID:        t.ID,
			Title:     t.Title,
			StartTime: t.StartTime,
			EndTime:   t.EndTime,
			Status:    t.Status,
		})
	}
	for _, r := range applicable {
		items = append(items, dto.AgendaItem{
			Source:    "routine",
			ID:        r.ID,
			Title:     r.Title,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].StartTime < items[j].StartTime })

	if applicable == nil {
		applicable = []models.RoutineTask{}
	}
	return &dto.DayAgendaResponse{
		Date:     date,
		Items:    items,
		Tasks:    tasks,
		Routines: applicable,
	}, nil
}

func validateRoutineShape(repetition string, weeklyDays []int64, specificDate *string) error {
	switch models.RepetitionType(repetition) {
	case models.RepetitionWeekly:
		if len(weeklyDays) == 0 {
			return appErrors.Clone(appErrors.ErrValidation, "weekly routines require weekly_days")
		}
	case models.RepetitionSingle:
		if specificDate == nil || *specificDate == "" {
			return appErrors.Clone(appErrors.ErrValidation, "single routines require specific_date")
		}
	}
	return nil
}
