package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/shiftdesk/shiftdesk-api/internal/models"
)

// RoutineTaskRepository persists recurring tasks. Rows are never hard-deleted;
// Deactivate flips is_active so history stays auditable.
type RoutineTaskRepository struct {
	db *sqlx.DB
}

// NewRoutineTaskRepository constructs the repository.
func NewRoutineTaskRepository(db *sqlx.DB) *RoutineTaskRepository {
	return &RoutineTaskRepository{db: db}
}

const selectRoutineColumns = `SELECT id, user_id, title, start_time, end_time, repetition_type,
       weekly_days, specific_date, is_active, created_at, updated_at
FROM routine_tasks`

// ListByUser returns all of a user's routines, active and inactive.
func (r *RoutineTaskRepository) ListByUser(ctx context.Context, userID string) ([]models.RoutineTask, error) {
	const query = selectRoutineColumns + `
WHERE user_id = $1
ORDER BY start_time ASC`
	var tasks []models.RoutineTask
	if err := r.db.SelectContext(ctx, &tasks, query, userID); err != nil {
		return nil, fmt.Errorf("list routine tasks: %w", err)
	}
	return tasks, nil
}

// ListActiveByUser returns only routines still in effect.
func (r *RoutineTaskRepository) ListActiveByUser(ctx context.Context, userID string) ([]models.RoutineTask, error) {
	const query = selectRoutineColumns + `
WHERE user_id = $1 AND is_active = TRUE
ORDER BY start_time ASC`
	var tasks []models.RoutineTask
	if err := r.db.SelectContext(ctx, &tasks, query, userID); err != nil {
		return nil, fmt.Errorf("list active routine tasks: %w", err)
	}
	return tasks, nil
}

// FindByID loads a single routine.
func (r *RoutineTaskRepository) FindByID(ctx context.Context, id string) (*models.RoutineTask, error) {
	const query = selectRoutineColumns + `
WHERE id = $1`
	var task models.RoutineTask
	if err := r.db.GetContext(ctx, &task, query, id); err != nil {
		return nil, err
	}
	return &task, nil
}

// Create inserts a new routine.
func (r *RoutineTaskRepository) Create(ctx context.Context, task *models.RoutineTask) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now
	const query = `INSERT INTO routine_tasks
    (id, user_id, title, start_time, end_time, repetition_type, weekly_days, specific_date, is_active, created_at, updated_at)
VALUES (:id, :user_id, :title, :start_time, :end_time, :repetition_type, :weekly_days, :specific_date, :is_active, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, task); err != nil {
		return fmt.Errorf("create routine task: %w", err)
	}
	return nil
}

// Update rewrites a routine verifying ownership.
func (r *RoutineTaskRepository) Update(ctx context.Context, task *models.RoutineTask) error {
	task.UpdatedAt = time.Now().UTC()
	const query = `UPDATE routine_tasks
SET title = :title, start_time = :start_time, end_time = :end_time,
    repetition_type = :repetition_type, weekly_days = :weekly_days,
    specific_date = :specific_date, is_active = :is_active, updated_at = :updated_at
WHERE id = :id AND user_id = :user_id`
	result, err := r.db.NamedExecContext(ctx, query, task)
	if err != nil {
		return fmt.Errorf("update routine task: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check updated routine rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Deactivate soft-deletes a routine by flipping is_active.
func (r *RoutineTaskRepository) Deactivate(ctx context.Context, userID, taskID string) error {
	const query = `UPDATE routine_tasks
SET is_active = FALSE, updated_at = $1
WHERE id = $2 AND user_id = $3`
	result, err := r.db.ExecContext(ctx, query, time.Now().UTC(), taskID, userID)
	if err != nil {
		return fmt.Errorf("deactivate routine task: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check deactivated routine rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
