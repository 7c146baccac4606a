package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/shiftdesk/shiftdesk-api/internal/models"
	"github.com/shiftdesk/shiftdesk-api/internal/schedule"
)

// ErrTaskOverlap signals that a scheduled task collides with an existing one
// for the same user and date.
var ErrTaskOverlap = errors.New("scheduled task overlaps an existing task")

// ScheduledTaskRepository persists ad-hoc per-user tasks. Inserts and updates
// run the overlap check and the write inside one transaction, with the
// sibling rows locked, so two concurrent writers cannot both pass the check.
type ScheduledTaskRepository struct {
	db *sqlx.DB
}

// NewScheduledTaskRepository constructs the repository.
func NewScheduledTaskRepository(db *sqlx.DB) *ScheduledTaskRepository {
	return &ScheduledTaskRepository{db: db}
}

const selectScheduledTaskColumns = `SELECT id, user_id, title, description, date, start_time, end_time,
       status, is_recurring, recurring_days, created_at, updated_at
FROM scheduled_tasks`

// ListByUserAndDate returns the user's tasks for one date, time-ordered.
func (r *ScheduledTaskRepository) ListByUserAndDate(ctx context.Context, userID, date string) ([]models.ScheduledTask, error) {
	const query = selectScheduledTaskColumns + `
WHERE user_id = $1 AND date = $2
ORDER BY start_time ASC`
	var tasks []models.ScheduledTask
	if err := r.db.SelectContext(ctx, &tasks, query, userID, date); err != nil {
		return nil, fmt.Errorf("list scheduled tasks for date: %w", err)
	}
	return tasks, nil
}

// ListByUser returns the user's tasks, newest date first.
func (r *ScheduledTaskRepository) ListByUser(ctx context.Context, userID string) ([]models.ScheduledTask, error) {
	const query = selectScheduledTaskColumns + `
WHERE user_id = $1
ORDER BY date DESC, start_time ASC`
	var tasks []models.ScheduledTask
	if err := r.db.SelectContext(ctx, &tasks, query, userID); err != nil {
		return nil, fmt.Errorf("list scheduled tasks: %w", err)
	}
	return tasks, nil
}

// FindByID loads a single task.
func (r *ScheduledTaskRepository) FindByID(ctx context.Context, id string) (*models.ScheduledTask, error) {
	const query = selectScheduledTaskColumns + `
WHERE id = $1`
	var task models.ScheduledTask
	if err := r.db.GetContext(ctx, &task, query, id); err != nil {
		return nil, err
	}
	return &task, nil
}

// Create inserts the task unless it overlaps a sibling, in which case it
// returns ErrTaskOverlap and writes nothing.
func (r *ScheduledTaskRepository) Create(ctx context.Context, task *models.ScheduledTask) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.Status == "" {
		task.Status = models.TaskStatusOngoing
	}
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	const insert = `INSERT INTO scheduled_tasks
    (id, user_id, title, description, date, start_time, end_time, status, is_recurring, recurring_days, created_at, updated_at)
VALUES (:id, :user_id, :title, :description, :date, :start_time, :end_time, :status, :is_recurring, :recurring_days, :created_at, :updated_at)`

	return r.withConflictCheck(ctx, *task, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, insert, task); err != nil {
			return fmt.Errorf("insert scheduled task: %w", err)
		}
		return nil
	})
}

// Update rewrites the task unless the new interval overlaps a sibling.
func (r *ScheduledTaskRepository) Update(ctx context.Context, task *models.ScheduledTask) error {
	task.UpdatedAt = time.Now().UTC()

	const update = `UPDATE scheduled_tasks
SET title = :title, description = :description, date = :date,
    start_time = :start_time, end_time = :end_time, status = :status,
    is_recurring = :is_recurring, recurring_days = :recurring_days, updated_at = :updated_at
WHERE id = :id AND user_id = :user_id`

	return r.withConflictCheck(ctx, *task, func(tx *sqlx.Tx) error {
		result, err := tx.NamedExecContext(ctx, update, task)
		if err != nil {
			return fmt.Errorf("update scheduled task: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("check updated task rows: %w", err)
		}
		if affected == 0 {
			return sql.ErrNoRows
		}
		return nil
	})
}

// Delete removes a task verifying ownership.
func (r *ScheduledTaskRepository) Delete(ctx context.Context, userID, taskID string) error {
	const query = `DELETE FROM scheduled_tasks WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, taskID, userID)
	if err != nil {
		return fmt.Errorf("delete scheduled task: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check deleted task rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// withConflictCheck locks the candidate's sibling rows, evaluates the overlap
// predicate and runs the write inside the same transaction.
func (r *ScheduledTaskRepository) withConflictCheck(ctx context.Context, candidate models.ScheduledTask, write func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin task write: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const siblings = selectScheduledTaskColumns + `
WHERE user_id = $1 AND date = $2
FOR UPDATE`
	var existing []models.ScheduledTask
	if err := tx.SelectContext(ctx, &existing, siblings, candidate.UserID, candidate.Date); err != nil {
		return fmt.Errorf("load sibling tasks: %w", err)
	}

	if conflict := schedule.FindConflict(candidate, existing); conflict != nil {
		return fmt.Errorf("%w: %s (%s-%s)", ErrTaskOverlap, conflict.Title, conflict.StartTime, conflict.EndTime)
	}

	if err := write(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit task write: %w", err)
	}
	return nil
}
