package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/shiftdesk/shiftdesk-api/internal/models"
)

// ShiftAssignmentRepository persists shift assignments keyed by
// (user_id, date). The unique index on that pair plus ON CONFLICT upsert is
// what serializes concurrent writers to the same slot.
type ShiftAssignmentRepository struct {
	db *sqlx.DB
}

// NewShiftAssignmentRepository constructs the repository.
func NewShiftAssignmentRepository(db *sqlx.DB) *ShiftAssignmentRepository {
	return &ShiftAssignmentRepository{db: db}
}

const upsertAssignmentQuery = `INSERT INTO shift_assignments
    (id, user_id, date, shift_template_id, start_time, end_time, is_overnight, is_split,
     split_start_time, split_end_time, created_by, created_at, updated_at)
VALUES (:id, :user_id, :date, :shift_template_id, :start_time, :end_time, :is_overnight, :is_split,
     :split_start_time, :split_end_time, :created_by, :created_at, :updated_at)
ON CONFLICT (user_id, date) DO UPDATE SET
    shift_template_id = EXCLUDED.shift_template_id,
    start_time = EXCLUDED.start_time,
    end_time = EXCLUDED.end_time,
    is_overnight = EXCLUDED.is_overnight,
    is_split = EXCLUDED.is_split,
    split_start_time = EXCLUDED.split_start_time,
    split_end_time = EXCLUDED.split_end_time,
    created_by = EXCLUDED.created_by,
    updated_at = EXCLUDED.updated_at`

// BulkFailure reports one rejected row of a non-atomic batch.
type BulkFailure struct {
	UserID string `json:"user_id"`
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// Upsert inserts the assignment or replaces the existing row for the same
// (user_id, date) slot. Last write wins, no merge.
func (r *ShiftAssignmentRepository) Upsert(ctx context.Context, assignment *models.ShiftAssignment) error {
	prepare(assignment)
	if _, err := r.db.NamedExecContext(ctx, upsertAssignmentQuery, assignment); err != nil {
		return fmt.Errorf("upsert shift assignment: %w", err)
	}
	return nil
}

// BulkUpsert writes a batch of assignments. When atomic is true the whole
// batch runs in one transaction and the first failure rolls everything back.
// Otherwise each row is written independently and failures are reported so
// the caller can see exactly which slots were not assigned.
func (r *ShiftAssignmentRepository) BulkUpsert(ctx context.Context, assignments []models.ShiftAssignment, atomic bool) ([]BulkFailure, error) {
	if len(assignments) == 0 {
		return nil, nil
	}

	if atomic {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("begin bulk upsert: %w", err)
		}
		for i := range assignments {
			prepare(&assignments[i])
			if _, err := tx.NamedExecContext(ctx, upsertAssignmentQuery, &assignments[i]); err != nil {
				_ = tx.Rollback()
				return nil, fmt.Errorf("bulk upsert row (%s, %s): %w", assignments[i].UserID, assignments[i].Date, err)
			}
		}
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("commit bulk upsert: %w", err)
		}
		return nil, nil
	}

	var failures []BulkFailure
	for i := range assignments {
		prepare(&assignments[i])
		if _, err := r.db.NamedExecContext(ctx, upsertAssignmentQuery, &assignments[i]); err != nil {
			failures = append(failures, BulkFailure{
				UserID: assignments[i].UserID,
				Date:   assignments[i].Date,
				Reason: err.Error(),
			})
		}
	}
	return failures, nil
}

// FindByUserAndDate loads the single assignment for a slot.
func (r *ShiftAssignmentRepository) FindByUserAndDate(ctx context.Context, userID, date string) (*models.ShiftAssignment, error) {
	const query = `SELECT id, user_id, date, shift_template_id, start_time, end_time, is_overnight, is_split,
       split_start_time, split_end_time, created_by, created_at, updated_at
FROM shift_assignments
WHERE user_id = $1 AND date = $2`
	var assignment models.ShiftAssignment
	if err := r.db.GetContext(ctx, &assignment, query, userID, date); err != nil {
		return nil, err
	}
	return &assignment, nil
}

// Delete removes the assignment at (user_id, date). Deleting an absent slot
// is not an error; the operation is idempotent.
func (r *ShiftAssignmentRepository) Delete(ctx context.Context, userID, date string) error {
	const query = `DELETE FROM shift_assignments WHERE user_id = $1 AND date = $2`
	if _, err := r.db.ExecContext(ctx, query, userID, date); err != nil {
		return fmt.Errorf("delete shift assignment: %w", err)
	}
	return nil
}

// ListByUserAndRange returns one user's assignments in an inclusive date range.
func (r *ShiftAssignmentRepository) ListByUserAndRange(ctx context.Context, userID, startDate, endDate string) ([]models.ShiftAssignment, error) {
	const query = `SELECT id, user_id, date, shift_template_id, start_time, end_time, is_overnight, is_split,
       split_start_time, split_end_time, created_by, created_at, updated_at
FROM shift_assignments
WHERE user_id = $1 AND date >= $2 AND date <= $3
ORDER BY date ASC`
	var assignments []models.ShiftAssignment
	if err := r.db.SelectContext(ctx, &assignments, query, userID, startDate, endDate); err != nil {
		return nil, fmt.Errorf("list assignments for user: %w", err)
	}
	return assignments, nil
}

// ListByRange returns every assignment in an inclusive date range.
func (r *ShiftAssignmentRepository) ListByRange(ctx context.Context, startDate, endDate string) ([]models.ShiftAssignment, error) {
	const query = `SELECT id, user_id, date, shift_template_id, start_time, end_time, is_overnight, is_split,
       split_start_time, split_end_time, created_by, created_at, updated_at
FROM shift_assignments
WHERE date >= $1 AND date <= $2
ORDER BY date ASC, user_id ASC`
	var assignments []models.ShiftAssignment
	if err := r.db.SelectContext(ctx, &assignments, query, startDate, endDate); err != nil {
		return nil, fmt.Errorf("list assignments in range: %w", err)
	}
	return assignments, nil
}

// ListByDate returns every assignment on one civil date.
func (r *ShiftAssignmentRepository) ListByDate(ctx context.Context, date string) ([]models.ShiftAssignment, error) {
	const query = `SELECT id, user_id, date, shift_template_id, start_time, end_time, is_overnight, is_split,
       split_start_time, split_end_time, created_by, created_at, updated_at
FROM shift_assignments
WHERE date = $1
ORDER BY start_time ASC`
	var assignments []models.ShiftAssignment
	if err := r.db.SelectContext(ctx, &assignments, query, date); err != nil {
		return nil, fmt.Errorf("list assignments for date: %w", err)
	}
	return assignments, nil
}

func prepare(a *models.ShiftAssignment) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
}
