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

// PersonalEventRepository persists user absence/occupation events.
type PersonalEventRepository struct {
	db *sqlx.DB
}

// NewPersonalEventRepository constructs the repository.
func NewPersonalEventRepository(db *sqlx.DB) *PersonalEventRepository {
	return &PersonalEventRepository{db: db}
}

const selectEventColumns = `SELECT id, user_id, title, event_type, start_date, end_date, is_all_day,
       start_time, end_time, description, status, approved_by, approved_at, created_at, updated_at
FROM personal_events`

// ListByUser returns a user's events, newest range first.
func (r *PersonalEventRepository) ListByUser(ctx context.Context, userID string) ([]models.PersonalEvent, error) {
	const query = selectEventColumns + `
WHERE user_id = $1
ORDER BY start_date DESC`
	var events []models.PersonalEvent
	if err := r.db.SelectContext(ctx, &events, query, userID); err != nil {
		return nil, fmt.Errorf("list personal events: %w", err)
	}
	return events, nil
}

// ListCoveringDate returns one user's events whose inclusive range contains
// the date.
func (r *PersonalEventRepository) ListCoveringDate(ctx context.Context, userID, date string) ([]models.PersonalEvent, error) {
	const query = selectEventColumns + `
WHERE user_id = $1 AND start_date <= $2 AND end_date >= $2
ORDER BY start_date ASC`
	var events []models.PersonalEvent
	if err := r.db.SelectContext(ctx, &events, query, userID, date); err != nil {
		return nil, fmt.Errorf("list events covering date: %w", err)
	}
	return events, nil
}

// ListOverlappingRange returns every event whose range intersects
// [startDate, endDate], for all users. Used to paint the week matrix.
func (r *PersonalEventRepository) ListOverlappingRange(ctx context.Context, startDate, endDate string) ([]models.PersonalEvent, error) {
	const query = selectEventColumns + `
WHERE start_date <= $2 AND end_date >= $1
ORDER BY start_date ASC`
	var events []models.PersonalEvent
	if err := r.db.SelectContext(ctx, &events, query, startDate, endDate); err != nil {
		return nil, fmt.Errorf("list events in range: %w", err)
	}
	return events, nil
}

// FindByID loads a single event.
func (r *PersonalEventRepository) FindByID(ctx context.Context, id string) (*models.PersonalEvent, error) {
	const query = selectEventColumns + `
WHERE id = $1`
	var event models.PersonalEvent
	if err := r.db.GetContext(ctx, &event, query, id); err != nil {
		return nil, err
	}
	return &event, nil
}

// Create inserts a new event in pending state.
func (r *PersonalEventRepository) Create(ctx context.Context, event *models.PersonalEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Status == "" {
		event.Status = models.EventPending
	}
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now
	const query = `INSERT INTO personal_events
    (id, user_id, title, event_type, start_date, end_date, is_all_day, start_time, end_time, description, status, created_at, updated_at)
VALUES (:id, :user_id, :title, :event_type, :start_date, :end_date, :is_all_day, :start_time, :end_time, :description, :status, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("create personal event: %w", err)
	}
	return nil
}

// Update rewrites an event verifying ownership.
func (r *PersonalEventRepository) Update(ctx context.Context, event *models.PersonalEvent) error {
	event.UpdatedAt = time.Now().UTC()
	const query = `UPDATE personal_events
SET title = :title, event_type = :event_type, start_date = :start_date, end_date = :end_date,
    is_all_day = :is_all_day, start_time = :start_time, end_time = :end_time,
    description = :description, updated_at = :updated_at
WHERE id = :id AND user_id = :user_id`
	result, err := r.db.NamedExecContext(ctx, query, event)
	if err != nil {
		return fmt.Errorf("update personal event: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check updated event rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes an event verifying ownership.
func (r *PersonalEventRepository) Delete(ctx context.Context, userID, eventID string) error {
	const query = `DELETE FROM personal_events WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, eventID, userID)
	if err != nil {
		return fmt.Errorf("delete personal event: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check deleted event rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
