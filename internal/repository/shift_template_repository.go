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

// ShiftTemplateRepository persists reusable shift definitions.
type ShiftTemplateRepository struct {
	db *sqlx.DB
}

// NewShiftTemplateRepository constructs the repository.
func NewShiftTemplateRepository(db *sqlx.DB) *ShiftTemplateRepository {
	return &ShiftTemplateRepository{db: db}
}

// List returns all templates ordered by name.
func (r *ShiftTemplateRepository) List(ctx context.Context) ([]models.ShiftTemplate, error) {
	const query = `SELECT id, name, start_time, end_time, is_overnight, is_split,
       split_start_time, split_end_time, created_by, created_at, updated_at
FROM shift_templates
ORDER BY name ASC`
	var templates []models.ShiftTemplate
	if err := r.db.SelectContext(ctx, &templates, query); err != nil {
		return nil, fmt.Errorf("list shift templates: %w", err)
	}
	return templates, nil
}

// FindByID loads a single template.
func (r *ShiftTemplateRepository) FindByID(ctx context.Context, id string) (*models.ShiftTemplate, error) {
	const query = `SELECT id, name, start_time, end_time, is_overnight, is_split,
       split_start_time, split_end_time, created_by, created_at, updated_at
FROM shift_templates
WHERE id = $1`
	var template models.ShiftTemplate
	if err := r.db.GetContext(ctx, &template, query, id); err != nil {
		return nil, err
	}
	return &template, nil
}

// Create inserts a new template.
func (r *ShiftTemplateRepository) Create(ctx context.Context, template *models.ShiftTemplate) error {
	if template.ID == "" {
		template.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	template.CreatedAt = now
	template.UpdatedAt = now
	const query = `INSERT INTO shift_templates (id, name, start_time, end_time, is_overnight, is_split,
       split_start_time, split_end_time, created_by, created_at, updated_at)
VALUES (:id, :name, :start_time, :end_time, :is_overnight, :is_split,
       :split_start_time, :split_end_time, :created_by, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, template); err != nil {
		return fmt.Errorf("create shift template: %w", err)
	}
	return nil
}

// Update rewrites a template's window definition.
func (r *ShiftTemplateRepository) Update(ctx context.Context, template *models.ShiftTemplate) error {
	template.UpdatedAt = time.Now().UTC()
	const query = `UPDATE shift_templates
SET name = :name, start_time = :start_time, end_time = :end_time,
    is_overnight = :is_overnight, is_split = :is_split,
    split_start_time = :split_start_time, split_end_time = :split_end_time,
    updated_at = :updated_at
WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, template)
	if err != nil {
		return fmt.Errorf("update shift template: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check updated template rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a template. Existing assignments keep their denormalized
// snapshot of it.
func (r *ShiftTemplateRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM shift_templates WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete shift template: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check deleted template rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
