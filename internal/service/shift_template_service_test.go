package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftdesk/shiftdesk-api/internal/dto"
	"github.com/shiftdesk/shiftdesk-api/internal/models"
	appErrors "github.com/shiftdesk/shiftdesk-api/pkg/errors"
)

type mockTemplateStore struct {
	templates []models.ShiftTemplate
	found     *models.ShiftTemplate
	created   []models.ShiftTemplate
	updated   []models.ShiftTemplate
	deleted   []string
	deleteErr error
}

func (m *mockTemplateStore) List(_ context.Context) ([]models.ShiftTemplate, error) {
	return m.templates, nil
}

func (m *mockTemplateStore) FindByID(_ context.Context, _ string) (*models.ShiftTemplate, error) {
	if m.found == nil {
		return nil, sql.ErrNoRows
	}
	template := *m.found
	return &template, nil
}

func (m *mockTemplateStore) Create(_ context.Context, template *models.ShiftTemplate) error {
	m.created = append(m.created, *template)
	return nil
}

func (m *mockTemplateStore) Update(_ context.Context, template *models.ShiftTemplate) error {
	m.updated = append(m.updated, *template)
	return nil
}

func (m *mockTemplateStore) Delete(_ context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func TestCreateTemplateRequiresAdmin(t *testing.T) {
	store := &mockTemplateStore{}
	svc := NewShiftTemplateService(store, nil, nil)

	_, err := svc.Create(context.Background(), memberClaims(), dto.CreateShiftTemplateRequest{
		Name:      "Day",
		StartTime: "09:00",
		EndTime:   "17:00",
	})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
	assert.Empty(t, store.created)
}

func TestCreateTemplateRegular(t *testing.T) {
	store := &mockTemplateStore{}
	svc := NewShiftTemplateService(store, nil, nil)

	template, err := svc.Create(context.Background(), adminClaims(), dto.CreateShiftTemplateRequest{
		Name:      "Day",
		StartTime: "09:00",
		EndTime:   "17:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "admin-1", template.CreatedBy)
	require.Len(t, store.created, 1)
}

func TestCreateTemplateOvernightShape(t *testing.T) {
	svc := NewShiftTemplateService(&mockTemplateStore{}, nil, nil)

	_, err := svc.Create(context.Background(), adminClaims(), dto.CreateShiftTemplateRequest{
		Name:        "Night",
		StartTime:   "22:00",
		EndTime:     "23:00",
		IsOvernight: true,
	})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.Create(context.Background(), adminClaims(), dto.CreateShiftTemplateRequest{
		Name:        "Night",
		StartTime:   "22:00",
		EndTime:     "06:00",
		IsOvernight: true,
	})
	require.NoError(t, err)
}

func TestCreateTemplateSplitRequiresBothBounds(t *testing.T) {
	svc := NewShiftTemplateService(&mockTemplateStore{}, nil, nil)

	_, err := svc.Create(context.Background(), adminClaims(), dto.CreateShiftTemplateRequest{
		Name:           "Split",
		StartTime:      "10:00",
		EndTime:        "14:00",
		IsSplit:        true,
		SplitStartTime: strPtr("18:00"),
	})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestCreateTemplateRejectsInvertedRegular(t *testing.T) {
	svc := NewShiftTemplateService(&mockTemplateStore{}, nil, nil)

	_, err := svc.Create(context.Background(), adminClaims(), dto.CreateShiftTemplateRequest{
		Name:      "Backwards",
		StartTime: "17:00",
		EndTime:   "09:00",
	})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestUpdateTemplateMissing(t *testing.T) {
	svc := NewShiftTemplateService(&mockTemplateStore{}, nil, nil)

	_, err := svc.Update(context.Background(), adminClaims(), "ghost", dto.UpdateShiftTemplateRequest{
		Name:      "Day",
		StartTime: "09:00",
		EndTime:   "17:00",
	})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestDeleteTemplateMissing(t *testing.T) {
	svc := NewShiftTemplateService(&mockTemplateStore{deleteErr: sql.ErrNoRows}, nil, nil)

	err := svc.Delete(context.Background(), adminClaims(), "ghost")

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
