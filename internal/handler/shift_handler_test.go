package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftdesk/shiftdesk-api/internal/middleware"
	"github.com/shiftdesk/shiftdesk-api/internal/models"
	"github.com/shiftdesk/shiftdesk-api/internal/repository"
	"github.com/shiftdesk/shiftdesk-api/internal/service"
)

type stubTemplateReader struct {
	template *models.ShiftTemplate
}

func (s *stubTemplateReader) FindByID(context.Context, string) (*models.ShiftTemplate, error) {
	return s.template, nil
}

type stubAssignmentStore struct {
	upserts int
}

func (s *stubAssignmentStore) Upsert(context.Context, *models.ShiftAssignment) error {
	s.upserts++
	return nil
}

func (s *stubAssignmentStore) BulkUpsert(context.Context, []models.ShiftAssignment, bool) ([]repository.BulkFailure, error) {
	return nil, nil
}

func (s *stubAssignmentStore) Delete(context.Context, string, string) error { return nil }

func (s *stubAssignmentStore) ListByUserAndRange(context.Context, string, string, string) ([]models.ShiftAssignment, error) {
	return nil, nil
}

func newShiftHandler(store *stubAssignmentStore) *ShiftHandler {
	templates := &stubTemplateReader{template: &models.ShiftTemplate{ID: "tpl-1", StartTime: "09:00", EndTime: "17:00"}}
	svc := service.NewAssignmentService(templates, store, nil, nil, nil, true)
	return NewShiftHandler(svc)
}

func assignBody() *strings.Reader {
	return strings.NewReader(`{"user_id":"user-1","date":"2024-03-04","shift_template_id":"tpl-1"}`)
}

func TestAssignWithoutClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newShiftHandler(&stubAssignmentStore{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/shifts/assign", assignBody())

	handler.Assign(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAssignRejectsMemberRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := &stubAssignmentStore{}
	handler := newShiftHandler(store)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/shifts/assign", assignBody())
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "member-1", Role: models.RoleMember})

	handler.Assign(c)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, store.upserts)
}

func TestAssignCreatesAssignment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := &stubAssignmentStore{}
	handler := newShiftHandler(store)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/shifts/assign", assignBody())
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "admin-1", Role: models.RoleAdmin})

	handler.Assign(c)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, store.upserts)
	assert.Contains(t, rec.Body.String(), "user-1")
}

func TestAssignRejectsMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newShiftHandler(&stubAssignmentStore{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/shifts/assign", strings.NewReader("{"))
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "admin-1", Role: models.RoleAdmin})

	handler.Assign(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemoveReturnsNoContent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newShiftHandler(&stubAssignmentStore{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodDelete, "/shifts", strings.NewReader(`{"user_id":"user-1","date":"2024-03-04"}`))
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "admin-1", Role: models.RoleAdmin})

	handler.Remove(c)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
