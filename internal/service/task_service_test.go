package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftdesk/shiftdesk-api/internal/dto"
	"github.com/shiftdesk/shiftdesk-api/internal/models"
	"github.com/shiftdesk/shiftdesk-api/internal/repository"
	appErrors "github.com/shiftdesk/shiftdesk-api/pkg/errors"
)

type mockScheduledStore struct {
	tasks      []models.ScheduledTask
	found      *models.ScheduledTask
	createErr  error
	updateErr  error
	deleteErr  error
	created    []models.ScheduledTask
	updated    []models.ScheduledTask
	deletedIDs []string
}

func (m *mockScheduledStore) ListByUserAndDate(_ context.Context, _, _ string) ([]models.ScheduledTask, error) {
	return m.tasks, nil
}

func (m *mockScheduledStore) FindByID(_ context.Context, _ string) (*models.ScheduledTask, error) {
	if m.found == nil {
		return nil, sql.ErrNoRows
	}
	task := *m.found
	return &task, nil
}

func (m *mockScheduledStore) Create(_ context.Context, task *models.ScheduledTask) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, *task)
	return nil
}

func (m *mockScheduledStore) Update(_ context.Context, task *models.ScheduledTask) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = append(m.updated, *task)
	return nil
}

func (m *mockScheduledStore) Delete(_ context.Context, _, taskID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedIDs = append(m.deletedIDs, taskID)
	return nil
}

type mockRoutineStore struct {
	routines    []models.RoutineTask
	active      []models.RoutineTask
	found       *models.RoutineTask
	created     []models.RoutineTask
	updated     []models.RoutineTask
	deactivated []string
}

func (m *mockRoutineStore) ListByUser(_ context.Context, _ string) ([]models.RoutineTask, error) {
	return m.routines, nil
}

func (m *mockRoutineStore) ListActiveByUser(_ context.Context, _ string) ([]models.RoutineTask, error) {
	return m.active, nil
}

func (m *mockRoutineStore) FindByID(_ context.Context, _ string) (*models.RoutineTask, error) {
	if m.found == nil {
		return nil, sql.ErrNoRows
	}
	routine := *m.found
	return &routine, nil
}

func (m *mockRoutineStore) Create(_ context.Context, task *models.RoutineTask) error {
	m.created = append(m.created, *task)
	return nil
}

func (m *mockRoutineStore) Update(_ context.Context, task *models.RoutineTask) error {
	m.updated = append(m.updated, *task)
	return nil
}

func (m *mockRoutineStore) Deactivate(_ context.Context, _, taskID string) error {
	m.deactivated = append(m.deactivated, taskID)
	return nil
}

func newTaskService(scheduled *mockScheduledStore, routines *mockRoutineStore) *TaskService {
	loc, _ := time.LoadLocation("Europe/Bucharest")
	return NewTaskService(scheduled, routines, nil, loc, nil)
}

func TestCreateScheduledDefaultsToOngoing(t *testing.T) {
	store := &mockScheduledStore{}
	svc := newTaskService(store, &mockRoutineStore{})

	task, err := svc.CreateScheduled(context.Background(), "user-1", dto.CreateScheduledTaskRequest{
		Title:     "Inventory",
		Date:      "2024-03-04",
		StartTime: "09:00",
		EndTime:   "10:00",
	})

	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusOngoing, task.Status)
	assert.Equal(t, "user-1", task.UserID)
	require.Len(t, store.created, 1)
}

func TestCreateScheduledRejectsInvertedTimes(t *testing.T) {
	svc := newTaskService(&mockScheduledStore{}, &mockRoutineStore{})

	_, err := svc.CreateScheduled(context.Background(), "user-1", dto.CreateScheduledTaskRequest{
		Title:     "Inventory",
		Date:      "2024-03-04",
		StartTime: "10:00",
		EndTime:   "09:00",
	})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestCreateScheduledMapsOverlapToConflict(t *testing.T) {
	store := &mockScheduledStore{createErr: repository.ErrTaskOverlap}
	svc := newTaskService(store, &mockRoutineStore{})

	_, err := svc.CreateScheduled(context.Background(), "user-1", dto.CreateScheduledTaskRequest{
		Title:     "Inventory",
		Date:      "2024-03-04",
		StartTime: "09:00",
		EndTime:   "10:00",
	})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestUpdateScheduledRejectsForeignTask(t *testing.T) {
	store := &mockScheduledStore{found: &models.ScheduledTask{ID: "task-1", UserID: "someone-else"}}
	svc := newTaskService(store, &mockRoutineStore{})

	_, err := svc.UpdateScheduled(context.Background(), "user-1", "task-1", dto.UpdateScheduledTaskRequest{
		Title:     "Inventory",
		Date:      "2024-03-04",
		StartTime: "09:00",
		EndTime:   "10:00",
		Status:    models.TaskStatusCompleted,
	})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
	assert.Empty(t, store.updated)
}

func TestUpdateScheduledMissingTask(t *testing.T) {
	svc := newTaskService(&mockScheduledStore{}, &mockRoutineStore{})

	_, err := svc.UpdateScheduled(context.Background(), "user-1", "ghost", dto.UpdateScheduledTaskRequest{
		Title:     "Inventory",
		Date:      "2024-03-04",
		StartTime: "09:00",
		EndTime:   "10:00",
		Status:    models.TaskStatusOngoing,
	})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestCreateRoutineWeeklyRequiresDays(t *testing.T) {
	svc := newTaskService(&mockScheduledStore{}, &mockRoutineStore{})

	_, err := svc.CreateRoutine(context.Background(), "user-1", dto.CreateRoutineTaskRequest{
		Title:          "Standup",
		StartTime:      "09:30",
		EndTime:        "09:45",
		RepetitionType: "weekly",
	})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestCreateRoutineSingleRequiresDate(t *testing.T) {
	svc := newTaskService(&mockScheduledStore{}, &mockRoutineStore{})

	_, err := svc.CreateRoutine(context.Background(), "user-1", dto.CreateRoutineTaskRequest{
		Title:          "Audit",
		StartTime:      "14:00",
		EndTime:        "15:00",
		RepetitionType: "single",
	})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestCreateRoutineStartsActive(t *testing.T) {
	store := &mockRoutineStore{}
	svc := newTaskService(&mockScheduledStore{}, store)

	routine, err := svc.CreateRoutine(context.Background(), "user-1", dto.CreateRoutineTaskRequest{
		Title:          "Standup",
		StartTime:      "09:30",
		EndTime:        "09:45",
		RepetitionType: "weekly",
		WeeklyDays:     []int64{1, 3},
	})

	require.NoError(t, err)
	assert.True(t, routine.IsActive)
	require.Len(t, store.created, 1)
}

func TestDeactivateRoutineSoftDeletes(t *testing.T) {
	store := &mockRoutineStore{}
	svc := newTaskService(&mockScheduledStore{}, store)

	require.NoError(t, svc.DeactivateRoutine(context.Background(), "user-1", "routine-1"))
	assert.Equal(t, []string{"routine-1"}, store.deactivated)
}

func TestDayAgendaMergesAndSorts(t *testing.T) {
	scheduled := &mockScheduledStore{tasks: []models.ScheduledTask{
		{ID: "task-1", Title: "Inventory", StartTime: "14:00", EndTime: "15:00", Status: models.TaskStatusOngoing},
	}}
	routines := &mockRoutineStore{active: []models.RoutineTask{
		{ID: "routine-1", Title: "Standup", StartTime: "09:30", EndTime: "09:45", RepetitionType: models.RepetitionWeekly, WeeklyDays: []int64{1}, IsActive: true},
		{ID: "routine-2", Title: "Friday review", StartTime: "16:00", EndTime: "17:00", RepetitionType: models.RepetitionWeekly, WeeklyDays: []int64{5}, IsActive: true},
	}}
	svc := newTaskService(scheduled, routines)

	// 2024-03-04 is a Monday.
	agenda, err := svc.DayAgenda(context.Background(), "user-1", "2024-03-04")

	require.NoError(t, err)
	require.Len(t, agenda.Items, 2)
	assert.Equal(t, "routine", agenda.Items[0].Source)
	assert.Equal(t, "Standup", agenda.Items[0].Title)
	assert.Equal(t, "scheduled", agenda.Items[1].Source)
	assert.Equal(t, "Inventory", agenda.Items[1].Title)
	require.Len(t, agenda.Routines, 1)
	assert.Equal(t, "routine-1", agenda.Routines[0].ID)
}

func TestListApplicableRoutinesFiltersByWeekday(t *testing.T) {
	routines := &mockRoutineStore{active: []models.RoutineTask{
		{ID: "routine-1", Title: "Standup", StartTime: "09:30", EndTime: "09:45", RepetitionType: models.RepetitionWeekly, WeeklyDays: []int64{1}, IsActive: true},
		{ID: "routine-2", Title: "Friday review", StartTime: "16:00", EndTime: "17:00", RepetitionType: models.RepetitionWeekly, WeeklyDays: []int64{5}, IsActive: true},
	}}
	svc := newTaskService(&mockScheduledStore{}, routines)

	// 2024-03-04 is a Monday.
	out, err := svc.ListApplicableRoutines(context.Background(), "user-1", "2024-03-04")

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "routine-1", out[0].ID)
}

func TestListApplicableRoutinesRejectsBadDate(t *testing.T) {
	svc := newTaskService(&mockScheduledStore{}, &mockRoutineStore{})

	_, err := svc.ListApplicableRoutines(context.Background(), "user-1", "not-a-date")

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestDayAgendaRejectsBadDate(t *testing.T) {
	svc := newTaskService(&mockScheduledStore{}, &mockRoutineStore{})

	_, err := svc.DayAgenda(context.Background(), "user-1", "04/03/2024")

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
