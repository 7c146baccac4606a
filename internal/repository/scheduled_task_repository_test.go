package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftdesk/shiftdesk-api/internal/models"
)

func TestScheduledTaskRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScheduledTaskRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM scheduled_tasks")).
		WithArgs("user-1", "2024-03-04").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "date", "start_time", "end_time", "status"}))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO scheduled_tasks")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	task := &models.ScheduledTask{
		UserID:    "user-1",
		Title:     "Deploy",
		Date:      "2024-03-04",
		StartTime: "09:00",
		EndTime:   "10:00",
	}
	err := repo.Create(context.Background(), task)
	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, models.TaskStatusOngoing, task.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduledTaskRepositoryCreateRejectsOverlap(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScheduledTaskRepository(db)

	existing := sqlmock.NewRows([]string{"id", "user_id", "title", "date", "start_time", "end_time", "status"}).
		AddRow("t1", "user-1", "Standup", "2024-03-04", "09:00", "10:00", "ongoing")

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM scheduled_tasks")).
		WithArgs("user-1", "2024-03-04").
		WillReturnRows(existing)
	mock.ExpectRollback()

	task := &models.ScheduledTask{
		UserID:    "user-1",
		Title:     "Review",
		Date:      "2024-03-04",
		StartTime: "09:30",
		EndTime:   "09:45",
	}
	err := repo.Create(context.Background(), task)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTaskOverlap))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduledTaskRepositoryCreateAcceptsTouchingBoundary(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScheduledTaskRepository(db)

	existing := sqlmock.NewRows([]string{"id", "user_id", "title", "date", "start_time", "end_time", "status"}).
		AddRow("t1", "user-1", "Standup", "2024-03-04", "09:00", "10:00", "ongoing")

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM scheduled_tasks")).
		WithArgs("user-1", "2024-03-04").
		WillReturnRows(existing)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO scheduled_tasks")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	task := &models.ScheduledTask{
		UserID:    "user-1",
		Title:     "Review",
		Date:      "2024-03-04",
		StartTime: "10:00",
		EndTime:   "11:00",
	}
	err := repo.Create(context.Background(), task)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduledTaskRepositoryUpdateExcludesSelf(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScheduledTaskRepository(db)

	existing := sqlmock.NewRows([]string{"id", "user_id", "title", "date", "start_time", "end_time", "status"}).
		AddRow("t1", "user-1", "Standup", "2024-03-04", "09:00", "10:00", "ongoing")

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM scheduled_tasks")).
		WithArgs("user-1", "2024-03-04").
		WillReturnRows(existing)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE scheduled_tasks")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Shrinking t1 inside its own old window must not self-conflict.
	task := &models.ScheduledTask{
		ID:        "t1",
		UserID:    "user-1",
		Title:     "Standup",
		Date:      "2024-03-04",
		StartTime: "09:15",
		EndTime:   "09:45",
	}
	err := repo.Update(context.Background(), task)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoutineTaskRepositoryDeactivateIsSoftDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewRoutineTaskRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE routine_tasks")).
		WithArgs(sqlmock.AnyArg(), "r1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Deactivate(context.Background(), "user-1", "r1")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
