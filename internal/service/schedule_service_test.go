package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftdesk/shiftdesk-api/internal/models"
)

type mockUserLister struct {
	users []models.User
	calls int
}

func (m *mockUserLister) ListActive(_ context.Context) ([]models.User, error) {
	m.calls++
	return m.users, nil
}

type mockAssignmentReader struct {
	byRange []models.ShiftAssignment
	byDate  []models.ShiftAssignment
}

func (m *mockAssignmentReader) ListByRange(_ context.Context, _, _ string) ([]models.ShiftAssignment, error) {
	return m.byRange, nil
}

func (m *mockAssignmentReader) ListByDate(_ context.Context, _ string) ([]models.ShiftAssignment, error) {
	return m.byDate, nil
}

type mockEventReader struct {
	events []models.PersonalEvent
}

func (m *mockEventReader) ListOverlappingRange(_ context.Context, _, _ string) ([]models.PersonalEvent, error) {
	return m.events, nil
}

type mockTemplateLister struct {
	templates []models.ShiftTemplate
}

func (m *mockTemplateLister) List(_ context.Context) ([]models.ShiftTemplate, error) {
	return m.templates, nil
}

type memoryCache struct {
	store map[string][]byte
	hits  int
	sets  int
}

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	payload, ok := c.store[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(payload, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if c.store == nil {
		c.store = make(map[string][]byte)
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.store[key] = payload
	c.sets++
	return nil
}

func fixedClock(value string, loc *time.Location) func() time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", value, loc)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func newWeekFixtureService(clock string, cache *memoryCache) (*ScheduleService, *mockUserLister) {
	loc, _ := time.LoadLocation("Europe/Bucharest")
	users := &mockUserLister{users: []models.User{
		{ID: "user-1", FullName: "Ana Pop"},
		{ID: "user-2", FullName: "Ion Radu"},
	}}
	assignments := &mockAssignmentReader{byRange: []models.ShiftAssignment{
		{ID: "a-1", UserID: "user-1", Date: "2024-03-05", StartTime: "09:00", EndTime: "17:00"},
	}}
	events := &mockEventReader{}
	templates := &mockTemplateLister{}

	var cacheIface scheduleCache
	if cache != nil {
		cacheIface = cache
	}
	svc := NewScheduleService(users, assignments, events, templates, cacheIface, loc, time.Minute, nil)
	svc.WithClock(fixedClock(clock, loc))
	return svc, users
}

func TestWeekMatrixBuildsCurrentWeek(t *testing.T) {
	svc, _ := newWeekFixtureService("2024-03-06 10:00", nil)

	resp, err := svc.WeekMatrix(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, "2024-03-04", resp.WeekStart)
	assert.Equal(t, "2024-03-10", resp.WeekEnd)
	require.Len(t, resp.Dates, 7)
	require.Len(t, resp.Matrix, 2)

	cell := resp.Matrix["user-1"]["2024-03-05"]
	require.NotNil(t, cell.Assignment)
	assert.Equal(t, "09:00", cell.Assignment.StartTime)
	assert.Nil(t, resp.Matrix["user-2"]["2024-03-05"].Assignment)
}

func TestWeekMatrixOffsetShiftsWindow(t *testing.T) {
	svc, _ := newWeekFixtureService("2024-03-06 10:00", nil)

	prev, err := svc.WeekMatrix(context.Background(), -1)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-26", prev.WeekStart)

	next, err := svc.WeekMatrix(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-11", next.WeekStart)
}

func TestWeekMatrixServedFromCache(t *testing.T) {
	cache := &memoryCache{}
	svc, users := newWeekFixtureService("2024-03-06 10:00", cache)

	_, err := svc.WeekMatrix(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, 1, users.calls)

	resp, err := svc.WeekMatrix(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, 1, users.calls)
	assert.Equal(t, "2024-03-04", resp.WeekStart)
}

func TestCurrentlyWorkingFiltersByWindow(t *testing.T) {
	loc, _ := time.LoadLocation("Europe/Bucharest")
	split := func(s string) *string { return &s }
	assignments := &mockAssignmentReader{byDate: []models.ShiftAssignment{
		{UserID: "day", StartTime: "09:00", EndTime: "17:00"},
		{UserID: "night", StartTime: "22:00", EndTime: "06:00", IsOvernight: true},
		{UserID: "broker", StartTime: "10:00", EndTime: "14:00", IsSplit: true, SplitStartTime: split("18:00"), SplitEndTime: split("22:00")},
	}}
	svc := NewScheduleService(&mockUserLister{}, assignments, &mockEventReader{}, &mockTemplateLister{}, nil, loc, time.Minute, nil)
	svc.WithClock(fixedClock("2024-03-06 23:30", loc))

	resp, err := svc.CurrentlyWorking(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "2024-03-06", resp.Date)
	assert.Equal(t, "23:30", resp.Time)
	assert.Equal(t, []string{"night"}, resp.UserIDs)
}

func TestCurrentlyWorkingMidday(t *testing.T) {
	loc, _ := time.LoadLocation("Europe/Bucharest")
	assignments := &mockAssignmentReader{byDate: []models.ShiftAssignment{
		{UserID: "day", StartTime: "09:00", EndTime: "17:00"},
		{UserID: "night", StartTime: "22:00", EndTime: "06:00", IsOvernight: true},
	}}
	svc := NewScheduleService(&mockUserLister{}, assignments, &mockEventReader{}, &mockTemplateLister{}, nil, loc, time.Minute, nil)
	svc.WithClock(fixedClock("2024-03-06 12:00", loc))

	resp, err := svc.CurrentlyWorking(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"day"}, resp.UserIDs)
}

func TestExportWeekCSV(t *testing.T) {
	svc, _ := newWeekFixtureService("2024-03-06 10:00", nil)

	payload, contentType, err := svc.ExportWeek(context.Background(), 0, "csv")

	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.Contains(t, string(payload), "User,2024-03-04")
	assert.Contains(t, string(payload), "Ana Pop")
	assert.Contains(t, string(payload), "09:00-17:00")
}

func TestExportWeekPDF(t *testing.T) {
	svc, _ := newWeekFixtureService("2024-03-06 10:00", nil)

	payload, contentType, err := svc.ExportWeek(context.Background(), 0, "pdf")

	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, len(payload) > 0)
}

func TestExportWeekUnknownFormat(t *testing.T) {
	svc, _ := newWeekFixtureService("2024-03-06 10:00", nil)

	_, _, err := svc.ExportWeek(context.Background(), 0, "xlsx")

	require.Error(t, err)
}
