package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shiftdesk/shiftdesk-api/internal/dto"
	"github.com/shiftdesk/shiftdesk-api/internal/models"
	"github.com/shiftdesk/shiftdesk-api/internal/schedule"
	appErrors "github.com/shiftdesk/shiftdesk-api/pkg/errors"
	"github.com/shiftdesk/shiftdesk-api/pkg/export"
)

type userLister interface {
	ListActive(ctx context.Context) ([]models.User, error)
}

type assignmentRangeReader interface {
	ListByRange(ctx context.Context, startDate, endDate string) ([]models.ShiftAssignment, error)
	ListByDate(ctx context.Context, date string) ([]models.ShiftAssignment, error)
}

type eventRangeReader interface {
	ListOverlappingRange(ctx context.Context, startDate, endDate string) ([]models.PersonalEvent, error)
}

type templateLister interface {
	List(ctx context.Context) ([]models.ShiftTemplate, error)
}

type scheduleCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// ScheduleService serves the read side of the scheduler: the week matrix,
// the currently-working snapshot and file exports. All date math runs in the
// configured location; now is injectable for tests.
type ScheduleService struct {
	users       userLister
	assignments assignmentRangeReader
	events      eventRangeReader
	templates   templateLister
	cache       scheduleCache
	location    *time.Location
	now         func() time.Time
	cacheTTL    time.Duration
	logger      *zap.Logger
}

// NewScheduleService creates a service instance.
func NewScheduleService(
	users userLister,
	assignments assignmentRangeReader,
	events eventRangeReader,
	templates templateLister,
	cache scheduleCache,
	location *time.Location,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *ScheduleService {
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{
		users:       users,
		assignments: assignments,
		events:      events,
		templates:   templates,
		cache:       cache,
		location:    location,
		now:         time.Now,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

// WithClock overrides the time source. Test hook.
func (s *ScheduleService) WithClock(now func() time.Time) *ScheduleService {
	s.now = now
	return s
}

// WeekMatrix builds the per-user per-day grid for the ISO week at the given
// offset from the current week. Results are cached per week start date.
func (s *ScheduleService) WeekMatrix(ctx context.Context, offset int) (*dto.WeekScheduleResponse, error) {
	week := schedule.NewWeekWindow(s.now(), offset, s.location)

	cacheKey := fmt.Sprintf("schedule:week:%s", week.Start)
	if s.cache != nil {
		var cached dto.WeekScheduleResponse
		if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	users, err := s.users.ListActive(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list users")
	}
	assignments, err := s.assignments.ListByRange(ctx, week.Start, week.End)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list assignments")
	}
	events, err := s.events.ListOverlappingRange(ctx, week.Start, week.End)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list personal events")
	}
	templates, err := s.templates.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list shift templates")
	}

	resp := &dto.WeekScheduleResponse{
		WeekStart: week.Start,
		WeekEnd:   week.End,
		Dates:     week.Dates[:],
		Users:     users,
		Matrix:    schedule.BuildMatrix(users, week, assignments, events),
		Templates: templates,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, resp, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache week matrix", zap.String("key", cacheKey), zap.Error(err))
		}
	}
	return resp, nil
}

// CurrentlyWorking returns the ids of users whose shift window contains the
// current moment in the configured zone.
func (s *ScheduleService) CurrentlyWorking(ctx context.Context) (*dto.CurrentlyWorkingResponse, error) {
	local := s.now().In(s.location)
	date := schedule.DateKey(local)
	clock := local.Format("15:04")

	assignments, err := s.assignments.ListByDate(ctx, date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list assignments")
	}

	userIDs := make([]string, 0, len(assignments))
	for _, a := range assignments {
		if schedule.Within(clock, schedule.WindowFromAssignment(a)) {
			userIDs = append(userIDs, a.UserID)
		}
	}
	sort.Strings(userIDs)

	return &dto.CurrentlyWorkingResponse{Date: date, Time: clock, UserIDs: userIDs}, nil
}

// ExportWeek renders the week matrix as a downloadable table. Supported
// formats are csv and pdf.
func (s *ScheduleService) ExportWeek(ctx context.Context, offset int, format string) ([]byte, string, error) {
	matrix, err := s.WeekMatrix(ctx, offset)
	if err != nil {
		return nil, "", err
	}

	dataset := weekDataset(matrix)
	title := fmt.Sprintf("Week schedule %s to %s", matrix.WeekStart, matrix.WeekEnd)

	switch strings.ToLower(format) {
	case "csv", "":
		payload, err := export.NewCSVExporter().Render(dataset)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return payload, "text/csv", nil
	case "pdf":
		payload, err := export.NewPDFExporter().Render(dataset, title)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return payload, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "unsupported export format: "+format)
	}
}

// weekDataset flattens the matrix into a user row per line with one column
// per day of the week.
func weekDataset(week *dto.WeekScheduleResponse) export.Dataset {
	headers := make([]string, 0, len(week.Dates)+1)
	headers = append(headers, "User")
	headers = append(headers, week.Dates...)

	rows := make([]map[string]string, 0, len(week.Users))
	for _, u := range week.Users {
		row := map[string]string{"User": u.FullName}
		for _, date := range week.Dates {
			cell := week.Matrix[u.ID][date]
			if cell.Assignment != nil {
				row[date] = cell.Assignment.StartTime + "-" + cell.Assignment.EndTime
			} else {
				row[date] = ""
			}
		}
		rows = append(rows, row)
	}
	return export.Dataset{Headers: headers, Rows: rows}
}
