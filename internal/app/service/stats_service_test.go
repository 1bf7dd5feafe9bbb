package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskstats/internal/app/service"
	"taskstats/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const userID uint64 = 42

var errStoreDown = errors.New("db is down")

type storeMock struct {
	mock.Mock
}

func (m *storeMock) ListTasks(ctx context.Context, userID uint64, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, userID, filter)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *storeMock) ListProjects(ctx context.Context, userID uint64) ([]domain.Project, error) {
	args := m.Called(ctx, userID)

	var projects []domain.Project
	if value := args.Get(0); value != nil {
		projects = value.([]domain.Project)
	}
	return projects, args.Error(1)
}

func (m *storeMock) ListProjectsWithTasks(ctx context.Context, userID uint64) ([]domain.Project, error) {
	args := m.Called(ctx, userID)

	var projects []domain.Project
	if value := args.Get(0); value != nil {
		projects = value.([]domain.Project)
	}
	return projects, args.Error(1)
}

func (m *storeMock) ListCategoriesWithTasks(ctx context.Context, userID uint64) ([]domain.Category, error) {
	args := m.Called(ctx, userID)

	var categories []domain.Category
	if value := args.Get(0); value != nil {
		categories = value.([]domain.Category)
	}
	return categories, args.Error(1)
}

// fixedNow is Wednesday 2024-06-12 10:00 UTC.
var fixedNow = time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)

func newService(store *storeMock) *service.StatsService {
	return service.NewStatsService(store, store, store,
		service.WithClock(func() time.Time { return fixedNow }),
		service.WithLocation(time.UTC),
		service.WithWeekStart(time.Monday),
	)
}

func date(value string) *time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return &d
}

func at(value string) time.Time {
	d, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return d
}

func parent(id uint64) *uint64 {
	return &id
}

func mainOnly() domain.TaskFilter {
	return domain.TaskFilter{MainOnly: true}
}

func TestTaskStats_CountsMainTasksOnly(t *testing.T) {
	store := new(storeMock)
	store.On("ListTasks", mock.Anything, userID, mainOnly()).Return([]domain.Task{
		{ID: 1, Status: domain.TaskStatusCompleted, DueDate: date("2024-06-01")},
		{ID: 2, Status: domain.TaskStatusInProgress, DueDate: date("2024-06-11")},
		{ID: 3, Status: domain.TaskStatusPending, DueDate: date("2024-06-12")},
		{ID: 4, Status: domain.TaskStatusBlocked},
		{ID: 5, Status: domain.TaskStatusPending, ParentTaskID: parent(1), DueDate: date("2024-01-01")},
	}, nil).Once()

	stats, err := newService(store).TaskStats(context.Background(), userID, domain.PeriodWeek)
	require.NoError(t, err)

	assert.Equal(t, domain.TaskStats{
		Total:          4,
		Completed:      1,
		InProgress:     1,
		Pending:        1,
		Blocked:        1,
		Overdue:        1,
		DueToday:       1,
		CompletionRate: 25,
		OverdueRate:    25,
	}, stats)
	store.AssertExpectations(t)
}

func TestTaskStats_PeriodDoesNotChangeResult(t *testing.T) {
	tasks := []domain.Task{
		{ID: 1, Status: domain.TaskStatusCompleted},
		{ID: 2, Status: domain.TaskStatusPending},
		{ID: 3, Status: domain.TaskStatusPending},
	}
	store := new(storeMock)
	store.On("ListTasks", mock.Anything, userID, mainOnly()).Return(tasks, nil).Times(3)
	svc := newService(store)

	day, err := svc.TaskStats(context.Background(), userID, domain.PeriodDay)
	require.NoError(t, err)
	month, err := svc.TaskStats(context.Background(), userID, domain.PeriodMonth)
	require.NoError(t, err)
	none, err := svc.TaskStats(context.Background(), userID, "")
	require.NoError(t, err)

	assert.Equal(t, day, month)
	assert.Equal(t, day, none)
	assert.Equal(t, 33.33, day.CompletionRate)
}

func TestTaskStats_ZeroTotalHasZeroRates(t *testing.T) {
	store := new(storeMock)
	store.On("ListTasks", mock.Anything, userID, mainOnly()).Return([]domain.Task{}, nil).Once()

	stats, err := newService(store).TaskStats(context.Background(), userID, domain.PeriodWeek)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, float64(0), stats.CompletionRate)
	assert.Equal(t, float64(0), stats.OverdueRate)
}

func TestTaskStats_PropagatesStoreError(t *testing.T) {
	store := new(storeMock)
	store.On("ListTasks", mock.Anything, userID, mainOnly()).Return(nil, errStoreDown).Once()

	_, err := newService(store).TaskStats(context.Background(), userID, domain.PeriodWeek)
	require.ErrorIs(t, err, errStoreDown)
}

func TestQuadrantStats_PartitionsOpenMainTasks(t *testing.T) {
	store := new(storeMock)
	store.On("ListTasks", mock.Anything, userID, domain.TaskFilter{MainOnly: true, ExcludeCompleted: true}).Return([]domain.Task{
		{ID: 1, Status: domain.TaskStatusPending, Urgency: true, Importance: true},
		{ID: 2, Status: domain.TaskStatusInProgress, Urgency: true, Importance: true},
		{ID: 3, Status: domain.TaskStatusPending, Importance: true},
		{ID: 4, Status: domain.TaskStatusBlocked, Urgency: true},
		{ID: 5, Status: domain.TaskStatusPending},
		{ID: 6, Status: domain.TaskStatusCompleted, Urgency: true, Importance: true},
		{ID: 7, Status: domain.TaskStatusPending, Urgency: true, ParentTaskID: parent(1)},
	}, nil).Once()

	stats, err := newService(store).QuadrantStats(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, domain.QuadrantStats{
		UrgentImportant:           2,
		ImportantNotUrgent:        1,
		UrgentNotImportant:        1,
		NeitherUrgentNorImportant: 1,
	}, stats)
	assert.Equal(t, 5, stats.Total())
}

func TestQuadrantStats_PropagatesStoreError(t *testing.T) {
	store := new(storeMock)
	store.On("ListTasks", mock.Anything, userID, mock.Anything).Return(nil, errStoreDown).Once()

	_, err := newService(store).QuadrantStats(context.Background(), userID)
	require.ErrorIs(t, err, errStoreDown)
}

func TestCategoryStats_OmitsEmptyCategories(t *testing.T) {
	store := new(storeMock)
	store.On("ListCategoriesWithTasks", mock.Anything, userID).Return([]domain.Category{
		{ID: 1, Name: "Work", Tasks: []domain.Task{
			{ID: 1, Status: domain.TaskStatusCompleted},
			{ID: 2, Status: domain.TaskStatusInProgress},
			{ID: 3, Status: domain.TaskStatusBlocked},
			{ID: 4, Status: domain.TaskStatusPending, ParentTaskID: parent(1)},
		}},
		{ID: 2, Name: "Empty"},
		{ID: 3, Name: "Only subtasks", Tasks: []domain.Task{
			{ID: 5, Status: domain.TaskStatusPending, ParentTaskID: parent(1)},
		}},
	}, nil).Once()

	stats, err := newService(store).CategoryStats(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, stats, 1)

	assert.Equal(t, domain.CategoryStat{
		CategoryID:     1,
		CategoryName:   "Work",
		Total:          3,
		Completed:      1,
		InProgress:     1,
		Blocked:        1,
		CompletionRate: 33.33,
	}, stats[0])
}

func TestCategoryStats_PropagatesStoreError(t *testing.T) {
	store := new(storeMock)
	store.On("ListCategoriesWithTasks", mock.Anything, userID).Return(nil, errStoreDown).Once()

	_, err := newService(store).CategoryStats(context.Background(), userID)
	require.ErrorIs(t, err, errStoreDown)
}

func TestProjectStats_CompletionRateIsFraction(t *testing.T) {
	store := new(storeMock)
	store.On("ListProjects", mock.Anything, userID).Return([]domain.Project{
		{ID: 1, Status: domain.ProjectStatusCompleted},
		{ID: 2, Status: domain.ProjectStatusActive},
		{ID: 3, Status: domain.ProjectStatusOnHold},
		{ID: 4, Status: domain.ProjectStatusPlanning},
	}, nil).Once()

	stats, err := newService(store).ProjectStats(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, domain.ProjectStats{
		Total:          4,
		Active:         1,
		Completed:      1,
		Planning:       1,
		OnHold:         1,
		CompletionRate: 0.25,
	}, stats)
}

func TestProjectStats_Empty(t *testing.T) {
	store := new(storeMock)
	store.On("ListProjects", mock.Anything, userID).Return([]domain.Project{}, nil).Once()

	stats, err := newService(store).ProjectStats(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectStats{}, stats)
}

func TestProjectStats_PropagatesStoreError(t *testing.T) {
	store := new(storeMock)
	store.On("ListProjects", mock.Anything, userID).Return(nil, errStoreDown).Once()

	_, err := newService(store).ProjectStats(context.Background(), userID)
	require.ErrorIs(t, err, errStoreDown)
}

func TestProjectTaskStats_KeepsEmptyProjects(t *testing.T) {
	store := new(storeMock)
	store.On("ListProjectsWithTasks", mock.Anything, userID).Return([]domain.Project{
		{ID: 1, Name: "Launch", Status: domain.ProjectStatusActive, Tasks: []domain.Task{
			{ID: 1, Status: domain.TaskStatusCompleted},
			{ID: 2, Status: domain.TaskStatusPending, DueDate: date("2024-06-01")},
			{ID: 3, Status: domain.TaskStatusInProgress, DueDate: date("2024-06-12")},
			{ID: 4, Status: domain.TaskStatusBlocked},
			{ID: 5, Status: domain.TaskStatusPending, ParentTaskID: parent(1), DueDate: date("2024-01-01")},
		}},
		{ID: 2, Name: "Someday", Status: domain.ProjectStatusPlanning},
	}, nil).Once()

	stats, err := newService(store).ProjectTaskStats(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, domain.ProjectTaskStat{
		ProjectID:       1,
		ProjectName:     "Launch",
		ProjectStatus:   domain.ProjectStatusActive,
		TotalTasks:      4,
		CompletedTasks:  1,
		InProgressTasks: 1,
		PendingTasks:    1,
		BlockedTasks:    1,
		OverdueTasks:    1,
		CompletionRate:  25,
		Progress:        25,
	}, stats[0])
	assert.Equal(t, domain.ProjectTaskStat{
		ProjectID:     2,
		ProjectName:   "Someday",
		ProjectStatus: domain.ProjectStatusPlanning,
	}, stats[1])
}

func TestProjectTaskStats_PropagatesStoreError(t *testing.T) {
	store := new(storeMock)
	store.On("ListProjectsWithTasks", mock.Anything, userID).Return(nil, errStoreDown).Once()

	_, err := newService(store).ProjectTaskStats(context.Background(), userID)
	require.ErrorIs(t, err, errStoreDown)
}

func TestNow_UsesInjectedClockAndLocation(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	svc := service.NewStatsService(nil, nil, nil,
		service.WithClock(func() time.Time { return fixedNow }),
		service.WithLocation(loc),
	)

	now := svc.Now()
	assert.True(t, now.Equal(fixedNow))
	assert.Equal(t, loc, now.Location())
}
