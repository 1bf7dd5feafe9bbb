package ports

import (
	"context"
	"time"

	"taskstats/internal/core/domain"
)

type TaskRepository interface {
	ListTasks(ctx context.Context, userID uint64, filter domain.TaskFilter) ([]domain.Task, error)
}

type ProjectRepository interface {
	ListProjects(ctx context.Context, userID uint64) ([]domain.Project, error)
	// ListProjectsWithTasks loads every project with its main tasks in a single query.
	ListProjectsWithTasks(ctx context.Context, userID uint64) ([]domain.Project, error)
}

type CategoryRepository interface {
	ListCategoriesWithTasks(ctx context.Context, userID uint64) ([]domain.Category, error)
}

type StatsService interface {
	TaskStats(ctx context.Context, userID uint64, period domain.Period) (domain.TaskStats, error)
	QuadrantStats(ctx context.Context, userID uint64) (domain.QuadrantStats, error)
	CategoryStats(ctx context.Context, userID uint64) ([]domain.CategoryStat, error)
	ProjectStats(ctx context.Context, userID uint64) (domain.ProjectStats, error)
	ProjectTaskStats(ctx context.Context, userID uint64) ([]domain.ProjectTaskStat, error)
	TimeSeries(ctx context.Context, userID uint64, period domain.Period, targetDate time.Time) []domain.TimeSeriesPoint
	YearHeatmap(ctx context.Context, userID uint64, year int) []domain.HeatmapDay
	DurationRanking(ctx context.Context, userID uint64, year int) ([]domain.TaskDuration, error)
	Now() time.Time
}
