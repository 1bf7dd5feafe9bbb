package service

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"taskstats/internal/core/domain"
	"taskstats/internal/core/ports"
)

type Option func(*StatsService)

// WithClock replaces the wall clock used for "now".
func WithClock(now func() time.Time) Option {
	return func(s *StatsService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation sets the time zone in which calendar days are cut.
func WithLocation(loc *time.Location) Option {
	return func(s *StatsService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func WithWeekStart(day time.Weekday) Option {
	return func(s *StatsService) {
		s.weekStart = day
	}
}

type StatsService struct {
	taskRepository     ports.TaskRepository
	projectRepository  ports.ProjectRepository
	categoryRepository ports.CategoryRepository

	now       func() time.Time
	loc       *time.Location
	weekStart time.Weekday
}

func NewStatsService(
	taskRepository ports.TaskRepository,
	projectRepository ports.ProjectRepository,
	categoryRepository ports.CategoryRepository,
	opts ...Option,
) *StatsService {
	s := &StatsService{
		taskRepository:     taskRepository,
		projectRepository:  projectRepository,
		categoryRepository: categoryRepository,
		now:                time.Now,
		loc:                time.Local,
		weekStart:          time.Monday,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.StatsService = (*StatsService)(nil)

// Now returns the service clock in the stats location.
func (s *StatsService) Now() time.Time {
	return s.now().In(s.loc)
}

// TaskStats counts main tasks by status. period is accepted for parity with the
// other endpoints and does not change the result.
func (s *StatsService) TaskStats(ctx context.Context, userID uint64, period domain.Period) (domain.TaskStats, error) {
	_ = period

	tasks, err := s.taskRepository.ListTasks(ctx, userID, domain.TaskFilter{MainOnly: true})
	if err != nil {
		return domain.TaskStats{}, err
	}

	now := s.Now()
	var stats domain.TaskStats
	for _, task := range tasks {
		if !task.IsMain() {
			continue
		}
		stats.Total++
		switch task.Status {
		case domain.TaskStatusCompleted:
			stats.Completed++
		case domain.TaskStatusInProgress:
			stats.InProgress++
		case domain.TaskStatusBlocked:
			stats.Blocked++
		default:
			stats.Pending++
		}
		if task.IsOverdue(now) {
			stats.Overdue++
		}
		if task.IsDueToday(now) {
			stats.DueToday++
		}
	}

	stats.CompletionRate = percentage(stats.Completed, stats.Total)
	stats.OverdueRate = percentage(stats.Overdue, stats.Total)
	return stats, nil
}

// QuadrantStats places open main tasks on the urgency/importance matrix.
func (s *StatsService) QuadrantStats(ctx context.Context, userID uint64) (domain.QuadrantStats, error) {
	tasks, err := s.taskRepository.ListTasks(ctx, userID, domain.TaskFilter{MainOnly: true, ExcludeCompleted: true})
	if err != nil {
		return domain.QuadrantStats{}, err
	}

	var stats domain.QuadrantStats
	for _, task := range tasks {
		if !task.IsMain() || task.IsCompleted() {
			continue
		}
		switch {
		case task.Urgency && task.Importance:
			stats.UrgentImportant++
		case task.Importance:
			stats.ImportantNotUrgent++
		case task.Urgency:
			stats.UrgentNotImportant++
		default:
			stats.NeitherUrgentNorImportant++
		}
	}
	return stats, nil
}

// CategoryStats reports main-task counts per category. Empty categories are left out.
func (s *StatsService) CategoryStats(ctx context.Context, userID uint64) ([]domain.CategoryStat, error) {
	categories, err := s.categoryRepository.ListCategoriesWithTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := make([]domain.CategoryStat, 0, len(categories))
	for _, category := range categories {
		stat := domain.CategoryStat{
			CategoryID:   category.ID,
			CategoryName: category.Name,
		}
		for _, task := range category.Tasks {
			if !task.IsMain() {
				continue
			}
			stat.Total++
			switch task.Status {
			case domain.TaskStatusCompleted:
				stat.Completed++
			case domain.TaskStatusInProgress:
				stat.InProgress++
			case domain.TaskStatusBlocked:
				stat.Blocked++
			default:
				stat.Pending++
			}
		}
		if stat.Total == 0 {
			continue
		}
		stat.CompletionRate = percentage(stat.Completed, stat.Total)
		stats = append(stats, stat)
	}
	return stats, nil
}

// ProjectStats counts projects by status. CompletionRate is a fraction, not a percentage.
func (s *StatsService) ProjectStats(ctx context.Context, userID uint64) (domain.ProjectStats, error) {
	projects, err := s.projectRepository.ListProjects(ctx, userID)
	if err != nil {
		return domain.ProjectStats{}, err
	}

	var stats domain.ProjectStats
	for _, project := range projects {
		stats.Total++
		switch project.Status {
		case domain.ProjectStatusActive:
			stats.Active++
		case domain.ProjectStatusCompleted:
			stats.Completed++
		case domain.ProjectStatusOnHold:
			stats.OnHold++
		case domain.ProjectStatusCancelled:
			stats.Cancelled++
		default:
			stats.Planning++
		}
	}
	if stats.Total > 0 {
		stats.CompletionRate = float64(stats.Completed) / float64(stats.Total)
	}
	return stats, nil
}

// ProjectTaskStats reports main-task progress for every project, including empty ones.
func (s *StatsService) ProjectTaskStats(ctx context.Context, userID uint64) ([]domain.ProjectTaskStat, error) {
	projects, err := s.projectRepository.ListProjectsWithTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	stats := make([]domain.ProjectTaskStat, 0, len(projects))
	for _, project := range projects {
		stat := domain.ProjectTaskStat{
			ProjectID:     project.ID,
			ProjectName:   project.Name,
			ProjectStatus: project.Status,
		}
		for _, task := range project.Tasks {
			if !task.IsMain() {
				continue
			}
			stat.TotalTasks++
			switch task.Status {
			case domain.TaskStatusCompleted:
				stat.CompletedTasks++
			case domain.TaskStatusInProgress:
				stat.InProgressTasks++
			case domain.TaskStatusBlocked:
				stat.BlockedTasks++
			default:
				stat.PendingTasks++
			}
			if task.IsOverdue(now) {
				stat.OverdueTasks++
			}
		}
		stat.CompletionRate = percentage(stat.CompletedTasks, stat.TotalTasks)
		stat.Progress = stat.CompletionRate
		stats = append(stats, stat)
	}
	return stats, nil
}

// percentage returns part/total*100 rounded to two decimals, or 0 for an empty total.
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*10000) / 100
}

func (s *StatsService) logDegraded(operation string, userID uint64, err error) {
	zap.L().Warn("stats store query failed, returning empty result",
		zap.String("operation", operation),
		zap.Uint64("user_id", userID),
		zap.Error(err),
	)
}
