package service

import (
	"context"
	"math"
	"time"

	"taskstats/internal/core/dateutil"
	"taskstats/internal/core/domain"
)

const day = 24 * time.Hour

// DurationRanking measures how long each main task active in year has been open.
// Tasks without a resolvable end date are dropped. The result is unordered.
func (s *StatsService) DurationRanking(ctx context.Context, userID uint64, year int) ([]domain.TaskDuration, error) {
	now := s.Now()
	if year <= 0 {
		year = now.Year()
	}
	from := dateutil.StartOfYear(year, s.loc)
	to := dateutil.EndOfYear(year, s.loc)

	tasks, err := s.taskRepository.ListTasks(ctx, userID, domain.TaskFilter{
		MainOnly:   true,
		ActiveFrom: &from,
		ActiveTo:   &to,
	})
	if err != nil {
		return nil, err
	}

	durations := make([]domain.TaskDuration, 0, len(tasks))
	for _, task := range tasks {
		due := task.DueDayIn(s.loc)
		if !task.IsMain() || !activeInYear(task, due, from, to) {
			continue
		}

		end := resolveEndDate(task, due, now)
		days := durationDays(task.CreatedAt, end)
		if days == 0 {
			continue
		}

		durations = append(durations, domain.TaskDuration{
			TaskID:       task.ID,
			TaskTitle:    task.Title,
			StartDate:    task.CreatedAt,
			EndDate:      end,
			DurationDays: days,
			Status:       task.Status,
			ProjectName:  task.ProjectName,
		})
	}
	return durations, nil
}

// activeInYear matches on createdAt, updatedAt or due, the due day already placed in the stats location.
func activeInYear(task domain.Task, due *time.Time, from, to time.Time) bool {
	if dateutil.InRange(task.CreatedAt, from, to) || dateutil.InRange(task.UpdatedAt, from, to) {
		return true
	}
	return due != nil && dateutil.InRange(*due, from, to)
}

// resolveEndDate picks the end of a task's span from its status. UpdatedAt
// approximates completion time since the store keeps no completion timestamp.
func resolveEndDate(task domain.Task, due *time.Time, now time.Time) *time.Time {
	switch task.Status {
	case domain.TaskStatusCompleted:
		end := task.UpdatedAt
		return &end
	case domain.TaskStatusInProgress, domain.TaskStatusBlocked:
		end := now
		return &end
	default:
		return due
	}
}

func durationDays(start time.Time, end *time.Time) int {
	if end == nil || start.IsZero() {
		return 0
	}
	days := int(math.Ceil(float64(end.Sub(start)) / float64(day)))
	if days < 1 {
		return 1
	}
	return days
}
