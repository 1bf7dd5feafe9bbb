package service

import (
	"context"
	"time"

	"taskstats/internal/core/dateutil"
	"taskstats/internal/core/domain"
)

// periodRange returns the calendar bounds of period around target.
func (s *StatsService) periodRange(period domain.Period, target time.Time) (time.Time, time.Time) {
	switch period {
	case domain.PeriodDay:
		return dateutil.StartOfDay(target), dateutil.EndOfDay(target)
	case domain.PeriodMonth:
		return dateutil.StartOfMonth(target), dateutil.EndOfMonth(target)
	default:
		return dateutil.StartOfWeek(target, s.weekStart), dateutil.EndOfWeek(target, s.weekStart)
	}
}

// TimeSeries counts main tasks created and completed on each day of the period
// containing targetDate. Store failures yield an empty series.
func (s *StatsService) TimeSeries(ctx context.Context, userID uint64, period domain.Period, targetDate time.Time) []domain.TimeSeriesPoint {
	if targetDate.IsZero() {
		targetDate = s.Now()
	}
	start, end := s.periodRange(period, targetDate.In(s.loc))

	tasks, err := s.taskRepository.ListTasks(ctx, userID, domain.TaskFilter{
		MainOnly:   true,
		ActiveFrom: &start,
		ActiveTo:   &end,
	})
	if err != nil {
		s.logDegraded("time_series", userID, err)
		return []domain.TimeSeriesPoint{}
	}

	created := make(map[string]int)
	completed := make(map[string]int)
	for _, task := range tasks {
		if !task.IsMain() {
			continue
		}
		if createdAt := task.CreatedAt.In(s.loc); dateutil.InRange(createdAt, start, end) {
			created[dateutil.DateKey(createdAt)]++
		}
		if !task.IsCompleted() {
			continue
		}
		if updatedAt := task.UpdatedAt.In(s.loc); dateutil.InRange(updatedAt, start, end) {
			completed[dateutil.DateKey(updatedAt)]++
		}
	}

	days := dateutil.DaysIn(start, end)
	points := make([]domain.TimeSeriesPoint, 0, len(days))
	for _, day := range days {
		key := dateutil.DateKey(day)
		points = append(points, domain.TimeSeriesPoint{
			Date:      key,
			Created:   created[key],
			Completed: completed[key],
		})
	}
	return points
}

type heatmapBuckets struct {
	created          map[string]int
	completed        map[string]int
	subtaskCreated   map[string]int
	subtaskCompleted map[string]int
}

// YearHeatmap returns one entry per day of year with main-task and sub-task
// activity counted separately. Tasks are bucketed by day key in one pass and
// the year is enumerated afterwards. Store failures yield an empty slice.
func (s *StatsService) YearHeatmap(ctx context.Context, userID uint64, year int) []domain.HeatmapDay {
	if year <= 0 {
		year = s.Now().Year()
	}
	from := dateutil.StartOfYear(year, s.loc)
	to := dateutil.EndOfYear(year, s.loc)

	tasks, err := s.taskRepository.ListTasks(ctx, userID, domain.TaskFilter{ActiveFrom: &from, ActiveTo: &to})
	if err != nil {
		s.logDegraded("year_heatmap", userID, err)
		return []domain.HeatmapDay{}
	}

	buckets := heatmapBuckets{
		created:          make(map[string]int),
		completed:        make(map[string]int),
		subtaskCreated:   make(map[string]int),
		subtaskCompleted: make(map[string]int),
	}
	for _, task := range tasks {
		createdMap, completedMap := buckets.created, buckets.completed
		if !task.IsMain() {
			createdMap, completedMap = buckets.subtaskCreated, buckets.subtaskCompleted
		}

		if createdAt := task.CreatedAt.In(s.loc); createdAt.Year() == year {
			createdMap[dateutil.DateKey(createdAt)]++
		}
		if !task.IsCompleted() {
			continue
		}
		if updatedAt := task.UpdatedAt.In(s.loc); updatedAt.Year() == year {
			completedMap[dateutil.DateKey(updatedAt)]++
		}
	}

	days := dateutil.DaysInYear(year, s.loc)
	heatmap := make([]domain.HeatmapDay, 0, len(days))
	for _, day := range days {
		key := dateutil.DateKey(day)
		heatmap = append(heatmap, domain.HeatmapDay{
			Date:             key,
			Created:          buckets.created[key],
			Completed:        buckets.completed[key],
			SubtaskCreated:   buckets.subtaskCreated[key],
			SubtaskCompleted: buckets.subtaskCompleted[key],
		})
	}
	return heatmap
}
