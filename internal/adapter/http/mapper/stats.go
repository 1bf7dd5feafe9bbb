package mapper

import (
	"time"

	"taskstats/internal/adapter/http/dto"
	"taskstats/internal/core/domain"
)

func ToTaskStats(stats domain.TaskStats) dto.TaskStats {
	return dto.TaskStats{
		Total:          stats.Total,
		Completed:      stats.Completed,
		InProgress:     stats.InProgress,
		Pending:        stats.Pending,
		Blocked:        stats.Blocked,
		Overdue:        stats.Overdue,
		DueToday:       stats.DueToday,
		CompletionRate: stats.CompletionRate,
		OverdueRate:    stats.OverdueRate,
	}
}

func ToQuadrantStats(stats domain.QuadrantStats) dto.QuadrantStats {
	return dto.QuadrantStats{
		UrgentImportant:           stats.UrgentImportant,
		ImportantNotUrgent:        stats.ImportantNotUrgent,
		UrgentNotImportant:        stats.UrgentNotImportant,
		NeitherUrgentNorImportant: stats.NeitherUrgentNorImportant,
	}
}

func ToCategoryStats(stats []domain.CategoryStat) []dto.CategoryStat {
	items := make([]dto.CategoryStat, 0, len(stats))
	for _, stat := range stats {
		items = append(items, dto.CategoryStat{
			CategoryID:     stat.CategoryID,
			CategoryName:   stat.CategoryName,
			Total:          stat.Total,
			Completed:      stat.Completed,
			Pending:        stat.Pending,
			InProgress:     stat.InProgress,
			Blocked:        stat.Blocked,
			CompletionRate: stat.CompletionRate,
		})
	}
	return items
}

func ToProjectStats(stats domain.ProjectStats) dto.ProjectStats {
	return dto.ProjectStats{
		Total:          stats.Total,
		Active:         stats.Active,
		Completed:      stats.Completed,
		Planning:       stats.Planning,
		OnHold:         stats.OnHold,
		Cancelled:      stats.Cancelled,
		CompletionRate: stats.CompletionRate,
	}
}

func ToProjectTaskStats(stats []domain.ProjectTaskStat) []dto.ProjectTaskStat {
	items := make([]dto.ProjectTaskStat, 0, len(stats))
	for _, stat := range stats {
		items = append(items, dto.ProjectTaskStat{
			ProjectID:       stat.ProjectID,
			ProjectName:     stat.ProjectName,
			ProjectStatus:   string(stat.ProjectStatus),
			TotalTasks:      stat.TotalTasks,
			CompletedTasks:  stat.CompletedTasks,
			InProgressTasks: stat.InProgressTasks,
			PendingTasks:    stat.PendingTasks,
			BlockedTasks:    stat.BlockedTasks,
			OverdueTasks:    stat.OverdueTasks,
			CompletionRate:  stat.CompletionRate,
			Progress:        stat.Progress,
		})
	}
	return items
}

func ToTimeSeries(points []domain.TimeSeriesPoint) []dto.TimeSeriesPoint {
	items := make([]dto.TimeSeriesPoint, 0, len(points))
	for _, point := range points {
		items = append(items, dto.TimeSeriesPoint{
			Date:      point.Date,
			Created:   point.Created,
			Completed: point.Completed,
		})
	}
	return items
}

func ToHeatmap(days []domain.HeatmapDay) []dto.HeatmapDay {
	items := make([]dto.HeatmapDay, 0, len(days))
	for _, day := range days {
		items = append(items, dto.HeatmapDay{
			Date:             day.Date,
			Created:          day.Created,
			Completed:        day.Completed,
			SubtaskCreated:   day.SubtaskCreated,
			SubtaskCompleted: day.SubtaskCompleted,
		})
	}
	return items
}

func ToTaskDurations(durations []domain.TaskDuration) []dto.TaskDuration {
	items := make([]dto.TaskDuration, 0, len(durations))
	for _, duration := range durations {
		item := dto.TaskDuration{
			TaskID:       duration.TaskID,
			TaskTitle:    duration.TaskTitle,
			StartDate:    duration.StartDate.Format(time.RFC3339),
			DurationDays: duration.DurationDays,
			Status:       string(duration.Status),
		}

		if duration.EndDate != nil {
			value := duration.EndDate.Format(time.RFC3339)
			item.EndDate = &value
		}

		if duration.ProjectName != nil {
			value := *duration.ProjectName
			item.ProjectName = &value
		}

		items = append(items, item)
	}
	return items
}
