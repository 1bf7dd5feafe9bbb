package domain

import (
	"fmt"
	"strings"
	"time"
)

type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// ParsePeriod returns ErrInvalidPeriod for anything other than day, week or month.
func ParsePeriod(value string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(value))); p {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPeriod, value)
	}
}

type TaskStats struct {
	Total          int
	Completed      int
	InProgress     int
	Pending        int
	Blocked        int
	Overdue        int
	DueToday       int
	CompletionRate float64 // percentage
	OverdueRate    float64 // percentage
}

type QuadrantStats struct {
	UrgentImportant           int
	ImportantNotUrgent        int
	UrgentNotImportant        int
	NeitherUrgentNorImportant int
}

func (q QuadrantStats) Total() int {
	return q.UrgentImportant + q.ImportantNotUrgent + q.UrgentNotImportant + q.NeitherUrgentNorImportant
}

type CategoryStat struct {
	CategoryID     uint64
	CategoryName   string
	Total          int
	Completed      int
	Pending        int
	InProgress     int
	Blocked        int
	CompletionRate float64 // percentage
}

// ProjectStats counts projects by status. Its CompletionRate is a fraction in [0,1],
// unlike every other rate in this package.
type ProjectStats struct {
	Total          int
	Active         int
	Completed      int
	Planning       int
	OnHold         int
	Cancelled      int
	CompletionRate float64
}

type ProjectTaskStat struct {
	ProjectID       uint64
	ProjectName     string
	ProjectStatus   ProjectStatus
	TotalTasks      int
	CompletedTasks  int
	InProgressTasks int
	PendingTasks    int
	BlockedTasks    int
	OverdueTasks    int
	CompletionRate  float64 // percentage
	Progress        float64 // same value as CompletionRate
}

type TimeSeriesPoint struct {
	Date      string
	Created   int
	Completed int
}

type HeatmapDay struct {
	Date             string
	Created          int
	Completed        int
	SubtaskCreated   int
	SubtaskCompleted int
}

// TaskDuration is one entry of the duration ranking. EndDate is the
// resolved end used for DurationDays; UpdatedAt stands in for completion time.
type TaskDuration struct {
	TaskID       uint64
	TaskTitle    string
	StartDate    time.Time
	EndDate      *time.Time
	DurationDays int
	Status       TaskStatus
	ProjectName  *string
}
