package domain

import (
	"strings"
	"time"

	"taskstats/internal/core/dateutil"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusBlocked    TaskStatus = "blocked"
	TaskStatusCompleted  TaskStatus = "completed"
)

// ParseTaskStatus maps a stored status onto a known one. Anything unknown is pending.
func ParseTaskStatus(value string) TaskStatus {
	switch TaskStatus(strings.ToLower(strings.TrimSpace(value))) {
	case TaskStatusInProgress, "in_progress":
		return TaskStatusInProgress
	case TaskStatusBlocked:
		return TaskStatusBlocked
	case TaskStatusCompleted:
		return TaskStatusCompleted
	default:
		return TaskStatusPending
	}
}

type Task struct {
	ID           uint64
	UserID       uint64
	Title        string
	Status       TaskStatus
	Urgency      bool
	Importance   bool
	DueDate      *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CategoryID   *uint64
	ProjectID    *uint64
	ProjectName  *string
	ParentTaskID *uint64
}

func (t Task) IsMain() bool {
	return t.ParentTaskID == nil
}

func (t Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

// IsOverdue reports whether now has reached the day after the due date.
// A task is never overdue on its due date itself.
func (t Task) IsOverdue(now time.Time) bool {
	due, ok := t.dueDay(now.Location())
	if !ok {
		return false
	}
	return !now.Before(dateutil.DayAfter(due))
}

func (t Task) IsDueToday(now time.Time) bool {
	due, ok := t.dueDay(now.Location())
	if !ok {
		return false
	}
	return dateutil.InRange(due, dateutil.StartOfDay(now), dateutil.EndOfDay(now))
}

func (t Task) IsDueThisWeek(now time.Time, weekStart time.Weekday) bool {
	due, ok := t.dueDay(now.Location())
	if !ok {
		return false
	}
	return dateutil.InRange(due, dateutil.StartOfWeek(now, weekStart), dateutil.EndOfWeek(now, weekStart))
}

// DueDayIn returns the due date as midnight of the same calendar day in loc.
// The store keeps due dates as bare dates, so the day is not converted between zones.
func (t Task) DueDayIn(loc *time.Location) *time.Time {
	if t.DueDate == nil {
		return nil
	}
	y, m, d := t.DueDate.Date()
	due := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return &due
}

// dueDay reads the due date as a calendar day in loc. Completed tasks have none.
func (t Task) dueDay(loc *time.Location) (time.Time, bool) {
	if t.IsCompleted() || t.DueDate == nil {
		return time.Time{}, false
	}
	return *t.DueDayIn(loc), true
}

// TaskFilter narrows a task listing at the store level.
type TaskFilter struct {
	MainOnly         bool
	ExcludeCompleted bool
	// ActiveFrom/ActiveTo keep tasks created, updated or due inside the window.
	ActiveFrom *time.Time
	ActiveTo   *time.Time
}
