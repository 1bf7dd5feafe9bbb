package domain

import (
	"strings"
	"time"
)

type ProjectStatus string

const (
	ProjectStatusPlanning  ProjectStatus = "planning"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusOnHold    ProjectStatus = "on-hold"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

func ParseProjectStatus(value string) ProjectStatus {
	switch ProjectStatus(strings.ToLower(strings.TrimSpace(value))) {
	case ProjectStatusActive:
		return ProjectStatusActive
	case ProjectStatusCompleted:
		return ProjectStatusCompleted
	case ProjectStatusOnHold, "on_hold":
		return ProjectStatusOnHold
	case ProjectStatusCancelled:
		return ProjectStatusCancelled
	default:
		return ProjectStatusPlanning
	}
}

type Project struct {
	ID        uint64
	UserID    uint64
	Name      string
	Status    ProjectStatus
	CreatedAt time.Time
	// Tasks holds the project's main tasks when loaded with ListProjectsWithTasks.
	Tasks []Task
}
