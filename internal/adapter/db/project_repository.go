package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"taskstats/internal/core/domain"
	"taskstats/internal/core/ports"
)

const listProjectsQuery = `
SELECT id, user_id, name, status, created_at
FROM projects
WHERE user_id = ?
ORDER BY id`

// Main tasks are joined in the ON clause so projects without tasks still come back.
const listProjectsWithTasksQuery = `
SELECT
  p.id,
  p.user_id,
  p.name,
  p.status,
  p.created_at,
  t.id AS task_id,
  t.title AS task_title,
  t.status AS task_status,
  t.urgency AS task_urgency,
  t.importance AS task_importance,
  t.due_date AS task_due_date,
  t.created_at AS task_created_at,
  t.updated_at AS task_updated_at,
  t.category_id AS task_category_id
FROM projects p
LEFT JOIN tasks t ON t.project_id = p.id AND t.user_id = p.user_id AND t.parent_task_id IS NULL
WHERE p.user_id = ?
ORDER BY p.id, t.id`

type ProjectRepository struct {
	db *sqlx.DB
}

type projectRow struct {
	ID        uint64         `db:"id"`
	UserID    uint64         `db:"user_id"`
	Name      string         `db:"name"`
	Status    sql.NullString `db:"status"`
	CreatedAt time.Time      `db:"created_at"`
}

// joinedTaskRow holds the nullable task half of a LEFT JOIN.
type joinedTaskRow struct {
	TaskID         sql.NullInt64  `db:"task_id"`
	TaskTitle      sql.NullString `db:"task_title"`
	TaskStatus     sql.NullString `db:"task_status"`
	TaskUrgency    sql.NullBool   `db:"task_urgency"`
	TaskImportance sql.NullBool   `db:"task_importance"`
	TaskDueDate    sql.NullTime   `db:"task_due_date"`
	TaskCreatedAt  sql.NullTime   `db:"task_created_at"`
	TaskUpdatedAt  sql.NullTime   `db:"task_updated_at"`
	TaskCategoryID sql.NullInt64  `db:"task_category_id"`
}

type projectTaskRow struct {
	projectRow
	joinedTaskRow
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) ListProjects(ctx context.Context, userID uint64) ([]domain.Project, error) {
	var rows []projectRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(listProjectsQuery), userID); err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, mapProjectRow(row))
	}
	return projects, nil
}

func (r *ProjectRepository) ListProjectsWithTasks(ctx context.Context, userID uint64) ([]domain.Project, error) {
	var rows []projectTaskRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(listProjectsWithTasksQuery), userID); err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0)
	index := make(map[uint64]int)
	for _, row := range rows {
		pos, ok := index[row.ID]
		if !ok {
			pos = len(projects)
			index[row.ID] = pos
			projects = append(projects, mapProjectRow(row.projectRow))
		}

		task, ok := row.joinedTaskRow.toDomain(row.UserID)
		if !ok {
			continue
		}
		projectID := row.ID
		projectName := row.Name
		task.ProjectID = &projectID
		task.ProjectName = &projectName
		projects[pos].Tasks = append(projects[pos].Tasks, task)
	}
	return projects, nil
}

func mapProjectRow(row projectRow) domain.Project {
	return domain.Project{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		Status:    domain.ParseProjectStatus(row.Status.String),
		CreatedAt: row.CreatedAt,
	}
}

// toDomain returns false when the join produced no task.
func (row joinedTaskRow) toDomain(userID uint64) (domain.Task, bool) {
	if !row.TaskID.Valid {
		return domain.Task{}, false
	}

	task := domain.Task{
		ID:         uint64(row.TaskID.Int64),
		UserID:     userID,
		Title:      row.TaskTitle.String,
		Status:     domain.ParseTaskStatus(row.TaskStatus.String),
		Urgency:    row.TaskUrgency.Bool,
		Importance: row.TaskImportance.Bool,
		CreatedAt:  row.TaskCreatedAt.Time,
		UpdatedAt:  row.TaskUpdatedAt.Time,
		CategoryID: nullID(row.TaskCategoryID),
	}
	if row.TaskDueDate.Valid {
		value := row.TaskDueDate.Time
		task.DueDate = &value
	}
	return task, true
}
