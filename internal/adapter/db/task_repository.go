package db

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"taskstats/internal/core/domain"
	"taskstats/internal/core/ports"
)

const selectTasksQuery = `
SELECT
  t.id,
  t.user_id,
  t.title,
  t.status,
  t.urgency,
  t.importance,
  t.due_date,
  t.created_at,
  t.updated_at,
  t.category_id,
  t.project_id,
  t.parent_task_id,
  p.name AS project_name
FROM tasks t
LEFT JOIN projects p ON p.id = t.project_id AND p.user_id = t.user_id
WHERE t.user_id = ?`

// windowSlack widens date-window filters so that zone offsets between the
// database and the stats location never drop a row. Callers refine in memory.
const windowSlack = 24 * time.Hour

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID           uint64         `db:"id"`
	UserID       uint64         `db:"user_id"`
	Title        string         `db:"title"`
	Status       sql.NullString `db:"status"`
	Urgency      bool           `db:"urgency"`
	Importance   bool           `db:"importance"`
	DueDate      sql.NullTime   `db:"due_date"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
	CategoryID   sql.NullInt64  `db:"category_id"`
	ProjectID    sql.NullInt64  `db:"project_id"`
	ParentTaskID sql.NullInt64  `db:"parent_task_id"`
	ProjectName  sql.NullString `db:"project_name"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListTasks(ctx context.Context, userID uint64, filter domain.TaskFilter) ([]domain.Task, error) {
	query, args := buildListTasksQuery(userID, filter)

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func buildListTasksQuery(userID uint64, filter domain.TaskFilter) (string, []any) {
	var b strings.Builder
	b.WriteString(selectTasksQuery)
	args := []any{userID}

	if filter.MainOnly {
		b.WriteString("\n  AND t.parent_task_id IS NULL")
	}
	if filter.ExcludeCompleted {
		b.WriteString("\n  AND (t.status IS NULL OR t.status <> 'completed')")
	}
	if filter.ActiveFrom != nil && filter.ActiveTo != nil {
		from := filter.ActiveFrom.Add(-windowSlack)
		to := filter.ActiveTo.Add(windowSlack)
		b.WriteString("\n  AND ((t.created_at BETWEEN ? AND ?) OR (t.updated_at BETWEEN ? AND ?) OR (t.due_date BETWEEN ? AND ?))")
		args = append(args, from, to, from, to, from, to)
	}

	b.WriteString("\nORDER BY t.id")
	return b.String(), args
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:         row.ID,
		UserID:     row.UserID,
		Title:      row.Title,
		Status:     domain.ParseTaskStatus(row.Status.String),
		Urgency:    row.Urgency,
		Importance: row.Importance,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	task.CategoryID = nullID(row.CategoryID)
	task.ProjectID = nullID(row.ProjectID)
	task.ParentTaskID = nullID(row.ParentTaskID)

	if row.ProjectName.Valid {
		value := row.ProjectName.String
		task.ProjectName = &value
	}

	return task
}

func nullID(value sql.NullInt64) *uint64 {
	if !value.Valid {
		return nil
	}
	id := uint64(value.Int64)
	return &id
}
