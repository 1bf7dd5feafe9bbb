package db

import (
	"context"

	"github.com/jmoiron/sqlx"

	"taskstats/internal/core/domain"
	"taskstats/internal/core/ports"
)

const listCategoriesWithTasksQuery = `
SELECT
  c.id,
  c.user_id,
  c.name,
  t.id AS task_id,
  t.title AS task_title,
  t.status AS task_status,
  t.urgency AS task_urgency,
  t.importance AS task_importance,
  t.due_date AS task_due_date,
  t.created_at AS task_created_at,
  t.updated_at AS task_updated_at,
  t.category_id AS task_category_id
FROM categories c
LEFT JOIN tasks t ON t.category_id = c.id AND t.user_id = c.user_id AND t.parent_task_id IS NULL
WHERE c.user_id = ?
ORDER BY c.id, t.id`

type CategoryRepository struct {
	db *sqlx.DB
}

type categoryTaskRow struct {
	ID     uint64 `db:"id"`
	UserID uint64 `db:"user_id"`
	Name   string `db:"name"`
	joinedTaskRow
}

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) ListCategoriesWithTasks(ctx context.Context, userID uint64) ([]domain.Category, error) {
	var rows []categoryTaskRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(listCategoriesWithTasksQuery), userID); err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0)
	index := make(map[uint64]int)
	for _, row := range rows {
		pos, ok := index[row.ID]
		if !ok {
			pos = len(categories)
			index[row.ID] = pos
			categories = append(categories, domain.Category{
				ID:     row.ID,
				UserID: row.UserID,
				Name:   row.Name,
			})
		}

		if task, ok := row.joinedTaskRow.toDomain(row.UserID); ok {
			categories[pos].Tasks = append(categories[pos].Tasks, task)
		}
	}
	return categories, nil
}
