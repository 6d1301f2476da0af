package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {

	query :=
		`INSERT INTO tasks (id, user_id, title, description)
         VALUES ($1, $2, $3, $4)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		task.ID, task.UserID, task.Title, task.Description).Scan(&task.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID string, id string) (*models.Task, error) {
	query :=
		`SELECT id, user_id, title, description, completed, created_at, completed_at
		 FROM tasks
		 WHERE id = $1 AND user_id = $2
		 `

	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description,
		&task.Completed, &task.CreatedAt, &task.CompletedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

func (r *PostgresRepository) Update(ctx context.Context, userID string, id string, title string, description string) error {
	query :=
		`UPDATE tasks SET title = $3, description = $4
		 WHERE id = $1 AND user_id = $2
		 `

	return r.execExpectingRow(ctx, query, id, userID, title, description)
}

func (r *PostgresRepository) Delete(ctx context.Context, userID string, id string) error {
	query :=
		`DELETE FROM tasks
		 WHERE id = $1 AND user_id = $2
		 `

	return r.execExpectingRow(ctx, query, id, userID)
}

func (r *PostgresRepository) SetCompleted(ctx context.Context, userID string, id string, completed bool, at time.Time) error {
	query :=
		`UPDATE tasks SET completed = $3, completed_at = $4
		 WHERE id = $1 AND user_id = $2
		 `

	var completedAt *time.Time
	if completed {
		completedAt = &at
	}

	return r.execExpectingRow(ctx, query, id, userID, completed, completedAt)
}

func (r *PostgresRepository) List(ctx context.Context, filter *models.TaskFilter) ([]*models.Task, error) {
	query :=
		`SELECT id, user_id, title, description, completed, created_at, completed_at
		 FROM tasks
		 ` + filterClause + `
		 ORDER BY created_at DESC
		 LIMIT $4 OFFSET $5
		 `

	offset := (filter.Page - 1) * filter.Limit

	rows, err := r.db.QueryContext(ctx, query,
		filter.UserID, searchPattern(filter.Search), completedArg(filter.Completed),
		filter.Limit, offset)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Task{}
	for rows.Next() {
		task := &models.Task{}
		err := rows.Scan(&task.ID, &task.UserID, &task.Title, &task.Description,
			&task.Completed, &task.CreatedAt, &task.CompletedAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Count(ctx context.Context, filter *models.TaskFilter) (int64, error) {
	query :=
		`SELECT COUNT(*)
		 FROM tasks
		 ` + filterClause + `
		 `

	var total int64
	err := r.db.QueryRowContext(ctx, query,
		filter.UserID, searchPattern(filter.Search), completedArg(filter.Completed)).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return total, nil
}

func (r *PostgresRepository) Stats(ctx context.Context, userID string) (*models.TaskStats, error) {
	query :=
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE NOT completed),
		        COUNT(*) FILTER (WHERE completed)
		 FROM tasks
		 WHERE user_id = $1
		 `

	stats := &models.TaskStats{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&stats.Total, &stats.Pending, &stats.Completed)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return stats, nil
}

// filterClause is shared by List and Count so pagination totals always agree
// with page contents. $2 is the ILIKE pattern, $3 the optional completed
// filter (NULL disables it).
const filterClause = `WHERE user_id = $1
		   AND (title ILIKE $2 OR description ILIKE $2)
		   AND ($3::boolean IS NULL OR completed = $3)`

func searchPattern(search string) string {
	return "%" + search + "%"
}

func completedArg(completed *bool) any {
	if completed == nil {
		return nil
	}
	return *completed
}

func (r *PostgresRepository) execExpectingRow(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
