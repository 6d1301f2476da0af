package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// Pagination describes one page of a task listing.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

// TaskPage bundles a page of tasks with its pagination metadata.
type TaskPage struct {
	Tasks      []*models.Task `json:"tasks"`
	Pagination Pagination     `json:"pagination"`
}

// TaskService implements owner-scoped task operations. Every call takes
// the authenticated user's ID and the repository matches rows against it,
// so a task ID belonging to another user behaves like a missing task.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTaskService constructs a TaskService.
func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

// Create stores a new task for the user.
func (s *TaskService) Create(ctx context.Context, userID, title, description string) (*models.Task, error) {
	if title == "" || description == "" {
		return nil, common.ErrorValidation
	}

	task := &models.Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: description,
	}

	task, err := s.repomanager.Tasks(s.db).Create(ctx, task)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return task, nil
}

// Update replaces title and description of the user's task.
func (s *TaskService) Update(ctx context.Context, userID, id, title, description string) error {
	if title == "" || description == "" {
		return common.ErrorValidation
	}

	return s.mapRepoError(s.repomanager.Tasks(s.db).Update(ctx, userID, id, title, description))
}

// Delete removes the user's task.
func (s *TaskService) Delete(ctx context.Context, userID, id string) error {
	return s.mapRepoError(s.repomanager.Tasks(s.db).Delete(ctx, userID, id))
}

// ChangeStatus sets the completion flag; the completion timestamp is set
// when completing and cleared when reopening.
func (s *TaskService) ChangeStatus(ctx context.Context, userID, id string, complete bool) error {
	return s.mapRepoError(s.repomanager.Tasks(s.db).SetCompleted(ctx, userID, id, complete, time.Now()))
}

// GetByID returns the user's task.
func (s *TaskService) GetByID(ctx context.Context, userID, id string) (*models.Task, error) {
	task, err := s.repomanager.Tasks(s.db).GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return task, nil
}

// List returns one page of the user's tasks plus pagination metadata.
// Page and limit fall back to defaults when absent or non-positive.
func (s *TaskService) List(ctx context.Context, filter *models.TaskFilter) (*TaskPage, error) {
	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}

	repo := s.repomanager.Tasks(s.db)

	total, err := repo.Count(ctx, filter)
	if err != nil {
		return nil, common.ErrorInternal
	}

	tasks, err := repo.List(ctx, filter)
	if err != nil {
		return nil, common.ErrorInternal
	}

	totalPages := total / int64(filter.Limit)
	if total%int64(filter.Limit) != 0 {
		totalPages++
	}

	return &TaskPage{
		Tasks: tasks,
		Pagination: Pagination{
			Total:      total,
			Page:       filter.Page,
			Limit:      filter.Limit,
			TotalPages: totalPages,
		},
	}, nil
}

// Stats returns total/pending/completed counts for the user.
func (s *TaskService) Stats(ctx context.Context, userID string) (*models.TaskStats, error) {
	stats, err := s.repomanager.Tasks(s.db).Stats(ctx, userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return stats, nil
}

func (s *TaskService) mapRepoError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, common.ErrorNotFound) {
		return common.ErrorNotFound
	}
	return common.ErrorInternal
}
