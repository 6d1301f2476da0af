package tasks

import (
	"context"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

// Repository is the owner-scoped task gateway: every operation that reads
// or mutates a task takes the owning user's ID and matches rows against it,
// so one user can never reach another user's tasks.
type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	GetByID(ctx context.Context, userID string, id string) (*models.Task, error)
	Update(ctx context.Context, userID string, id string, title string, description string) error
	Delete(ctx context.Context, userID string, id string) error
	SetCompleted(ctx context.Context, userID string, id string, completed bool, at time.Time) error
	List(ctx context.Context, filter *models.TaskFilter) ([]*models.Task, error)
	Count(ctx context.Context, filter *models.TaskFilter) (int64, error)
	Stats(ctx context.Context, userID string) (*models.TaskStats, error)
}
