package genders

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Gender, error)
	GetByID(ctx context.Context, id string) (*models.Gender, error)
}
