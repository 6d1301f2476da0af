package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
)

// GenderService exposes the gender reference data.
type GenderService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewGenderService(db *sql.DB, m repomanager.RepositoryManager) *GenderService {
	return &GenderService{db: db, repomanager: m}
}

// List returns all genders ordered by name.
func (s *GenderService) List(ctx context.Context) ([]*models.Gender, error) {
	result, err := s.repomanager.Genders(s.db).List(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return result, nil
}

// GetByID returns one gender.
func (s *GenderService) GetByID(ctx context.Context, id string) (*models.Gender, error) {
	g, err := s.repomanager.Genders(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return g, nil
}
