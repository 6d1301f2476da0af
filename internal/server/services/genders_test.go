package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

type fakeGendersRepo struct {
	listOut []*models.Gender
	listErr error

	getOut *models.Gender
	getErr error
}

func (f *fakeGendersRepo) List(ctx context.Context) ([]*models.Gender, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeGendersRepo) GetByID(ctx context.Context, id string) (*models.Gender, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func TestGenderList(t *testing.T) {
	rm := &fakeRepoManager{g: &fakeGendersRepo{listOut: []*models.Gender{{ID: "g1", Name: "Male"}}}}
	s := NewGenderService(nil, rm)

	got, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Male" {
		t.Fatalf("unexpected genders: %+v", got)
	}
}

func TestGenderGetByID_NotFound(t *testing.T) {
	rm := &fakeRepoManager{g: &fakeGendersRepo{getErr: common.ErrorNotFound}}
	s := NewGenderService(nil, rm)

	_, err := s.GetByID(context.Background(), "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestGenderList_InternalError(t *testing.T) {
	rm := &fakeRepoManager{g: &fakeGendersRepo{listErr: errors.New("db down")}}
	s := NewGenderService(nil, rm)

	_, err := s.List(context.Background())
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("expected common.ErrorInternal, got %v", err)
	}
}
