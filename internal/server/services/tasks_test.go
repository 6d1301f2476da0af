package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

type fakeTasksRepo struct {
	createErr error

	getOut *models.Task
	getErr error

	updateErr error
	deleteErr error

	setCompletedArgs []bool
	setCompletedErr  error

	listOut []*models.Task
	listErr error

	lastFilter *models.TaskFilter

	countOut int64
	countErr error

	statsOut *models.TaskStats
	statsErr error
}

func (f *fakeTasksRepo) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	task.CreatedAt = time.Now()
	return task, nil
}

func (f *fakeTasksRepo) GetByID(ctx context.Context, userID string, id string) (*models.Task, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeTasksRepo) Update(ctx context.Context, userID string, id string, title string, description string) error {
	return f.updateErr
}

func (f *fakeTasksRepo) Delete(ctx context.Context, userID string, id string) error {
	return f.deleteErr
}

func (f *fakeTasksRepo) SetCompleted(ctx context.Context, userID string, id string, completed bool, at time.Time) error {
	f.setCompletedArgs = append(f.setCompletedArgs, completed)
	return f.setCompletedErr
}

func (f *fakeTasksRepo) List(ctx context.Context, filter *models.TaskFilter) ([]*models.Task, error) {
	f.lastFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeTasksRepo) Count(ctx context.Context, filter *models.TaskFilter) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.countOut, nil
}

func (f *fakeTasksRepo) Stats(ctx context.Context, userID string) (*models.TaskStats, error) {
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return f.statsOut, nil
}

func newTaskService(t *testing.T, repo *fakeTasksRepo) *TaskService {
	t.Helper()
	// no transactions here, the db handle is never touched by the fakes
	return NewTaskService(nil, &fakeRepoManager{t: repo})
}

func TestTaskCreate_Success(t *testing.T) {
	s := newTaskService(t, &fakeTasksRepo{})

	task, err := s.Create(context.Background(), "u1", "shopping", "milk and eggs")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if task.ID == "" {
		t.Errorf("task must get a generated id")
	}
	if task.UserID != "u1" || task.Title != "shopping" || task.Description != "milk and eggs" {
		t.Errorf("unexpected task: %+v", task)
	}
	if task.Completed {
		t.Errorf("new task must start pending")
	}
}

func TestTaskCreate_MissingFields(t *testing.T) {
	s := newTaskService(t, &fakeTasksRepo{})

	for _, tc := range []struct {
		name, title, description string
	}{
		{"no title", "", "desc"},
		{"no description", "title", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Create(context.Background(), "u1", tc.title, tc.description)
			if !errors.Is(err, common.ErrorValidation) {
				t.Fatalf("expected common.ErrorValidation, got %v", err)
			}
		})
	}
}

func TestTaskUpdate_MissingFields(t *testing.T) {
	s := newTaskService(t, &fakeTasksRepo{})

	err := s.Update(context.Background(), "u1", "t1", "", "")
	if !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("expected common.ErrorValidation, got %v", err)
	}
}

func TestTaskUpdate_NotFound(t *testing.T) {
	s := newTaskService(t, &fakeTasksRepo{updateErr: common.ErrorNotFound})

	err := s.Update(context.Background(), "u1", "missing", "a", "b")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestTaskDelete_NotFound(t *testing.T) {
	s := newTaskService(t, &fakeTasksRepo{deleteErr: common.ErrorNotFound})

	err := s.Delete(context.Background(), "u1", "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestTaskChangeStatus(t *testing.T) {
	repo := &fakeTasksRepo{}
	s := newTaskService(t, repo)

	if err := s.ChangeStatus(context.Background(), "u1", "t1", true); err != nil {
		t.Fatalf("ChangeStatus error: %v", err)
	}
	if err := s.ChangeStatus(context.Background(), "u1", "t1", false); err != nil {
		t.Fatalf("ChangeStatus error: %v", err)
	}
	if len(repo.setCompletedArgs) != 2 || !repo.setCompletedArgs[0] || repo.setCompletedArgs[1] {
		t.Fatalf("unexpected status sequence: %v", repo.setCompletedArgs)
	}
}

func TestTaskGetByID_InternalError(t *testing.T) {
	s := newTaskService(t, &fakeTasksRepo{getErr: errors.New("db down")})

	_, err := s.GetByID(context.Background(), "u1", "t1")
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("expected common.ErrorInternal, got %v", err)
	}
}

func TestTaskList_DefaultsAndTotalPages(t *testing.T) {
	repo := &fakeTasksRepo{countOut: 25, listOut: []*models.Task{{ID: "t1"}}}
	s := newTaskService(t, repo)

	page, err := s.List(context.Background(), &models.TaskFilter{UserID: "u1"})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if repo.lastFilter.Page != 1 || repo.lastFilter.Limit != 10 {
		t.Errorf("expected default paging, got page=%d limit=%d", repo.lastFilter.Page, repo.lastFilter.Limit)
	}
	p := page.Pagination
	if p.Total != 25 || p.Page != 1 || p.Limit != 10 || p.TotalPages != 3 {
		t.Errorf("unexpected pagination: %+v", p)
	}
	if len(page.Tasks) != 1 {
		t.Errorf("unexpected tasks: %+v", page.Tasks)
	}
}

func TestTaskList_ExactPageCount(t *testing.T) {
	repo := &fakeTasksRepo{countOut: 20, listOut: []*models.Task{}}
	s := newTaskService(t, repo)

	page, err := s.List(context.Background(), &models.TaskFilter{UserID: "u1", Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if page.Pagination.TotalPages != 2 {
		t.Fatalf("expected 2 pages for 20/10, got %d", page.Pagination.TotalPages)
	}
}

func TestTaskStats(t *testing.T) {
	repo := &fakeTasksRepo{statsOut: &models.TaskStats{Total: 5, Pending: 2, Completed: 3}}
	s := newTaskService(t, repo)

	stats, err := s.Stats(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}
	if stats.Total != 5 || stats.Pending != 2 || stats.Completed != 3 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
