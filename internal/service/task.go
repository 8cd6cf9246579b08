package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/templui/tasklist/internal/model"
	"github.com/templui/tasklist/internal/repository"
	"github.com/templui/tasklist/internal/service/notify"
	"github.com/templui/tasklist/internal/validation"
)

type TaskService struct {
	repo     repository.TaskRepository
	notifier notify.Provider
	now      func() time.Time
}

func NewTaskService(repo repository.TaskRepository, notifier notify.Provider) *TaskService {
	return &TaskService{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *TaskService) Tasks(ctx context.Context, sortBy string) ([]*model.Task, error) {
	return s.repo.Tasks(ctx, sortBy)
}

// Task looks up a task by its raw path id
func (s *TaskService) Task(ctx context.Context, rawID string) (*model.Task, error) {
	id, err := parseID(rawID)
	if errors.Is(err, errIDOutOfRange) {
		return nil, fmt.Errorf("%w: %v", repository.ErrTaskNotFound, err)
	}
	if err != nil {
		return nil, err
	}
	return s.repo.ByID(ctx, id)
}

func (s *TaskService) Create(ctx context.Context, fields model.TaskFields) (*model.Task, error) {
	err := validation.Struct(fields)
	if err != nil {
		return nil, err
	}

	task, err := model.NewTask(fields)
	if err != nil {
		return nil, err
	}

	err = s.repo.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

func (s *TaskService) Update(ctx context.Context, rawID string, fields model.TaskFields) (*model.Task, error) {
	task, err := s.Task(ctx, rawID)
	if err != nil {
		return nil, err
	}

	err = validation.Struct(fields)
	if err != nil {
		return nil, err
	}

	err = task.Update(fields)
	if err != nil {
		return nil, err
	}

	err = s.repo.Update(ctx, task)
	if err != nil {
		return nil, err
	}

	return task, nil
}

// Delete removes the task and returns it as it was before deletion
func (s *TaskService) Delete(ctx context.Context, rawID string) (*model.Task, error) {
	task, err := s.Task(ctx, rawID)
	if err != nil {
		return nil, err
	}

	err = s.repo.Delete(ctx, task.ID)
	if err != nil {
		return nil, err
	}

	return task, nil
}

// MarkComplete stamps the task as completed now and notifies the provider.
// The completion is only persisted once the notification succeeded.
func (s *TaskService) MarkComplete(ctx context.Context, rawID string) (*model.Task, error) {
	task, err := s.Task(ctx, rawID)
	if err != nil {
		return nil, err
	}

	task.MarkComplete(s.now())

	err = s.notifier.TaskCompleted(ctx, task)
	if err != nil {
		slog.Error("failed to send completion notification", "error", err, "task_id", task.ID, "provider", s.notifier.Name())
		return nil, fmt.Errorf("notify task completed: %w", err)
	}

	err = s.repo.Update(ctx, task)
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) MarkIncomplete(ctx context.Context, rawID string) (*model.Task, error) {
	task, err := s.Task(ctx, rawID)
	if err != nil {
		return nil, err
	}

	task.MarkIncomplete()

	err = s.repo.Update(ctx, task)
	if err != nil {
		return nil, err
	}

	return task, nil
}
