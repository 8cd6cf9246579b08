package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/templui/tasklist/internal/model"
	"github.com/templui/tasklist/internal/repository"
	"github.com/templui/tasklist/internal/validation"
)

type GoalService struct {
	repo     repository.GoalRepository
	taskRepo repository.TaskRepository
}

func NewGoalService(repo repository.GoalRepository, taskRepo repository.TaskRepository) *GoalService {
	return &GoalService{
		repo:     repo,
		taskRepo: taskRepo,
	}
}

func (s *GoalService) Goals(ctx context.Context, sortBy string) ([]*model.Goal, error) {
	return s.repo.Goals(ctx, sortBy)
}

// Goal looks up a goal by its raw path id, without its tasks
func (s *GoalService) Goal(ctx context.Context, rawID string) (*model.Goal, error) {
	id, err := parseID(rawID)
	if errors.Is(err, errIDOutOfRange) {
		return nil, fmt.Errorf("%w: %v", repository.ErrGoalNotFound, err)
	}
	if err != nil {
		return nil, err
	}
	return s.repo.ByID(ctx, id)
}

func (s *GoalService) GoalWithTasks(ctx context.Context, rawID string) (*model.Goal, error) {
	goal, err := s.Goal(ctx, rawID)
	if err != nil {
		return nil, err
	}

	goal.Tasks, err = s.taskRepo.TasksByGoal(ctx, goal.ID)
	if err != nil {
		return nil, err
	}

	return goal, nil
}

func (s *GoalService) Create(ctx context.Context, fields model.GoalFields) (*model.Goal, error) {
	err := validation.Struct(fields)
	if err != nil {
		return nil, err
	}

	goal, err := model.NewGoal(fields)
	if err != nil {
		return nil, err
	}

	err = s.repo.Create(ctx, goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

func (s *GoalService) Update(ctx context.Context, rawID string, fields model.GoalFields) (*model.Goal, error) {
	goal, err := s.Goal(ctx, rawID)
	if err != nil {
		return nil, err
	}

	err = validation.Struct(fields)
	if err != nil {
		return nil, err
	}

	err = goal.Update(fields)
	if err != nil {
		return nil, err
	}

	err = s.repo.Update(ctx, goal)
	if err != nil {
		return nil, err
	}

	return goal, nil
}

// Delete removes the goal. Its tasks stay, detached.
func (s *GoalService) Delete(ctx context.Context, rawID string) (*model.Goal, error) {
	goal, err := s.Goal(ctx, rawID)
	if err != nil {
		return nil, err
	}

	err = s.repo.Delete(ctx, goal.ID)
	if err != nil {
		return nil, err
	}

	return goal, nil
}

// AssignTasks links the listed tasks to the goal and returns the goal with
// all of its tasks loaded.
func (s *GoalService) AssignTasks(ctx context.Context, rawID string, assignment model.TaskAssignment) (*model.Goal, error) {
	goal, err := s.Goal(ctx, rawID)
	if err != nil {
		return nil, err
	}

	err = validation.Struct(assignment)
	if err != nil {
		return nil, err
	}

	err = s.repo.AssignTasks(ctx, goal.ID, assignment.TaskIDs)
	if err != nil {
		return nil, err
	}

	goal.Tasks, err = s.taskRepo.TasksByGoal(ctx, goal.ID)
	if err != nil {
		return nil, err
	}

	return goal, nil
}
