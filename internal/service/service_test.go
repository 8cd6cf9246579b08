package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/templui/tasklist/internal/db/dbtest"
	"github.com/templui/tasklist/internal/model"
	"github.com/templui/tasklist/internal/repository"
)

// recordingNotifier counts completions and optionally fails them.
type recordingNotifier struct {
	mu    sync.Mutex
	tasks []string
	err   error
}

func (n *recordingNotifier) TaskCompleted(_ context.Context, task *model.Task) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.tasks = append(n.tasks, task.Title)
	return nil
}

func (n *recordingNotifier) Name() string { return "recording" }

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.tasks)
}

var errNotifyDown = errors.New("notify down")

type fixture struct {
	tasks    *TaskService
	goals    *GoalService
	notifier *recordingNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	database := dbtest.New(t)
	taskRepo := repository.NewTaskRepository(database)
	goalRepo := repository.NewGoalRepository(database)
	notifier := &recordingNotifier{}

	return &fixture{
		tasks:    NewTaskService(taskRepo, notifier),
		goals:    NewGoalService(goalRepo, taskRepo),
		notifier: notifier,
	}
}

func ptr[T any](v T) *T { return &v }

func taskFields(title, description string) model.TaskFields {
	return model.TaskFields{
		Title:       ptr(title),
		Description: ptr(description),
		CompletedAt: model.NullTime{Set: true},
	}
}

func mustCreateTask(t *testing.T, s *TaskService, title string) *model.Task {
	t.Helper()
	task, err := s.Create(context.Background(), taskFields(title, title+" description"))
	require.NoError(t, err)
	return task
}
