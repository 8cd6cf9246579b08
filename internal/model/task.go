package model

import (
	"encoding/json"
	"fmt"
	"time"
)

type Task struct {
	ID          int64      `db:"id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	CompletedAt *time.Time `db:"completed_at"`
	GoalID      *int64     `db:"goal_id"`
}

// TaskView is the JSON shape of a task in API responses.
type TaskView struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsComplete  bool   `json:"is_complete"`
	GoalID      *int64 `json:"goal_id,omitempty"`
}

// TaskFields is the decoded body of a task create or update request.
// Nil pointers mean the key was absent.
type TaskFields struct {
	Title       *string  `json:"title" validate:"omitnil,title"`
	Description *string  `json:"description" validate:"omitnil,max=4000"`
	CompletedAt NullTime `json:"completed_at"`
}

// NullTime tracks whether a JSON key was present. A present null leaves Time nil.
type NullTime struct {
	Set  bool
	Time *time.Time
}

func (n *NullTime) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Time = nil
		return nil
	}

	var t time.Time
	err := json.Unmarshal(b, &t)
	if err != nil {
		return fmt.Errorf("completed_at: %w", err)
	}

	t = t.UTC()
	n.Time = &t
	return nil
}

// NewTask builds a task from a create payload. Title, description and the
// completed_at key are all required; completed_at may be null.
func NewTask(f TaskFields) (*Task, error) {
	if f.Title == nil {
		return nil, missing("title")
	}
	if f.Description == nil {
		return nil, missing("description")
	}
	if !f.CompletedAt.Set {
		return nil, missing("completed_at")
	}

	return &Task{
		Title:       *f.Title,
		Description: *f.Description,
		CompletedAt: utc(f.CompletedAt.Time),
	}, nil
}

// Update overwrites title and description. completed_at is only touched
// when the key was present in the request.
func (t *Task) Update(f TaskFields) error {
	if f.Title == nil {
		return missing("title")
	}
	if f.Description == nil {
		return missing("description")
	}

	t.Title = *f.Title
	t.Description = *f.Description

	if f.CompletedAt.Set {
		t.CompletedAt = utc(f.CompletedAt.Time)
	}

	return nil
}

func (t *Task) IsComplete() bool {
	return t.CompletedAt != nil
}

func (t *Task) MarkComplete(now time.Time) {
	completedAt := now.UTC()
	t.CompletedAt = &completedAt
}

func (t *Task) MarkIncomplete() {
	t.CompletedAt = nil
}

func (t *Task) View() TaskView {
	return TaskView{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		IsComplete:  t.IsComplete(),
		GoalID:      t.GoalID,
	}
}

func TaskViews(tasks []*Task) []TaskView {
	views := make([]TaskView, 0, len(tasks))
	for _, task := range tasks {
		views = append(views, task.View())
	}
	return views
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
