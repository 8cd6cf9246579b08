package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalView(t *testing.T) {
	goal := &Goal{ID: 2, Title: "Build a habit"}

	out, err := json.Marshal(goal.View(false))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":2,"title":"Build a habit"}`, string(out))

	// With no tasks loaded the key is still present.
	out, err = json.Marshal(goal.View(true))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":2,"title":"Build a habit","tasks":[]}`, string(out))

	goalID := goal.ID
	goal.Tasks = []*Task{{ID: 5, Title: "read", Description: "10 pages", GoalID: &goalID}}
	out, err = json.Marshal(goal.View(true))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":2,"title":"Build a habit","tasks":[
		{"id":5,"title":"read","description":"10 pages","is_complete":false,"goal_id":2}
	]}`, string(out))
}

func TestGoalBasicView(t *testing.T) {
	goal := &Goal{ID: 4, Title: "x"}

	out, err := json.Marshal(goal.BasicView())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":4}`, string(out))

	goal.Tasks = []*Task{{ID: 1}, {ID: 3}}
	out, err = json.Marshal(goal.BasicView())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":4,"task_ids":[1,3]}`, string(out))
}

func TestGoalUpdate_RequiresTitle(t *testing.T) {
	goal := &Goal{ID: 1, Title: "old"}

	err := goal.Update(GoalFields{})
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Equal(t, "old", goal.Title)

	title := "new"
	require.NoError(t, goal.Update(GoalFields{Title: &title}))
	assert.Equal(t, "new", goal.Title)
}

func TestNewGoal(t *testing.T) {
	_, err := NewGoal(GoalFields{})
	assert.ErrorIs(t, err, ErrMissingField)

	title := "Learn Go"
	goal, err := NewGoal(GoalFields{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Learn Go", goal.Title)
	assert.Zero(t, goal.ID)
}
