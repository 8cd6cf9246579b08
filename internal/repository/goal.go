package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/tasklist/internal/model"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalRepository interface {
	Create(ctx context.Context, goal *model.Goal) error
	ByID(ctx context.Context, id int64) (*model.Goal, error)
	Goals(ctx context.Context, sortBy string) ([]*model.Goal, error)
	Update(ctx context.Context, goal *model.Goal) error
	Delete(ctx context.Context, id int64) error
	AssignTasks(ctx context.Context, goalID int64, taskIDs []int64) error
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(ctx context.Context, goal *model.Goal) error {
	query := `INSERT INTO goals (title) VALUES ($1) RETURNING id`

	err := r.db.QueryRowxContext(ctx, query, goal.Title).Scan(&goal.ID)
	if err != nil {
		return fmt.Errorf("insert goal: %w", err)
	}

	return nil
}

func (r *goalRepository) ByID(ctx context.Context, id int64) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT id, title FROM goals WHERE id = $1`

	err := r.db.GetContext(ctx, goal, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get goal: %w", err)
	}

	return goal, nil
}

func (r *goalRepository) Goals(ctx context.Context, sortBy string) ([]*model.Goal, error) {
	var goals []*model.Goal

	query := `SELECT id, title FROM goals ` + orderByTitle(sortBy)

	err := r.db.SelectContext(ctx, &goals, query)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	return goals, nil
}

func (r *goalRepository) Update(ctx context.Context, goal *model.Goal) error {
	query := `UPDATE goals SET title = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, goal.Title, goal.ID)
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}

// Delete removes the goal and detaches its tasks. Tasks are never deleted
// with their goal.
func (r *goalRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `UPDATE tasks SET goal_id = NULL WHERE goal_id = $1`, id)
	if err != nil {
		return fmt.Errorf("detach goal tasks: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return tx.Commit()
}

// AssignTasks points every listed task at the goal in one transaction.
// An unknown task id rolls back the whole assignment.
func (r *goalRepository) AssignTasks(ctx context.Context, goalID int64, taskIDs []int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `UPDATE tasks SET goal_id = $1 WHERE id = $2`

	for _, taskID := range taskIDs {
		result, err := tx.ExecContext(ctx, query, goalID, taskID)
		if err != nil {
			return fmt.Errorf("assign task %d: %w", taskID, err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}

		if rows == 0 {
			return fmt.Errorf("assign task %d: %w", taskID, ErrTaskNotFound)
		}
	}

	return tx.Commit()
}
