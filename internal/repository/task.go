package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/tasklist/internal/model"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

var (
	ErrTaskNotFound = errors.New("task not found")
)

type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	ByID(ctx context.Context, id int64) (*model.Task, error)
	Tasks(ctx context.Context, sortBy string) ([]*model.Task, error)
	TasksByGoal(ctx context.Context, goalID int64) ([]*model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id int64) error
}

type taskRepository struct {
	db *sqlx.DB
}

func NewTaskRepository(db *sqlx.DB) TaskRepository {
	return &taskRepository{db: db}
}

// orderByTitle returns the ORDER BY clause for a sort parameter.
// Anything other than asc/desc keeps insertion order.
func orderByTitle(sortBy string) string {
	switch sortBy {
	case SortAsc:
		return "ORDER BY title ASC, id ASC"
	case SortDesc:
		return "ORDER BY title DESC, id ASC"
	default:
		return "ORDER BY id ASC"
	}
}

func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	query := `INSERT INTO tasks (title, description, completed_at, goal_id)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id`

	err := r.db.QueryRowxContext(ctx, query,
		task.Title,
		task.Description,
		task.CompletedAt,
		task.GoalID,
	).Scan(&task.ID)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}

	return nil
}

func (r *taskRepository) ByID(ctx context.Context, id int64) (*model.Task, error) {
	task := &model.Task{}
	query := `SELECT id, title, description, completed_at, goal_id FROM tasks WHERE id = $1`

	err := r.db.GetContext(ctx, task, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	return normalize(task), nil
}

func (r *taskRepository) Tasks(ctx context.Context, sortBy string) ([]*model.Task, error) {
	var tasks []*model.Task

	query := `SELECT id, title, description, completed_at, goal_id FROM tasks ` + orderByTitle(sortBy)

	err := r.db.SelectContext(ctx, &tasks, query)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	for _, task := range tasks {
		normalize(task)
	}
	return tasks, nil
}

func (r *taskRepository) TasksByGoal(ctx context.Context, goalID int64) ([]*model.Task, error) {
	var tasks []*model.Task
	query := `SELECT id, title, description, completed_at, goal_id FROM tasks WHERE goal_id = $1 ORDER BY id ASC`

	err := r.db.SelectContext(ctx, &tasks, query, goalID)
	if err != nil {
		return nil, fmt.Errorf("list goal tasks: %w", err)
	}

	for _, task := range tasks {
		normalize(task)
	}
	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, task *model.Task) error {
	query := `UPDATE tasks
	          SET title = $1, description = $2, completed_at = $3, goal_id = $4
	          WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query,
		task.Title,
		task.Description,
		task.CompletedAt,
		task.GoalID,
		task.ID,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrTaskNotFound
	}

	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// normalize pins completed_at to UTC regardless of how the driver decoded it.
func normalize(task *model.Task) *model.Task {
	if task.CompletedAt != nil {
		utc := task.CompletedAt.UTC()
		task.CompletedAt = &utc
	}
	return task
}
