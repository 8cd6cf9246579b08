package model

type Goal struct {
	ID    int64  `db:"id"`
	Title string `db:"title"`

	// Tasks is loaded separately, ordered by task id.
	Tasks []*Task `db:"-"`
}

type GoalView struct {
	ID    int64      `json:"id"`
	Title string     `json:"title"`
	Tasks []TaskView `json:"tasks,omitzero"`
}

type GoalBasicView struct {
	ID      int64   `json:"id"`
	TaskIDs []int64 `json:"task_ids,omitempty"`
}

type GoalFields struct {
	Title *string `json:"title" validate:"omitnil,title"`
}

// TaskAssignment is the body of a request linking existing tasks to a goal.
type TaskAssignment struct {
	TaskIDs []int64 `json:"task_ids" validate:"required,dive,gt=0"`
}

func NewGoal(f GoalFields) (*Goal, error) {
	if f.Title == nil {
		return nil, missing("title")
	}
	return &Goal{Title: *f.Title}, nil
}

func (g *Goal) Update(f GoalFields) error {
	if f.Title == nil {
		return missing("title")
	}
	g.Title = *f.Title
	return nil
}

// View renders the goal; with includeTasks the tasks key is always present.
func (g *Goal) View(includeTasks bool) GoalView {
	view := GoalView{
		ID:    g.ID,
		Title: g.Title,
	}
	if includeTasks {
		view.Tasks = TaskViews(g.Tasks)
	}
	return view
}

func (g *Goal) BasicView() GoalBasicView {
	view := GoalBasicView{ID: g.ID}
	for _, task := range g.Tasks {
		view.TaskIDs = append(view.TaskIDs, task.ID)
	}
	return view
}

func GoalViews(goals []*Goal) []GoalView {
	views := make([]GoalView, 0, len(goals))
	for _, goal := range goals {
		views = append(views, goal.View(false))
	}
	return views
}
