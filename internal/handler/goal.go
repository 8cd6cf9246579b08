package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/templui/tasklist/internal/model"
	"github.com/templui/tasklist/internal/repository"
	"github.com/templui/tasklist/internal/service"
)

type goalResponse struct {
	Goal model.GoalView `json:"goal"`
}

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	goals, err := h.goalService.Goals(r.Context(), r.URL.Query().Get("sort"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.GoalViews(goals))
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var fields model.GoalFields
	err := decodeJSON(w, r, &fields)
	if err != nil {
		writeError(w, r, err)
		return
	}

	goal, err := h.goalService.Create(r.Context(), fields)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, goalResponse{Goal: goal.View(false)})
}

func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	goal, err := h.goalService.Goal(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, goalResponse{Goal: goal.View(false)})
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	var fields model.GoalFields
	err := decodeJSON(w, r, &fields)
	if err != nil {
		writeError(w, r, err)
		return
	}

	goal, err := h.goalService.Update(r.Context(), r.PathValue("id"), fields)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, goalResponse{Goal: goal.View(false)})
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	goal, err := h.goalService.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeDetails(w, http.StatusOK, fmt.Sprintf(`Goal %d "%s" successfully deleted`, goal.ID, goal.Title))
}

func (h *GoalHandler) Tasks(w http.ResponseWriter, r *http.Request) {
	goal, err := h.goalService.GoalWithTasks(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, goal.View(true))
}

func (h *GoalHandler) AssignTasks(w http.ResponseWriter, r *http.Request) {
	var assignment model.TaskAssignment
	err := decodeJSON(w, r, &assignment)
	if err != nil {
		writeError(w, r, err)
		return
	}

	goal, err := h.goalService.AssignTasks(r.Context(), r.PathValue("id"), assignment)
	if errors.Is(err, repository.ErrTaskNotFound) {
		// the path id names the goal, not the missing task
		writeDetails(w, http.StatusNotFound, "Task not found")
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, goal.BasicView())
}
