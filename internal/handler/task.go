package handler

import (
	"fmt"
	"net/http"

	"github.com/templui/tasklist/internal/model"
	"github.com/templui/tasklist/internal/service"
)

type taskResponse struct {
	Task model.TaskView `json:"task"`
}

type TaskHandler struct {
	taskService *service.TaskService
}

func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.Tasks(r.Context(), r.URL.Query().Get("sort"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.TaskViews(tasks))
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var fields model.TaskFields
	err := decodeJSON(w, r, &fields)
	if err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.taskService.Create(r.Context(), fields)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, taskResponse{Task: task.View()})
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	task, err := h.taskService.Task(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, taskResponse{Task: task.View()})
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	var fields model.TaskFields
	err := decodeJSON(w, r, &fields)
	if err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.taskService.Update(r.Context(), r.PathValue("id"), fields)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, taskResponse{Task: task.View()})
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	task, err := h.taskService.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeDetails(w, http.StatusOK, fmt.Sprintf(`Task %d "%s" successfully deleted`, task.ID, task.Title))
}

func (h *TaskHandler) MarkComplete(w http.ResponseWriter, r *http.Request) {
	task, err := h.taskService.MarkComplete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, taskResponse{Task: task.View()})
}

func (h *TaskHandler) MarkIncomplete(w http.ResponseWriter, r *http.Request) {
	task, err := h.taskService.MarkIncomplete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, taskResponse{Task: task.View()})
}
