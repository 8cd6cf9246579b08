package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/templui/tasklist/internal/ctxkeys"
	"github.com/templui/tasklist/internal/model"
	"github.com/templui/tasklist/internal/repository"
	"github.com/templui/tasklist/internal/service"
	"github.com/templui/tasklist/internal/validation"
)

// writeError maps service errors to status codes. The path id is used in
// 400 and 404 messages; anything unrecognised is logged and answered with 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	id := r.PathValue("id")

	switch {
	case errors.Is(err, service.ErrInvalidID):
		writeDetails(w, http.StatusBadRequest, "Invalid id "+id)
	case errors.Is(err, repository.ErrTaskNotFound):
		writeDetails(w, http.StatusNotFound, "Task "+id+" not found")
	case errors.Is(err, repository.ErrGoalNotFound):
		writeDetails(w, http.StatusNotFound, "Goal "+id+" not found")
	case errors.Is(err, errInvalidBody),
		errors.Is(err, model.ErrMissingField),
		errors.Is(err, validation.ErrInvalid):
		slog.Debug("rejected request body", "error", err, "path", r.URL.Path)
		writeDetails(w, http.StatusBadRequest, "Invalid data")
	default:
		slog.Error("request failed",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", ctxkeys.RequestID(r.Context()),
		)
		writeDetails(w, http.StatusInternalServerError, "Internal server error")
	}
}
