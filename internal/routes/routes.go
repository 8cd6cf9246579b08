package routes

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/templui/tasklist/internal/app"
	"github.com/templui/tasklist/internal/handler"
	"github.com/templui/tasklist/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	task := handler.NewTaskHandler(app.TaskService)
	goal := handler.NewGoalHandler(app.GoalService)
	health := handler.NewHealthHandler(app.DB)

	mux := http.NewServeMux()

	// ============================================================================
	// OPERATIONAL
	// ============================================================================

	mux.HandleFunc("GET /health", health.Health)
	if app.Cfg.MetricsEnabled {
		mux.Handle("GET /metrics", promhttp.Handler())
	}

	// ============================================================================
	// TASKS
	// ============================================================================

	// mark_complete calls out to the notification provider (rate limited)
	completeLimiter := middleware.NewRateLimiter(app.Cfg.CompleteRateLimit, app.Cfg.CompleteRateWindow, app.Done())
	rateLimited := middleware.RateLimit(completeLimiter)

	mux.HandleFunc("GET /tasks", task.List)
	mux.HandleFunc("POST /tasks", task.Create)
	mux.HandleFunc("GET /tasks/{id}", task.Get)
	mux.HandleFunc("PUT /tasks/{id}", task.Update)
	mux.HandleFunc("DELETE /tasks/{id}", task.Delete)
	mux.HandleFunc("PATCH /tasks/{id}/mark_complete", rateLimited(task.MarkComplete))
	mux.HandleFunc("PATCH /tasks/{id}/mark_incomplete", task.MarkIncomplete)

	// ============================================================================
	// GOALS
	// ============================================================================

	mux.HandleFunc("GET /goals", goal.List)
	mux.HandleFunc("POST /goals", goal.Create)
	mux.HandleFunc("GET /goals/{id}", goal.Get)
	mux.HandleFunc("PUT /goals/{id}", goal.Update)
	mux.HandleFunc("DELETE /goals/{id}", goal.Delete)
	mux.HandleFunc("GET /goals/{id}/tasks", goal.Tasks)
	mux.HandleFunc("POST /goals/{id}/tasks", goal.AssignTasks)

	// ============================================================================
	// FALLBACK
	// ============================================================================

	// 404
	mux.HandleFunc("/{path...}", handler.NotFound)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.RequestID,      // Request ID and client IP first, everything below logs them
		middleware.RequestLogging,
		middleware.Metrics,        // Innermost so it sees the matched route pattern
	)

	return handler
}
