package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/tasklist/internal/config"
	"github.com/templui/tasklist/internal/db"
	"github.com/templui/tasklist/internal/repository"
	"github.com/templui/tasklist/internal/service"
	"github.com/templui/tasklist/internal/service/notify"
)

type App struct {
	Cfg         *config.Config
	DB          *sqlx.DB
	Notifier    notify.Provider
	TaskService *service.TaskService
	GoalService *service.GoalService

	// done stops background loops owned by the app
	done chan struct{}
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize notification provider based on config
	notifier, err := notify.NewProvider(cfg)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize notification provider: %w", err)
	}

	return NewWithDeps(cfg, database, notifier), nil
}

// NewWithDeps wires repositories and services around an open database and
// a notification provider.
func NewWithDeps(cfg *config.Config, database *sqlx.DB, notifier notify.Provider) *App {
	// Repositories
	taskRepository := repository.NewTaskRepository(database)
	goalRepository := repository.NewGoalRepository(database)

	// Services
	taskService := service.NewTaskService(taskRepository, notifier)
	goalService := service.NewGoalService(goalRepository, taskRepository)

	return &App{
		Cfg:         cfg,
		DB:          database,
		Notifier:    notifier,
		TaskService: taskService,
		GoalService: goalService,
		done:        make(chan struct{}),
	}
}

// Done is closed by Close
func (a *App) Done() <-chan struct{} {
	return a.done
}

func (a *App) Close() error {
	select {
	case <-a.done:
	default:
		close(a.done)
	}

	return db.Close(a.DB)
}
