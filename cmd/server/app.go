package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/wordvault/wordvault-api/internal/config"
	"github.com/wordvault/wordvault-api/internal/domain/srs"
	"github.com/wordvault/wordvault-api/internal/events"
	"github.com/wordvault/wordvault-api/internal/platform/logger"
	"github.com/wordvault/wordvault-api/internal/platform/postgres"
	"github.com/wordvault/wordvault-api/internal/platform/sqlite"
	"github.com/wordvault/wordvault-api/internal/service/study"
	"github.com/wordvault/wordvault-api/internal/store"
)

// application bundles the server's wired dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	collectionStore store.CollectionStore
	wordStore       store.WordStore
	studyStore      store.StudyStore
	statsStore      store.StatsStore

	studyService *study.Service
}

// newApplication loads configuration and wires every component: logging,
// the storage backend selected by config, the scheduler, the event emitter
// and the study service.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(logger.Config{Level: cfg.Server.LogLevel})

	app := &application{
		config: cfg,
		logger: log,
	}

	if err := app.setupStores(); err != nil {
		return nil, err
	}

	emitter := events.NewInMemoryEmitter(log)
	emitter.RegisterHandler(events.NewLoggingHandler(log))

	app.studyService = study.NewService(
		app.studyStore,
		srs.NewDefaultService(),
		emitter,
		log,
		study.Config{
			SessionCap:      cfg.Study.SessionCap,
			RecencyWindow:   cfg.Study.RecencyWindow,
			DistractorCount: cfg.Study.DistractorCount,
		},
	)

	log.Info("application initialized",
		slog.String("database_driver", cfg.Database.Driver),
		slog.Int("port", cfg.Server.Port))

	return app, nil
}

// setupStores opens the configured database and builds the store layer for
// it. SQLite applies its embedded schema on open; PostgreSQL runs the goose
// migrations.
func (app *application) setupStores() error {
	switch app.config.Database.Driver {
	case "sqlite":
		db, err := sqlite.Open(app.config.Database.URL)
		if err != nil {
			return fmt.Errorf("failed to open sqlite database: %w", err)
		}
		app.db = db
		app.collectionStore = sqlite.NewCollectionStore(db)
		app.wordStore = sqlite.NewWordStore(db)
		app.studyStore = sqlite.NewStudyStore(db)
		app.statsStore = sqlite.NewStatsStore(db)

	case "postgres":
		db, err := postgres.Open(app.config.Database.URL)
		if err != nil {
			return fmt.Errorf("failed to open postgres database: %w", err)
		}
		if err := postgres.Migrate(db); err != nil {
			db.Close()
			return fmt.Errorf("failed to migrate postgres database: %w", err)
		}
		app.db = db
		app.collectionStore = postgres.NewCollectionStore(db)
		app.wordStore = postgres.NewWordStore(db)
		app.studyStore = postgres.NewStudyStore(db)
		app.statsStore = postgres.NewStatsStore(db)

	default:
		return fmt.Errorf("unsupported database driver %q", app.config.Database.Driver)
	}

	return nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
