package bootstrap

import (
	"context"
	"fmt"

	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/config"
	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/controller"
	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/pkg/logger"
	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/repository"
	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/repository/contract"
	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/repository/implementation"
	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/service"
	"github.com/kavia-common/personal-notes-manager-24022-24060/pkg/database"
)

type Container struct {
	// Controllers
	NoteController   controller.INoteController
	HealthController controller.IHealthController

	// Shared infrastructure
	Logger logger.ILogger

	// The one provider handle every request goes through. Exposed so
	// main can close it on shutdown.
	Provider contract.StorageProvider
}

// NewContainer selects the storage provider from configuration exactly
// once and wires every layer through constructor injection. Nothing here
// is mutated after startup, so the container is safe to share across
// requests.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	provider, err := newStorageProvider(ctx, cfg, sysLogger)
	if err != nil {
		return nil, err
	}

	notesRepo := repository.NewNotesRepository(provider)
	noteService := service.NewNoteService(notesRepo)

	return &Container{
		NoteController:   controller.NewNoteController(noteService),
		HealthController: controller.NewHealthController(notesRepo, cfg.App.Environment),
		Logger:           sysLogger,
		Provider:         provider,
	}, nil
}

func newStorageProvider(ctx context.Context, cfg *config.Config, log logger.ILogger) (contract.StorageProvider, error) {
	switch cfg.Database.Client {
	case config.ClientSurreal:
		if cfg.Database.SurrealURL == "" {
			return nil, fmt.Errorf("SURREAL_URL is required for the surreal client")
		}
		db, err := database.NewSurrealDB(ctx,
			cfg.Database.SurrealURL,
			cfg.Database.SurrealNamespace,
			cfg.Database.SurrealDatabase,
			cfg.Database.SurrealUser,
			cfg.Database.SurrealPass,
		)
		if err != nil {
			return nil, err
		}
		log.Info("bootstrap", "SurrealDB connected", map[string]interface{}{
			"namespace": cfg.Database.SurrealNamespace,
			"database":  cfg.Database.SurrealDatabase,
		})
		return implementation.NewSurrealProvider(db, cfg.Database.NotesTable), nil

	case config.ClientSQL:
		if cfg.Database.Connection == "" {
			return nil, fmt.Errorf("DB_CONNECTION_STRING is required for the sql client")
		}
		gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			return nil, err
		}
		provider, err := implementation.NewGormProvider(gormDB)
		if err != nil {
			return nil, err
		}
		log.Info("bootstrap", "SQL connected", map[string]interface{}{})
		return provider, nil

	case config.ClientNone:
		log.Warn("bootstrap", "No database configured, CRUD endpoints will return 503", nil)
		return implementation.NewDisabledProvider(), nil

	default:
		return nil, fmt.Errorf("unsupported DB_CLIENT: %s", cfg.Database.Client)
	}
}
