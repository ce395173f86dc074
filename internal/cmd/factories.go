package cmd

import (
	"os"
	"os/user"

	adapterstorage "github.com/renato0307/shotbook/internal/adapters/storage"
	"github.com/renato0307/shotbook/internal/config"
	"github.com/renato0307/shotbook/internal/domain"
	"github.com/renato0307/shotbook/internal/logging"
	"github.com/renato0307/shotbook/internal/ports"
	"github.com/renato0307/shotbook/internal/services"
)

// cliContextID scopes selections made from the terminal
const cliContextID = "cli"

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config

	// Services
	AttendanceService *services.AttendanceService
	FlowService       *services.FlowService
	StagingService    *services.StagingService
	SuggestionService *services.SuggestionService

	// Internal - for cleanup only
	repo ports.AttendanceRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(cfg *config.Config) (*Container, error) {
	repo, err := adapterstorage.NewRepository(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return nil, err
	}
	return newContainerWithRepo(cfg, repo), nil
}

func newContainerWithRepo(cfg *config.Config, repo ports.AttendanceRepository) *Container {
	staging := services.NewStagingService(cfg.StagingTTL, nil)
	attendance := services.NewAttendanceService(repo, nil)
	suggestion := services.NewSuggestionService(repo, nil)
	flows := services.NewFlowService(staging, attendance, suggestion, cfg.Suggest, nil)

	logging.Logger.Debug("Container created",
		"db_driver", cfg.DBDriver,
		"staging_ttl", cfg.StagingTTL)

	return &Container{
		AttendanceService: attendance,
		Config:            cfg,
		FlowService:       flows,
		StagingService:    staging,
		SuggestionService: suggestion,
		repo:              repo,
	}
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.repo != nil {
		return c.repo.Close()
	}
	return nil
}

// localOperator identifies the terminal user. The local user owns the
// database, so they act as GM.
func localOperator() domain.SelectionKey {
	name := os.Getenv("USER")
	if u, err := user.Current(); err == nil && u.Username != "" {
		name = u.Username
	}
	if name == "" {
		name = "local"
	}
	return domain.SelectionKey{ContextID: cliContextID, OperatorID: name}
}
