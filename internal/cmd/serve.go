package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/shotbook/internal/adapters/httpapi"
	"github.com/renato0307/shotbook/internal/logging"
	"github.com/renato0307/shotbook/internal/services"
)

// ServeCmd serves the HTTP API
type ServeCmd struct {
	Addr          string        `help:"Listen address (overrides listen_addr setting)"`
	SweepInterval time.Duration `help:"How often expired selections are evicted" default:"1m"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	c := cli.Container
	addr := s.Addr
	if addr == "" {
		addr = c.Config.ListenAddr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	janitor, err := services.NewStagingJanitor(c.StagingService, s.SweepInterval)
	if err != nil {
		return err
	}
	janitor.Start()
	defer func() {
		if err := janitor.Shutdown(); err != nil {
			logging.Logger.Warn("Failed to stop staging janitor", "error", err)
		}
	}()

	server := httpapi.NewServer(c.AttendanceService, c.SuggestionService, c.FlowService, c.Config.Suggest)

	logging.Logger.Info("Serving shotbook",
		"addr", addr,
		"db_driver", c.Config.DBDriver,
		"staging_ttl", c.Config.StagingTTL)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(gctx, addr)
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("serve failed: %w", err)
	}

	logging.Logger.Info("Server stopped", "pending_selections", c.FlowService.Pending())
	return nil
}
