package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/renato0307/shotbook/internal/config"
	"github.com/renato0307/shotbook/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000" env:"SHOTBOOK_MAX_LOG_FILES"`

	Record   RecordCmd   `cmd:"record" help:"Record a shot interactively"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the HTTP API"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta, set)"`
	Shots    ShotsCmd    `cmd:"shots" help:"Manage shots (list, show, add, del)"`
	Stats    StatsCmd    `cmd:"stats" help:"Show attendance per participant"`
	Suggest  SuggestCmd  `cmd:"suggest" help:"Rank candidates by how long they have waited"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply(kctx *kong.Context) error {
	// Precedence: CLI flags > env vars > settings.json > defaults
	if c.settings != nil {
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("SHOTBOOK_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("SHOTBOOK_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	} else {
		c.settings = &config.Settings{}
	}

	if _, err := logging.Initialize(logging.Options{
		Debug:       c.Debug,
		DebugFile:   c.DebugFile,
		Dir:         config.GetLogDir(),
		MaxLogFiles: c.MaxLogFiles,
		Server:      strings.HasPrefix(kctx.Command(), "serve"),
	}); err != nil {
		return err
	}

	// settings commands must work even when the store cannot be opened
	if strings.HasPrefix(kctx.Command(), "settings") {
		return nil
	}

	cfg, err := c.settings.Resolve()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Create container AFTER logging is initialized so GORM logs go to the right place
	container, err := NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
