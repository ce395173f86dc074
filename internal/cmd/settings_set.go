package cmd

import (
	"fmt"

	"github.com/renato0307/shotbook/internal/config"
	"github.com/renato0307/shotbook/internal/logging"
)

// SettingsSetCmd writes a single key to settings.json
type SettingsSetCmd struct {
	Key   string `arg:"" help:"Setting name (e.g., default_slots, staging_ttl, db_driver)"`
	Value string `arg:"" optional:"" help:"New value; omit to remove the key and fall back to the default"`
}

// Run executes the set command
func (s *SettingsSetCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Setting value", "key", s.Key, "value", s.Value)

	// Load from disk so values coming from env vars are not persisted
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if err := settings.Set(s.Key, s.Value); err != nil {
		return err
	}

	// Reject combinations that would leave the store unusable
	if _, err := settings.Resolve(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	if s.Value == "" {
		fmt.Printf("Removed '%s'\n", s.Key)
		return nil
	}
	fmt.Printf("Set '%s' to: %s\n", s.Key, s.Value)
	return nil
}
