package config

import (
	"os"
	"path/filepath"
)

// GetShotbookHome returns SHOTBOOK_HOME or ~/.shotbook default
func GetShotbookHome() string {
	home := os.Getenv("SHOTBOOK_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".shotbook"
		}
		return filepath.Join(homeDir, ".shotbook")
	}
	return ExpandPath(home)
}

// GetDBPath returns $SHOTBOOK_HOME/shots.db
func GetDBPath() string {
	return filepath.Join(GetShotbookHome(), "shots.db")
}

// GetLogDir returns $SHOTBOOK_HOME/logs
func GetLogDir() string {
	return filepath.Join(GetShotbookHome(), "logs")
}

// GetSettingsPath returns $SHOTBOOK_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetShotbookHome(), "settings.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
