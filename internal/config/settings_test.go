package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("SHOTBOOK_HOME", home)
	for _, key := range []string{
		"SHOTBOOK_DB_DRIVER",
		"SHOTBOOK_DB_DSN",
		"SHOTBOOK_LISTEN_ADDR",
		"SHOTBOOK_STAGING_TTL",
		"SHOTBOOK_DEFAULT_SLOTS",
		"SHOTBOOK_DEFAULT_LOOKBACK_DAYS",
		"SHOTBOOK_DEFAULT_IGNORE_DAYS",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return home
}

func intPtr(n int) *int { return &n }

func TestLoadSettings_MissingFile(t *testing.T) {
	isolateEnv(t)

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	home := isolateEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{nope"), 0644))

	_, err := LoadSettings()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid settings.json")
}

func TestSaveAndLoadSettings(t *testing.T) {
	isolateEnv(t)
	settings := &Settings{DefaultSlots: intPtr(6), StagingTTL: "2h"}

	require.NoError(t, SaveSettings(settings))
	loaded, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestResolve_Defaults(t *testing.T) {
	home := isolateEnv(t)

	cfg, err := (&Settings{}).Resolve()

	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, filepath.Join(home, "shots.db"), cfg.DBDSN)
	assert.Equal(t, DefaultListenAddr, cfg.ListenAddr)
	assert.Equal(t, DefaultStagingTTL, cfg.StagingTTL)
	assert.Equal(t, SuggestDefaults{IgnoreDays: 0, LookbackDays: 30, Slots: 4}, cfg.Suggest)
}

func TestResolve_SettingsFile(t *testing.T) {
	isolateEnv(t)
	settings := &Settings{
		DBDriver:            "postgres",
		DBDSN:               "host=db user=shotbook",
		DefaultIgnoreDays:   intPtr(7),
		DefaultLookbackDays: intPtr(60),
		DefaultSlots:        intPtr(5),
		ListenAddr:          ":9000",
		StagingTTL:          "0s",
	}

	cfg, err := settings.Resolve()

	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "host=db user=shotbook", cfg.DBDSN)
	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Zero(t, cfg.StagingTTL)
	assert.Equal(t, SuggestDefaults{IgnoreDays: 7, LookbackDays: 60, Slots: 5}, cfg.Suggest)
}

func TestResolve_EnvOverridesSettings(t *testing.T) {
	isolateEnv(t)
	t.Setenv("SHOTBOOK_LISTEN_ADDR", ":7000")
	t.Setenv("SHOTBOOK_STAGING_TTL", "15m")
	t.Setenv("SHOTBOOK_DEFAULT_SLOTS", "2")

	cfg, err := (&Settings{ListenAddr: ":9000", DefaultSlots: intPtr(5)}).Resolve()

	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.ListenAddr)
	assert.Equal(t, 15*time.Minute, cfg.StagingTTL)
	assert.Equal(t, 2, cfg.Suggest.Slots)
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		env      map[string]string
		contains string
	}{
		{"postgres without dsn", Settings{DBDriver: "postgres"}, nil, "db_dsn is required"},
		{"bad ttl", Settings{StagingTTL: "soon"}, nil, "invalid staging_ttl"},
		{"negative ttl", Settings{StagingTTL: "-1h"}, nil, "must not be negative"},
		{"bad env int", Settings{}, map[string]string{"SHOTBOOK_DEFAULT_SLOTS": "four"}, "SHOTBOOK_DEFAULT_SLOTS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := tt.settings.Resolve()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestGetSettingsExample_CoversEveryField(t *testing.T) {
	example := GetSettingsExample()

	for _, key := range []string{
		"db_driver", "db_dsn", "debug", "default_ignore_days", "default_lookback_days",
		"default_slots", "listen_addr", "max_log_files", "staging_ttl",
	} {
		assert.Contains(t, example, key)
	}
	assert.Equal(t, "24h0m0s", example["staging_ttl"])
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(homeDir, "shots.db"), ExpandPath("~/shots.db"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
}

func TestSettingsSet(t *testing.T) {
	s := &Settings{}

	require.NoError(t, s.Set("db_driver", "postgres"))
	require.NoError(t, s.Set("db_dsn", " host=db "))
	require.NoError(t, s.Set("debug", "true"))
	require.NoError(t, s.Set("default_slots", "6"))
	require.NoError(t, s.Set("max_log_files", "0"))
	require.NoError(t, s.Set("staging_ttl", "30m"))

	assert.Equal(t, "postgres", s.DBDriver)
	assert.Equal(t, "host=db", s.DBDSN)
	require.NotNil(t, s.Debug)
	assert.True(t, *s.Debug)
	assert.Equal(t, intPtr(6), s.DefaultSlots)
	assert.Equal(t, intPtr(0), s.MaxLogFiles)
	assert.Equal(t, "30m", s.StagingTTL)

	require.NoError(t, s.Set("default_slots", ""))
	require.NoError(t, s.Set("debug", ""))
	assert.Nil(t, s.DefaultSlots)
	assert.Nil(t, s.Debug)
}

func TestSettingsSet_Invalid(t *testing.T) {
	tests := []struct {
		key      string
		value    string
		contains string
	}{
		{"color", "blue", "unknown setting"},
		{"db_driver", "mysql", "sqlite or postgres"},
		{"staging_ttl", "soon", "invalid staging_ttl"},
		{"staging_ttl", "-5m", "must not be negative"},
		{"debug", "maybe", "invalid debug"},
		{"default_lookback_days", "-1", "must not be negative"},
		{"default_ignore_days", "x", "invalid default_ignore_days"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			err := (&Settings{}).Set(tt.key, tt.value)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestSettingKeys_MatchExample(t *testing.T) {
	example := GetSettingsExample()

	assert.Len(t, SettingKeys(), len(example))
	for _, key := range SettingKeys() {
		assert.Contains(t, example, key)
	}
}
