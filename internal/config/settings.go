package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/renato0307/shotbook/internal/domain"
)

// Defaults applied when neither settings.json nor the environment set a value
const (
	DefaultListenAddr = ":8080"
	DefaultStagingTTL = 24 * time.Hour
)

// Settings represents the structure of $SHOTBOOK_HOME/settings.json
type Settings struct {
	DBDriver            string `json:"db_driver,omitempty"`
	DBDSN               string `json:"db_dsn,omitempty"`
	Debug               *bool  `json:"debug,omitempty"`
	DefaultIgnoreDays   *int   `json:"default_ignore_days,omitempty"`
	DefaultLookbackDays *int   `json:"default_lookback_days,omitempty"`
	DefaultSlots        *int   `json:"default_slots,omitempty"`
	ListenAddr          string `json:"listen_addr,omitempty"`
	MaxLogFiles         *int   `json:"max_log_files,omitempty"`
	StagingTTL          string `json:"staging_ttl,omitempty"`
}

// SuggestDefaults are used when a suggest request leaves a field unset
type SuggestDefaults struct {
	IgnoreDays   int
	LookbackDays int
	Slots        int
}

// Config is the effective configuration after env overrides and defaults
type Config struct {
	DBDriver   string
	DBDSN      string
	ListenAddr string
	StagingTTL time.Duration
	Suggest    SuggestDefaults
}

// LoadSettings loads settings from $SHOTBOOK_HOME/settings.json (or ~/.shotbook/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $SHOTBOOK_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(GetShotbookHome(), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// Resolve applies precedence env vars > settings.json > defaults
func (s *Settings) Resolve() (*Config, error) {
	cfg := &Config{
		DBDriver:   getEnv("SHOTBOOK_DB_DRIVER", orDefault(s.DBDriver, "sqlite")),
		ListenAddr: getEnv("SHOTBOOK_LISTEN_ADDR", orDefault(s.ListenAddr, DefaultListenAddr)),
		Suggest: SuggestDefaults{
			IgnoreDays:   intOrDefault(s.DefaultIgnoreDays, domain.DefaultIgnoreDays),
			LookbackDays: intOrDefault(s.DefaultLookbackDays, domain.DefaultLookbackDays),
			Slots:        intOrDefault(s.DefaultSlots, domain.DefaultSlots),
		},
	}

	cfg.DBDSN = getEnv("SHOTBOOK_DB_DSN", s.DBDSN)
	if cfg.DBDSN == "" && cfg.DBDriver == "sqlite" {
		cfg.DBDSN = GetDBPath()
	}
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("db_dsn is required for driver %s", cfg.DBDriver)
	}
	cfg.DBDSN = ExpandPath(cfg.DBDSN)

	ttl := getEnv("SHOTBOOK_STAGING_TTL", s.StagingTTL)
	if ttl == "" {
		cfg.StagingTTL = DefaultStagingTTL
	} else {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid staging_ttl %q: %w", ttl, err)
		}
		if parsed < 0 {
			return nil, fmt.Errorf("staging_ttl must not be negative")
		}
		cfg.StagingTTL = parsed
	}

	for name, v := range map[string]string{
		"SHOTBOOK_DEFAULT_SLOTS":         "slots",
		"SHOTBOOK_DEFAULT_LOOKBACK_DAYS": "lookback",
		"SHOTBOOK_DEFAULT_IGNORE_DAYS":   "ignore",
	} {
		raw, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", name, err)
		}
		switch v {
		case "slots":
			cfg.Suggest.Slots = n
		case "lookback":
			cfg.Suggest.LookbackDays = n
		case "ignore":
			cfg.Suggest.IgnoreDays = n
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func intOrDefault(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}

// SettingKeys lists the keys accepted by Set, in settings.json order
func SettingKeys() []string {
	return []string{
		"db_driver", "db_dsn", "debug", "default_ignore_days", "default_lookback_days",
		"default_slots", "listen_addr", "max_log_files", "staging_ttl",
	}
}

// Set assigns a settings.json key from its string form; an empty value clears it
func (s *Settings) Set(key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case "db_driver":
		if value != "" && value != "sqlite" && value != "postgres" {
			return fmt.Errorf("db_driver must be sqlite or postgres, got %q", value)
		}
		s.DBDriver = value
	case "db_dsn":
		s.DBDSN = value
	case "listen_addr":
		s.ListenAddr = value
	case "staging_ttl":
		if value != "" {
			d, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("invalid staging_ttl %q: %w", value, err)
			}
			if d < 0 {
				return fmt.Errorf("staging_ttl must not be negative")
			}
		}
		s.StagingTTL = value
	case "debug":
		if value == "" {
			s.Debug = nil
			return nil
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid debug value %q: %w", value, err)
		}
		s.Debug = &b
	case "default_ignore_days", "default_lookback_days", "default_slots", "max_log_files":
		n, err := parseOptionalInt(key, value)
		if err != nil {
			return err
		}
		switch key {
		case "default_ignore_days":
			s.DefaultIgnoreDays = n
		case "default_lookback_days":
			s.DefaultLookbackDays = n
		case "default_slots":
			s.DefaultSlots = n
		default:
			s.MaxLogFiles = n
		}
	default:
		return fmt.Errorf("unknown setting '%s'. Valid keys: %s", key, strings.Join(SettingKeys(), ", "))
	}

	return nil
}

func parseOptionalInt(key, value string) (*int, error) {
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	if n < 0 {
		return nil, fmt.Errorf("%s must not be negative", key)
	}
	return &n, nil
}
