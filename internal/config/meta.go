package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		// Extract the JSON field name (before comma)
		jsonName := strings.Split(jsonTag, ",")[0]

		// Generate example value based on field type
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	// Handle pointer types
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug"
		case reflect.Int:
			switch fieldName {
			case "default_slots":
				return 4
			case "default_lookback_days":
				return 30
			case "default_ignore_days":
				return 0
			case "max_log_files":
				return 1000
			}
			return 10
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "db_driver":
			return "sqlite"
		case "db_dsn":
			return "~/.shotbook/shots.db"
		case "listen_addr":
			return DefaultListenAddr
		case "staging_ttl":
			return DefaultStagingTTL.String()
		default:
			return "example"
		}
	}

	return nil
}
