package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestEnvironment provides an isolated SHOTBOOK_HOME for one test
type TestEnvironment struct {
	Home     string
	extraEnv map[string]string
	tb       testing.TB
}

// NewTestEnvironment creates a temp SHOTBOOK_HOME that is removed when the test completes
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()
	return &TestEnvironment{
		Home:     tb.TempDir(),
		extraEnv: make(map[string]string),
		tb:       tb,
	}
}

// Environ returns the process environment without SHOTBOOK_* variables,
// plus the isolated home and any extra variables set on the environment.
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "SHOTBOOK_") {
			continue
		}
		if _, ok := e.extraEnv[key]; ok {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"SHOTBOOK_HOME="+e.Home,
		"SHOTBOOK_DEBUG=",
	)
	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test database
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.Home, "shots.db")
}

// SetEnv sets an additional environment variable for this test environment
func (e *TestEnvironment) SetEnv(key, value string) {
	e.extraEnv[key] = value
}

// DaysAgo returns the local date n days before today as YYYY-MM-DD
func DaysAgo(n int) string {
	return time.Now().AddDate(0, 0, -n).Format("2006-01-02")
}
