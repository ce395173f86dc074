package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/google/uuid"
)

// Logger is the public logger instance accessible from all packages.
// It discards everything until Initialize runs.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Options controls where logs go
type Options struct {
	Debug       bool
	DebugFile   string
	Dir         string
	MaxLogFiles int
	Server      bool
}

// Initialize sets up Logger and returns the debug log path, or "" when no
// file is written. SHOTBOOK_DEBUG and SHOTBOOK_DEBUG_FILE fill unset options.
//
// Without debug, CLI commands discard logs and the server logs info to stderr.
// With debug, everything at debug level goes to one JSON file per run.
func Initialize(opts Options) (string, error) {
	if debug, err := strconv.ParseBool(os.Getenv("SHOTBOOK_DEBUG")); err == nil && debug {
		opts.Debug = true
	}
	if opts.DebugFile == "" {
		opts.DebugFile = os.Getenv("SHOTBOOK_DEBUG_FILE")
	}

	if !opts.Debug && opts.DebugFile == "" {
		if opts.Server {
			Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
		} else {
			Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		}
		return "", nil
	}

	path, err := logFilePath(opts)
	if err != nil {
		return "", err
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Logger.Info("Debug logging initialized", "log_file", path, "server", opts.Server)
	fmt.Fprintf(os.Stderr, "Debug mode enabled. Logs: %s\n", path)

	return path, nil
}

// logFilePath returns the explicit debug file, or a fresh uuid-named file in
// opts.Dir after pruning old ones
func logFilePath(opts Options) (string, error) {
	if opts.DebugFile != "" {
		if err := os.MkdirAll(filepath.Dir(opts.DebugFile), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return opts.DebugFile, nil
	}

	if opts.Dir == "" {
		return "", fmt.Errorf("no log directory configured")
	}
	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	if opts.MaxLogFiles > 0 {
		// leave room for the file about to be created
		if err := pruneLogs(opts.Dir, opts.MaxLogFiles-1); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}

	return filepath.Join(opts.Dir, uuid.New().String()+".log"), nil
}

// pruneLogs deletes the oldest .log files in dir until at most keep remain
func pruneLogs(dir string, keep int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	var logs []os.FileInfo
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		if info, err := entry.Info(); err == nil {
			logs = append(logs, info)
		}
	}
	if len(logs) <= keep {
		return nil
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].ModTime().Before(logs[j].ModTime())
	})
	for _, info := range logs[:len(logs)-keep] {
		path := filepath.Join(dir, info.Name())
		if err := os.Remove(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", path, err)
		}
	}
	return nil
}
