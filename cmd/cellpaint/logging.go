package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/cellpaint/engine"
)

const (
	logFileName = "cellpaint.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes slog, the standard logger and the engine logger to
// dir/cellpaint.log when debug is set, and discards everything otherwise so
// the terminal output stays clean. An oversized log is rotated aside with a
// timestamp suffix. Returns the open file, or nil when logging is off or the
// file cannot be opened
func setupLogging(dir string, debug bool) *os.File {
	if !debug {
		discard(nil)
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		discard(err)
		return nil
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("cellpaint-%s.log", time.Now().Format("20060102-150405")))
		os.Rename(path, rotated)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		discard(err)
		return nil
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)
	log.SetOutput(f)
	engine.SetLogger(logger)
	logger.Info("logging started", "pid", os.Getpid())
	return f
}

func discard(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)
	engine.SetLogger(nil)
}
