package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// maxLogSize triggers rotation of an existing log file on open
const maxLogSize = 10 * 1024 * 1024

func ResolveLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", level)
	}
}

// InitLogger opens path for a text logger. An empty path discards all output,
// since the terminal itself is unusable for logs while in raw mode
// The returned file is nil when nothing was opened
func InitLogger(path, level string) (*slog.Logger, *os.File, error) {
	logLevel, err := ResolveLogLevel(level)
	if err != nil {
		return nil, nil, err
	}
	if path == "" {
		return slog.New(slog.DiscardHandler), nil, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	rotateLog(path)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: logLevel,
	})
	return slog.New(handler), f, nil
}

// rotateLog renames an oversized log to a timestamped sibling
func rotateLog(path string) {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	os.Rename(path, fmt.Sprintf("%s-%s%s", base, time.Now().Format("20060102-150405"), ext))
}
