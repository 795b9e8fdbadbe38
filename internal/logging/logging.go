package logging

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Init builds the operation logger used as the audit trail of the session.
// When file is empty the log goes to stderr so it never interleaves with
// the rendered terminal output on stdout.
func Init(level, file string) (*slog.Logger, func(), error) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	out := os.Stderr
	cleanup := func() {}

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		cleanup = func() { f.Close() }
	}

	logger := slog.New(slog.NewTextHandler(out, opts)).With("app", "caixa")
	slog.SetDefault(logger)
	return logger, cleanup, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
