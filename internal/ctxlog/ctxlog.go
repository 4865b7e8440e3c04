// Package ctxlog carries a slog logger in the context and sets up the
// process-wide JSON log output.
package ctxlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

var setup = false

// Setup initializes logging once per process: JSON records to stderr and to
// a timestamped file under log/, named after the command.
func Setup(ctx context.Context, name string) context.Context {
	if setup {
		return Store(ctx, slog.Default())
	}

	err := os.MkdirAll("log", 0755)
	if err != nil {
		panic(fmt.Errorf("create log dir: %w", err))
	}

	logFile, err := os.Create(filepath.Join("log", fmt.Sprintf("%s-%s.log", name, time.Now().Format("2006-01-02-15-04-05"))))
	if err != nil {
		panic(fmt.Errorf("create log file: %w", err))
	}

	w := io.MultiWriter(os.Stderr, logFile)

	logger := slog.New(slog.NewJSONHandler(w, nil))
	slog.SetDefault(logger)

	setup = true

	return Store(ctx, logger)
}

type ctxKey struct{}

var key ctxKey

func Store(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, key, log)
}

func Get(ctx context.Context) *slog.Logger {
	log, ok := ctx.Value(key).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return log
}

func With(ctx context.Context, kv ...any) context.Context {
	return Store(ctx, Get(ctx).With(kv...))
}

// Close closes the closer and logs a failure instead of dropping it, for use
// in defers.
func Close(ctx context.Context, name string, closer io.Closer) error {
	logger := Get(ctx)
	err := closer.Close()
	if err != nil {
		logger.Error("failed to close", "closer", name, "error", err)
		return err
	}
	return nil
}
