package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wprefactor"
)

var (
	_ wprefactor.PageWriter = (*LoggingPageWriter)(nil)
	_ wprefactor.PageStore  = (*LoggingPageStore)(nil)
	_ wprefactor.Loader     = (*LoggingLoader)(nil)
)

// LoggingPageWriter wraps a PageWriter with logging.
type LoggingPageWriter struct {
	next   wprefactor.PageWriter
	logger *slog.Logger
}

// NewLoggingPageWriter creates a new LoggingPageWriter.
func NewLoggingPageWriter(next wprefactor.PageWriter, logger *slog.Logger) *LoggingPageWriter {
	return &LoggingPageWriter{next: next, logger: logger}
}

// WritePage delegates to the wrapped writer and logs the operation.
func (w *LoggingPageWriter) WritePage(ctx context.Context, path, content string) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write page",
			"path", path,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WritePage(ctx, path, content)
}

// LoggingPageStore wraps a PageStore with logging.
type LoggingPageStore struct {
	*LoggingPageWriter
	next wprefactor.PageStore
}

// NewLoggingPageStore creates a new LoggingPageStore.
func NewLoggingPageStore(next wprefactor.PageStore, logger *slog.Logger) *LoggingPageStore {
	return &LoggingPageStore{
		LoggingPageWriter: NewLoggingPageWriter(next, logger),
		next:              next,
	}
}

// Commit delegates to the wrapped store and logs the operation.
func (s *LoggingPageStore) Commit() (err error) {
	defer func(begin time.Time) {
		s.logger.Info("commit pages", "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.Commit()
}

// Abort delegates to the wrapped store and logs the operation.
func (s *LoggingPageStore) Abort() (err error) {
	defer func(begin time.Time) {
		s.logger.Info("abort pages", "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.Abort()
}

// LoggingLoader wraps a Loader with logging.
type LoggingLoader struct {
	next   wprefactor.Loader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next wprefactor.Loader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the operation.
func (l *LoggingLoader) Load(ctx context.Context, path string) (text string, err error) {
	defer func(begin time.Time) {
		l.logger.Info("load",
			"path", path,
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx, path)
}

// List delegates to the wrapped loader and logs the operation.
func (l *LoggingLoader) List(ctx context.Context, dir string) (files []string, err error) {
	defer func(begin time.Time) {
		l.logger.Info("list",
			"dir", dir,
			"count", len(files),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.List(ctx, dir)
}
