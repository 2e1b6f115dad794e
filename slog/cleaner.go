package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/wprefactor"
)

var (
	_ wprefactor.Cleaner         = (*LoggingCleaner)(nil)
	_ wprefactor.CleanerRegistry = (*LoggingCleanerRegistry)(nil)
)

// LoggingCleaner wraps a Cleaner and logs how much each pass removed.
type LoggingCleaner struct {
	next   wprefactor.Cleaner
	logger *slog.Logger
}

// NewLoggingCleaner creates a new LoggingCleaner.
func NewLoggingCleaner(next wprefactor.Cleaner, logger *slog.Logger) *LoggingCleaner {
	return &LoggingCleaner{next: next, logger: logger}
}

// Clean delegates to the wrapped cleaner and logs the operation.
func (c *LoggingCleaner) Clean(html string) (out string) {
	defer func(begin time.Time) {
		c.logger.Info("clean",
			"rules", c.next.Name(),
			"bytes_in", len(html),
			"bytes_out", len(out),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return c.next.Clean(html)
}

// Name returns the wrapped cleaner's name.
func (c *LoggingCleaner) Name() string {
	return c.next.Name()
}

// LoggingCleanerRegistry wraps a CleanerRegistry so every cleaner it
// builds logs its passes.
type LoggingCleanerRegistry struct {
	next   wprefactor.CleanerRegistry
	logger *slog.Logger
}

// NewLoggingCleanerRegistry creates a new LoggingCleanerRegistry.
func NewLoggingCleanerRegistry(next wprefactor.CleanerRegistry, logger *slog.Logger) *LoggingCleanerRegistry {
	return &LoggingCleanerRegistry{next: next, logger: logger}
}

// Build delegates to the wrapped registry and wraps the result.
func (r *LoggingCleanerRegistry) Build(names []string, page *wprefactor.Page) (wprefactor.Cleaner, error) {
	c, err := r.next.Build(names, page)
	if err != nil {
		r.logger.Info("build cleaner", "rules", names, "err", err)
		return nil, err
	}
	logger := r.logger
	if page != nil {
		logger = logger.With("source", page.SourcePath)
	}
	return NewLoggingCleaner(c, logger), nil
}

// List delegates to the wrapped registry.
func (r *LoggingCleanerRegistry) List() []string {
	return r.next.List()
}
