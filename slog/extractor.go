package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/wprefactor"
)

// Ensure LoggingExtractor implements wprefactor.Extractor.
var _ wprefactor.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   wprefactor.Extractor
	name   string
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor. name identifies the
// wrapped extractor in log records.
func NewLoggingExtractor(next wprefactor.Extractor, name string, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, name: name, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (res *wprefactor.ExtractResult, err error) {
	defer func(begin time.Time) {
		var title string
		var size int
		if res != nil {
			title, size = res.Title, len(res.ContentHTML)
		}
		e.logger.Info("extract",
			"extractor", e.name,
			"title", title,
			"bytes_in", len(html),
			"bytes_out", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
