package wprefactor

import (
	"context"
	"time"
)

// Migration records one migrated page in the manifest.
type Migration struct {
	ID         string    `json:"id"`
	SourcePath string    `json:"sourcePath"`
	OutputPath string    `json:"outputPath"`
	Title      string    `json:"title"`
	BodyClass  string    `json:"bodyClass"`
	SourceHash string    `json:"sourceHash"`
	OutputHash string    `json:"outputHash"`
	LineCount  int       `json:"lineCount"`
	BytesIn    int       `json:"bytesIn"`
	BytesOut   int       `json:"bytesOut"`
	MigratedAt time.Time `json:"migratedAt"`
}

// Validate returns an error if the migration contains invalid fields.
func (m *Migration) Validate() error {
	if m.SourcePath == "" {
		return Errorf(EINVALID, "migration source path required")
	}
	if m.OutputPath == "" {
		return Errorf(EINVALID, "migration output path required")
	}
	return nil
}

// MigrationService represents a service for managing the migration manifest.
type MigrationService interface {
	// RecordMigration stores a migration, replacing any earlier record
	// for the same output path.
	RecordMigration(ctx context.Context, m *Migration) error

	// FindMigrationByOutput retrieves the record for an output path.
	// Returns ENOTFOUND if no page was migrated to that path.
	FindMigrationByOutput(ctx context.Context, outputPath string) (*Migration, error)

	// FindMigrations retrieves migrations matching the filter,
	// ordered by output path.
	FindMigrations(ctx context.Context, filter MigrationFilter) ([]*Migration, error)

	// DeleteMigration permanently removes a record.
	// Returns ENOTFOUND if the record does not exist.
	DeleteMigration(ctx context.Context, id string) error
}

// MigrationFilter represents a filter for FindMigrations.
type MigrationFilter struct {
	SourcePath *string `json:"sourcePath"`
	OutputPath *string `json:"outputPath"`
	// OutputPrefix matches records whose output path starts with it.
	OutputPrefix *string `json:"outputPrefix"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
