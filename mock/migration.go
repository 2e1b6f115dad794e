package mock

import (
	"context"

	"github.com/fwojciec/wprefactor"
)

var _ wprefactor.MigrationService = (*MigrationService)(nil)

// MigrationService is a mock implementation of wprefactor.MigrationService.
type MigrationService struct {
	RecordMigrationFn       func(ctx context.Context, m *wprefactor.Migration) error
	FindMigrationByOutputFn func(ctx context.Context, outputPath string) (*wprefactor.Migration, error)
	FindMigrationsFn        func(ctx context.Context, filter wprefactor.MigrationFilter) ([]*wprefactor.Migration, error)
	DeleteMigrationFn       func(ctx context.Context, id string) error
}

func (s *MigrationService) RecordMigration(ctx context.Context, m *wprefactor.Migration) error {
	return s.RecordMigrationFn(ctx, m)
}

func (s *MigrationService) FindMigrationByOutput(ctx context.Context, outputPath string) (*wprefactor.Migration, error) {
	return s.FindMigrationByOutputFn(ctx, outputPath)
}

func (s *MigrationService) FindMigrations(ctx context.Context, filter wprefactor.MigrationFilter) ([]*wprefactor.Migration, error) {
	return s.FindMigrationsFn(ctx, filter)
}

func (s *MigrationService) DeleteMigration(ctx context.Context, id string) error {
	return s.DeleteMigrationFn(ctx, id)
}
