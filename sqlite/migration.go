package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/wprefactor"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ wprefactor.MigrationService = (*MigrationService)(nil)

const migrationColumns = `id, source_path, output_path, title, body_class, source_hash, output_hash,
	line_count, bytes_in, bytes_out, migrated_at`

// MigrationService implements wprefactor.MigrationService using SQLite.
type MigrationService struct {
	db  *DB
	now func() time.Time
}

// NewMigrationService creates a new MigrationService.
func NewMigrationService(db *DB) *MigrationService {
	return &MigrationService{db: db, now: time.Now}
}

// RecordMigration stores m, replacing any earlier record with the same
// output path. A replaced record keeps its ID; m.ID and m.MigratedAt are
// set on return.
func (s *MigrationService) RecordMigration(ctx context.Context, m *wprefactor.Migration) error {
	if err := m.Validate(); err != nil {
		return err
	}

	m.MigratedAt = s.now().UTC().Truncate(time.Second)

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO migrations (`+migrationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(output_path) DO UPDATE SET
			source_path = excluded.source_path,
			title = excluded.title,
			body_class = excluded.body_class,
			source_hash = excluded.source_hash,
			output_hash = excluded.output_hash,
			line_count = excluded.line_count,
			bytes_in = excluded.bytes_in,
			bytes_out = excluded.bytes_out,
			migrated_at = excluded.migrated_at
		RETURNING id
	`, uuid.New().String(), m.SourcePath, m.OutputPath, m.Title, m.BodyClass, m.SourceHash, m.OutputHash,
		m.LineCount, m.BytesIn, m.BytesOut, m.MigratedAt.Format(time.RFC3339)).Scan(&m.ID)

	return err
}

// FindMigrationByOutput retrieves the record for an output path.
func (s *MigrationService) FindMigrationByOutput(ctx context.Context, outputPath string) (*wprefactor.Migration, error) {
	m, err := scanMigration(s.db.QueryRowContext(ctx,
		`SELECT `+migrationColumns+` FROM migrations WHERE output_path = ?`, outputPath))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, wprefactor.Errorf(wprefactor.ENOTFOUND, "migration not found")
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// FindMigrations retrieves migrations matching the filter, ordered by
// output path.
func (s *MigrationService) FindMigrations(ctx context.Context, filter wprefactor.MigrationFilter) ([]*wprefactor.Migration, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + migrationColumns + " FROM migrations WHERE 1=1")

	if filter.SourcePath != nil {
		query.WriteString(" AND source_path = ?")
		args = append(args, *filter.SourcePath)
	}
	if filter.OutputPath != nil {
		query.WriteString(" AND output_path = ?")
		args = append(args, *filter.OutputPath)
	}
	if filter.OutputPrefix != nil {
		query.WriteString(" AND instr(output_path, ?) = 1")
		args = append(args, *filter.OutputPrefix)
	}

	query.WriteString(" ORDER BY output_path")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var migrations []*wprefactor.Migration
	for rows.Next() {
		m, err := scanMigration(rows)
		if err != nil {
			return nil, err
		}
		migrations = append(migrations, m)
	}

	return migrations, rows.Err()
}

// DeleteMigration permanently removes a record.
func (s *MigrationService) DeleteMigration(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM migrations WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return wprefactor.Errorf(wprefactor.ENOTFOUND, "migration not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMigration(row scanner) (*wprefactor.Migration, error) {
	var m wprefactor.Migration
	var migratedAt string

	if err := row.Scan(&m.ID, &m.SourcePath, &m.OutputPath, &m.Title, &m.BodyClass, &m.SourceHash, &m.OutputHash,
		&m.LineCount, &m.BytesIn, &m.BytesOut, &migratedAt); err != nil {
		return nil, err
	}

	var err error
	m.MigratedAt, err = parseRFC3339(migratedAt, "migrated_at")
	if err != nil {
		return nil, err
	}

	return &m, nil
}
