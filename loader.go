package wprefactor

import "context"

// Loader reads source documents.
type Loader interface {
	// Load returns the file contents decoded to UTF-8.
	// Returns ENOTFOUND if the file does not exist.
	Load(ctx context.Context, path string) (string, error)

	// List returns the *.html files directly inside dir, sorted.
	// Returns ENOTFOUND if dir does not exist.
	List(ctx context.Context, dir string) ([]string, error)
}

// PageWriter writes migrated documents.
type PageWriter interface {
	// WritePage writes content to path, creating parent directories.
	WritePage(ctx context.Context, path string, content string) error
}

// PageStore stages written pages and publishes them together.
// Commit moves every staged page into place; Abort discards them.
type PageStore interface {
	PageWriter
	Commit() error
	Abort() error
}
