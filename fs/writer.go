package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/wprefactor"
)

// Ensure Writer implements wprefactor.PageWriter at compile time.
var _ wprefactor.PageWriter = (*Writer)(nil)

// Writer writes pages directly to their final location.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer. Relative paths are resolved against baseDir.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WritePage writes content to path, creating parent directories.
func (w *Writer) WritePage(ctx context.Context, path string, content string) error {
	if path == "" {
		return wprefactor.Errorf(wprefactor.EINVALID, "output path required")
	}
	return writeFile(resolve(w.baseDir, path), content)
}

func writeFile(fullPath, content string) error {
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(content), 0644)
}
