package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fwojciec/wprefactor"
)

// Ensure FileStore implements wprefactor.PageStore at compile time.
var _ wprefactor.PageStore = (*FileStore)(nil)

// StagingDirName is the directory under the base directory that holds
// pages written before Commit.
const StagingDirName = ".wprefactor.tmp"

// FileStore implements wprefactor.PageStore with all-or-nothing semantics.
// Pages are written below baseDir/.wprefactor.tmp and moved into place on
// Commit, so an aborted batch leaves existing output untouched.
type FileStore struct {
	baseDir string

	mu     sync.Mutex
	staged map[string]bool
}

// NewFileStore creates a new FileStore rooted at baseDir.
// Page paths must be relative and stay inside baseDir.
func NewFileStore(baseDir string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		staged:  make(map[string]bool),
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, StagingDirName)
}

// WritePage stages content for path.
func (s *FileStore) WritePage(ctx context.Context, path string, content string) error {
	rel, err := s.relPath(path)
	if err != nil {
		return err
	}

	if err := writeFile(filepath.Join(s.tempDir(), rel), content); err != nil {
		return err
	}

	s.mu.Lock()
	s.staged[rel] = true
	s.mu.Unlock()
	return nil
}

// Staged returns the number of pages waiting for Commit.
func (s *FileStore) Staged() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.staged)
}

// Commit moves every staged page to its final path, replacing existing files.
func (s *FileStore) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for rel := range s.staged {
		final := filepath.Join(s.baseDir, rel)
		if err := os.MkdirAll(filepath.Dir(final), 0755); err != nil {
			return err
		}
		if err := os.Rename(filepath.Join(s.tempDir(), rel), final); err != nil {
			return err
		}
		delete(s.staged, rel)
	}

	return os.RemoveAll(s.tempDir())
}

// Abort discards every staged page.
func (s *FileStore) Abort() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.staged)
	return os.RemoveAll(s.tempDir())
}

func (s *FileStore) relPath(path string) (string, error) {
	if path == "" {
		return "", wprefactor.Errorf(wprefactor.EINVALID, "output path required")
	}
	rel := path
	if filepath.IsAbs(path) {
		var err error
		if rel, err = filepath.Rel(s.baseDir, path); err != nil {
			return "", wprefactor.Errorf(wprefactor.EINVALID, "output %q: %v", path, err)
		}
	}
	rel = filepath.Clean(rel)
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", wprefactor.Errorf(wprefactor.EINVALID, "output %q is outside %q", path, s.baseDir)
	}
	return rel, nil
}
