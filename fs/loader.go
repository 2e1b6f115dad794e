// Package fs provides file-based loading and writing of pages.
package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/wprefactor"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// Ensure Loader implements wprefactor.Loader at compile time.
var _ wprefactor.Loader = (*Loader)(nil)

// Loader reads source files relative to a base directory.
type Loader struct {
	baseDir string
}

// NewLoader creates a new Loader. Relative paths are resolved against baseDir.
func NewLoader(baseDir string) *Loader {
	return &Loader{baseDir: baseDir}
}

// Load reads a file, decodes it to UTF-8 and normalizes line endings to \n.
func (l *Loader) Load(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(resolve(l.baseDir, path))
	if errors.Is(err, iofs.ErrNotExist) {
		return "", wprefactor.Errorf(wprefactor.ENOTFOUND, "source %q not found", path)
	}
	if err != nil {
		return "", err
	}

	text, err := Decode(data)
	if err != nil {
		return "", wprefactor.Errorf(wprefactor.EINVALID, "decode %q: %v", path, err)
	}
	return NormalizeNewlines(text), nil
}

// List returns the *.html files directly inside dir, sorted by name.
func (l *Loader) List(ctx context.Context, dir string) ([]string, error) {
	full := resolve(l.baseDir, dir)
	info, err := os.Stat(full)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, wprefactor.Errorf(wprefactor.ENOTFOUND, "directory %q not found", dir)
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, wprefactor.Errorf(wprefactor.EINVALID, "%q is not a directory", dir)
	}

	matches, err := filepath.Glob(filepath.Join(full, "*.html"))
	if err != nil {
		return nil, err
	}
	files := make([]string, 0, len(matches))
	for _, m := range matches {
		files = append(files, filepath.Join(dir, filepath.Base(m)))
	}
	sort.Strings(files)
	return files, nil
}

// Decode converts HTML bytes to a UTF-8 string. Valid UTF-8 is returned as
// is; anything else is decoded with the charset the document declares
// (windows-1252 when it declares none, as browsers do).
func Decode(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	enc, _, _ := charset.DetermineEncoding(data, "text/html")
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// NormalizeNewlines converts \r\n and lone \r line endings to \n.
func NormalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func resolve(baseDir, path string) string {
	if baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
