package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/wprefactor"
	"github.com/fwojciec/wprefactor/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Staged page output
// A failed batch must not leave half of its pages behind.

func TestFileStore_WritePageStagesOutput(t *testing.T) {
	t.Parallel()

	// Given a store rooted at a directory
	base := t.TempDir()
	store := fs.NewFileStore(base)

	// When I write a page
	err := store.WritePage(context.Background(), "pages/a.html", "<p>a</p>")

	// Then the page exists only in the staging directory
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(base, fs.StagingDirName, "pages", "a.html"))
	require.NoError(t, err, "page should be staged")
	_, err = os.Stat(filepath.Join(base, "pages", "a.html"))
	assert.True(t, os.IsNotExist(err), "page should not be published before commit")
	assert.Equal(t, 1, store.Staged())
}

func TestFileStore_CommitPublishesAlongsideExistingFiles(t *testing.T) {
	t.Parallel()

	// Given existing output and two staged pages
	base := t.TempDir()
	writeTestFile(t, filepath.Join(base, "pages", "keep.html"), "keep")
	writeTestFile(t, filepath.Join(base, "pages", "a.html"), "old")
	store := fs.NewFileStore(base)
	require.NoError(t, store.WritePage(context.Background(), "pages/a.html", "new"))
	require.NoError(t, store.WritePage(context.Background(), "pages/sub/b.html", "b"))

	// When I commit
	err := store.Commit()

	// Then staged pages replace or join existing output
	require.NoError(t, err)
	for path, want := range map[string]string{
		"pages/keep.html":  "keep",
		"pages/a.html":     "new",
		"pages/sub/b.html": "b",
	} {
		got, err := os.ReadFile(filepath.Join(base, path))
		require.NoError(t, err, path)
		assert.Equal(t, want, string(got), path)
	}

	// And the staging directory is gone
	_, err = os.Stat(filepath.Join(base, fs.StagingDirName))
	assert.True(t, os.IsNotExist(err))
	assert.Zero(t, store.Staged())
}

func TestFileStore_AbortDiscardsStagedPages(t *testing.T) {
	t.Parallel()

	// Given a staged page over existing output
	base := t.TempDir()
	writeTestFile(t, filepath.Join(base, "pages", "a.html"), "old")
	store := fs.NewFileStore(base)
	require.NoError(t, store.WritePage(context.Background(), "pages/a.html", "new"))

	// When I abort
	err := store.Abort()

	// Then existing output is untouched and nothing is staged
	require.NoError(t, err)
	got, err := os.ReadFile(filepath.Join(base, "pages", "a.html"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(got))
	_, err = os.Stat(filepath.Join(base, fs.StagingDirName))
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_RejectsPathsOutsideBase(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewFileStore(base)

	err := store.WritePage(context.Background(), "../escape.html", "x")

	require.Error(t, err)
	assert.Equal(t, wprefactor.EINVALID, wprefactor.ErrorCode(err))
}

func TestFileStore_AcceptsAbsolutePathsInsideBase(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewFileStore(base)

	err := store.WritePage(context.Background(), filepath.Join(base, "pages", "x.html"), "x")
	require.NoError(t, err)
	require.NoError(t, store.Commit())

	got, err := os.ReadFile(filepath.Join(base, "pages", "x.html"))
	require.NoError(t, err)
	assert.Equal(t, "x", string(got))
}
