package main_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/wprefactor"
	main "github.com/fwojciec/wprefactor/cmd/wprefactor"
	"github.com/fwojciec/wprefactor/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func previewDeps(content string, stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Loader: &mock.Loader{
			LoadFn: func(context.Context, string) (string, error) { return "<html>raw</html>", nil },
		},
		Extractor: func(name string) (wprefactor.Extractor, error) {
			return &mock.Extractor{
				ExtractFn: func(string) (*wprefactor.ExtractResult, error) {
					return &wprefactor.ExtractResult{Title: "Fax Solutions", BodyClass: "bg-teal", ContentHTML: content}, nil
				},
			}, nil
		},
		Cleaners: &mock.CleanerRegistry{
			BuildFn: func(names []string, page *wprefactor.Page) (wprefactor.Cleaner, error) {
				return &mock.Cleaner{
					CleanFn: strings.ToUpper,
					NameFn:  func() string { return strings.Join(names, "+") },
				}, nil
			},
		},
		Converter: &mock.Converter{
			ConvertFn: func(title, html string) (string, error) { return "md:" + title + ":" + html + "\n", nil },
		},
	}
}

func TestPreviewCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints metadata and markdown", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

		err := (&main.PreviewCmd{Source: "a.html", Extractor: "anchor"}).Run(previewDeps("<p>hi</p>", stdout, stderr))

		require.NoError(t, err)
		assert.Equal(t, "Title: Fax Solutions\nBody class: bg-teal\n\nmd:Fax Solutions:<p>hi</p>\n", stdout.String())
	})

	t.Run("applies rule sets before converting", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		cmd := &main.PreviewCmd{Source: "a.html", Extractor: "anchor", Rules: []string{"images"}}

		err := cmd.Run(previewDeps("<p>hi</p>", stdout, stderr))

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "md:Fax Solutions:<P>HI</P>")
	})

	t.Run("prints html when asked", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		cmd := &main.PreviewCmd{Source: "a.html", Extractor: "anchor", HTML: true}

		err := cmd.Run(previewDeps("  <p>hi</p>\n", stdout, stderr))

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(stdout.String(), "\n\n<p>hi</p>\n"))
		assert.NotContains(t, stdout.String(), "md:")
	})

	t.Run("empty content is not found", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

		err := (&main.PreviewCmd{Source: "a.html", Extractor: "anchor"}).Run(previewDeps(" \n", stdout, stderr))

		assert.Equal(t, wprefactor.ENOTFOUND, wprefactor.ErrorCode(err))
		assert.Contains(t, stderr.String(), "no content found in a.html")
		assert.Empty(t, stdout.String())
	})

	t.Run("reports missing sources", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := previewDeps("", stdout, stderr)
		deps.Loader = &mock.Loader{
			LoadFn: func(_ context.Context, path string) (string, error) {
				return "", wprefactor.Errorf(wprefactor.ENOTFOUND, "file %q not found", path)
			},
		}

		err := (&main.PreviewCmd{Source: "nope.html", Extractor: "anchor"}).Run(deps)

		assert.Equal(t, wprefactor.ENOTFOUND, wprefactor.ErrorCode(err))
		assert.Contains(t, stderr.String(), `file "nope.html" not found`)
	})
}
