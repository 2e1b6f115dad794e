package htmltomarkdown_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/wprefactor"
	"github.com/fwojciec/wprefactor/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want []string
	}{
		{
			name: "headings",
			html: `<h1>Fax Solutions</h1><h2>Overview</h2>`,
			want: []string{"# Fax Solutions", "## Overview"},
		},
		{
			name: "rewritten links and images",
			html: `<p>See <a href="/solutions/print">printing</a>.</p><img src="/assets/images/content/fax.png" alt="Fax">`,
			want: []string{"[printing](/solutions/print)", "![Fax](/assets/images/content/fax.png)"},
		},
		{
			name: "lists",
			html: `<ul><li>Secure</li><li>Fast</li></ul><ol><li>Scan</li><li>Send</li></ol>`,
			want: []string{"- Secure", "- Fast", "1. Scan", "2. Send"},
		},
		{
			name: "emphasis",
			html: `<p><strong>Bold</strong> and <em>italic</em> text.</p>`,
			want: []string{"**Bold**", "*italic*"},
		},
		{
			name: "tables",
			html: `<table><thead><tr><th>Plan</th><th>Pages</th></tr></thead><tbody><tr><td>Cloud</td><td>7</td></tr></tbody></table>`,
			want: []string{"Plan", "Pages", "Cloud", "|", "---"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			md, err := htmltomarkdown.NewConverter().Convert("", tt.html)

			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, md, w)
			}
		})
	}
}

func TestConverter_Convert_TrailingNewline(t *testing.T) {
	t.Parallel()

	md, err := htmltomarkdown.NewConverter().Convert("", "<p>one</p>\n\n\n")

	require.NoError(t, err)
	assert.Equal(t, "one\n", md)
}

func TestConverter_Convert_BlankInput(t *testing.T) {
	t.Parallel()

	_, err := htmltomarkdown.NewConverter().Convert("Fax Solutions", "  \n ")

	require.Error(t, err)
	assert.Equal(t, wprefactor.EINVALID, wprefactor.ErrorCode(err))
}

func TestConverter_Convert_Title(t *testing.T) {
	t.Parallel()

	t.Run("title becomes the heading", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert("AccurioPro Solutions", "<p>Overview</p>")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(md, "# AccurioPro Solutions\n"), md)
		assert.Contains(t, md, "Overview")
	})

	t.Run("content heading wins over the title", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert("Page Title", "<h1>Own Heading</h1><p>x</p>")

		require.NoError(t, err)
		assert.Contains(t, md, "# Own Heading")
		assert.NotContains(t, md, "Page Title")
	})
}

func TestConverter_Convert_LazyImages(t *testing.T) {
	t.Parallel()

	html := `<p><img src="data:image/svg+xml,%3Csvg%3E" data-lazy-src="/assets/images/content/fax.png" alt="Fax">` +
		`<noscript><img src="/assets/images/content/fax.png" alt="Fax"></noscript></p>`

	md, err := htmltomarkdown.NewConverter().Convert("", html)

	require.NoError(t, err)
	assert.Contains(t, md, "![Fax](/assets/images/content/fax.png)")
	assert.Equal(t, 1, strings.Count(md, "fax.png"), md)
	assert.NotContains(t, md, "data:image")
	assert.NotContains(t, md, "noscript")
}
