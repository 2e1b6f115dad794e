package anchor_test

import (
	"testing"

	"github.com/fwojciec/wprefactor/anchor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "between nav and footer",
			html: `<header><nav>menu</nav></header><main><p>Body</p></main><footer>f</footer>`,
			want: `</header><main><p>Body</p></main>`,
		},
		{
			name: "uses first nav close and first footer",
			html: `<nav>a</nav><p>one</p><nav>b</nav><p>two</p><footer>x</footer><footer>y</footer>`,
			want: `<p>one</p><nav>b</nav><p>two</p>`,
		},
		{
			name: "falls back to header close when there is no nav",
			html: "<header>logo</header>\n<section>Content</section>\n<footer class=\"site\"></footer>",
			want: `<section>Content</section>`,
		},
		{
			name: "falls back to expanded menu when there is no footer element",
			html: `<div id="menu-primary-nav-expanded"><nav>m</nav></div><article>Text</article><div class="entry-footer">e</div>`,
			want: `</div><article>Text</article><div`,
		},
		{
			name: "entry footer ends content when there is no footer element",
			html: `<header>h</header><p>Kept</p><div class="entry-footer"></div>`,
			want: `<p>Kept</p><div`,
		},
		{
			name: "no anchors yields empty string",
			html: `<html><body><p>nothing to anchor</p></body></html>`,
			want: "",
		},
		{
			name: "footer before nav yields empty string",
			html: `<footer>early</footer><nav>late</nav>`,
			want: "",
		},
		{
			name: "trims surrounding whitespace",
			html: "<nav></nav>\n\n   <p>x</p>   \n<footer>",
			want: "<p>x</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, anchor.ExtractContent(tt.html))
		})
	}
}

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{"strips en dash site name", `<title>Security – KONICA MINOLTA</title>`, "Security"},
		{"strips hyphen site name case-insensitively", `<TITLE>e-Commerce - Konica Minolta Solutions</TITLE>`, "e-Commerce"},
		{"strips entity dash site name", `<title>Fax Solutions &#8211; KONICA MINOLTA</title>`, "Fax Solutions"},
		{"keeps titles without site name", `<title>  Workflow Solutions </title>`, "Workflow Solutions"},
		{"title on its own line", "<title>\nAccurioPro Solutions – KONICA MINOLTA\n</title>", "AccurioPro Solutions"},
		{"missing title", `<html><head></head></html>`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, anchor.ExtractTitle(tt.html))
		})
	}
}

func TestExtractBodyClass(t *testing.T) {
	t.Parallel()

	t.Run("double quoted class", func(t *testing.T) {
		t.Parallel()

		html := `<body data-x="1" class="page-template-default page page-id-42">`
		assert.Equal(t, "page-template-default page page-id-42", anchor.ExtractBodyClass(html))
	})

	t.Run("single quoted class", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "bg-teal", anchor.ExtractBodyClass(`<BODY class='bg-teal'>`))
	})

	t.Run("no class", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, anchor.ExtractBodyClass(`<body><p class="x">`))
	})
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	html := `<html><head><title>Print Management – KONICA MINOLTA</title></head>
<body class="page home"><nav>menu</nav>
<div class="wp-block-cover">Cover</div>
<footer>f</footer></body></html>`

	result, err := anchor.NewExtractor().Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "Print Management", result.Title)
	assert.Equal(t, "page home", result.BodyClass)
	assert.Equal(t, `<div class="wp-block-cover">Cover</div>`, result.ContentHTML)
}

func TestRangeExtractor_Extract(t *testing.T) {
	t.Parallel()

	result, err := anchor.NewRangeExtractor().Extract("  <div>raw</div>\n")

	require.NoError(t, err)
	assert.Equal(t, "  <div>raw</div>\n", result.ContentHTML)
	assert.Empty(t, result.Title)
	assert.Empty(t, result.BodyClass)
}
