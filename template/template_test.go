package template_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/wprefactor"
	"github.com/fwojciec/wprefactor/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("cloud template matches the page shell", func(t *testing.T) {
		t.Parallel()

		r, err := template.NewRenderer(wprefactor.TemplateCloud)
		require.NoError(t, err)

		got, err := r.Render(&wprefactor.TemplateData{
			Title:     "Security",
			BodyClass: "bg-teal",
			Content:   "<section>Body</section>",
		})

		require.NoError(t, err)
		want := `<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta http-equiv="X-UA-Compatible" content="IE=edge" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Security - Konica Minolta</title>
    <link rel="icon" type="image/png" sizes="32x32" href="/assets/images/icons/favicon-32x32.png" />
    <link rel="stylesheet" href="/assets/css/vendor/bootstrap.min.css" />
    <link rel="stylesheet" href="/assets/css/vendor/plugin.css" />
    <link rel="stylesheet" href="/assets/css/vendor/utilities.css" />
    <link rel="stylesheet" href="/assets/css/vendor/vendor.css" />
    <link rel="stylesheet" href="/assets/css/vendor/style.css" />
    <link rel="stylesheet" href="/assets/css/core/wordpress-extracted.css" />
  </head>
  <body class="bg-teal">
    <div id="header-container"></div>
    <div id="nav-container"></div>
    
<section>Body</section>
    
    <div id="footer-container"></div>
    <script src="/assets/js/vendor/jquery.min.js"></script>
    <script src="/assets/js/vendor/jquery-migrate.min.js"></script>
    <script src="/assets/js/vendor/bootstrap.min.js"></script>
    <script src="/assets/js/vendor/plugin.js"></script>
    <script src="/assets/js/vendor/vendor.js"></script>
    <script src="/assets/js/component-loader.js"></script>
  </body>
</html>
`
		assert.Equal(t, want, got)
	})

	t.Run("graphic template adds banner fix stylesheet last", func(t *testing.T) {
		t.Parallel()

		r, err := template.NewRenderer(wprefactor.TemplateGraphic)
		require.NoError(t, err)

		got, err := r.Render(&wprefactor.TemplateData{Title: "e-Commerce", BodyClass: "page"})

		require.NoError(t, err)
		assert.Contains(t, got,
			"<link rel=\"stylesheet\" href=\"/assets/css/core/wordpress-extracted.css\" />\n"+
				"    <link rel=\"stylesheet\" href=\"/assets/css/core/banner-fix.css\" />\n  </head>")
		assert.Equal(t, "/assets/css/core/banner-fix.css", r.Stylesheets()[len(r.Stylesheets())-1])
	})

	t.Run("content is inserted verbatim", func(t *testing.T) {
		t.Parallel()

		r, err := template.NewRenderer(wprefactor.TemplateCloud)
		require.NoError(t, err)

		content := `<a href="/x?a=1&amp;b=2">Fax &amp; Scan</a>`
		got, err := r.Render(&wprefactor.TemplateData{Title: "Fax & Scan", Content: content})

		require.NoError(t, err)
		assert.Contains(t, got, content)
		assert.Contains(t, got, "<title>Fax & Scan - Konica Minolta</title>")
	})

	t.Run("placeholders are present once", func(t *testing.T) {
		t.Parallel()

		r, err := template.NewRenderer(wprefactor.TemplateGraphic)
		require.NoError(t, err)

		got, err := r.Render(&wprefactor.TemplateData{})

		require.NoError(t, err)
		for _, id := range []string{"header-container", "nav-container", "footer-container"} {
			assert.Equal(t, 1, strings.Count(got, `<div id="`+id+`"></div>`), id)
		}
	})

	t.Run("nil data is invalid", func(t *testing.T) {
		t.Parallel()

		r, err := template.NewRenderer(wprefactor.TemplateCloud)
		require.NoError(t, err)

		_, err = r.Render(nil)

		assert.Equal(t, wprefactor.EINVALID, wprefactor.ErrorCode(err))
	})
}

func TestNewRenderer_UnknownTemplate(t *testing.T) {
	t.Parallel()

	_, err := template.NewRenderer("blog")

	require.Error(t, err)
	assert.Equal(t, wprefactor.EINVALID, wprefactor.ErrorCode(err))
}
