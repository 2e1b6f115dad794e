// Package template renders cleaned content into the static page shell.
// The shell loads shared header, nav and footer components at runtime
// through component-loader.js.
package template

import (
	_ "embed"
	"strings"
	texttemplate "text/template"

	"github.com/fwojciec/wprefactor"
)

//go:embed page.html.tmpl
var pageTemplate string

var shell = texttemplate.Must(texttemplate.New("page").Parse(pageTemplate))

var baseStylesheets = []string{
	"/assets/css/vendor/bootstrap.min.css",
	"/assets/css/vendor/plugin.css",
	"/assets/css/vendor/utilities.css",
	"/assets/css/vendor/vendor.css",
	"/assets/css/vendor/style.css",
	"/assets/css/core/wordpress-extracted.css",
}

// Scripts are the shared script includes of every page, in load order.
var Scripts = []string{
	"/assets/js/vendor/jquery.min.js",
	"/assets/js/vendor/jquery-migrate.min.js",
	"/assets/js/vendor/bootstrap.min.js",
	"/assets/js/vendor/plugin.js",
	"/assets/js/vendor/vendor.js",
	"/assets/js/component-loader.js",
}

// Ensure Renderer implements wprefactor.Renderer at compile time.
var _ wprefactor.Renderer = (*Renderer)(nil)

// Renderer fills the page shell. Variants differ only in stylesheets.
type Renderer struct {
	stylesheets []string
}

// NewRenderer returns the renderer for a template name.
// The graphic template additionally loads banner-fix.css.
func NewRenderer(name string) (*Renderer, error) {
	stylesheets := append([]string(nil), baseStylesheets...)
	switch name {
	case wprefactor.TemplateCloud:
	case wprefactor.TemplateGraphic:
		stylesheets = append(stylesheets, "/assets/css/core/banner-fix.css")
	default:
		return nil, wprefactor.Errorf(wprefactor.EINVALID, "unknown template %q", name)
	}
	return &Renderer{stylesheets: stylesheets}, nil
}

// Stylesheets returns the stylesheet links in document order.
func (r *Renderer) Stylesheets() []string {
	return r.stylesheets
}

// Render returns the complete document. Values are inserted verbatim:
// content is trusted HTML and the title keeps its source entities.
func (r *Renderer) Render(data *wprefactor.TemplateData) (string, error) {
	if data == nil {
		return "", wprefactor.Errorf(wprefactor.EINVALID, "template data required")
	}

	var b strings.Builder
	err := shell.Execute(&b, pageData{
		Title:       data.Title,
		BodyClass:   data.BodyClass,
		Content:     data.Content,
		Stylesheets: r.stylesheets,
		Scripts:     Scripts,
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

type pageData struct {
	Title       string
	BodyClass   string
	Content     string
	Stylesheets []string
	Scripts     []string
}
