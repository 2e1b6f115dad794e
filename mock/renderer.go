package mock

import "github.com/fwojciec/wprefactor"

var (
	_ wprefactor.Renderer  = (*Renderer)(nil)
	_ wprefactor.Formatter = (*Formatter)(nil)
	_ wprefactor.Converter = (*Converter)(nil)
)

// Renderer is a mock implementation of wprefactor.Renderer.
type Renderer struct {
	RenderFn func(data *wprefactor.TemplateData) (string, error)
}

func (r *Renderer) Render(data *wprefactor.TemplateData) (string, error) {
	return r.RenderFn(data)
}

// Formatter is a mock implementation of wprefactor.Formatter.
type Formatter struct {
	FormatFn func(html string) (string, error)
}

func (f *Formatter) Format(html string) (string, error) {
	return f.FormatFn(html)
}

// Converter is a mock implementation of wprefactor.Converter.
type Converter struct {
	ConvertFn func(title, html string) (string, error)
}

func (c *Converter) Convert(title, html string) (string, error) {
	return c.ConvertFn(title, html)
}
