package wprefactor

// TemplateData fills the placeholders of a page template.
type TemplateData struct {
	Title     string
	BodyClass string
	Content   string
}

// Renderer wraps cleaned content in a complete HTML document.
type Renderer interface {
	Render(data *TemplateData) (string, error)
}
