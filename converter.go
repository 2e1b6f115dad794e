package wprefactor

// Converter converts page content to Markdown.
type Converter interface {
	// Convert renders cleaned content as Markdown headed by the page title.
	// An empty title adds no heading.
	Convert(title, html string) (string, error)
}
