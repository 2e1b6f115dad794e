package wprefactor

// Cleaner rewrites HTML text to remove editor and vendor artifacts.
// Implementations must be idempotent: cleaning already-clean content
// returns it unchanged.
type Cleaner interface {
	// Clean returns the rewritten content.
	Clean(html string) string

	// Name returns the cleaner's identifier for logging.
	Name() string
}

// CleanerRegistry resolves named rule sets into a cleaner for one page.
// Some sets depend on the page (e.g., its saved-asset folder name).
type CleanerRegistry interface {
	// Build returns a cleaner applying the named sets in order.
	Build(names []string, page *Page) (Cleaner, error)

	// List returns the registered set names.
	List() []string
}
