package mock

import "github.com/fwojciec/wprefactor"

var (
	_ wprefactor.Cleaner         = (*Cleaner)(nil)
	_ wprefactor.CleanerRegistry = (*CleanerRegistry)(nil)
)

// Cleaner is a mock implementation of wprefactor.Cleaner.
type Cleaner struct {
	CleanFn func(html string) string
	NameFn  func() string
}

func (c *Cleaner) Clean(html string) string {
	return c.CleanFn(html)
}

func (c *Cleaner) Name() string {
	return c.NameFn()
}

// CleanerRegistry is a mock implementation of wprefactor.CleanerRegistry.
type CleanerRegistry struct {
	BuildFn func(names []string, page *wprefactor.Page) (wprefactor.Cleaner, error)
	ListFn  func() []string
}

func (r *CleanerRegistry) Build(names []string, page *wprefactor.Page) (wprefactor.Cleaner, error) {
	return r.BuildFn(names, page)
}

func (r *CleanerRegistry) List() []string {
	return r.ListFn()
}
