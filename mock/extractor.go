package mock

import "github.com/fwojciec/wprefactor"

var _ wprefactor.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of wprefactor.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*wprefactor.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*wprefactor.ExtractResult, error) {
	return e.ExtractFn(html)
}
