package anchor

import "github.com/fwojciec/wprefactor"

// Ensure RangeExtractor implements wprefactor.Extractor at compile time.
var _ wprefactor.Extractor = (*RangeExtractor)(nil)

// RangeExtractor treats the whole input as content. It pairs with pages that
// carry a hand-picked line range, where the loader has already cut the
// content out; title and body class come from the page definition.
type RangeExtractor struct{}

// NewRangeExtractor creates a new RangeExtractor.
func NewRangeExtractor() *RangeExtractor {
	return &RangeExtractor{}
}

// Extract returns html unchanged as the content.
func (e *RangeExtractor) Extract(html string) (*wprefactor.ExtractResult, error) {
	return &wprefactor.ExtractResult{ContentHTML: html}, nil
}
