// Package readability extracts page content with the Mozilla Readability
// heuristics, for pages whose theme lacks reliable anchors.
package readability

import (
	"strings"

	"github.com/fwojciec/wprefactor"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements wprefactor.Extractor at compile time.
var _ wprefactor.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content. The title has
// its site name removed; the body class comes from the raw <body> tag,
// which readability discards.
func (e *Extractor) Extract(rawHTML string) (*wprefactor.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, wprefactor.Errorf(wprefactor.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &wprefactor.ExtractResult{
		Title:       wprefactor.TrimSiteName(article.Title),
		BodyClass:   wprefactor.FindBodyClass(rawHTML),
		ContentHTML: strings.TrimSpace(article.Content),
	}, nil
}
