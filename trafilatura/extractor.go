// Package trafilatura extracts page content with go-trafilatura, falling
// back to its readability and dom-distiller passes.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/wprefactor"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements wprefactor.Extractor at compile time.
var _ wprefactor.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor. Images and links are kept since
// migrated pages still need them.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback: true,
			IncludeImages:  true,
			IncludeLinks:   true,
		},
	}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*wprefactor.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, wprefactor.Errorf(wprefactor.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderChildren(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &wprefactor.ExtractResult{
		Title:       wprefactor.TrimSiteName(result.Metadata.Title),
		BodyClass:   wprefactor.FindBodyClass(rawHTML),
		ContentHTML: contentHTML,
	}, nil
}

// renderChildren renders the children of the wrapper node trafilatura
// puts its output in.
func renderChildren(n *html.Node) (string, error) {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return strings.TrimSpace(buf.String()), nil
}
