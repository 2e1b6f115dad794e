// Package anchor extracts page content by searching raw HTML text for
// anchor markers. It does not build a parse tree: offsets are raw text
// positions, so duplicated or nested anchors can produce odd slices.
package anchor

import (
	"regexp"
	"strings"

	"github.com/fwojciec/wprefactor"
)

// Ensure Extractor implements wprefactor.Extractor at compile time.
var _ wprefactor.Extractor = (*Extractor)(nil)

// Extractor finds the content region between the site navigation and the
// footer of a WordPress page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the content region plus the title and body class.
// Missing anchors yield empty fields, never an error.
func (e *Extractor) Extract(html string) (*wprefactor.ExtractResult, error) {
	return &wprefactor.ExtractResult{
		Title:       ExtractTitle(html),
		BodyClass:   ExtractBodyClass(html),
		ContentHTML: ExtractContent(html),
	}, nil
}

const (
	navClose     = "</nav>"
	headerClose  = "</header>"
	footerOpen   = "<footer"
	entryFooter  = `class="entry-footer`
	expandedMenu = `id="menu-primary-nav-expanded"`
)

// ExtractContent returns the trimmed text between the first matching anchor
// pair, tried in order:
//
//  1. </nav> … <footer
//  2. </header> (or the </nav> closing the expanded primary menu) …
//     <footer (or class="entry-footer)
//
// Returns "" when no pair is found or the end anchor precedes the start.
func ExtractContent(html string) string {
	start := strings.Index(html, navClose)
	end := strings.Index(html, footerOpen)
	if start != -1 && end != -1 {
		return between(html, start+len(navClose), end)
	}

	start, startLen := strings.Index(html, headerClose), len(headerClose)
	if start == -1 {
		start, startLen = indexAfter(html, expandedMenu, navClose), len(navClose)
	}

	end = strings.Index(html, footerOpen)
	if end == -1 {
		end = strings.Index(html, entryFooter)
	}

	if start == -1 || end == -1 {
		return ""
	}
	return between(html, start+startLen, end)
}

// indexAfter returns the index of the first sep that follows marker,
// or -1 if either is missing.
func indexAfter(s, marker, sep string) int {
	m := strings.Index(s, marker)
	if m == -1 {
		return -1
	}
	i := strings.Index(s[m:], sep)
	if i == -1 {
		return -1
	}
	return m + i
}

func between(s string, from, to int) string {
	if from >= to || from > len(s) {
		return ""
	}
	return strings.TrimSpace(s[from:to])
}

var titleRe = regexp.MustCompile(`(?i)<title>([^<]+)</title>`)

// ExtractTitle returns the first <title> text with a trailing
// "– KONICA MINOLTA" site name removed. Returns "" if there is no title.
func ExtractTitle(html string) string {
	m := titleRe.FindStringSubmatch(html)
	if m == nil {
		return ""
	}
	return wprefactor.TrimSiteName(m[1])
}

// ExtractBodyClass returns the class attribute of the first <body> tag.
func ExtractBodyClass(html string) string {
	return wprefactor.FindBodyClass(html)
}
