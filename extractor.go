package wprefactor

import (
	"regexp"
	"strings"
)

// ExtractResult holds the content region and page metadata found in a
// source document. Empty fields mean "not found".
type ExtractResult struct {
	// Title is the page title with any site-name suffix removed.
	Title string

	// BodyClass is the class attribute of the source <body> element.
	BodyClass string

	// ContentHTML is the main content region, still containing whatever
	// editor and vendor artifacts the source had.
	ContentHTML string
}

// Extractor locates the main content of a full WordPress page.
type Extractor interface {
	// Extract returns the content region and metadata of raw HTML.
	// A document without recognizable anchors yields empty content,
	// not an error.
	Extract(html string) (*ExtractResult, error)
}

var (
	siteNameRe  = regexp.MustCompile(`(?i)\s*(?:[–-]|&#8211;|&ndash;)\s*KONICA MINOLTA.*$`)
	bodyClassRe = regexp.MustCompile(`(?i)<body[^>]*class=["']([^"']+)["']`)
)

// TrimSiteName removes a trailing "– KONICA MINOLTA…" site name from a
// page title, matching case-insensitively and accepting a hyphen or an
// en dash in either literal or entity form. Surrounding whitespace, such
// as the newline before </title> in saved pages, is ignored.
func TrimSiteName(title string) string {
	return strings.TrimSpace(siteNameRe.ReplaceAllString(strings.TrimSpace(title), ""))
}

// FindBodyClass returns the class attribute of the first <body> tag in
// raw HTML, or "" if it has none.
func FindBodyClass(html string) string {
	m := bodyClassRe.FindStringSubmatch(html)
	if m == nil {
		return ""
	}
	return m[1]
}
