package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wprefactor"
)

// Ensure Extractor implements wprefactor.Extractor at compile time.
var _ wprefactor.Extractor = (*Extractor)(nil)

// fallbackSelectors are tried in order when the body has no
// navigation/footer frame to cut between.
var fallbackSelectors = []string{"main", "article", "#content", ".entry-content"}

// Extractor finds page content by walking the parsed document instead of
// searching raw text, so nested or repeated markers cannot skew the slice.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the outer HTML of the body children lying strictly
// between the first nav or header and the first footer that follows it.
// Without such a frame the first main, article, #content or .entry-content
// element is used.
func (e *Extractor) Extract(html string) (*wprefactor.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, wprefactor.Errorf(wprefactor.EINVALID, "failed to parse HTML: %v", err)
	}

	content, err := frameContent(doc)
	if err != nil {
		return nil, err
	}
	if content == "" {
		content, err = fallbackContent(doc)
		if err != nil {
			return nil, err
		}
	}

	bodyClass, _ := doc.Find("body").First().Attr("class")

	return &wprefactor.ExtractResult{
		Title:       wprefactor.TrimSiteName(doc.Find("title").First().Text()),
		BodyClass:   strings.TrimSpace(bodyClass),
		ContentHTML: content,
	}, nil
}

func frameContent(doc *goquery.Document) (string, error) {
	children := doc.Find("body").First().Children()

	start, end := -1, -1
	children.EachWithBreak(func(i int, sel *goquery.Selection) bool {
		switch goquery.NodeName(sel) {
		case "nav", "header":
			if start == -1 {
				start = i
			}
		case "footer":
			if start != -1 {
				end = i
				return false
			}
		}
		return true
	})
	if start == -1 || end == -1 || end-start < 2 {
		return "", nil
	}

	parts := make([]string, 0, end-start-1)
	for i := start + 1; i < end; i++ {
		h, err := goquery.OuterHtml(children.Eq(i))
		if err != nil {
			return "", wprefactor.Errorf(wprefactor.EINTERNAL, "failed to render content: %v", err)
		}
		parts = append(parts, h)
	}
	return strings.TrimSpace(strings.Join(parts, "\n")), nil
}

func fallbackContent(doc *goquery.Document) (string, error) {
	for _, s := range fallbackSelectors {
		sel := doc.Find(s).First()
		if sel.Length() == 0 {
			continue
		}
		h, err := goquery.OuterHtml(sel)
		if err != nil {
			return "", wprefactor.Errorf(wprefactor.EINTERNAL, "failed to render content: %v", err)
		}
		return strings.TrimSpace(h), nil
	}
	return "", nil
}
