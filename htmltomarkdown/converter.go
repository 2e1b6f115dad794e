// Package htmltomarkdown renders cleaned page content as Markdown for
// review in a terminal.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wprefactor"
)

// Ensure Converter implements wprefactor.Converter at compile time.
var _ wprefactor.Converter = (*Converter)(nil)

// lazyAttrs maps image attributes to the lazy-load attributes WordPress
// plugins park the real value in, in order of preference.
var lazyAttrs = []struct {
	attr string
	lazy []string
}{
	{"src", []string{"data-lazy-src", "data-src"}},
	{"srcset", []string{"data-lazy-srcset", "data-srcset"}},
}

// Converter renders page content as Markdown with CommonMark and table
// support.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert renders content as Markdown headed by the page title. The title
// becomes an H1 unless the content has its own. Lazy-loaded images get
// their real source back and <noscript> fallbacks are dropped, so each
// image appears once. Returns EINVALID for blank content.
func (c *Converter) Convert(title, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", wprefactor.Errorf(wprefactor.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", err
	}

	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		for _, a := range lazyAttrs {
			for _, lazy := range a.lazy {
				if v, ok := img.Attr(lazy); ok && v != "" {
					img.SetAttr(a.attr, v)
					img.RemoveAttr(lazy)
					break
				}
			}
		}
	})
	doc.Find("noscript").Remove()

	body := doc.Find("body")
	if title = strings.TrimSpace(title); title != "" && body.Find("h1").Length() == 0 {
		body.PrependHtml("<h1>" + title + "</h1>")
	}

	prepared, err := body.Html()
	if err != nil {
		return "", err
	}

	result, err := c.conv.ConvertString(prepared)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result) + "\n", nil
}
