// Package indent re-indents HTML documents with two spaces per level of
// block nesting. It tokenizes rather than parses, so the output keeps every
// tag exactly as written in the source.
package indent

import (
	"errors"
	"io"
	"strings"

	"github.com/fwojciec/wprefactor"
	"golang.org/x/net/html"
)

// Ensure Formatter implements wprefactor.Formatter at compile time.
var _ wprefactor.Formatter = (*Formatter)(nil)

// containers get their own lines and indent their children.
var containers = set(
	"html", "head", "body", "div", "section", "header", "footer", "nav",
	"ul", "ol", "li", "table", "thead", "tbody", "tr", "td", "th",
	"form", "select", "article", "main", "aside",
)

// lineTags start a new line but keep their children on it.
var lineTags = set(
	"p", "h1", "h2", "h3", "h4", "h5", "h6", "title", "meta", "link",
	"script", "style", "img", "br", "hr", "button", "label", "option",
	"figure", "figcaption", "iframe", "noscript", "picture", "source",
	"blockquote", "pre", "textarea",
)

var voidTags = set("meta", "link", "img", "br", "hr", "source", "input")

// verbatimTags keep their content byte for byte.
var verbatimTags = set("script", "style", "pre", "textarea")

// Formatter re-indents HTML.
type Formatter struct {
	indent string
}

// NewFormatter creates a Formatter indenting with two spaces.
func NewFormatter() *Formatter {
	return &Formatter{indent: "  "}
}

// Format returns html with one block element per line, indented by depth.
// Blank lines are dropped and the result ends with a newline.
func (f *Formatter) Format(src string) (string, error) {
	p := &printer{indent: f.indent}
	z := html.NewTokenizer(strings.NewReader(src))

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if errors.Is(z.Err(), io.EOF) {
				break
			}
			return "", z.Err()
		}

		raw := string(z.Raw())
		if p.verbatim != "" {
			p.verbatimToken(z, tt, raw)
			continue
		}

		switch tt {
		case html.TextToken:
			p.text(raw)
		case html.StartTagToken:
			name, _ := z.TagName()
			p.start(string(name), raw, false)
		case html.SelfClosingTagToken:
			name, _ := z.TagName()
			p.start(string(name), raw, true)
		case html.EndTagToken:
			name, _ := z.TagName()
			p.end(string(name), raw)
		case html.CommentToken, html.DoctypeToken:
			p.flush()
			p.emit(raw)
		}
	}

	p.flush()
	if len(p.lines) == 0 {
		return "", nil
	}
	return strings.Join(p.lines, "\n") + "\n", nil
}

type printer struct {
	indent string
	lines  []string
	depth  int
	cur    strings.Builder

	// verbatim is the tag whose content is being copied as is;
	// nested counts repeated opens of the same tag (pre in pre).
	verbatim string
	nested   int
}

func (p *printer) emit(s string) {
	p.lines = append(p.lines, strings.Repeat(p.indent, p.depth)+s)
}

func (p *printer) flush() {
	line := strings.TrimSpace(p.cur.String())
	p.cur.Reset()
	if line != "" {
		p.emit(line)
	}
}

func (p *printer) text(raw string) {
	s := collapseSpace(raw)
	if p.cur.Len() == 0 {
		s = strings.TrimLeft(s, " ")
	}
	p.cur.WriteString(s)
}

func (p *printer) start(name, raw string, selfClosing bool) {
	switch {
	case containers[name]:
		p.flush()
		p.emit(raw)
		if !selfClosing {
			p.depth++
		}
	case lineTags[name]:
		p.flush()
		p.cur.WriteString(raw)
		if selfClosing || voidTags[name] {
			p.flush()
		} else if verbatimTags[name] {
			p.verbatim = name
		}
	default:
		p.cur.WriteString(raw)
	}
}

func (p *printer) end(name, raw string) {
	switch {
	case containers[name]:
		p.flush()
		p.depth = max(0, p.depth-1)
		p.emit(raw)
	case lineTags[name]:
		p.cur.WriteString(raw)
		p.flush()
	default:
		p.cur.WriteString(raw)
	}
}

func (p *printer) verbatimToken(z *html.Tokenizer, tt html.TokenType, raw string) {
	p.cur.WriteString(raw)
	if tt != html.StartTagToken && tt != html.EndTagToken {
		return
	}
	name, _ := z.TagName()
	if string(name) != p.verbatim {
		return
	}
	if tt == html.StartTagToken {
		p.nested++
		return
	}
	if p.nested > 0 {
		p.nested--
		return
	}
	p.verbatim = ""
	p.flush()
}

// collapseSpace replaces each run of whitespace with a single space.
func collapseSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			space = true
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.WriteRune(r)
	}
	if space {
		b.WriteByte(' ')
	}
	return b.String()
}

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}
