// Package report renders the migration manifest as a Markdown document.
package report

import (
	"io"
	"strconv"

	"github.com/fwojciec/wprefactor"
	"github.com/fwojciec/wprefactor/migrate"
	"github.com/nao1215/markdown"
)

// MarkdownWriter writes manifest reports in Markdown.
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// Write outputs a summary table followed by one row per migrated page,
// in the order given.
func (w *MarkdownWriter) Write(title string, migrations []*wprefactor.Migration) error {
	md := markdown.NewMarkdown(w.output)

	md.H1(title)
	md.PlainText("")

	if len(migrations) == 0 {
		md.Note("No pages have been migrated yet.")
		md.PlainText("")
		return md.Build()
	}

	writeSummary(md, migrations)
	writePages(md, migrations)

	return md.Build()
}

func writeSummary(md *markdown.Markdown, migrations []*wprefactor.Migration) {
	var lines, in, out int
	for _, m := range migrations {
		lines += m.LineCount
		in += m.BytesIn
		out += m.BytesOut
	}

	md.H2("Summary")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Pages", strconv.Itoa(len(migrations))},
			{"Lines written", strconv.Itoa(lines)},
			{"Source size", migrate.FormatBytes(in)},
			{"Output size", migrate.FormatBytes(out)},
			{"Reduction", migrate.FormatPercent(in-out, in)},
		},
	})
	md.PlainText("")
}

func writePages(md *markdown.Markdown, migrations []*wprefactor.Migration) {
	rows := make([][]string, 0, len(migrations))
	for _, m := range migrations {
		rows = append(rows, []string{
			"`" + m.OutputPath + "`",
			m.Title,
			m.BodyClass,
			strconv.Itoa(m.LineCount),
			migrate.FormatBytes(m.BytesIn),
			migrate.FormatBytes(m.BytesOut),
			m.MigratedAt.Format("2006-01-02 15:04"),
		})
	}

	md.H2("Pages")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Output", "Title", "Body class", "Lines", "Before", "After", "Migrated"},
		Rows:   rows,
	})
	md.PlainText("")
}
