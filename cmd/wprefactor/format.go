package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fwojciec/wprefactor"
	"github.com/fwojciec/wprefactor/migrate"
)

// Run executes the format command.
func (c *FormatCmd) Run(deps *Dependencies) error {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(deps.Stdout, rule)
	fmt.Fprintln(deps.Stdout, "HTML Formatting")
	fmt.Fprintln(deps.Stdout, rule)

	rw := &migrate.Rewriter{Loader: deps.Loader, Writer: deps.Writer}
	result, err := rw.FormatDir(deps.Ctx, c.Dir, deps.Formatter, func(f *migrate.FileResult) {
		fmt.Fprintf(deps.Stdout, "Formatting: %s\n", filepath.Base(f.Path))
		if f.Err != nil {
			fmt.Fprintf(deps.Stderr, "  ✗ Error: %v\n", f.Err)
			return
		}
		fmt.Fprintln(deps.Stdout, "  ✓ Done")
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wprefactor.ErrorMessage(err))
		return err
	}

	formatted := len(result.Files) - result.Failed
	fmt.Fprintln(deps.Stdout, rule)
	fmt.Fprintf(deps.Stdout, "✓ Formatted %d/%d files\n", formatted, len(result.Files))
	return nil
}
