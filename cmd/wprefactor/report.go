package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/fwojciec/wprefactor"
	"github.com/fwojciec/wprefactor/report"
)

// Run executes the report command.
func (c *ReportCmd) Run(deps *Dependencies) error {
	var filter wprefactor.MigrationFilter
	if c.Prefix != "" {
		filter.OutputPrefix = &c.Prefix
	}

	migrations, err := deps.Manifest.FindMigrations(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wprefactor.ErrorMessage(err))
		return err
	}

	if c.Output == "" {
		return report.NewMarkdownWriter(deps.Stdout).Write(c.Title, migrations)
	}

	var buf bytes.Buffer
	if err := report.NewMarkdownWriter(&buf).Write(c.Title, migrations); err != nil {
		return err
	}
	if err := os.WriteFile(c.Output, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Wrote report for %d pages to %s\n", len(migrations), c.Output)
	return nil
}
