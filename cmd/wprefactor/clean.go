package main

import (
	"fmt"

	"github.com/fwojciec/wprefactor"
	"github.com/fwojciec/wprefactor/migrate"
	"github.com/fwojciec/wprefactor/rules"
)

// Run executes the clean command.
func (c *CleanCmd) Run(deps *Dependencies) error {
	cleaner, err := deps.Cleaners.Build([]string{rules.SetWordArtifacts}, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wprefactor.ErrorMessage(err))
		return err
	}

	rw := &migrate.Rewriter{Loader: deps.Loader, Writer: deps.Writer}
	result, err := rw.CleanDir(deps.Ctx, c.Dir, cleaner, func(f *migrate.FileResult) {
		fmt.Fprintf(deps.Stdout, "Cleaning %s...\n", f.Path)
		if f.Err != nil {
			fmt.Fprintf(deps.Stderr, "  ✗ Error: %v\n", f.Err)
			return
		}
		fmt.Fprintf(deps.Stdout, "  Reduced by %d characters (%s)\n",
			f.Reduction(), migrate.FormatPercent(f.Reduction(), f.Before))
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wprefactor.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "\nTotal reduction: %d characters across %d files\n", result.Reduction(), len(result.Files))
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stderr, "%d of %d files could not be cleaned\n", result.Failed, len(result.Files))
	}
	fmt.Fprintln(deps.Stdout, "✓ Cleanup complete!")
	return nil
}
