package main

import (
	"fmt"

	"github.com/fwojciec/wprefactor"
)

// Run executes the forget command. The output file is left alone; the next
// migrate rebuilds it.
func (c *ForgetCmd) Run(deps *Dependencies) error {
	migration, err := deps.Manifest.FindMigrationByOutput(deps.Ctx, c.Output)
	if wprefactor.ErrorCode(err) == wprefactor.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: no migration recorded for %q. Use 'wprefactor report' to see recorded pages.\n", c.Output)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wprefactor.ErrorMessage(err))
		return err
	}

	if err := deps.Manifest.DeleteMigration(deps.Ctx, migration.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wprefactor.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Forgot %s (migrated from %s)\n", migration.OutputPath, migration.SourcePath)
	return nil
}
