package main

import (
	"fmt"

	"github.com/fwojciec/wprefactor"
)

// Run executes the plans command.
func (c *PlansCmd) Run(deps *Dependencies) error {
	if c.Name == "" {
		for _, name := range deps.Plans.Presets() {
			plan, err := deps.Plans.Preset(name)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", wprefactor.ErrorMessage(err))
				return err
			}
			fmt.Fprintf(deps.Stdout, "%-10s %d pages, %s template, %s extractor\n",
				plan.Name, len(plan.Pages), plan.Template, plan.Extractor)
		}
		return nil
	}

	plan, err := deps.Plans.Preset(c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wprefactor.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Plan %s (%s template, %s extractor)\n", plan.Name, plan.Template, plan.Extractor)
	for i, page := range plan.Pages {
		fmt.Fprintf(deps.Stdout, "  %d. %s\n     → %s\n", i+1, page.SourcePath, page.OutputPath)
		if page.Lines != nil {
			fmt.Fprintf(deps.Stdout, "     lines %d-%d\n", page.Lines.Start, page.Lines.End-1)
		}
	}
	return nil
}
