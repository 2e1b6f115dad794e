package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/wprefactor"
	"github.com/fwojciec/wprefactor/migrate"
)

// Run executes the migrate command.
func (c *MigrateCmd) Run(deps *Dependencies) error {
	plan, err := c.loadPlan(deps.Plans)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wprefactor.ErrorMessage(err))
		return err
	}

	extractor, err := deps.Extractor(plan.Extractor)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wprefactor.ErrorMessage(err))
		return err
	}
	renderer, err := deps.Renderer(plan.Template)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wprefactor.ErrorMessage(err))
		return err
	}

	migrator := &migrate.Migrator{
		Plan:        plan,
		Loader:      deps.Loader,
		Extractor:   extractor,
		Cleaners:    deps.Cleaners,
		Renderer:    renderer,
		Writer:      deps.Store,
		Manifest:    deps.Manifest,
		Assets:      deps.Assets,
		Seen:        deps.Seen,
		Concurrency: c.Concurrency,
		Force:       c.Force,
	}
	if plan.Format || c.Format {
		migrator.Formatter = deps.Formatter
	}

	rule := strings.Repeat("=", 60)
	fmt.Fprintln(deps.Stdout, rule)
	fmt.Fprintf(deps.Stdout, "Migrating %d %s pages\n", len(plan.Pages), plan.Name)
	fmt.Fprintln(deps.Stdout, rule)
	fmt.Fprintln(deps.Stdout)

	progress := func(event migrate.ProgressEvent) {
		pr := event.Page
		switch event.Type {
		case migrate.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "✓ Created: %s\n", pr.Page.OutputPath)
			fmt.Fprintf(deps.Stdout, "  Title: %s\n", pr.Title)
			fmt.Fprintf(deps.Stdout, "  Body class: %s\n", pr.BodyClass)
			fmt.Fprintf(deps.Stdout, "  Lines: %d\n", pr.Lines)
			if pr.EmptyContent {
				fmt.Fprintf(deps.Stderr, "  warning: no content found in %s\n", pr.Page.SourcePath)
			}
			fmt.Fprintln(deps.Stdout)
		case migrate.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "- Up to date: %s\n\n", pr.Page.OutputPath)
		case migrate.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "✗ ERROR processing %s: %v\n\n", pr.Page.SourcePath, pr.Err)
		}
	}

	result, err := migrator.Run(deps.Ctx, plan.Pages, progress)
	if err != nil {
		if abortErr := deps.Store.Abort(); abortErr != nil {
			fmt.Fprintf(deps.Stderr, "error discarding staged pages: %v\n", abortErr)
		}
		fmt.Fprintf(deps.Stderr, "error: migration stopped, no pages written: %v\n", err)
		return err
	}
	if err := deps.Store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing pages: %v\n", err)
		return err
	}

	printSummary(deps, result)
	return nil
}

func (c *MigrateCmd) loadPlan(plans wprefactor.PlanSource) (*wprefactor.Plan, error) {
	switch {
	case c.Plan != "" && c.Preset != "":
		return nil, wprefactor.Errorf(wprefactor.EINVALID, "use either --plan or --preset, not both")
	case c.Plan != "":
		return plans.LoadPlan(c.Plan)
	case c.Preset != "":
		return plans.Preset(c.Preset)
	}
	return nil, wprefactor.Errorf(wprefactor.EINVALID, "a plan is required: use --plan <file> or --preset <%s>",
		strings.Join(plans.Presets(), "|"))
}

func printSummary(deps *Dependencies, result *migrate.Result) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(deps.Stdout, rule)
	fmt.Fprintln(deps.Stdout, "SUMMARY")
	fmt.Fprintln(deps.Stdout, rule)
	fmt.Fprintf(deps.Stdout, "Created: %d  Up to date: %d  Failed: %d\n", result.Migrated, result.Skipped, result.Failed)
	fmt.Fprintf(deps.Stdout, "Total lines generated: %d\n", result.Lines)
	fmt.Fprintf(deps.Stdout, "Size: %s → %s (%s of source)\n",
		migrate.FormatBytes(result.BytesIn),
		migrate.FormatBytes(result.BytesOut),
		migrate.FormatPercent(result.BytesOut, result.BytesIn))

	if len(result.Assets) > 0 {
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintf(deps.Stdout, "Verify image paths are correct (%d assets):\n", len(result.Assets))
		for _, asset := range result.Assets {
			fmt.Fprintf(deps.Stdout, "  • %s\n", asset)
		}
	}
	fmt.Fprintln(deps.Stdout, rule)
}
