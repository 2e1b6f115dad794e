package main

import (
	"context"
	"io"

	"github.com/fwojciec/wprefactor"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Loader    wprefactor.Loader
	Writer    wprefactor.PageWriter
	Store     wprefactor.PageStore
	Plans     wprefactor.PlanSource
	Cleaners  wprefactor.CleanerRegistry
	Formatter wprefactor.Formatter
	Converter wprefactor.Converter
	Manifest  wprefactor.MigrationService
	Assets    wprefactor.AssetCollector
	Seen      wprefactor.AssetFilter

	// Extractor and Renderer resolve the names plans refer to.
	Extractor func(name string) (wprefactor.Extractor, error)
	Renderer  func(name string) (wprefactor.Renderer, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Root    string `short:"r" default:"." help:"Base directory for source and output paths"`
	Verbose bool   `short:"v" help:"Log every pipeline step to stderr"`

	Migrate MigrateCmd `cmd:"" help:"Migrate the pages of a plan"`
	Clean   CleanCmd   `cmd:"" help:"Strip Word artifacts from HTML files in place"`
	Format  FormatCmd  `cmd:"" help:"Re-indent HTML files in place"`
	Preview PreviewCmd `cmd:"" help:"Print the extracted content of a page as Markdown"`
	Report  ReportCmd  `cmd:"" help:"Summarize migrated pages as Markdown"`
	Plans   PlansCmd   `cmd:"" help:"List built-in plans or show the pages of one"`
	Forget  ForgetCmd  `cmd:"" help:"Drop the manifest record of a page so the next migrate rebuilds it"`
}

// MigrateCmd is the "migrate" subcommand.
type MigrateCmd struct {
	Plan        string `short:"p" help:"Plan file (YAML)" xor:"plan"`
	Preset      string `short:"P" help:"Built-in plan name" xor:"plan"`
	Force       bool   `short:"f" help:"Migrate pages even when the manifest shows them up to date"`
	Format      bool   `help:"Re-indent migrated pages"`
	Concurrency int    `short:"c" default:"1" help:"Pages migrated at once"`
}

// CleanCmd is the "clean" subcommand.
type CleanCmd struct {
	Dir string `arg:"" help:"Directory of HTML files, relative to --root"`
}

// FormatCmd is the "format" subcommand.
type FormatCmd struct {
	Dir string `arg:"" help:"Directory of HTML files, relative to --root"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	Source    string   `arg:"" help:"Source HTML file, relative to --root"`
	Extractor string   `short:"e" default:"anchor" enum:"anchor,goquery,readability,trafilatura" help:"Content extractor (${enum})"`
	Rules     []string `short:"R" name:"rule" help:"Rule set to apply before converting (repeatable)"`
	HTML      bool     `help:"Print cleaned HTML instead of Markdown"`
}

// ReportCmd is the "report" subcommand.
type ReportCmd struct {
	Prefix string `help:"Only include outputs under this path prefix"`
	Title  string `default:"Migration Report" help:"Report heading"`
	Output string `short:"o" help:"Write the report to a file instead of stdout"`
}

// ForgetCmd is the "forget" subcommand.
type ForgetCmd struct {
	Output string `arg:"" help:"Output path as recorded by migrate"`
}

// PlansCmd is the "plans" subcommand.
type PlansCmd struct {
	Name string `arg:"" optional:"" help:"Preset to show"`
}
