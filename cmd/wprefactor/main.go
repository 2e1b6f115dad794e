package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/alecthomas/kong"
	"github.com/fwojciec/wprefactor"
	"github.com/fwojciec/wprefactor/anchor"
	"github.com/fwojciec/wprefactor/bloom"
	"github.com/fwojciec/wprefactor/fs"
	"github.com/fwojciec/wprefactor/goquery"
	"github.com/fwojciec/wprefactor/htmltomarkdown"
	"github.com/fwojciec/wprefactor/indent"
	"github.com/fwojciec/wprefactor/readability"
	"github.com/fwojciec/wprefactor/rules"
	wpslog "github.com/fwojciec/wprefactor/slog"
	"github.com/fwojciec/wprefactor/sqlite"
	"github.com/fwojciec/wprefactor/template"
	"github.com/fwojciec/wprefactor/trafilatura"
	"github.com/fwojciec/wprefactor/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Manifest database path. Set before calling Run().
	DBPath string

	// SQLite database used by the manifest.
	DB *sqlite.DB

	// Manifest service, available after Run opens the database.
	Manifest wprefactor.MigrationService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wprefactor"),
		kong.Description("Migrate WordPress-exported HTML pages into static page templates"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wprefactor --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Wire shared services, decorated with logging in verbose mode.
	var (
		loader   wprefactor.Loader          = fs.NewLoader(cli.Root)
		writer   wprefactor.PageWriter      = fs.NewWriter(cli.Root)
		store    wprefactor.PageStore       = fs.NewFileStore(cli.Root)
		cleaners wprefactor.CleanerRegistry = rules.NewRegistry()
	)
	if cli.Verbose {
		loader = wpslog.NewLoggingLoader(loader, logger)
		writer = wpslog.NewLoggingPageWriter(writer, logger)
		store = wpslog.NewLoggingPageStore(store, logger)
		cleaners = wpslog.NewLoggingCleanerRegistry(cleaners, logger)
	}

	deps.Loader = loader
	deps.Writer = writer
	deps.Store = store
	deps.Cleaners = cleaners
	deps.Plans = yaml.NewPlanSource()
	deps.Formatter = indent.NewFormatter()
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Assets = goquery.NewAssetCollector()
	deps.Seen = bloom.NewFilter(assetFilterSize, assetFilterFPRate)
	deps.Extractor = func(name string) (wprefactor.Extractor, error) {
		e, err := newExtractor(name)
		if err != nil {
			return nil, err
		}
		if cli.Verbose {
			return wpslog.NewLoggingExtractor(e, name, logger), nil
		}
		return e, nil
	}
	deps.Renderer = func(name string) (wprefactor.Renderer, error) {
		r, err := template.NewRenderer(name)
		if err != nil {
			return nil, err
		}
		return r, nil
	}

	// Only commands that read or write the manifest open the database.
	if cmd == "migrate" || cmd == "report" || cmd == "forget" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set WPREFACTOR_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.Manifest = sqlite.NewMigrationService(m.DB)
		deps.Manifest = m.Manifest
	}

	return kongCtx.Run(deps)
}

const (
	assetFilterSize   = 10000
	assetFilterFPRate = 0.001
)

func newExtractor(name string) (wprefactor.Extractor, error) {
	switch name {
	case wprefactor.ExtractorAnchor:
		return anchor.NewExtractor(), nil
	case wprefactor.ExtractorLines:
		return anchor.NewRangeExtractor(), nil
	case wprefactor.ExtractorGoquery:
		return goquery.NewExtractor(), nil
	case wprefactor.ExtractorReadability:
		return readability.NewExtractor(), nil
	case wprefactor.ExtractorTrafilatura:
		return trafilatura.NewExtractor(), nil
	}
	return nil, wprefactor.Errorf(wprefactor.EINVALID, "unknown extractor %q", name)
}

func defaultDBPath() string {
	if path := os.Getenv("WPREFACTOR_DB"); path != "" {
		return path
	}
	dir := filepath.Join(xdg.DataHome, "wprefactor")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "wprefactor.db"
	}
	return filepath.Join(dir, "manifest.db")
}
