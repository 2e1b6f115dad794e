// Package migrate orchestrates page migration. It coordinates loading,
// content extraction, cleaning, templating, writing and manifest
// bookkeeping for the pages of a plan.
package migrate

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/wprefactor"
	"golang.org/x/sync/errgroup"
)

// Migrator migrates the pages of one plan.
type Migrator struct {
	Plan      *wprefactor.Plan
	Loader    wprefactor.Loader
	Extractor wprefactor.Extractor
	Cleaners  wprefactor.CleanerRegistry
	Renderer  wprefactor.Renderer
	Writer    wprefactor.PageWriter

	// Optional stages. A nil Formatter leaves rendered pages as is, a nil
	// Manifest disables skipping and recording, and a nil Assets disables
	// the asset listing. Seen de-duplicates assets across the run.
	Formatter wprefactor.Formatter
	Manifest  wprefactor.MigrationService
	Assets    wprefactor.AssetCollector
	Seen      wprefactor.AssetFilter

	// Concurrency is the number of pages migrated at once. Zero means one.
	Concurrency int

	// Force re-migrates pages the manifest reports as up to date.
	Force bool
}

// PageResult holds the outcome of migrating one page.
type PageResult struct {
	Page      *wprefactor.Page
	Title     string
	BodyClass string
	Lines     int
	BytesIn   int
	BytesOut  int
	Hash      string

	// Assets lists the content assets this page referenced that no
	// earlier page of the run did.
	Assets []string

	// Skipped is set when the manifest showed the output to be current.
	Skipped bool

	// EmptyContent is set when extraction found no content. The page is
	// still written.
	EmptyContent bool

	Err error
}

// Result holds the outcome of a run.
type Result struct {
	// Pages holds one entry per attempted page, in plan order. After an
	// abort, pages that were never started are omitted.
	Pages    []*PageResult
	Migrated int
	Skipped  int
	Failed   int
	Lines    int
	BytesIn  int
	BytesOut int

	// Assets lists distinct content assets referenced by migrated pages.
	Assets []string
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Page      *PageResult
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// Run migrates pages and returns a summary. Progress events are delivered
// on the calling goroutine, in completion order.
//
// When the plan sets ContinueOnError, failed pages are recorded in the
// result and the run goes on. Otherwise the first failure stops the run:
// pages not yet started are abandoned, and the partial result is returned
// together with the error.
func (m *Migrator) Run(ctx context.Context, pages []*wprefactor.Page, progress ProgressFunc) (*Result, error) {
	concurrency := m.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	total := len(pages)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	type indexed struct {
		position int
		result   *PageResult
	}
	resultCh := make(chan indexed, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var runErr error
	go func() {
		for i, page := range pages {
			g.Go(func() error {
				if gctx.Err() != nil {
					return nil
				}
				pr, err := m.MigratePage(gctx, page)
				if err != nil {
					pr = &PageResult{Page: page, Err: err}
				}
				resultCh <- indexed{position: i, result: pr}
				if err != nil && !m.Plan.ContinueOnError {
					return fmt.Errorf("%s: %w", page.SourcePath, err)
				}
				return nil
			})
		}
		runErr = g.Wait()
		close(resultCh)
	}()

	results := make([]*PageResult, total)
	completed := 0
	for r := range resultCh {
		completed++
		results[r.position] = r.result

		if progress == nil {
			continue
		}
		typ := ProgressCompleted
		switch {
		case r.result.Err != nil:
			typ = ProgressFailed
		case r.result.Skipped:
			typ = ProgressSkipped
		}
		progress(ProgressEvent{Type: typ, Completed: completed, Total: total, Page: r.result})
	}

	res := summarize(results)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: total})
	}

	if runErr == nil {
		runErr = ctx.Err()
	}
	return res, runErr
}

func summarize(results []*PageResult) *Result {
	var res Result
	for _, pr := range results {
		if pr == nil {
			continue
		}
		res.Pages = append(res.Pages, pr)
		switch {
		case pr.Err != nil:
			res.Failed++
			continue
		case pr.Skipped:
			res.Skipped++
		default:
			res.Migrated++
			res.Assets = append(res.Assets, pr.Assets...)
		}
		res.Lines += pr.Lines
		res.BytesIn += pr.BytesIn
		res.BytesOut += pr.BytesOut
	}
	return &res
}

// MigratePage runs one page through the pipeline: load, slice, extract,
// clean, render, format, write, then record it in the manifest and list
// its assets.
func (m *Migrator) MigratePage(ctx context.Context, page *wprefactor.Page) (*PageResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}

	source, err := m.Loader.Load(ctx, page.SourcePath)
	if err != nil {
		return nil, err
	}
	bytesIn := len(source)
	if page.Lines != nil {
		source = page.Lines.Slice(source)
	}
	sourceHash := ComputeHash(m.recipe(page) + source)

	if prev, ok, err := m.upToDate(ctx, page, sourceHash); err != nil {
		return nil, err
	} else if ok {
		return &PageResult{
			Page:      page,
			Title:     prev.Title,
			BodyClass: prev.BodyClass,
			Lines:     prev.LineCount,
			BytesIn:   prev.BytesIn,
			BytesOut:  prev.BytesOut,
			Hash:      prev.OutputHash,
			Skipped:   true,
		}, nil
	}

	extracted, err := m.Extractor.Extract(source)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	content := extracted.ContentHTML
	if len(m.Plan.Rules) > 0 {
		cleaner, err := m.Cleaners.Build(m.Plan.Rules, page)
		if err != nil {
			return nil, err
		}
		content = cleaner.Clean(content)
	}

	data := &wprefactor.TemplateData{
		Title:     firstNonEmpty(page.Title, extracted.Title, m.Plan.DefaultTitle),
		BodyClass: firstNonEmpty(page.BodyClass, extracted.BodyClass, m.Plan.DefaultBodyClass),
		Content:   content,
	}
	doc, err := m.Renderer.Render(data)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if m.Formatter != nil {
		if doc, err = m.Formatter.Format(doc); err != nil {
			return nil, fmt.Errorf("format: %w", err)
		}
	}

	if err := m.Writer.WritePage(ctx, page.OutputPath, doc); err != nil {
		return nil, err
	}

	res := &PageResult{
		Page:         page,
		Title:        data.Title,
		BodyClass:    data.BodyClass,
		Lines:        wprefactor.CountLines(doc),
		BytesIn:      bytesIn,
		BytesOut:     len(doc),
		Hash:         ComputeHash(doc),
		EmptyContent: strings.TrimSpace(extracted.ContentHTML) == "",
	}

	if m.Assets != nil {
		if res.Assets, err = m.newAssets(doc); err != nil {
			return nil, err
		}
	}

	if m.Manifest != nil {
		if err := m.Manifest.RecordMigration(ctx, &wprefactor.Migration{
			SourcePath: page.SourcePath,
			OutputPath: page.OutputPath,
			Title:      res.Title,
			BodyClass:  res.BodyClass,
			SourceHash: sourceHash,
			OutputHash: res.Hash,
			LineCount:  res.Lines,
			BytesIn:    res.BytesIn,
			BytesOut:   res.BytesOut,
		}); err != nil {
			return nil, fmt.Errorf("record migration: %w", err)
		}
	}

	return res, nil
}

// upToDate reports whether the manifest holds a record for the page built
// from the same source and recipe whose output is still unmodified on disk.
func (m *Migrator) upToDate(ctx context.Context, page *wprefactor.Page, sourceHash string) (*wprefactor.Migration, bool, error) {
	if m.Manifest == nil || m.Force {
		return nil, false, nil
	}

	prev, err := m.Manifest.FindMigrationByOutput(ctx, page.OutputPath)
	if wprefactor.ErrorCode(err) == wprefactor.ENOTFOUND {
		return nil, false, nil
	} else if err != nil {
		return nil, false, fmt.Errorf("manifest lookup: %w", err)
	}
	if prev.SourceHash != sourceHash {
		return nil, false, nil
	}

	current, err := m.Loader.Load(ctx, page.OutputPath)
	if wprefactor.ErrorCode(err) == wprefactor.ENOTFOUND {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}
	return prev, ComputeHash(current) == prev.OutputHash, nil
}

// recipe identifies everything besides the source text that shapes the
// output, so a changed plan invalidates earlier manifest records.
func (m *Migrator) recipe(page *wprefactor.Page) string {
	return strings.Join([]string{
		m.Plan.Name,
		m.Plan.Template,
		m.Plan.Extractor,
		strings.Join(m.Plan.Rules, ","),
		m.Plan.DefaultTitle,
		m.Plan.DefaultBodyClass,
		page.Title,
		page.BodyClass,
		fmt.Sprint(m.Formatter != nil),
	}, "\x00") + "\x00"
}

func (m *Migrator) newAssets(doc string) ([]string, error) {
	refs, err := m.Assets.CollectAssets(doc)
	if err != nil {
		return nil, fmt.Errorf("collect assets: %w", err)
	}
	if m.Seen == nil {
		return refs, nil
	}
	var fresh []string
	for _, ref := range refs {
		if !m.Seen.TestAndAdd(ref) {
			fresh = append(fresh, ref)
		}
	}
	return fresh, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
