package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/wprefactor"
)

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	source, err := deps.Loader.Load(deps.Ctx, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wprefactor.ErrorMessage(err))
		return err
	}

	extractor, err := deps.Extractor(c.Extractor)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wprefactor.ErrorMessage(err))
		return err
	}
	extracted, err := extractor.Extract(source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wprefactor.ErrorMessage(err))
		return err
	}

	content := extracted.ContentHTML
	if len(c.Rules) > 0 {
		cleaner, err := deps.Cleaners.Build(c.Rules, &wprefactor.Page{SourcePath: c.Source})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wprefactor.ErrorMessage(err))
			return err
		}
		content = cleaner.Clean(content)
	}

	if strings.TrimSpace(content) == "" {
		fmt.Fprintf(deps.Stderr, "error: no content found in %s\n", c.Source)
		return wprefactor.Errorf(wprefactor.ENOTFOUND, "no content found in %q", c.Source)
	}

	fmt.Fprintf(deps.Stdout, "Title: %s\n", extracted.Title)
	fmt.Fprintf(deps.Stdout, "Body class: %s\n\n", extracted.BodyClass)

	if c.HTML {
		fmt.Fprintln(deps.Stdout, strings.TrimSpace(content))
		return nil
	}

	markdown, err := deps.Converter.Convert(extracted.Title, content)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error converting to markdown: %v\n", err)
		return err
	}
	fmt.Fprint(deps.Stdout, markdown)
	return nil
}
