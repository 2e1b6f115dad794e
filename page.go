package wprefactor

import (
	"path/filepath"
	"strings"
)

// LineRange is a literal 1-based line window into a source file.
// Start is inclusive and End is exclusive, so {Start: 832, End: 1097}
// selects lines 832 through 1096.
type LineRange struct {
	Start int `yaml:"start" json:"start"`
	End   int `yaml:"end" json:"end"`
}

// Validate returns an error if the range cannot select any well-defined window.
func (r *LineRange) Validate() error {
	if r.Start < 1 {
		return Errorf(EINVALID, "line range start must be >= 1, got %d", r.Start)
	}
	if r.End < r.Start {
		return Errorf(EINVALID, "line range end %d before start %d", r.End, r.Start)
	}
	return nil
}

// Slice returns lines [Start, End) of text with their line terminators.
// End is clamped to the number of lines; a window starting past the end of
// text is empty.
func (r *LineRange) Slice(text string) string {
	lines := strings.SplitAfter(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	from, to := max(r.Start-1, 0), min(r.End-1, len(lines))
	if from >= to {
		return ""
	}
	return strings.Join(lines[from:to], "")
}

// Page describes one source file and where its migrated version goes.
// Title and BodyClass override whatever the extractor finds; leave them
// empty to use the extracted values.
type Page struct {
	SourcePath string     `yaml:"source" json:"sourcePath"`
	OutputPath string     `yaml:"output" json:"outputPath"`
	Title      string     `yaml:"title,omitempty" json:"title"`
	BodyClass  string     `yaml:"body_class,omitempty" json:"bodyClass"`
	Lines      *LineRange `yaml:"lines,omitempty" json:"lines,omitempty"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.SourcePath == "" {
		return Errorf(EINVALID, "page source path required")
	}
	if p.OutputPath == "" {
		return Errorf(EINVALID, "page output path required")
	}
	if p.Lines != nil {
		if err := p.Lines.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// SourceFolder returns the file stem of the source path. Browser "save page
// as" exports keep their assets in a sibling "<stem>_files" directory.
// Example: core/Cloud/Fax-Solutions/Fax-Solutions.html → Fax-Solutions
func (p *Page) SourceFolder() string {
	base := filepath.Base(p.SourcePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Extractor names accepted by Plan.Extractor.
const (
	ExtractorAnchor      = "anchor"
	ExtractorLines       = "lines"
	ExtractorGoquery     = "goquery"
	ExtractorReadability = "readability"
	ExtractorTrafilatura = "trafilatura"
)

// Template names accepted by Plan.Template.
const (
	TemplateCloud   = "cloud"
	TemplateGraphic = "graphic"
)

// Plan is a batch of pages migrated with the same extractor, rule sets
// and page template.
type Plan struct {
	Name             string   `yaml:"name"`
	Template         string   `yaml:"template"`
	Extractor        string   `yaml:"extractor"`
	Rules            []string `yaml:"rules"`
	DefaultTitle     string   `yaml:"default_title"`
	DefaultBodyClass string   `yaml:"default_body_class"`
	ContinueOnError  bool     `yaml:"continue_on_error"`
	Format           bool     `yaml:"format"`
	Pages            []*Page  `yaml:"pages"`
}

// Validate returns an error if the plan or any of its pages is invalid.
func (p *Plan) Validate() error {
	if p.Name == "" {
		return Errorf(EINVALID, "plan name required")
	}
	switch p.Template {
	case TemplateCloud, TemplateGraphic:
	default:
		return Errorf(EINVALID, "plan %q: unknown template %q", p.Name, p.Template)
	}
	switch p.Extractor {
	case ExtractorAnchor, ExtractorLines, ExtractorGoquery, ExtractorReadability, ExtractorTrafilatura:
	default:
		return Errorf(EINVALID, "plan %q: unknown extractor %q", p.Name, p.Extractor)
	}
	if len(p.Pages) == 0 {
		return Errorf(EINVALID, "plan %q has no pages", p.Name)
	}
	seen := make(map[string]bool, len(p.Pages))
	for i, page := range p.Pages {
		if err := page.Validate(); err != nil {
			return Errorf(EINVALID, "plan %q page %d: %s", p.Name, i+1, ErrorMessage(err))
		}
		if p.Extractor == ExtractorLines && page.Lines == nil {
			return Errorf(EINVALID, "plan %q page %d: lines extractor needs a line range", p.Name, i+1)
		}
		if seen[page.OutputPath] {
			return Errorf(ECONFLICT, "plan %q: output %q listed twice", p.Name, page.OutputPath)
		}
		seen[page.OutputPath] = true
	}
	return nil
}

// PlanSource loads migration plans.
type PlanSource interface {
	// LoadPlan reads and validates a plan file.
	// Returns ENOTFOUND if the file does not exist.
	LoadPlan(filename string) (*Plan, error)

	// Preset returns a built-in plan by name.
	// Returns ENOTFOUND for unknown names.
	Preset(name string) (*Plan, error)

	// Presets returns the names of the built-in plans, sorted.
	Presets() []string
}
