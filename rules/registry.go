package rules

import (
	"sort"

	"github.com/fwojciec/wprefactor"
)

var _ wprefactor.CleanerRegistry = (*Registry)(nil)

// BuildFunc creates a rule set for a page.
type BuildFunc func(page *wprefactor.Page) *RuleSet

// Registry maps rule set names to their builders.
type Registry struct {
	builders map[string]BuildFunc
}

// NewRegistry creates a Registry with every built-in rule set registered.
func NewRegistry() *Registry {
	r := &Registry{builders: make(map[string]BuildFunc)}
	r.Register(SetImages, func(*wprefactor.Page) *RuleSet { return Images() })
	r.Register(SetCloudImages, func(p *wprefactor.Page) *RuleSet {
		var folder string
		if p != nil {
			folder = p.SourceFolder()
		}
		return CloudImages(folder)
	})
	r.Register(SetCloudLinks, func(*wprefactor.Page) *RuleSet { return CloudLinks() })
	r.Register(SetWordPressURLs, func(*wprefactor.Page) *RuleSet { return WordPressURLs() })
	r.Register(SetTracking, func(*wprefactor.Page) *RuleSet { return Tracking() })
	r.Register(SetInlineCSSJS, func(*wprefactor.Page) *RuleSet { return InlineCSSJS() })
	r.Register(SetWordArtifacts, func(*wprefactor.Page) *RuleSet { return WordArtifacts() })
	return r
}

// Register adds a builder. An existing builder with the same name is replaced.
func (r *Registry) Register(name string, build BuildFunc) {
	r.builders[name] = build
}

// Build returns one cleaner applying the named sets in order.
// Returns EINVALID for unknown names or an empty list.
func (r *Registry) Build(names []string, page *wprefactor.Page) (wprefactor.Cleaner, error) {
	if len(names) == 0 {
		return nil, wprefactor.Errorf(wprefactor.EINVALID, "no rule sets given")
	}
	sets := make([]*RuleSet, 0, len(names))
	for _, name := range names {
		build, ok := r.builders[name]
		if !ok {
			return nil, wprefactor.Errorf(wprefactor.EINVALID, "unknown rule set %q", name)
		}
		sets = append(sets, build(page))
	}
	return Concat(sets...), nil
}

// List returns registered names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
