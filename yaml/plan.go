// Package yaml reads migration plans from YAML and ships the built-in
// plans as embedded presets.
package yaml

import (
	"embed"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/fwojciec/wprefactor"
	yamlv3 "gopkg.in/yaml.v3"
)

//go:embed presets/*.yaml
var presetFS embed.FS

const presetDir = "presets"

// ParsePlan decodes and validates a plan. Unknown keys are rejected so
// that typos do not silently fall back to defaults.
func ParsePlan(r io.Reader) (*wprefactor.Plan, error) {
	dec := yamlv3.NewDecoder(r)
	dec.KnownFields(true)

	var plan wprefactor.Plan
	if err := dec.Decode(&plan); errors.Is(err, io.EOF) {
		return nil, wprefactor.Errorf(wprefactor.EINVALID, "plan is empty")
	} else if err != nil {
		return nil, wprefactor.Errorf(wprefactor.EINVALID, "parse plan: %v", err)
	}

	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

// LoadPlan reads a plan file. Returns ENOTFOUND if it does not exist.
func LoadPlan(filename string) (*wprefactor.Plan, error) {
	f, err := os.Open(filename)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, wprefactor.Errorf(wprefactor.ENOTFOUND, "plan file %q not found", filename)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParsePlan(f)
}

// Preset returns a built-in plan by name.
// Returns ENOTFOUND for unknown names.
func Preset(name string) (*wprefactor.Plan, error) {
	f, err := presetFS.Open(path.Join(presetDir, name+".yaml"))
	if err != nil {
		return nil, wprefactor.Errorf(wprefactor.ENOTFOUND, "unknown preset %q (available: %s)",
			name, strings.Join(Presets(), ", "))
	}
	defer f.Close()

	return ParsePlan(f)
}

// Presets returns the names of the built-in plans, sorted.
func Presets() []string {
	entries, _ := presetFS.ReadDir(presetDir)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".yaml"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

var _ wprefactor.PlanSource = (*PlanSource)(nil)

// PlanSource implements wprefactor.PlanSource over plan files and the
// embedded presets.
type PlanSource struct{}

// NewPlanSource creates a new PlanSource.
func NewPlanSource() *PlanSource {
	return &PlanSource{}
}

// LoadPlan reads a plan file.
func (s *PlanSource) LoadPlan(filename string) (*wprefactor.Plan, error) {
	return LoadPlan(filename)
}

// Preset returns a built-in plan by name.
func (s *PlanSource) Preset(name string) (*wprefactor.Plan, error) {
	return Preset(name)
}

// Presets returns the built-in plan names.
func (s *PlanSource) Presets() []string {
	return Presets()
}
