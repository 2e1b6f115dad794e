package mock

import "github.com/fwojciec/wprefactor"

var _ wprefactor.PlanSource = (*PlanSource)(nil)

// PlanSource is a mock implementation of wprefactor.PlanSource.
type PlanSource struct {
	LoadPlanFn func(filename string) (*wprefactor.Plan, error)
	PresetFn   func(name string) (*wprefactor.Plan, error)
	PresetsFn  func() []string
}

func (s *PlanSource) LoadPlan(filename string) (*wprefactor.Plan, error) {
	return s.LoadPlanFn(filename)
}

func (s *PlanSource) Preset(name string) (*wprefactor.Plan, error) {
	return s.PresetFn(name)
}

func (s *PlanSource) Presets() []string {
	return s.PresetsFn()
}
