package control

import (
	"strings"

	"github.com/atrofac/atrofac/internal/models"
)

// fakeEngine is an in-memory Engine that records the calls made to it.
type fakeEngine struct {
	plans  []*models.Plan
	active string
	path   string
	calls  []string

	// reloadPlans replaces plans on the first reload after startup.
	reloadPlans []*models.Plan
	loads       int

	loadErr  error
	saveErr  error
	applyErr error
}

func interval(sec int) *int { return &sec }

func newFakeEngine(active string, names ...string) *fakeEngine {
	e := &fakeEngine{active: active, path: "/home/user/.config/atrofac/atrofac.yaml"}
	for _, n := range names {
		e.plans = append(e.plans, &models.Plan{Name: n, PowerPlan: models.PowerPlanWindows})
	}
	return e
}

func (e *fakeEngine) plan(name string) *models.Plan {
	for _, p := range e.plans {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func (e *fakeEngine) trace() string { return strings.Join(e.calls, " ") }

func (e *fakeEngine) LoadConfiguration() error {
	e.calls = append(e.calls, "Load")
	e.loads++
	if e.loadErr != nil {
		return e.loadErr
	}
	if e.loads > 1 && e.reloadPlans != nil {
		e.plans, e.reloadPlans = e.reloadPlans, nil
	}
	return nil
}

func (e *fakeEngine) SaveConfiguration() error {
	e.calls = append(e.calls, "Save("+e.active+")")
	return e.saveErr
}

func (e *fakeEngine) Apply() error {
	e.calls = append(e.calls, "Apply("+e.active+")")
	return e.applyErr
}

func (e *fakeEngine) ActivePlan() *models.Plan {
	if e.active == "" {
		return nil
	}
	return e.plan(e.active)
}

func (e *fakeEngine) AvailablePlans() []string {
	names := make([]string, len(e.plans))
	for i, p := range e.plans {
		names[i] = p.Name
	}
	return names
}

func (e *fakeEngine) NumberOfPlans() int { return len(e.plans) }

func (e *fakeEngine) PlanByIndex(i int) (string, bool) {
	if i < 0 || i >= len(e.plans) {
		return "", false
	}
	return e.plans[i].Name, true
}

func (e *fakeEngine) SetActivePlan(name string) {
	e.calls = append(e.calls, "SetActive("+name+")")
	e.active = name
}

func (e *fakeEngine) ConfigFile() string { return e.path }

var _ Engine = (*fakeEngine)(nil)
