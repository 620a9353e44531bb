// Package engine owns the plan configuration file and applies the active plan
// to the hardware.
package engine

import (
	"errors"
	"fmt"
	"log"

	"github.com/atrofac/atrofac/internal/config"
	"github.com/atrofac/atrofac/internal/hardware"
	"github.com/atrofac/atrofac/internal/models"
)

// ErrNotLoaded is returned by operations that need a loaded configuration.
var ErrNotLoaded = errors.New("configuration not loaded")

// Engine holds the plans of one configuration file in file order.
type Engine struct {
	path   string
	driver hardware.Driver
	cfg    *models.Config
}

// New creates an engine for the configuration file at path. Nothing is read
// until LoadConfiguration.
func New(path string, driver hardware.Driver) *Engine {
	return &Engine{path: path, driver: driver}
}

// ConfigFile returns the path of the configuration file.
func (e *Engine) ConfigFile() string {
	return e.path
}

// LoadConfiguration (re)reads and validates the configuration file. On error
// the previously loaded configuration is kept.
func (e *Engine) LoadConfiguration() error {
	if !config.FileExists(e.path) {
		return fmt.Errorf("configuration file %s does not exist", e.path)
	}

	var cfg models.Config
	if err := config.LoadYAML(e.path, &cfg); err != nil {
		return err
	}
	if err := Validate(&cfg); err != nil {
		return fmt.Errorf("invalid configuration %s: %w", e.path, err)
	}

	if cfg.ActivePlan != "" && cfg.FindPlan(cfg.ActivePlan) == nil {
		log.Printf("[engine] active plan %q not found, no plan is active", cfg.ActivePlan)
		cfg.ActivePlan = ""
	}

	e.cfg = &cfg
	log.Printf("[engine] loaded %d plans from %s", len(cfg.Plans), e.path)
	return nil
}

// SaveConfiguration writes the configuration back to disk.
func (e *Engine) SaveConfiguration() error {
	if e.cfg == nil {
		return ErrNotLoaded
	}
	return config.SaveYAML(e.path, e.cfg)
}

// CreateDefault writes the stock configuration if no file exists yet.
// Returns true if a file was created.
func (e *Engine) CreateDefault() (bool, error) {
	if config.FileExists(e.path) {
		return false, nil
	}
	if err := config.SaveYAML(e.path, models.NewConfig()); err != nil {
		return false, err
	}
	log.Printf("[engine] created default configuration %s", e.path)
	return true, nil
}

// Apply pushes the active plan to the hardware. With no active plan it does
// nothing.
func (e *Engine) Apply() error {
	plan := e.ActivePlan()
	if plan == nil {
		return nil
	}

	if err := e.driver.SetPowerPlan(plan.PowerPlan); err != nil {
		return fmt.Errorf("failed to apply power plan of %q: %w", plan.Name, err)
	}

	curves := []struct {
		fan   models.FanDevice
		curve string
		limit string
	}{
		{models.FanCPU, plan.CPUCurve, e.limit(models.FanCPU)},
		{models.FanGPU, plan.GPUCurve, e.limit(models.FanGPU)},
	}
	for _, c := range curves {
		if c.curve == "" {
			continue
		}
		curve, err := models.ParseFanCurve(c.curve)
		if err != nil {
			return fmt.Errorf("plan %q %s curve: %w", plan.Name, c.fan, err)
		}
		if c.limit != "" {
			limit, err := models.ParseFanCurve(c.limit)
			if err != nil {
				return fmt.Errorf("%s limit: %w", c.fan, err)
			}
			curve = curve.Clamp(limit)
		}
		if err := e.driver.SetFanCurve(c.fan, curve); err != nil {
			return fmt.Errorf("failed to apply %s fan curve of %q: %w", c.fan, plan.Name, err)
		}
	}
	return nil
}

func (e *Engine) limit(fan models.FanDevice) string {
	if e.cfg == nil || e.cfg.Limits == nil {
		return ""
	}
	if fan == models.FanGPU {
		return e.cfg.Limits.GPU
	}
	return e.cfg.Limits.CPU
}

// ActivePlan returns the active plan, or nil when none is active.
func (e *Engine) ActivePlan() *models.Plan {
	if e.cfg == nil || e.cfg.ActivePlan == "" {
		return nil
	}
	return e.cfg.FindPlan(e.cfg.ActivePlan)
}

// Plan returns the plan with the given name, or nil.
func (e *Engine) Plan(name string) *models.Plan {
	if e.cfg == nil {
		return nil
	}
	return e.cfg.FindPlan(name)
}

// AvailablePlans returns the plan names in file order.
func (e *Engine) AvailablePlans() []string {
	if e.cfg == nil {
		return nil
	}
	names := make([]string, len(e.cfg.Plans))
	for i, p := range e.cfg.Plans {
		names[i] = p.Name
	}
	return names
}

// NumberOfPlans returns the number of plans.
func (e *Engine) NumberOfPlans() int {
	if e.cfg == nil {
		return 0
	}
	return len(e.cfg.Plans)
}

// PlanByIndex returns the name of the plan at position i.
func (e *Engine) PlanByIndex(i int) (string, bool) {
	if e.cfg == nil || i < 0 || i >= len(e.cfg.Plans) {
		return "", false
	}
	return e.cfg.Plans[i].Name, true
}

// SetActivePlan makes the named plan active. It does not save or apply.
func (e *Engine) SetActivePlan(name string) {
	if e.cfg == nil {
		return
	}
	e.cfg.ActivePlan = name
}
