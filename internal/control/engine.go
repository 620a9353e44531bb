// Package control keeps the tray menu in sync with the configuration engine
// and dispatches tray clicks and timer ticks to it.
package control

import "github.com/atrofac/atrofac/internal/models"

// Engine is the configuration engine the controller drives.
// *engine.Engine implements it.
type Engine interface {
	LoadConfiguration() error
	SaveConfiguration() error
	// Apply pushes the active plan to the hardware; with no active plan the
	// engine decides what to do.
	Apply() error
	// ActivePlan returns nil when no plan is active.
	ActivePlan() *models.Plan
	// AvailablePlans returns plan names in menu order.
	AvailablePlans() []string
	NumberOfPlans() int
	PlanByIndex(i int) (string, bool)
	SetActivePlan(name string)
	ConfigFile() string
}
