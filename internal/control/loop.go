package control

import (
	"fmt"
	"log"

	"github.com/atrofac/atrofac/internal/models"
	"github.com/atrofac/atrofac/internal/tray"
)

// Controller runs the tray control loop. It is not safe for concurrent use;
// everything happens on the goroutine calling Run.
type Controller struct {
	engine  Engine
	system  tray.System
	tooltip string
	layout  Layout
}

// New creates a controller. tooltip is the base tooltip text; empty uses the
// default.
func New(engine Engine, system tray.System, tooltip string) *Controller {
	if tooltip == "" {
		tooltip = models.DefaultTooltip
	}
	return &Controller{
		engine:  engine,
		system:  system,
		tooltip: tooltip,
	}
}

// Run loads the configuration, applies it, builds the menu, then handles
// events until the tray shuts down or the user quits. Any error ends the run.
func (c *Controller) Run() error {
	if err := c.engine.LoadConfiguration(); err != nil {
		return err
	}
	if err := c.Apply(); err != nil {
		return err
	}
	if err := c.Render(); err != nil {
		return err
	}
	if err := c.updateTooltip(); err != nil {
		return err
	}

	for {
		ev, err := c.system.ReceiveEvent()
		if err != nil {
			return err
		}
		if ev == nil {
			log.Println("[control] tray closed, stopping")
			return nil
		}

		quit, err := c.Handle(*ev)
		if err != nil {
			return err
		}
		if quit {
			log.Println("[control] quit requested")
			return nil
		}
	}
}

// Handle processes one event. It returns true when the user asked to quit.
func (c *Controller) Handle(ev tray.Event) (bool, error) {
	switch ev.Kind {
	case tray.EventTimer:
		return false, c.Apply()
	case tray.EventConfigChanged:
		log.Println("[control] configuration changed on disk")
		return false, c.reload()
	case tray.EventTray:
		return c.handleClick(ev.Index)
	}
	return false, fmt.Errorf("unknown event kind %d", ev.Kind)
}

func (c *Controller) handleClick(index int) (bool, error) {
	if n := c.engine.NumberOfPlans(); n != c.layout.Plans {
		return false, &ProtocolError{Index: index, Err: fmt.Errorf("%w: menu has %d plans, engine %d", ErrLayoutMismatch, c.layout.Plans, n)}
	}

	action, err := Decode(c.layout.Plans, index)
	if err != nil {
		return false, err
	}

	switch action {
	case ActionSelectPlan:
		return false, c.selectPlan(index)
	case ActionReload:
		return false, c.reload()
	case ActionEdit:
		return false, c.system.Edit(c.engine.ConfigFile())
	case ActionQuit:
		return true, c.system.Quit()
	}
	return false, &ProtocolError{Index: index, Err: ErrUnknownAction}
}

// selectPlan activates the plan at index, saves the configuration, applies it
// and rebuilds the menu, in that order.
func (c *Controller) selectPlan(index int) error {
	name, ok := c.engine.PlanByIndex(index)
	if !ok {
		return &ProtocolError{Index: index, Err: ErrPlanNotFound}
	}

	log.Printf("[control] selecting plan %q", name)
	c.engine.SetActivePlan(name)
	if err := c.engine.SaveConfiguration(); err != nil {
		return err
	}
	if err := c.Apply(); err != nil {
		return err
	}
	if err := c.Render(); err != nil {
		return err
	}
	return c.updateTooltip()
}

func (c *Controller) reload() error {
	if err := c.engine.LoadConfiguration(); err != nil {
		return err
	}
	if err := c.Render(); err != nil {
		return err
	}
	if err := c.updateTooltip(); err != nil {
		return err
	}
	return c.Apply()
}
