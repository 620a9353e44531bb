package control

import (
	"log"
	"time"
)

// DefaultInterval is the reapply interval of plans without update_interval_sec.
const DefaultInterval = 120 * time.Second

// Apply pushes the active plan to the hardware and re-arms the timer with the
// plan's interval. Without an active plan the engine still runs but no timer
// is armed.
func (c *Controller) Apply() error {
	if err := c.engine.Apply(); err != nil {
		return err
	}

	plan := c.engine.ActivePlan()
	if plan == nil {
		return nil
	}

	interval := DefaultInterval
	if plan.UpdateIntervalSec != nil {
		interval = time.Duration(*plan.UpdateIntervalSec) * time.Second
	}
	if err := c.system.SetTimer(interval); err != nil {
		return err
	}
	log.Printf("[control] applied %q, next in %s", plan.Name, interval)
	return nil
}
