package control

import (
	"log"

	"github.com/atrofac/atrofac/internal/tray"
)

// Fixed action entries, in menu order after the separator.
const (
	ReloadText = "Reload configuration"
	EditText   = "Edit configuration"
	QuitText   = "Quit application"
)

// Layout describes the menu as last rebuilt. Every rebuild discards the
// previous layout and bumps Generation; click indices are only decoded
// against the current one.
type Layout struct {
	Generation uint64
	Plans      int
}

// Render rebuilds the whole tray menu: one entry per plan (checked when
// active), a separator, then reload, edit and quit. Each index returned by the
// binding must equal the entry's position.
func (c *Controller) Render() error {
	if err := c.system.TrayClear(); err != nil {
		return err
	}

	var active string
	if plan := c.engine.ActivePlan(); plan != nil {
		active = plan.Name
	}

	plans := c.engine.AvailablePlans()
	items := make([]tray.MenuItem, 0, len(plans)+4)
	for _, name := range plans {
		state := tray.StateDefault
		if name == active {
			state = tray.StateChecked
		}
		items = append(items, tray.MenuItem{Text: name, State: state})
	}
	items = append(items,
		tray.Separator(),
		tray.MenuItem{Text: ReloadText},
		tray.MenuItem{Text: EditText},
		tray.MenuItem{Text: QuitText},
	)

	for pos, item := range items {
		idx, err := c.system.TrayAdd(item)
		if err != nil {
			return err
		}
		if idx != pos {
			return &ProtocolError{Index: idx, Err: ErrLayoutMismatch}
		}
	}

	c.layout = Layout{Generation: c.layout.Generation + 1, Plans: len(plans)}
	log.Printf("[control] menu rebuilt (generation %d, %d plans, active %q)", c.layout.Generation, len(plans), active)
	return nil
}

// Layout returns the layout of the current menu.
func (c *Controller) Layout() Layout {
	return c.layout
}

func (c *Controller) updateTooltip() error {
	text := c.tooltip
	if plan := c.engine.ActivePlan(); plan != nil {
		text += "\nActive plan: " + plan.Name
	}
	return c.system.TrayTooltip(text)
}
