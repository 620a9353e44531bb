// Package tray implements the system tray icon and menu.
package tray

import "time"

// MenuItemState is the visual state of a menu entry.
type MenuItemState int

const (
	StateDefault MenuItemState = iota
	StateChecked
)

// MenuItem is one entry added to the tray menu.
type MenuItem struct {
	Text      string
	State     MenuItemState
	Separator bool
}

// Separator returns a separator entry.
func Separator() MenuItem {
	return MenuItem{Separator: true}
}

// EventKind tells what produced an Event.
type EventKind int

const (
	// EventTimer fires when the armed timer expires.
	EventTimer EventKind = iota
	// EventTray is a click on the menu entry at Event.Index.
	EventTray
	// EventConfigChanged reports that the configuration file changed on disk.
	EventConfigChanged
)

// Event is delivered by System.ReceiveEvent.
type Event struct {
	Kind  EventKind
	Index int
}

// System is the set of OS tray capabilities the control loop drives.
// Every method may fail.
type System interface {
	TrayClear() error
	// TrayAdd appends an entry and returns the index clicks on it are
	// reported with.
	TrayAdd(item MenuItem) (int, error)
	TrayTooltip(text string) error
	// SetTimer arms the single timer, replacing any armed one.
	SetTimer(d time.Duration) error
	// ReceiveEvent blocks until the next event. A nil event means the tray
	// has shut down.
	ReceiveEvent() (*Event, error)
	Edit(path string) error
	Quit() error
	ShowErrMessage(title, message string) error
}
