// Package traytest provides an in-memory tray.System for tests.
package traytest

import (
	"fmt"
	"strings"
	"time"

	"github.com/atrofac/atrofac/internal/tray"
)

// Call is one recorded System invocation.
type Call struct {
	Method string
	Item   tray.MenuItem
	Text   string
	Timer  time.Duration
}

func (c Call) String() string {
	switch c.Method {
	case "TrayAdd":
		if c.Item.Separator {
			return "TrayAdd(---)"
		}
		if c.Item.State == tray.StateChecked {
			return fmt.Sprintf("TrayAdd(%s*)", c.Item.Text)
		}
		return fmt.Sprintf("TrayAdd(%s)", c.Item.Text)
	case "SetTimer":
		return fmt.Sprintf("SetTimer(%s)", c.Timer)
	case "TrayTooltip", "Edit":
		return fmt.Sprintf("%s(%s)", c.Method, c.Text)
	case "ShowErrMessage":
		return fmt.Sprintf("ShowErrMessage(%s)", c.Text)
	}
	return c.Method + "()"
}

// Recorder records every call and replays a scripted event queue. Once the
// queue is exhausted ReceiveEvent returns the shutdown sentinel.
type Recorder struct {
	Calls  []Call
	Menu   []tray.MenuItem
	Events []*tray.Event

	// Fail makes the named method return FailErr on its FailAfter+1-th call.
	Fail      string
	FailAfter int
	FailErr   error

	// IndexOffset shifts the indices TrayAdd reports, emulating a binding
	// whose numbering differs from the add order.
	IndexOffset int

	counts map[string]int
}

// New returns a recorder that will deliver events in order.
func New(events ...*tray.Event) *Recorder {
	return &Recorder{Events: events}
}

// Timer is a scripted timer event.
func Timer() *tray.Event {
	return &tray.Event{Kind: tray.EventTimer}
}

// Click is a scripted click on the entry at index.
func Click(index int) *tray.Event {
	return &tray.Event{Kind: tray.EventTray, Index: index}
}

// ConfigChanged is a scripted configuration change event.
func ConfigChanged() *tray.Event {
	return &tray.Event{Kind: tray.EventConfigChanged}
}

func (r *Recorder) record(c Call) error {
	r.Calls = append(r.Calls, c)
	if r.counts == nil {
		r.counts = make(map[string]int)
	}
	n := r.counts[c.Method]
	r.counts[c.Method] = n + 1
	if r.Fail == c.Method && n == r.FailAfter {
		return r.FailErr
	}
	return nil
}

// Count returns how many times method was called.
func (r *Recorder) Count(method string) int {
	return r.counts[method]
}

// Trace returns the calls as a single string, e.g. "TrayClear() TrayAdd(Silent)".
func (r *Recorder) Trace() string {
	parts := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Reset forgets recorded calls but keeps the menu and the event queue.
func (r *Recorder) Reset() {
	r.Calls = nil
	r.counts = nil
}

func (r *Recorder) TrayClear() error {
	if err := r.record(Call{Method: "TrayClear"}); err != nil {
		return err
	}
	r.Menu = nil
	return nil
}

func (r *Recorder) TrayAdd(item tray.MenuItem) (int, error) {
	if err := r.record(Call{Method: "TrayAdd", Item: item}); err != nil {
		return 0, err
	}
	r.Menu = append(r.Menu, item)
	return len(r.Menu) - 1 + r.IndexOffset, nil
}

func (r *Recorder) TrayTooltip(text string) error {
	return r.record(Call{Method: "TrayTooltip", Text: text})
}

func (r *Recorder) SetTimer(d time.Duration) error {
	return r.record(Call{Method: "SetTimer", Timer: d})
}

func (r *Recorder) ReceiveEvent() (*tray.Event, error) {
	if err := r.record(Call{Method: "ReceiveEvent"}); err != nil {
		return nil, err
	}
	if len(r.Events) == 0 {
		return nil, nil
	}
	ev := r.Events[0]
	r.Events = r.Events[1:]
	return ev, nil
}

func (r *Recorder) Edit(path string) error {
	return r.record(Call{Method: "Edit", Text: path})
}

func (r *Recorder) Quit() error {
	if err := r.record(Call{Method: "Quit"}); err != nil {
		return err
	}
	// A real tray stops delivering events after quitting.
	r.Events = nil
	return nil
}

func (r *Recorder) ShowErrMessage(title, message string) error {
	return r.record(Call{Method: "ShowErrMessage", Text: title + ": " + message})
}

var _ tray.System = (*Recorder)(nil)
