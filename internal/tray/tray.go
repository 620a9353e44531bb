package tray

import (
	"log"
	"sync"
	"time"

	"github.com/getlantern/systray"

	"github.com/atrofac/atrofac/internal/dialog"
)

const separatorTitle = "────────────"

// slot is a menu entry created once and reused across rebuilds. systray
// cannot remove entries, so a cleared menu is a set of hidden slots and the
// slot position is the index reported for clicks.
type slot struct {
	item  *systray.MenuItem
	index int
}

// Tray is the System implementation backed by github.com/getlantern/systray.
type Tray struct {
	editor string

	mu    sync.Mutex
	slots []*slot
	next  int
	timer *time.Timer

	events    chan Event
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a tray. editor is the command used by Edit; empty selects
// $VISUAL, $EDITOR, then the platform default.
func New(editor string) *Tray {
	return &Tray{
		editor: editor,
		events: make(chan Event, 16),
		done:   make(chan struct{}),
	}
}

// Run starts the system tray. This blocks the calling goroutine (must be main).
// onReadyFn is called on its own goroutine once the tray exists; onExitFn is
// called when the tray exits.
func (t *Tray) Run(onReadyFn, onExitFn func()) {
	systray.Run(func() {
		systray.SetTemplateIcon(iconData(), iconData())
		go onReadyFn()
	}, func() {
		t.shutdown()
		if onExitFn != nil {
			onExitFn()
		}
	})
}

func (t *Tray) shutdown() {
	t.closeOnce.Do(func() {
		close(t.done)
		t.mu.Lock()
		if t.timer != nil {
			t.timer.Stop()
		}
		t.mu.Unlock()
	})
}

// Post enqueues an event for ReceiveEvent. It is safe to call from any
// goroutine and drops the event once the tray has shut down.
func (t *Tray) Post(ev Event) {
	select {
	case t.events <- ev:
	case <-t.done:
	}
}

// TrayClear hides every entry.
func (t *Tray) TrayClear() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, s := range t.slots {
		s.item.Hide()
	}
	t.next = 0
	return nil
}

// TrayAdd shows the next slot with the given content, creating it if needed.
func (t *Tray) TrayAdd(item MenuItem) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var s *slot
	if t.next < len(t.slots) {
		s = t.slots[t.next]
	} else {
		s = &slot{
			item:  systray.AddMenuItemCheckbox("", "", false),
			index: len(t.slots),
		}
		t.slots = append(t.slots, s)
		go t.forwardClicks(s)
	}
	t.next++

	if item.Separator {
		s.item.SetTitle(separatorTitle)
		s.item.Uncheck()
		s.item.Disable()
	} else {
		s.item.SetTitle(item.Text)
		if item.State == StateChecked {
			s.item.Check()
		} else {
			s.item.Uncheck()
		}
		s.item.Enable()
	}
	s.item.Show()
	return s.index, nil
}

func (t *Tray) forwardClicks(s *slot) {
	for {
		select {
		case <-s.item.ClickedCh:
			t.Post(Event{Kind: EventTray, Index: s.index})
		case <-t.done:
			return
		}
	}
}

// TrayTooltip sets the tooltip text.
func (t *Tray) TrayTooltip(text string) error {
	systray.SetTooltip(text)
	return nil
}

// SetTimer arms a one-shot timer, stopping the previous one.
func (t *Tray) SetTimer(d time.Duration) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(d, func() {
		t.Post(Event{Kind: EventTimer})
	})
	return nil
}

// ReceiveEvent blocks until the next event, or returns nil after the tray exits.
func (t *Tray) ReceiveEvent() (*Event, error) {
	select {
	case <-t.done:
		return nil, nil
	default:
	}

	select {
	case ev := <-t.events:
		return &ev, nil
	case <-t.done:
		return nil, nil
	}
}

// Edit opens path in the configured editor without waiting for it.
func (t *Tray) Edit(path string) error {
	cmd := EditorCommand(t.editor, path)
	if err := cmd.Start(); err != nil {
		return err
	}
	log.Printf("[tray] opened %s with %s (PID %d)", path, cmd.Path, cmd.Process.Pid)
	go func() { _ = cmd.Wait() }()
	return nil
}

// Quit signals the tray to exit.
func (t *Tray) Quit() error {
	systray.Quit()
	return nil
}

// ShowErrMessage shows a blocking error dialog.
func (t *Tray) ShowErrMessage(title, message string) error {
	return dialog.Error(title, message)
}

var _ System = (*Tray)(nil)
