package control

import (
	"errors"
	"testing"

	"github.com/atrofac/atrofac/internal/tray"
	"github.com/atrofac/atrofac/internal/tray/traytest"
)

func TestRender(t *testing.T) {
	eng := newFakeEngine("Balanced", "Silent", "Balanced", "Turbo")
	sys := traytest.New()
	c := New(eng, sys, "")

	if err := c.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := "TrayClear() TrayAdd(Silent) TrayAdd(Balanced*) TrayAdd(Turbo) TrayAdd(---) " +
		"TrayAdd(Reload configuration) TrayAdd(Edit configuration) TrayAdd(Quit application)"
	if got := sys.Trace(); got != want {
		t.Errorf("trace =\n  %s\nwant\n  %s", got, want)
	}
	if got := c.Layout(); got.Plans != 3 || got.Generation != 1 {
		t.Errorf("Layout() = %+v", got)
	}

	// A click on index 1 selects Balanced.
	action, err := Decode(c.Layout().Plans, 1)
	if err != nil || action != ActionSelectPlan {
		t.Fatalf("Decode(1) = %v, %v", action, err)
	}
	if name, _ := eng.PlanByIndex(1); name != "Balanced" {
		t.Errorf("index 1 = %q, want Balanced", name)
	}
}

func TestRenderNoActivePlan(t *testing.T) {
	eng := newFakeEngine("", "Silent", "Turbo")
	sys := traytest.New()
	if err := New(eng, sys, "").Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, item := range sys.Menu {
		if item.State == tray.StateChecked {
			t.Errorf("%q checked with no active plan", item.Text)
		}
	}
}

func TestRenderReplacesMenu(t *testing.T) {
	eng := newFakeEngine("Silent", "Silent", "Turbo")
	sys := traytest.New()
	c := New(eng, sys, "")

	if err := c.Render(); err != nil {
		t.Fatal(err)
	}
	eng.active = "Turbo"
	if err := c.Render(); err != nil {
		t.Fatal(err)
	}

	if len(sys.Menu) != 6 {
		t.Fatalf("menu has %d entries after two renders, want 6", len(sys.Menu))
	}
	if sys.Menu[0].State != tray.StateDefault || sys.Menu[1].State != tray.StateChecked {
		t.Errorf("menu states = %v, %v; want Turbo checked", sys.Menu[0].State, sys.Menu[1].State)
	}
	if c.Layout().Generation != 2 {
		t.Errorf("Generation = %d, want 2", c.Layout().Generation)
	}
}

func TestRenderAddFailureAborts(t *testing.T) {
	boom := errors.New("menu full")
	eng := newFakeEngine("", "Silent", "Balanced", "Turbo")
	sys := traytest.New()
	sys.Fail, sys.FailAfter, sys.FailErr = "TrayAdd", 1, boom

	c := New(eng, sys, "")
	if err := c.Render(); !errors.Is(err, boom) {
		t.Fatalf("Render() error = %v, want %v", err, boom)
	}
	if sys.Count("TrayAdd") != 2 {
		t.Errorf("TrayAdd called %d times, want 2", sys.Count("TrayAdd"))
	}
	if c.Layout().Generation != 0 {
		t.Error("failed render must not produce a layout")
	}
}

func TestRenderIndexMismatch(t *testing.T) {
	eng := newFakeEngine("", "Silent")
	sys := traytest.New()
	sys.IndexOffset = 1

	err := New(eng, sys, "").Render()
	if !errors.Is(err, ErrLayoutMismatch) {
		t.Fatalf("Render() error = %v, want ErrLayoutMismatch", err)
	}
}
