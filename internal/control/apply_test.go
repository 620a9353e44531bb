package control

import (
	"errors"
	"testing"
	"time"

	"github.com/atrofac/atrofac/internal/tray/traytest"
)

func TestApplyTimer(t *testing.T) {
	tests := []struct {
		name      string
		active    string
		interval  *int
		wantTrace string
	}{
		{name: "Configured interval", active: "Silent", interval: interval(60), wantTrace: "SetTimer(1m0s)"},
		{name: "Default interval", active: "Silent", wantTrace: "SetTimer(2m0s)"},
		{name: "No active plan", active: "", wantTrace: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := newFakeEngine(tt.active, "Silent")
			eng.plans[0].UpdateIntervalSec = tt.interval
			sys := traytest.New()

			if err := New(eng, sys, "").Apply(); err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if got := sys.Trace(); got != tt.wantTrace {
				t.Errorf("trace = %q, want %q", got, tt.wantTrace)
			}
			if eng.trace() != "Apply("+tt.active+")" {
				t.Errorf("engine trace = %q, engine apply must always run", eng.trace())
			}
		})
	}
}

func TestApplyTwiceOnlyRearms(t *testing.T) {
	eng := newFakeEngine("Silent", "Silent")
	sys := traytest.New()
	c := New(eng, sys, "")

	for i := 0; i < 2; i++ {
		if err := c.Apply(); err != nil {
			t.Fatal(err)
		}
	}
	if got := sys.Trace(); got != "SetTimer(2m0s) SetTimer(2m0s)" {
		t.Errorf("trace = %q", got)
	}
	if DefaultInterval != 120*time.Second {
		t.Errorf("DefaultInterval = %s", DefaultInterval)
	}
}

func TestApplyEngineErrorArmsNoTimer(t *testing.T) {
	boom := errors.New("ATKACPI control failed")
	eng := newFakeEngine("Silent", "Silent")
	eng.applyErr = boom
	sys := traytest.New()

	if err := New(eng, sys, "").Apply(); !errors.Is(err, boom) {
		t.Fatalf("Apply() error = %v", err)
	}
	if sys.Count("SetTimer") != 0 {
		t.Error("timer armed after failed apply")
	}
}
