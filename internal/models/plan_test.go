package models

import (
	"strings"
	"testing"
)

func TestParseFanCurve(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:  "Valid curve",
			input: "30c:0%,40c:0%,50c:0%,60c:0%,70c:31%,80c:49%,90c:56%,100c:56%",
		},
		{
			name:  "Whitespace and upper case",
			input: " 30C:0% , 40c:10%,50c:20%,60c:30%,70c:40%,80c:50%,90c:60%,100c:70% ",
		},
		{
			name:    "Too few points",
			input:   "30c:0%,40c:0%",
			wantErr: "must have 8 points",
		},
		{
			name:    "Missing separator",
			input:   "30c0%,40c:0%,50c:0%,60c:0%,70c:31%,80c:49%,90c:56%,100c:56%",
			wantErr: "expected <temp>c:<duty>%",
		},
		{
			name:    "Bad temperature",
			input:   "xc:0%,40c:0%,50c:0%,60c:0%,70c:31%,80c:49%,90c:56%,100c:56%",
			wantErr: "invalid temperature",
		},
		{
			name:    "Duty above 100",
			input:   "30c:0%,40c:0%,50c:0%,60c:0%,70c:31%,80c:49%,90c:56%,100c:101%",
			wantErr: "out of range 0-100",
		},
		{
			name:    "Temperatures not increasing",
			input:   "30c:0%,40c:0%,40c:0%,60c:0%,70c:31%,80c:49%,90c:56%,100c:56%",
			wantErr: "strictly increasing",
		},
		{
			name:    "Duty decreases",
			input:   "30c:0%,40c:10%,50c:5%,60c:5%,70c:31%,80c:49%,90c:56%,100c:56%",
			wantErr: "must not decrease",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFanCurve(tt.input)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("ParseFanCurve(%q) error = %v", tt.input, err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ParseFanCurve(%q) error = %v, want containing %q", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestFanCurveStringRoundTrip(t *testing.T) {
	in := "30c:0%,40c:0%,50c:0%,60c:0%,70c:31%,80c:49%,90c:56%,100c:56%"
	curve, err := ParseFanCurve(in)
	if err != nil {
		t.Fatalf("ParseFanCurve: %v", err)
	}
	if got := curve.String(); got != in {
		t.Errorf("String() = %q, want %q", got, in)
	}
}

func TestFanCurveClamp(t *testing.T) {
	curve, _ := ParseFanCurve("30c:0%,40c:0%,50c:0%,60c:0%,70c:31%,80c:49%,90c:56%,100c:56%")
	limit, _ := ParseFanCurve("0c:0%,10c:0%,20c:0%,45c:10%,60c:20%,75c:40%,90c:60%,110c:80%")

	got := curve.Clamp(limit)
	want := []int{0, 0, 10, 20, 31, 49, 60, 60}
	for i, p := range got {
		if p.Duty != want[i] {
			t.Errorf("point %d (%dc) duty = %d, want %d", i, p.Temp, p.Duty, want[i])
		}
		if p.Temp != curve[i].Temp {
			t.Errorf("point %d temp changed: %d -> %d", i, curve[i].Temp, p.Temp)
		}
	}
}

func TestPowerPlanValid(t *testing.T) {
	for _, p := range []PowerPlan{PowerPlanWindows, PowerPlanSilent, PowerPlanTurbo} {
		if !p.Valid() {
			t.Errorf("%q should be valid", p)
		}
	}
	if PowerPlan("performance").Valid() {
		t.Error("unknown plan should be invalid")
	}
}

func TestConfigFindPlan(t *testing.T) {
	cfg := NewConfig()
	if p := cfg.FindPlan("Turbo"); p == nil || p.PowerPlan != PowerPlanTurbo {
		t.Errorf("FindPlan(Turbo) = %+v", p)
	}
	if p := cfg.FindPlan("Missing"); p != nil {
		t.Errorf("FindPlan(Missing) = %+v, want nil", p)
	}
}
