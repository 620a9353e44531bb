// Package models contains shared data structures used across the application.
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// PowerPlan is the firmware power profile a plan switches to.
type PowerPlan string

// Supported power plans.
const (
	PowerPlanWindows PowerPlan = "windows"
	PowerPlanSilent  PowerPlan = "silent"
	PowerPlanTurbo   PowerPlan = "turbo"
)

// Valid reports whether p is a known power plan.
func (p PowerPlan) Valid() bool {
	switch p {
	case PowerPlanWindows, PowerPlanSilent, PowerPlanTurbo:
		return true
	}
	return false
}

// FanDevice identifies one of the two fans a curve can be written to.
type FanDevice int

const (
	FanCPU FanDevice = iota
	FanGPU
)

func (d FanDevice) String() string {
	if d == FanGPU {
		return "gpu"
	}
	return "cpu"
}

// FanCurvePoints is the number of points in every fan curve.
const FanCurvePoints = 8

// FanCurvePoint maps a temperature (°C) to a fan duty (percent).
type FanCurvePoint struct {
	Temp int
	Duty int
}

// FanCurve is an ordered set of FanCurvePoints points.
type FanCurve [FanCurvePoints]FanCurvePoint

// ParseFanCurve parses "30c:0%,40c:5%,..." into a FanCurve and validates it.
func ParseFanCurve(s string) (FanCurve, error) {
	var curve FanCurve
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != FanCurvePoints {
		return curve, fmt.Errorf("fan curve must have %d points, got %d", FanCurvePoints, len(parts))
	}

	for i, part := range parts {
		temp, duty, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return curve, fmt.Errorf("fan curve point %q: expected <temp>c:<duty>%%", part)
		}
		t, err := strconv.Atoi(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(temp)), "c"))
		if err != nil {
			return curve, fmt.Errorf("fan curve point %q: invalid temperature: %w", part, err)
		}
		d, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(duty), "%"))
		if err != nil {
			return curve, fmt.Errorf("fan curve point %q: invalid duty: %w", part, err)
		}
		curve[i] = FanCurvePoint{Temp: t, Duty: d}
	}

	if err := curve.Validate(); err != nil {
		return curve, err
	}
	return curve, nil
}

// Validate checks temperature and duty ranges and monotonicity.
func (c FanCurve) Validate() error {
	for i, p := range c {
		if p.Temp < 0 || p.Temp > 120 {
			return fmt.Errorf("fan curve point %d: temperature %dc out of range 0-120", i+1, p.Temp)
		}
		if p.Duty < 0 || p.Duty > 100 {
			return fmt.Errorf("fan curve point %d: duty %d%% out of range 0-100", i+1, p.Duty)
		}
		if i == 0 {
			continue
		}
		if p.Temp <= c[i-1].Temp {
			return fmt.Errorf("fan curve point %d: temperatures must be strictly increasing", i+1)
		}
		if p.Duty < c[i-1].Duty {
			return fmt.Errorf("fan curve point %d: duties must not decrease", i+1)
		}
	}
	return nil
}

// String formats the curve in the same syntax ParseFanCurve accepts.
func (c FanCurve) String() string {
	parts := make([]string, len(c))
	for i, p := range c {
		parts[i] = fmt.Sprintf("%dc:%d%%", p.Temp, p.Duty)
	}
	return strings.Join(parts, ",")
}

// Clamp raises every duty to at least the duty the limit curve requires at
// that temperature. The limit is evaluated as a step function: the required
// duty at temperature t is the duty of the last limit point with Temp <= t.
func (c FanCurve) Clamp(limit FanCurve) FanCurve {
	out := c
	for i, p := range out {
		floor := 0
		for _, l := range limit {
			if l.Temp <= p.Temp {
				floor = l.Duty
			}
		}
		if p.Duty < floor {
			out[i].Duty = floor
		}
	}
	return out
}

// Plan is a named configuration bundle applied to the hardware.
type Plan struct {
	Name              string    `yaml:"name"`
	PowerPlan         PowerPlan `yaml:"plan"`
	UpdateIntervalSec *int      `yaml:"update_interval_sec,omitempty"`
	CPUCurve          string    `yaml:"cpu_curve,omitempty"`
	GPUCurve          string    `yaml:"gpu_curve,omitempty"`
}

// Limits holds the minimum duty curves fan curves are clamped to.
type Limits struct {
	CPU string `yaml:"cpu,omitempty"`
	GPU string `yaml:"gpu,omitempty"`
}

// Config represents the configuration file (atrofac.yaml).
// Plan order is significant: it is mirrored into the tray menu.
type Config struct {
	ActivePlan string  `yaml:"active_plan,omitempty"`
	Plans      []*Plan `yaml:"plans"`
	Limits     *Limits `yaml:"limits,omitempty"`
}

// NewConfig creates a configuration with the stock plans.
func NewConfig() *Config {
	silentInterval := 60
	return &Config{
		ActivePlan: "Balanced",
		Plans: []*Plan{
			{
				Name:              "Silent",
				PowerPlan:         PowerPlanSilent,
				UpdateIntervalSec: &silentInterval,
				CPUCurve:          "30c:0%,40c:0%,50c:0%,60c:0%,70c:31%,80c:49%,90c:56%,100c:56%",
				GPUCurve:          "30c:0%,40c:0%,50c:0%,60c:0%,70c:34%,80c:51%,90c:61%,100c:61%",
			},
			{
				Name:      "Balanced",
				PowerPlan: PowerPlanWindows,
			},
			{
				Name:      "Turbo",
				PowerPlan: PowerPlanTurbo,
			},
		},
	}
}

// FindPlan returns the plan with the given name, or nil.
func (c *Config) FindPlan(name string) *Plan {
	for _, p := range c.Plans {
		if p.Name == name {
			return p
		}
	}
	return nil
}
