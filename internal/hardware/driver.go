// Package hardware writes power plans and fan curves to ASUS ROG laptops.
package hardware

import (
	"errors"
	"log"

	"github.com/atrofac/atrofac/internal/models"
)

// Driver writes settings to the embedded controller.
type Driver interface {
	SetPowerPlan(plan models.PowerPlan) error
	SetFanCurve(fan models.FanDevice, curve models.FanCurve) error
	Close() error
}

// Open returns the driver for the current platform, or a DryRun driver when
// dryRun is set or the platform has no driver.
func Open(dryRun bool) (Driver, error) {
	if dryRun {
		return DryRun{}, nil
	}
	return openPlatform()
}

// DryRun logs every write instead of performing it.
type DryRun struct{}

func (DryRun) SetPowerPlan(plan models.PowerPlan) error {
	log.Printf("[hardware] dry-run: power plan %s", plan)
	return nil
}

func (DryRun) SetFanCurve(fan models.FanDevice, curve models.FanCurve) error {
	log.Printf("[hardware] dry-run: %s fan curve %s", fan, curve)
	return nil
}

func (DryRun) Close() error { return nil }

// powerPlanValue is the firmware value shared by ATKACPI and asus-wmi.
func powerPlanValue(plan models.PowerPlan) (uint8, error) {
	switch plan {
	case models.PowerPlanWindows:
		return 0x00, nil
	case models.PowerPlanTurbo:
		return 0x01, nil
	case models.PowerPlanSilent:
		return 0x02, nil
	}
	return 0, errors.New("unknown power plan " + string(plan))
}
