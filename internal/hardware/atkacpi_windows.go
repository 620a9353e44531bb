//go:build windows

package hardware

import (
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/atrofac/atrofac/internal/models"
)

// atkacpi talks to the ASUS ATKACPI kernel driver.
type atkacpi struct {
	handle windows.Handle
}

func openPlatform() (Driver, error) {
	name, err := windows.UTF16PtrFromString(atkacpiDevice)
	if err != nil {
		return nil, err
	}
	h, err := windows.CreateFile(name,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil, windows.OPEN_EXISTING, windows.FILE_ATTRIBUTE_NORMAL, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s (is the ASUS ATK driver installed?): %w", atkacpiDevice, err)
	}
	return &atkacpi{handle: h}, nil
}

func (a *atkacpi) control(in []byte) error {
	out := make([]byte, 16)
	var returned uint32
	if err := windows.DeviceIoControl(a.handle, atkacpiControlCode,
		&in[0], uint32(len(in)), &out[0], uint32(len(out)), &returned, nil); err != nil {
		return fmt.Errorf("ATKACPI control failed: %w", err)
	}
	return nil
}

func (a *atkacpi) SetPowerPlan(plan models.PowerPlan) error {
	buf, err := encodePowerPlan(plan)
	if err != nil {
		return err
	}
	return a.control(buf)
}

func (a *atkacpi) SetFanCurve(fan models.FanDevice, curve models.FanCurve) error {
	return a.control(encodeFanCurve(fan, curve))
}

func (a *atkacpi) Close() error {
	return windows.CloseHandle(a.handle)
}
