package hardware

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atrofac/atrofac/internal/models"
)

// Sysfs locations used by the asus-wmi kernel driver.
const (
	thermalPolicyPath = "devices/platform/asus-nb-wmi/throttle_thermal_policy"
	hwmonDir          = "class/hwmon"
	fanCurveHwmonName = "asus_custom_fan_curve"
)

// AsusWMI drives the asus-wmi kernel module through sysfs.
type AsusWMI struct {
	// Root is the sysfs mount point, normally /sys.
	Root string
}

// NewAsusWMI returns an AsusWMI driver for the given sysfs root.
func NewAsusWMI(root string) (*AsusWMI, error) {
	if _, err := os.Stat(filepath.Join(root, thermalPolicyPath)); err != nil {
		return nil, fmt.Errorf("asus-wmi not available: %w", err)
	}
	return &AsusWMI{Root: root}, nil
}

func (a *AsusWMI) SetPowerPlan(plan models.PowerPlan) error {
	v, err := powerPlanValue(plan)
	if err != nil {
		return err
	}
	return writeSysfs(filepath.Join(a.Root, thermalPolicyPath), strconv.Itoa(int(v)))
}

// SetFanCurve writes the curve to the custom fan curve hwmon; pwm1 is the CPU
// fan and pwm2 the GPU fan. Duties are scaled to 0-255.
func (a *AsusWMI) SetFanCurve(fan models.FanDevice, curve models.FanCurve) error {
	dir, err := a.fanCurveHwmon()
	if err != nil {
		return err
	}

	pwm := 1
	if fan == models.FanGPU {
		pwm = 2
	}
	for i, p := range curve {
		point := i + 1
		if err := writeSysfs(filepath.Join(dir, fmt.Sprintf("pwm%d_auto_point%d_temp", pwm, point)), strconv.Itoa(p.Temp)); err != nil {
			return err
		}
		if err := writeSysfs(filepath.Join(dir, fmt.Sprintf("pwm%d_auto_point%d_pwm", pwm, point)), strconv.Itoa(p.Duty*255/100)); err != nil {
			return err
		}
	}
	return writeSysfs(filepath.Join(dir, fmt.Sprintf("pwm%d_enable", pwm)), "1")
}

func (a *AsusWMI) Close() error { return nil }

func (a *AsusWMI) fanCurveHwmon() (string, error) {
	base := filepath.Join(a.Root, hwmonDir)
	entries, err := os.ReadDir(base)
	if err != nil {
		return "", fmt.Errorf("failed to list hwmon devices: %w", err)
	}
	for _, e := range entries {
		dir := filepath.Join(base, e.Name())
		name, err := os.ReadFile(filepath.Join(dir, "name"))
		if err != nil {
			continue
		}
		if strings.TrimSpace(string(name)) == fanCurveHwmonName {
			return dir, nil
		}
	}
	return "", fmt.Errorf("no %s hwmon device found (custom fan curves unsupported by this kernel or laptop)", fanCurveHwmonName)
}

func writeSysfs(path, value string) error {
	if err := os.WriteFile(path, []byte(value), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
