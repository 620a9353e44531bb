package hardware

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atrofac/atrofac/internal/models"
)

func TestEncodePowerPlan(t *testing.T) {
	tests := []struct {
		plan  models.PowerPlan
		value byte
	}{
		{models.PowerPlanWindows, 0x00},
		{models.PowerPlanTurbo, 0x01},
		{models.PowerPlanSilent, 0x02},
	}

	for _, tt := range tests {
		t.Run(string(tt.plan), func(t *testing.T) {
			got, err := encodePowerPlan(tt.plan)
			if err != nil {
				t.Fatalf("encodePowerPlan: %v", err)
			}
			want := []byte{'D', 'E', 'V', 'S', 0x08, 0, 0, 0, 0x75, 0x00, 0x12, 0x00, tt.value, 0, 0, 0}
			if !bytes.Equal(got, want) {
				t.Errorf("encodePowerPlan(%s) = % x, want % x", tt.plan, got, want)
			}
		})
	}

	if _, err := encodePowerPlan("bogus"); err == nil {
		t.Error("expected error for unknown plan")
	}
}

func TestEncodeFanCurve(t *testing.T) {
	curve, err := models.ParseFanCurve("30c:0%,40c:5%,50c:10%,60c:20%,70c:31%,80c:49%,90c:56%,100c:60%")
	if err != nil {
		t.Fatal(err)
	}

	got := encodeFanCurve(models.FanGPU, curve)
	want := []byte{
		'D', 'E', 'V', 'S', 0x14, 0, 0, 0, 0x25, 0x00, 0x11, 0x00,
		30, 40, 50, 60, 70, 80, 90, 100,
		0, 5, 10, 20, 31, 49, 56, 60,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("encodeFanCurve = % x, want % x", got, want)
	}

	if cpu := encodeFanCurve(models.FanCPU, curve); cpu[8] != 0x24 {
		t.Errorf("CPU device byte = %#x, want 0x24", cpu[8])
	}
}

// fakeSysfs lays out the asus-wmi files under a temporary root.
func fakeSysfs(t *testing.T, withFanCurve bool) string {
	t.Helper()
	root := t.TempDir()

	policy := filepath.Join(root, thermalPolicyPath)
	if err := os.MkdirAll(filepath.Dir(policy), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(policy, []byte("0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	other := filepath.Join(root, hwmonDir, "hwmon0")
	if err := os.MkdirAll(other, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(other, "name"), []byte("coretemp\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if withFanCurve {
		dir := filepath.Join(root, hwmonDir, "hwmon5")
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "name"), []byte(fanCurveHwmonName+"\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func readTrim(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return strings.TrimSpace(string(data))
}

func TestAsusWMISetPowerPlan(t *testing.T) {
	root := fakeSysfs(t, false)
	drv, err := NewAsusWMI(root)
	if err != nil {
		t.Fatalf("NewAsusWMI: %v", err)
	}

	if err := drv.SetPowerPlan(models.PowerPlanSilent); err != nil {
		t.Fatalf("SetPowerPlan: %v", err)
	}
	if got := readTrim(t, filepath.Join(root, thermalPolicyPath)); got != "2" {
		t.Errorf("throttle_thermal_policy = %q, want 2", got)
	}
}

func TestAsusWMISetFanCurve(t *testing.T) {
	root := fakeSysfs(t, true)
	drv, err := NewAsusWMI(root)
	if err != nil {
		t.Fatalf("NewAsusWMI: %v", err)
	}

	curve, _ := models.ParseFanCurve("30c:0%,40c:0%,50c:0%,60c:0%,70c:31%,80c:49%,90c:56%,100c:100%")
	if err := drv.SetFanCurve(models.FanGPU, curve); err != nil {
		t.Fatalf("SetFanCurve: %v", err)
	}

	dir := filepath.Join(root, hwmonDir, "hwmon5")
	if got := readTrim(t, filepath.Join(dir, "pwm2_auto_point5_temp")); got != "70" {
		t.Errorf("point5 temp = %q, want 70", got)
	}
	if got := readTrim(t, filepath.Join(dir, "pwm2_auto_point8_pwm")); got != "255" {
		t.Errorf("point8 pwm = %q, want 255", got)
	}
	if got := readTrim(t, filepath.Join(dir, "pwm2_enable")); got != "1" {
		t.Errorf("pwm2_enable = %q, want 1", got)
	}
}

func TestAsusWMIWithoutFanCurveHwmon(t *testing.T) {
	drv, err := NewAsusWMI(fakeSysfs(t, false))
	if err != nil {
		t.Fatalf("NewAsusWMI: %v", err)
	}
	var curve models.FanCurve
	if err := drv.SetFanCurve(models.FanCPU, curve); err == nil {
		t.Error("expected error when no fan curve hwmon exists")
	}
}

func TestNewAsusWMIMissing(t *testing.T) {
	if _, err := NewAsusWMI(t.TempDir()); err == nil {
		t.Error("expected error when asus-wmi is absent")
	}
}

func TestOpenDryRun(t *testing.T) {
	drv, err := Open(true)
	if err != nil {
		t.Fatalf("Open(true): %v", err)
	}
	if _, ok := drv.(DryRun); !ok {
		t.Errorf("Open(true) = %T, want DryRun", drv)
	}
}
