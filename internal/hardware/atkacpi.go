package hardware

import (
	"encoding/binary"

	"github.com/atrofac/atrofac/internal/models"
)

// ATKACPI device and control code.
const (
	atkacpiDevice      = `\\.\ATKACPI`
	atkacpiControlCode = 0x0022240C
)

// DEVS device IDs.
const (
	devicePowerPlan = 0x00120075
	deviceCPUFan    = 0x00110024
	deviceGPUFan    = 0x00110025
)

var devsMagic = [4]byte{'D', 'E', 'V', 'S'}

// encodeDEVS builds a DEVS request: magic, payload length, device ID, payload.
func encodeDEVS(device uint32, payload []byte) []byte {
	buf := make([]byte, 12+len(payload))
	copy(buf[0:4], devsMagic[:])
	binary.LittleEndian.PutUint32(buf[4:8], uint32(4+len(payload)))
	binary.LittleEndian.PutUint32(buf[8:12], device)
	copy(buf[12:], payload)
	return buf
}

// encodePowerPlan builds the request switching the power plan.
func encodePowerPlan(plan models.PowerPlan) ([]byte, error) {
	v, err := powerPlanValue(plan)
	if err != nil {
		return nil, err
	}
	return encodeDEVS(devicePowerPlan, []byte{v, 0, 0, 0}), nil
}

// encodeFanCurve builds the request setting a fan curve: eight temperatures
// followed by eight duties.
func encodeFanCurve(fan models.FanDevice, curve models.FanCurve) []byte {
	device := uint32(deviceCPUFan)
	if fan == models.FanGPU {
		device = deviceGPUFan
	}
	payload := make([]byte, 2*models.FanCurvePoints)
	for i, p := range curve {
		payload[i] = byte(p.Temp)
		payload[models.FanCurvePoints+i] = byte(p.Duty)
	}
	return encodeDEVS(device, payload)
}
