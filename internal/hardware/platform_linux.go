//go:build linux

package hardware

func openPlatform() (Driver, error) {
	drv, err := NewAsusWMI("/sys")
	if err != nil {
		return nil, err
	}
	return drv, nil
}
