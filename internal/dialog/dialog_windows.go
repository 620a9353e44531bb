//go:build windows

package dialog

import (
	"fmt"

	"golang.org/x/sys/windows"
)

const (
	mbOK          = 0x00000000
	mbIconError   = 0x00000010
	mbSystemModal = 0x00001000
)

func showError(title, message string) error {
	t, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return err
	}
	m, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return err
	}
	if _, err := windows.MessageBox(0, m, t, mbOK|mbIconError|mbSystemModal); err != nil {
		return fmt.Errorf("MessageBox failed: %w", err)
	}
	return nil
}
