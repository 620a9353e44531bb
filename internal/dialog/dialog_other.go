//go:build !windows

package dialog

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

func showError(title, message string) error {
	if err := beeep.Alert(title, message, ""); err != nil {
		return fmt.Errorf("failed to show alert: %w", err)
	}
	return nil
}
