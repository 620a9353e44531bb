// Package dialog shows the modal error message of the tray process.
package dialog

import "log"

// Error shows a blocking error dialog with the given title and message.
func Error(title, message string) error {
	log.Printf("[dialog] %s: %s", title, message)
	return showError(title, message)
}
