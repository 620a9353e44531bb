package control

import (
	"fmt"
	"log"
)

// ErrorTitle is the title of the error dialog.
const ErrorTitle = "Error"

// RunAndReport runs the loop and, if it fails, shows the error once in a
// modal dialog. The error is returned so the caller can exit; there is no
// retry. A dialog that cannot be shown panics.
func (c *Controller) RunAndReport() error {
	err := c.Run()
	if err == nil {
		return nil
	}

	log.Printf("[control] fatal: %v", err)
	if dialogErr := c.system.ShowErrMessage(ErrorTitle, err.Error()); dialogErr != nil {
		panic(fmt.Sprintf("unable to display error message %q: %v", err, dialogErr))
	}
	return err
}
