package tray

import (
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// EditorCommand builds the command that opens path for editing: editor if
// set, then $VISUAL, $EDITOR and finally the platform's file opener.
func EditorCommand(editor, path string) *exec.Cmd {
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if fields := strings.Fields(editor); len(fields) > 0 {
		return exec.Command(fields[0], append(fields[1:], path)...)
	}

	switch runtime.GOOS {
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path)
	case "darwin":
		return exec.Command("open", "-t", path)
	default:
		return exec.Command("xdg-open", path)
	}
}
