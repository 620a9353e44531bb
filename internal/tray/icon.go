package tray

import (
	_ "embed"
	"runtime"
)

//go:embed icon.ico
var iconICO []byte

//go:embed icon.png
var iconPNG []byte

// iconData returns the icon in the format the platform tray expects.
func iconData() []byte {
	if runtime.GOOS == "windows" {
		return iconICO
	}
	return iconPNG
}
