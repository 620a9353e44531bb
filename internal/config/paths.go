// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

// AppDirName is the name of the application directory inside the user config dir.
const AppDirName = "atrofac"

// File names
const (
	ConfigFileName   = "atrofac.yaml"
	SettingsFileName = "settings.yaml"
	InstanceFileName = "tray.yaml"
)

// AppDir returns the path to the application directory (e.g. ~/.config/atrofac/).
func AppDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppDirName), nil
}

// DefaultConfigFile returns the default path of atrofac.yaml.
func DefaultConfigFile() (string, error) {
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// InstanceFile returns the path of the tray instance file that belongs to the
// given configuration file.
func InstanceFile(configFile string) string {
	return filepath.Join(filepath.Dir(configFile), InstanceFileName)
}

// EnsureDir creates the directory holding path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}
