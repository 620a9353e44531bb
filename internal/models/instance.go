package models

import "time"

// InstanceInfo records the running tray process.
// This corresponds to tray.yaml next to the configuration file.
type InstanceInfo struct {
	Version    int       `yaml:"version"`
	PID        int       `yaml:"pid"`
	ConfigFile string    `yaml:"config_file"`
	StartedAt  time.Time `yaml:"started_at"`
}

// NewInstanceInfo creates a new instance info with current values.
func NewInstanceInfo(configFile string, pid int) *InstanceInfo {
	return &InstanceInfo{
		Version:    1,
		PID:        pid,
		ConfigFile: configFile,
		StartedAt:  time.Now().UTC(),
	}
}
