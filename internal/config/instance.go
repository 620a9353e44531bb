package config

import (
	"os"
	"runtime"
	"syscall"

	"github.com/atrofac/atrofac/internal/models"
)

// LoadInstanceInfo loads the tray instance info belonging to configFile.
// Returns nil if the file doesn't exist.
func LoadInstanceInfo(configFile string) (*models.InstanceInfo, error) {
	return LoadYAMLOrDefault(InstanceFile(configFile), func() *models.InstanceInfo { return nil })
}

// SaveInstanceInfo records the running tray instance.
func SaveInstanceInfo(info *models.InstanceInfo) error {
	return SaveYAML(InstanceFile(info.ConfigFile), info)
}

// RemoveInstanceInfo removes the instance file belonging to configFile.
func RemoveInstanceInfo(configFile string) error {
	path := InstanceFile(configFile)
	if !FileExists(path) {
		return nil
	}
	return os.Remove(path)
}

// IsTrayRunning checks if a tray process is running against configFile.
// Returns true if the instance file exists and the PID is alive.
func IsTrayRunning(configFile string) (bool, *models.InstanceInfo, error) {
	info, err := LoadInstanceInfo(configFile)
	if err != nil {
		return false, nil, err
	}
	if info == nil {
		return false, nil, nil
	}

	if !processAlive(info.PID) {
		// Stale file from a crashed process
		_ = RemoveInstanceInfo(configFile)
		return false, info, nil
	}
	return true, info, nil
}

func processAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	if pid == os.Getpid() {
		return true
	}
	// Signal 0 probes for existence on Unix. On Windows FindProcess already
	// fails for dead PIDs and Signal(0) is unsupported.
	if err := process.Signal(syscall.Signal(0)); err != nil {
		return runtime.GOOS == "windows"
	}
	return true
}
