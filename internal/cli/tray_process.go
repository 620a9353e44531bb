package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/atrofac/atrofac/internal/config"
)

const trayBinaryName = "atrofac-tray"

// startTray starts the tray process in the background for configFile and
// waits until it has registered itself.
func startTray(configFile string, dryRun bool) error {
	trayPath, err := findTrayBinary()
	if err != nil {
		return err
	}

	args := []string{"-config", configFile}
	if dryRun {
		args = append(args, "-dry-run")
	}
	cmd := exec.Command(trayPath, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.Stdin = nil

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start tray: %w", err)
	}
	go func() { _ = cmd.Wait() }()

	// Wait for the tray to be ready (max 5 seconds)
	for i := 0; i < 50; i++ {
		time.Sleep(100 * time.Millisecond)
		running, _, err := config.IsTrayRunning(configFile)
		if err == nil && running {
			return nil
		}
	}
	return fmt.Errorf("tray failed to start within timeout")
}

// stopTray asks the tray process to exit and waits for it.
func stopTray(configFile string, pid int) error {
	process, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("failed to find tray process: %w", err)
	}

	// Windows cannot deliver os.Interrupt to another process.
	sig := os.Interrupt
	if runtime.GOOS == "windows" {
		sig = os.Kill
	}
	if err := process.Signal(sig); err != nil {
		return fmt.Errorf("failed to send stop signal: %w", err)
	}

	// Poll for shutdown (max 5 seconds)
	for i := 0; i < 50; i++ {
		time.Sleep(100 * time.Millisecond)
		running, _, err := config.IsTrayRunning(configFile)
		if err == nil && !running {
			if sig == os.Kill {
				_ = config.RemoveInstanceInfo(configFile)
			}
			return nil
		}
	}
	return fmt.Errorf("tray did not stop within timeout")
}

// findTrayBinary locates the atrofac-tray binary.
func findTrayBinary() (string, error) {
	name := trayBinaryName
	if runtime.GOOS == "windows" {
		name += ".exe"
	}

	// Try next to the current executable first
	if execPath, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(execPath), name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	// Then PATH
	if path, err := exec.LookPath(name); err == nil {
		return path, nil
	}

	// Try build directory
	if candidate := filepath.Join("build", name); config.FileExists(candidate) {
		return candidate, nil
	}

	return "", fmt.Errorf("%s not found. Install or build it first", trayBinaryName)
}
