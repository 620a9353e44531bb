// Package main is the entry point for the atrofac-tray process.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/viper"

	"github.com/atrofac/atrofac/internal/buildinfo"
	"github.com/atrofac/atrofac/internal/config"
	"github.com/atrofac/atrofac/internal/control"
	"github.com/atrofac/atrofac/internal/dialog"
	"github.com/atrofac/atrofac/internal/engine"
	"github.com/atrofac/atrofac/internal/hardware"
	"github.com/atrofac/atrofac/internal/models"
	"github.com/atrofac/atrofac/internal/tray"
	"github.com/atrofac/atrofac/internal/watcher"
)

func main() {
	// Parse flags
	configFile := flag.String("config", "", "Configuration file (default <user config dir>/atrofac/atrofac.yaml)")
	dryRun := flag.Bool("dry-run", false, "Log hardware writes instead of performing them")
	watch := flag.Bool("watch", false, "Reload when the configuration file changes")
	logFile := flag.String("log-file", "", "Write the log to this file instead of stderr")
	flag.Parse()

	log.SetPrefix("[atrofac-tray] ")
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Only explicitly passed flags override env and settings.yaml.
	v := viper.New()
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "config":
			v.Set("config", *configFile)
		case "dry-run":
			v.Set("dry_run", *dryRun)
		case "watch":
			v.Set("watch_config", *watch)
		case "log-file":
			v.Set("log_file", *logFile)
		}
	})

	settings, err := config.LoadSettings(v)
	if err != nil {
		reportStartupError(err)
		os.Exit(1)
	}

	var logOut *os.File
	if settings.LogFile != "" {
		logOut, err = os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			reportStartupError(fmt.Errorf("failed to open log file: %w", err))
			os.Exit(1)
		}
		log.SetOutput(logOut)
	}

	code := run(settings)
	if logOut != nil {
		_ = logOut.Close()
	}
	os.Exit(code)
}

// run owns the lifetime of the tray and returns the process exit code.
func run(settings *models.Settings) int {
	running, info, err := config.IsTrayRunning(settings.Config)
	if err != nil {
		reportStartupError(fmt.Errorf("failed to check tray status: %w", err))
		return 1
	}
	if running {
		reportStartupError(fmt.Errorf("atrofac-tray is already running for %s (PID %d)", settings.Config, info.PID))
		return 1
	}

	driver, err := openDriver(settings.DryRun)
	if err != nil {
		reportStartupError(fmt.Errorf("failed to open hardware driver: %w", err))
		return 1
	}
	defer driver.Close()

	eng := engine.New(settings.Config, driver)
	if _, err := eng.CreateDefault(); err != nil {
		reportStartupError(err)
		return 1
	}

	var w *watcher.Watcher
	if settings.WatchConfig {
		w, err = watcher.New(settings.Config, watcher.DefaultDebounce)
		if err != nil {
			reportStartupError(fmt.Errorf("failed to create watcher: %w", err))
			return 1
		}
		defer w.Stop()
	}

	if err := config.SaveInstanceInfo(models.NewInstanceInfo(settings.Config, os.Getpid())); err != nil {
		reportStartupError(fmt.Errorf("failed to write instance info: %w", err))
		return 1
	}
	defer func() {
		if err := config.RemoveInstanceInfo(settings.Config); err != nil {
			log.Printf("Failed to remove instance info: %v", err)
		}
	}()

	t := tray.New(settings.Editor)
	ctrl := control.New(eng, t, settings.Tooltip)

	loopDone := make(chan int, 1)
	onReady := func() {
		if w != nil {
			if err := w.Start(); err != nil {
				log.Printf("Failed to watch configuration: %v", err)
			} else {
				go func() {
					for range w.Changes() {
						t.Post(tray.Event{Kind: tray.EventConfigChanged})
					}
				}()
			}
		}

		// Quit the tray on SIGINT/SIGTERM
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			sig := <-sigCh
			log.Printf("Received signal %v, shutting down...", sig)
			_ = t.Quit()
		}()

		log.Printf("Tray %s started for %s (PID %d)", buildinfo.Summary(), settings.Config, os.Getpid())
		code := 0
		if err := ctrl.RunAndReport(); err != nil {
			code = 1
		}
		loopDone <- code
		_ = t.Quit()
	}

	// This blocks the main goroutine until the tray exits.
	// systray.Run must occupy the main goroutine on macOS (Cocoa requirement).
	t.Run(onReady, func() {
		log.Println("Tray stopped")
	})

	// The loop sees the shutdown sentinel and finishes its current event.
	return <-loopDone
}

var openDriver = hardware.Open

// reportStartupError reports an error that happens before the control loop
// exists.
var reportStartupError = func(err error) {
	log.Printf("Fatal: %v", err)
	if dialogErr := dialog.Error(control.ErrorTitle, err.Error()); dialogErr != nil {
		log.Printf("Unable to display error message: %v", dialogErr)
	}
}
