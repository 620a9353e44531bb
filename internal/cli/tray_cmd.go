package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/atrofac/atrofac/internal/config"
)

var trayCmd = &cobra.Command{
	Use:   "tray",
	Short: "Manage the tray process",
	Long:  `Manage the atrofac-tray process that keeps the active plan applied.`,
}

var trayStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show tray status",
	RunE:  runTrayStatus,
}

var trayStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the tray",
	RunE:  runTrayStart,
}

var trayStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the tray",
	RunE:  runTrayStop,
}

func init() {
	trayCmd.AddCommand(trayStartCmd)
	trayCmd.AddCommand(trayStatusCmd)
	trayCmd.AddCommand(trayStopCmd)
}

func runTrayStart(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	running, info, err := config.IsTrayRunning(settings.Config)
	if err != nil {
		return fmt.Errorf("failed to check tray status: %w", err)
	}
	if running && info != nil {
		fmt.Printf("Tray is already running (PID %d).\n", info.PID)
		return nil
	}

	fmt.Print("Starting tray...")
	if err := startTray(settings.Config, settings.DryRun); err != nil {
		fmt.Println()
		return err
	}

	_, info, err = config.IsTrayRunning(settings.Config)
	if err != nil || info == nil {
		fmt.Println(" " + styleSuccess.Render("started."))
		return nil
	}
	fmt.Printf(" %s (PID %d).\n", styleSuccess.Render("started"), info.PID)
	return nil
}

func runTrayStatus(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	running, info, err := config.IsTrayRunning(settings.Config)
	if err != nil {
		return err
	}
	if !running || info == nil {
		fmt.Println(styleHint.Render("Tray is not running."))
		return nil
	}

	uptime := time.Since(info.StartedAt).Truncate(time.Second)

	fmt.Println(styleSuccess.Render("Tray is running."))
	fmt.Printf("  %s %d\n", styleLabel.Render("PID:    "), info.PID)
	fmt.Printf("  %s %s\n", styleLabel.Render("Config: "), info.ConfigFile)
	fmt.Printf("  %s %s\n", styleLabel.Render("Uptime: "), uptime)
	return nil
}

func runTrayStop(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	running, info, err := config.IsTrayRunning(settings.Config)
	if err != nil {
		return fmt.Errorf("failed to check tray status: %w", err)
	}
	if !running || info == nil {
		fmt.Println("Tray is not running.")
		return nil
	}

	if err := stopTray(settings.Config, info.PID); err != nil {
		fmt.Println(styleError.Render("Failed: ") + err.Error())
		return err
	}
	fmt.Println("Tray stopped.")
	return nil
}
