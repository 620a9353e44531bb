// Package cli implements the atrofac CLI commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/atrofac/atrofac/internal/config"
	"github.com/atrofac/atrofac/internal/engine"
	"github.com/atrofac/atrofac/internal/hardware"
	"github.com/atrofac/atrofac/internal/models"
)

// v holds flag values; config.LoadSettings layers env and settings.yaml under them.
var v = viper.New()

var rootCmd = &cobra.Command{
	Use:   "atrofac",
	Short: "Control fan curves and power profiles of ASUS ROG laptops",
	Long: `atrofac switches between named plans, each a power profile plus optional
CPU and GPU fan curves. The atrofac-tray process keeps the active plan applied
and offers the plans in a system tray menu; this command manages the same
configuration from a terminal.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "configuration file (default <user config dir>/atrofac/atrofac.yaml)")
	rootCmd.PersistentFlags().Bool("dry-run", false, "log hardware writes instead of performing them")
	_ = v.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = v.BindPFlag("dry_run", rootCmd.PersistentFlags().Lookup("dry-run"))

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(plansCmd)
	rootCmd.AddCommand(trayCmd)
	rootCmd.AddCommand(versionCmd)
}

func loadSettings() (*models.Settings, error) {
	return config.LoadSettings(v)
}

// loadEngine loads the configuration. The hardware driver is only opened when
// withDriver is set; otherwise Apply must not be called.
func loadEngine(withDriver bool) (*engine.Engine, *models.Settings, func(), error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, nil, nil, err
	}

	var drv hardware.Driver = hardware.DryRun{}
	if withDriver {
		drv, err = hardware.Open(settings.DryRun)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to open hardware driver: %w", err)
		}
	}

	eng := engine.New(settings.Config, drv)
	if err := eng.LoadConfiguration(); err != nil {
		_ = drv.Close()
		return nil, nil, nil, err
	}
	return eng, settings, func() { _ = drv.Close() }, nil
}
