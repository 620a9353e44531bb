package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atrofac/atrofac/internal/engine"
	"github.com/atrofac/atrofac/internal/hardware"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration file with the stock plans",
	Long: `Create a configuration file with the stock Silent, Balanced and Turbo plans.

An existing configuration file is never overwritten.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	created, err := engine.New(settings.Config, hardware.DryRun{}).CreateDefault()
	if err != nil {
		return fmt.Errorf("failed to create configuration: %w", err)
	}
	if !created {
		fmt.Printf("%s %s\n", styleWarning.Render("Already exists:"), styleValue.Render(settings.Config))
		return nil
	}

	fmt.Printf("%s %s\n", styleSuccess.Render("Created"), styleValue.Render(settings.Config))
	fmt.Printf("%s\n", styleHint.Render("Edit it with 'atrofac edit', then start the tray with 'atrofac tray start'."))
	return nil
}
