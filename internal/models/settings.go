package models

// Settings represents process settings for the tray and CLI.
// They come from settings.yaml next to the configuration file and from
// ATROFAC_* environment variables.
type Settings struct {
	Config      string `mapstructure:"config"`       // path of atrofac.yaml
	LogFile     string `mapstructure:"log_file"`     // empty = stderr
	Editor      string `mapstructure:"editor"`       // empty = $VISUAL, $EDITOR, platform opener
	WatchConfig bool   `mapstructure:"watch_config"` // reload when the config file changes
	DryRun      bool   `mapstructure:"dry_run"`      // log hardware writes instead of performing them
	Tooltip     string `mapstructure:"tooltip"`
}

// DefaultTooltip is the tray tooltip prefix.
const DefaultTooltip = "Control fan curve and power profile for Asus Zephyrus ROG G14."
