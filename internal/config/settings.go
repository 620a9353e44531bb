package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/atrofac/atrofac/internal/models"
)

// EnvPrefix is the prefix of environment variable overrides (ATROFAC_CONFIG, ...).
const EnvPrefix = "ATROFAC"

// LoadSettings reads process settings. Precedence, highest first: values
// already set on v (flags bound by the caller), ATROFAC_* environment
// variables, settings.yaml in the application directory, defaults.
// A nil v starts from a fresh viper instance.
func LoadSettings(v *viper.Viper) (*models.Settings, error) {
	if v == nil {
		v = viper.New()
	}

	defaultConfig, err := DefaultConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config dir: %w", err)
	}

	v.SetDefault("config", defaultConfig)
	v.SetDefault("log_file", "")
	v.SetDefault("editor", "")
	v.SetDefault("watch_config", false)
	v.SetDefault("dry_run", false)
	v.SetDefault("tooltip", models.DefaultTooltip)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("yaml")
	v.SetConfigFile(filepath.Join(filepath.Dir(v.GetString("config")), SettingsFileName))
	if err := v.ReadInConfig(); err != nil && FileExists(v.ConfigFileUsed()) {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	var s models.Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if s.Config == "" {
		s.Config = defaultConfig
	}
	return &s, nil
}
