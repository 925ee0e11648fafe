package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds demo application configuration.
type Config struct {
	Data Data
	UI   UI
}

// Data holds dataset source settings.
type Data struct {
	Path string
}

// UI holds presentation settings.
type UI struct {
	Scheme      string
	SizeClass   string
	ValueFormat string
	DropShadow  bool
}

// Load reads configuration from file and env. Env var overrides use prefix
// CHARTVIEW_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("data.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "chartview", "data.toml"))
	v.SetDefault("ui.scheme", "dark")
	v.SetDefault("ui.size_class", "large")
	v.SetDefault("ui.value_format", "%.1f")
	v.SetDefault("ui.drop_shadow", true)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CHARTVIEW_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "chartview"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CHARTVIEW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
