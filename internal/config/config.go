package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// DataFile is the default session file rendered when no path is given
	// on the command line.
	DataFile string `mapstructure:"data_file"`
	// Timezone overrides the ambient local timezone for day bucketing,
	// e.g. "Asia/Kolkata". Empty means time.Local.
	Timezone string `mapstructure:"timezone"`
	// Colors maps session types to hex colors; the "Default" key replaces
	// the fallback color for unknown types.
	Colors map[string]string `mapstructure:"colors"`
}

func Default() Config {
	return Config{
		DataFile: "tasks.yaml",
		Timezone: "",
		Colors:   map[string]string{},
	}
}

func xdgConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "recap")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Load() (Config, error) {
	cfg := Default()

	path, err := xdgConfigPath()
	if err != nil {
		return cfg, err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)

	// defaults
	v.SetDefault("data_file", cfg.DataFile)
	v.SetDefault("timezone", cfg.Timezone)
	v.SetDefault("colors", cfg.Colors)

	_ = v.ReadInConfig() // ok if missing
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}
	return cfg, nil
}

func (c Config) Location() *time.Location {
	if tz := strings.TrimSpace(c.Timezone); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}
