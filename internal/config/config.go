// Package config loads tabdeck settings from a TOML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. TABDECK_DEFAULT_TAB.
const EnvPrefix = "TABDECK"

// Config holds application configuration.
type Config struct {
	DefaultTab string      `mapstructure:"default_tab"`
	Tabs       []TabConfig `mapstructure:"tabs"`
	Log        LogConfig   `mapstructure:"log"`
	UI         UIConfig    `mapstructure:"ui"`
}

// TabConfig describes one tab and its panel.
type TabConfig struct {
	ID      string `mapstructure:"id"`
	Label   string `mapstructure:"label"`
	Content string `mapstructure:"content"`
}

// LogConfig holds logging settings. An empty File discards interactive logs.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title string `mapstructure:"title"`
	Mouse bool   `mapstructure:"mouse"`
}

// DefaultTabs returns the three demo tabs used when no tabs are configured.
func DefaultTabs() []TabConfig {
	tabs := make([]TabConfig, 0, 3)
	for i := 1; i <= 3; i++ {
		tabs = append(tabs, TabConfig{
			ID:      fmt.Sprintf("tab%d", i),
			Label:   fmt.Sprintf("Tab %d", i),
			Content: fmt.Sprintf("Content for Tab %d", i),
		})
	}
	return tabs
}

// Load reads configuration from path, or when empty from $TABDECK_CONFIG or
// $HOME/.config/tabdeck/config.toml. A missing default file is not an error;
// a missing explicit file is. Env var overrides use prefix TABDECK_.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("default_tab", "tab1")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.title", "tabdeck")
	v.SetDefault("ui.mouse", true)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return Config{}, fmt.Errorf("config file: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "tabdeck"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if len(c.Tabs) == 0 {
		c.Tabs = DefaultTabs()
	}
	return c, nil
}
