package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI  UIConfig  `mapstructure:"ui"`
	Log LogConfig `mapstructure:"log"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DarkMode       bool   `mapstructure:"dark_mode"`
	Locale         string `mapstructure:"locale"`
	BannerTemplate string `mapstructure:"banner_template"`
}

// LogConfig holds logger settings. An empty File means the TUI logs nowhere
// and the other commands log to stderr.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// Load reads configuration from file and env. Env var overrides use prefix TADA_.
// path, when set, wins over TADA_CONFIG and the default location.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.dark_mode", false)
	v.SetDefault("ui.locale", "en-US")
	v.SetDefault("ui.banner_template", `Added "%s"`)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")

	explicit := path
	if explicit == "" {
		explicit = os.Getenv("TADA_CONFIG")
	}
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "tada"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TADA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// The default location is optional; a file the user named is not.
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the rest of the program cannot use.
func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format: want text or json, got %q", c.Log.Format)
	}
	return nil
}
