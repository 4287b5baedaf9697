package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
	Routing  RoutingConfig
	Network  NetworkConfig
	Snackbar SnackbarConfig
	Log      LogConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AppTitle string `mapstructure:"app_title"`
	// WideQuery is the media query selecting the wide layout, in terminal columns.
	WideQuery string `mapstructure:"wide_query"`
	MaxWidth  int    `mapstructure:"max_width"`
}

// RoutingConfig controls how locations map onto pages.
type RoutingConfig struct {
	DefaultPage      string `mapstructure:"default_page"`
	NotFoundFallback bool   `mapstructure:"not_found_fallback"`
}

// NetworkConfig controls the connectivity probe.
type NetworkConfig struct {
	ProbeAddr     string        `mapstructure:"probe_addr"`
	ProbeInterval time.Duration `mapstructure:"probe_interval"`
	ProbeTimeout  time.Duration `mapstructure:"probe_timeout"`
}

// SnackbarConfig controls the connectivity snack-bar.
type SnackbarConfig struct {
	Duration time.Duration
}

// LogConfig controls the debug log. The terminal belongs to the UI, so logs
// only go to File when set.
type LogConfig struct {
	File  string
	Level string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "starterkit", "starterkit.db"))
	v.SetDefault("ui.app_title", "My App")
	v.SetDefault("ui.wide_query", "(min-width: 60px)")
	v.SetDefault("ui.max_width", 80)
	v.SetDefault("routing.default_page", "static-content")
	v.SetDefault("routing.not_found_fallback", false)
	v.SetDefault("network.probe_addr", "1.1.1.1:53")
	v.SetDefault("network.probe_interval", 5*time.Second)
	v.SetDefault("network.probe_timeout", 2*time.Second)
	v.SetDefault("snackbar.duration", 3*time.Second)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

// Path returns the config file location: STARTERKIT_CONFIG when set,
// otherwise ~/.config/starterkit/config.toml.
func Path() string {
	if p := os.Getenv("STARTERKIT_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "starterkit", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix STARTERKIT_.
// An explicit path takes precedence over STARTERKIT_CONFIG.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv("STARTERKIT_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "starterkit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("STARTERKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit file that is missing is fine too; defaults apply
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to path (Path() when empty), creating the
// config directory if needed.
func Save(cfg Config, path string) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.app_title", cfg.UI.AppTitle)
	v.Set("ui.wide_query", cfg.UI.WideQuery)
	v.Set("ui.max_width", cfg.UI.MaxWidth)
	v.Set("routing.default_page", cfg.Routing.DefaultPage)
	v.Set("routing.not_found_fallback", cfg.Routing.NotFoundFallback)
	v.Set("network.probe_addr", cfg.Network.ProbeAddr)
	v.Set("network.probe_interval", cfg.Network.ProbeInterval.String())
	v.Set("network.probe_timeout", cfg.Network.ProbeTimeout.String())
	v.Set("snackbar.duration", cfg.Snackbar.Duration.String())
	v.Set("log.file", cfg.Log.File)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
