package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ConfigEnv overrides the config file location.
const ConfigEnv = "CALLASSIST_CONFIG"

// Config holds application configuration.
type Config struct {
	UI    UIConfig
	Log   LogConfig
	Trace TraceConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	SidebarWidth int  `mapstructure:"sidebar_width"`
	ShowSidebar  bool `mapstructure:"show_sidebar"`
}

// LogConfig controls the debug log. An empty File discards log output.
type LogConfig struct {
	File    string
	Verbose bool
}

// TraceConfig holds OTLP export settings. An empty Endpoint disables tracing.
type TraceConfig struct {
	Endpoint    string
	ServiceName string `mapstructure:"service_name"`
}

// Load reads configuration from file and env. Env var overrides use prefix CALLASSIST_.
// path, if non-empty, takes precedence over CALLASSIST_CONFIG and the default location.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.sidebar_width", 28)
	v.SetDefault("ui.show_sidebar", true)
	v.SetDefault("log.file", "")
	v.SetDefault("log.verbose", false)
	v.SetDefault("trace.endpoint", os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
	v.SetDefault("trace.service_name", "callassist")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "callassist"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CALLASSIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit path must exist; the default location is optional.
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.SidebarWidth < 10 {
		c.UI.SidebarWidth = 10
	}
	return c, nil
}
