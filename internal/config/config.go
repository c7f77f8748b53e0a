// Package config loads service configuration from an optional YAML file
// and PPS_-prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g.
// PPS_TASKAPI_BASE_URL overrides taskapi.base_url.
const EnvPrefix = "PPS"

// Config holds application configuration.
type Config struct {
	Spanner   SpannerConfig   `mapstructure:"spanner"`
	GRPC      ListenConfig    `mapstructure:"grpc"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	TaskAPI   TaskAPIConfig   `mapstructure:"taskapi"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Save      SaveConfig      `mapstructure:"save"`
	Sessions  SessionsConfig  `mapstructure:"sessions"`
	Retention RetentionConfig `mapstructure:"retention"`
	Log       LogConfig       `mapstructure:"log"`
}

type SpannerConfig struct {
	Database string `mapstructure:"database"`
	// HistoryEnabled turns snapshot and outbox recording on.
	HistoryEnabled bool `mapstructure:"history_enabled"`
}

type ListenConfig struct {
	Port string `mapstructure:"port"`
}

type HTTPConfig struct {
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type TaskAPIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type CacheConfig struct {
	Size int           `mapstructure:"size"`
	TTL  time.Duration `mapstructure:"ttl"`
}

type SaveConfig struct {
	// Strategy is "full" or "changed".
	Strategy string `mapstructure:"strategy"`
	Validate bool   `mapstructure:"validate"`
}

type SessionsConfig struct {
	IdleTimeout   time.Duration `mapstructure:"idle_timeout"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

type RetentionConfig struct {
	Snapshots time.Duration `mapstructure:"snapshots"`
	Outbox    time.Duration `mapstructure:"outbox"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func setDefaults(v *viper.Viper) {
	// Local development defaults target the Spanner emulator
	v.SetDefault("spanner.database", "projects/test-project/instances/dev-instance/databases/partner-profile-db")
	v.SetDefault("spanner.history_enabled", true)
	v.SetDefault("grpc.port", "9090")
	v.SetDefault("http.port", "8080")
	v.SetDefault("http.allowed_origins", []string{})
	v.SetDefault("taskapi.base_url", "http://localhost:8000")
	v.SetDefault("taskapi.token", "")
	v.SetDefault("taskapi.timeout", 30*time.Second)
	v.SetDefault("cache.size", 1024)
	v.SetDefault("cache.ttl", 5*time.Minute)
	v.SetDefault("save.strategy", "full")
	v.SetDefault("save.validate", true)
	v.SetDefault("sessions.idle_timeout", 30*time.Minute)
	v.SetDefault("sessions.sweep_interval", time.Minute)
	v.SetDefault("retention.snapshots", 90*24*time.Hour)
	v.SetDefault("retention.outbox", 7*24*time.Hour)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// Load reads configuration. path may be empty, in which case only
// defaults and environment variables apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.TaskAPI.BaseURL == "" {
		errs = append(errs, errors.New("taskapi.base_url is required"))
	}
	if c.Cache.Size <= 0 {
		errs = append(errs, fmt.Errorf("cache.size must be positive, got %d", c.Cache.Size))
	}
	if c.Sessions.SweepInterval <= 0 {
		errs = append(errs, fmt.Errorf("sessions.sweep_interval must be positive, got %s", c.Sessions.SweepInterval))
	}
	switch c.Save.Strategy {
	case "full", "changed":
	default:
		errs = append(errs, fmt.Errorf("save.strategy must be full or changed, got %q", c.Save.Strategy))
	}
	return errors.Join(errs...)
}
