package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config is the runtime configuration for the API server.
type Config struct {
	Port          string
	Mode          string // gin mode: debug, release or test
	LogLevel      string
	PresetsFile   string // optional; empty means built-in presets
	TemplatesGlob string
	StaticDir     string
	RateLimit     RateLimitConfig
	CORS          CORSConfig
}

type RateLimitConfig struct {
	// RPS of 0 disables rate limiting.
	RPS   float64
	Burst int
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads config.yml from dir when present and falls back to
// defaults otherwise. A missing config file is not an error.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath(dir)

	v.SetDefault("port", "8080")
	v.SetDefault("mode", "release")
	v.SetDefault("log_level", "info")
	v.SetDefault("presets_file", "")
	v.SetDefault("templates_glob", "web/templates/*.html")
	v.SetDefault("static_dir", "web/static")
	v.SetDefault("rate_limit.rps", 10.0)
	v.SetDefault("rate_limit.burst", 20)
	v.SetDefault("cors.allowed_origins", []string{"*"})

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	c := &Config{
		Port:          v.GetString("port"),
		Mode:          v.GetString("mode"),
		LogLevel:      v.GetString("log_level"),
		PresetsFile:   v.GetString("presets_file"),
		TemplatesGlob: v.GetString("templates_glob"),
		StaticDir:     v.GetString("static_dir"),
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("rate_limit.rps"),
			Burst: v.GetInt("rate_limit.burst"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetStringSlice("cors.allowed_origins"),
		},
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Port == "" {
		return errors.New("port is required")
	}
	if c.RateLimit.RPS < 0 {
		return errors.New("rate_limit.rps must not be negative")
	}
	if c.RateLimit.Burst < 0 {
		return errors.New("rate_limit.burst must not be negative")
	}
	return nil
}
