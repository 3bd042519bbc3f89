// Package config provides the configuration loader.
// Config is built from factory defaults overlaid with PRIMITIVE_* env vars.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/f9-o/primitive/pkg/errs"
)

// EnvPrefix is the prefix for all environment overrides: PRIMITIVE_LOG_LEVEL → log.level.
const EnvPrefix = "PRIMITIVE"

// Defaults contains factory-default values applied before the environment is read.
// The default level keeps stderr quiet on a normal run.
var Defaults = map[string]any{
	"log.level":  "warn",
	"log.format": "text",
	"debug":      false,
}

// Config is the fully-decoded runtime configuration.
type Config struct {
	Log   LogConfig `mapstructure:"log"`
	Debug bool      `mapstructure:"debug"`
}

// LogConfig controls logging behaviour.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug | info | warn | error
	Format string `mapstructure:"format"` // json | text
}

// Load builds a Config from defaults and the environment.
func Load() (*Config, error) {
	v := viper.New()

	for k, val := range Defaults {
		v.SetDefault(k, val)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errs.Wrap(err, errs.ErrConfig, "config.unmarshal")
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errs.Newf(errs.ErrConfig, "config.validate", "unknown log level %q", cfg.Log.Level).
			WithAdvice("set " + EnvPrefix + "_LOG_LEVEL to one of debug, info, warn, error")
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		return errs.Newf(errs.ErrConfig, "config.validate", "unknown log format %q", cfg.Log.Format).
			WithAdvice("set " + EnvPrefix + "_LOG_FORMAT to text or json")
	}
	return nil
}
