// Package config loads projstats settings from an optional YAML file and
// PROJSTATS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/guidefari/projstats/internal/client"
	"github.com/guidefari/projstats/internal/core"
	"github.com/guidefari/projstats/internal/service"
)

const EnvPrefix = "PROJSTATS"

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type ScanConfig struct {
	SkipDirs          []string      `mapstructure:"skip_dirs"`
	Exclude           []string      `mapstructure:"exclude"`
	RespectGitignore  bool          `mapstructure:"respect_gitignore"`
	UnknownExtensions string        `mapstructure:"unknown_extensions"`
	Workers           int           `mapstructure:"workers"`
	Timeout           time.Duration `mapstructure:"timeout"`
}

type ClientConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Scan   ScanConfig   `mapstructure:"scan"`
	Client ClientConfig `mapstructure:"client"`
	Log    LogConfig    `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":5000")
	v.SetDefault("scan.skip_dirs", core.DefaultSkipDirs)
	v.SetDefault("scan.exclude", []string{})
	v.SetDefault("scan.respect_gitignore", false)
	v.SetDefault("scan.unknown_extensions", string(core.UnknownExclude))
	v.SetDefault("scan.workers", core.DefaultWorkerCount)
	v.SetDefault("scan.timeout", core.DefaultScanTimeout)
	v.SetDefault("client.endpoint", client.DefaultEndpoint)
	v.SetDefault("client.timeout", client.DefaultTimeout)
	v.SetDefault("log.level", "info")
}

// Load reads path when it is non-empty; otherwise only defaults and the
// environment apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch core.UnknownExtPolicy(c.Scan.UnknownExtensions) {
	case core.UnknownExclude, core.UnknownAsText:
	default:
		return fmt.Errorf("scan.unknown_extensions must be %q or %q, got %q",
			core.UnknownExclude, core.UnknownAsText, c.Scan.UnknownExtensions)
	}
	if c.Scan.Workers < 0 {
		return errors.New("scan.workers must not be negative")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ServiceOptions converts the scan section for service.New.
func (c *Config) ServiceOptions(logger *slog.Logger) service.Options {
	return service.Options{
		SkipDirs:         c.Scan.SkipDirs,
		Exclude:          c.Scan.Exclude,
		RespectGitignore: c.Scan.RespectGitignore,
		UnknownExt:       core.UnknownExtPolicy(c.Scan.UnknownExtensions),
		WorkerCount:      c.Scan.Workers,
		Timeout:          c.Scan.Timeout,
		Logger:           logger,
	}
}

func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
