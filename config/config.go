// Package config loads thisdemo settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names.
const (
	EnvScene     = "THISBIND_SCENE"
	EnvVerbosity = "THISBIND_VERBOSITY"
	EnvLogFile   = "THISBIND_LOG_FILE"
)

// Verbosity bounds accepted by commonlog.Configure (-4 disables logging, 2 is debug).
const (
	MinVerbosity = -4
	MaxVerbosity = 2
)

type Config struct {
	// ScenePath is a YAML or TOML scene file. Empty means the embedded default.
	ScenePath string
	Verbosity int
	// LogFile is where logs go. Empty means stderr.
	LogFile string
}

// LoadFromEnv reads Config from the environment, applying defaults.
func LoadFromEnv() (Config, error) {
	verbosity, err := getenvInt(EnvVerbosity, 0)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		ScenePath: os.Getenv(EnvScene),
		Verbosity: verbosity,
		LogFile:   os.Getenv(EnvLogFile),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Verbosity < MinVerbosity || c.Verbosity > MaxVerbosity {
		return fmt.Errorf("%s must be in [%d, %d], got %d", EnvVerbosity, MinVerbosity, MaxVerbosity, c.Verbosity)
	}
	return nil
}

// LogPath returns LogFile as the optional path commonlog.Configure expects.
func (c Config) LogPath() *string {
	if c.LogFile == "" {
		return nil
	}
	p := c.LogFile
	return &p
}

func getenvInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}
