// Package config provides YAML/TOML configuration loading and timer presets
// for letra.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the full application configuration.
type Config struct {
	Run     RunConfig     `yaml:"run" toml:"run"`
	Catalog CatalogConfig `yaml:"catalog" toml:"catalog"`
	Storage StorageConfig `yaml:"storage" toml:"storage"`
	Log     LogConfig     `yaml:"log" toml:"log"`
	Serve   ServeConfig   `yaml:"serve" toml:"serve"`
}

// RunConfig defines Practice and Relax run parameters. Daily runs ignore it.
type RunConfig struct {
	Words     int    `yaml:"words" toml:"words"`
	TimeLimit int    `yaml:"time_limit" toml:"time_limit"` // seconds, used by the custom preset
	Preset    string `yaml:"preset" toml:"preset"`
}

// CatalogConfig points at an alternative word list. Empty uses the built-in
// list.
type CatalogConfig struct {
	Path string `yaml:"path" toml:"path"`
}

// StorageConfig locates the SQLite database.
type StorageConfig struct {
	Path string `yaml:"path" toml:"path"`
}

// LogConfig sets the log level: debug, info, warn or error.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
}

// ServeConfig configures the SSH server.
type ServeConfig struct {
	Address     string `yaml:"address" toml:"address"`
	HostKey     string `yaml:"host_key" toml:"host_key"`
	IdleTimeout int    `yaml:"idle_timeout" toml:"idle_timeout"` // minutes
}

// TimerPreset represents a named practice timer length.
type TimerPreset string

const (
	PresetEasy   TimerPreset = "easy"
	PresetNormal TimerPreset = "normal"
	PresetHard   TimerPreset = "hard"
	PresetCustom TimerPreset = "custom"
)

// Presets lists the accepted preset names.
var Presets = []TimerPreset{PresetEasy, PresetNormal, PresetHard, PresetCustom}

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (TimerPreset, error) {
	if s == "" {
		return PresetNormal, nil
	}
	p := TimerPreset(strings.ToLower(s))
	switch p {
	case PresetEasy, PresetNormal, PresetHard, PresetCustom:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown preset %q (want easy, normal, hard or custom)", s)
	}
}

// SecondsForPreset returns the countdown for preset. The custom preset
// returns custom.
func SecondsForPreset(preset TimerPreset, custom int) int {
	switch preset {
	case PresetEasy:
		return 90
	case PresetHard:
		return 30
	case PresetCustom:
		return custom
	default:
		return 60
	}
}

// TimeLimit resolves the practice countdown in seconds from the preset and
// time_limit keys.
func (c Config) TimeLimit() int {
	preset, err := ParsePreset(c.Run.Preset)
	if err != nil {
		preset = PresetNormal
	}
	if secs := SecondsForPreset(preset, c.Run.TimeLimit); secs > 0 {
		return secs
	}
	return 60
}

// IdleTimeout returns the SSH idle timeout as a duration.
func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.Serve.IdleTimeout) * time.Minute
}

// normalize fills zero values with defaults.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Run.Words <= 0 {
		c.Run.Words = def.Run.Words
	}
	if c.Run.TimeLimit <= 0 {
		c.Run.TimeLimit = def.Run.TimeLimit
	}
	if c.Run.Preset == "" {
		c.Run.Preset = def.Run.Preset
	}
	if c.Storage.Path == "" {
		c.Storage.Path = def.Storage.Path
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Serve.Address == "" {
		c.Serve.Address = def.Serve.Address
	}
	if c.Serve.HostKey == "" {
		c.Serve.HostKey = def.Serve.HostKey
	}
	if c.Serve.IdleTimeout <= 0 {
		c.Serve.IdleTimeout = def.Serve.IdleTimeout
	}
}
