package config

import (
	_ "embed"
)

//go:embed defaults/letra.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Run: RunConfig{
			Words:     10,
			TimeLimit: 60,
			Preset:    string(PresetNormal),
		},
		Storage: StorageConfig{
			Path: "~/.letra/letra.db",
		},
		Log: LogConfig{
			Level: "warn",
		},
		Serve: ServeConfig{
			Address:     ":23235",
			HostKey:     "~/.letra/ssh_host_ed25519",
			IdleTimeout: 30,
		},
	}
}
