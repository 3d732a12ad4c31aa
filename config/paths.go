package config

import (
	"os"
	"path/filepath"
)

const appName = "bonsai"

// DefaultCachePath returns the progress file location
// $XDG_CACHE_HOME/bonsai, then $HOME/.cache/bonsai, then ./bonsai
func DefaultCachePath() string {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".cache", appName)
	}
	return appName
}

// DefaultConfigPath returns the config file location
// $XDG_CONFIG_HOME/bonsai/config.toml, then $HOME/.config/bonsai/config.toml
func DefaultConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml")
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", appName, "config.toml")
	}
	return ""
}
