// Package asmconfig holds the optional TOML configuration shared by the
// assemble and emulate CLIs.
package asmconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config is the toolchain configuration. The zero value is not meaningful;
// use DefaultConfig or Load.
type Config struct {
	Execution struct {
		MaxCycles  uint64 `toml:"max_cycles"`
		Strict     bool   `toml:"strict"`
		DefaultOut string `toml:"default_output"`
	} `toml:"execution"`

	Display struct {
		NumberFormat string `toml:"number_format"` // "hex" or "dec"
	} `toml:"display"`
}

// DefaultConfig returns a Config with the toolchain's built-in defaults.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Execution.MaxCycles = 1_000_000
	cfg.Execution.Strict = true
	cfg.Execution.DefaultOut = "a.out"
	cfg.Display.NumberFormat = "hex"
	return cfg
}

// GetConfigPath returns the platform-specific default config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "a64toolchain")
	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "a64toolchain.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "a64toolchain")
	default:
		return "a64toolchain.toml"
	}

	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return "a64toolchain.toml"
	}
	return filepath.Join(configDir, "config.toml")
}

// Load reads configuration from the default path, falling back to
// DefaultConfig if no file exists there.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom reads configuration from path, falling back to DefaultConfig if
// path does not exist. A malformed existing file is an error.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("asmconfig: parsing %s: %w", path, err)
	}
	return cfg, nil
}
