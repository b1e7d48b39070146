// Package config loads and saves bigintctl's settings as TOML, following
// the same default-then-override pattern the teacher project uses for its
// own emulator configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds every tunable of the calculator CLI, REPL, TUI and API
// server.
type Config struct {
	// Calculator settings
	Calculator struct {
		DefaultBase   string `toml:"default_base"` // bin, dec, hex
		ShowPlusSign  bool   `toml:"show_plus_sign"`
	} `toml:"calculator"`

	// REPL settings
	REPL struct {
		HistorySize  int    `toml:"history_size"`
		Prompt       string `toml:"prompt"`
		ShowRegisters bool  `toml:"show_registers"`
	} `toml:"repl"`

	// API server settings
	API struct {
		ListenAddr        string `toml:"listen_addr"`
		Port              int    `toml:"port"`
		MaxSessions       int    `toml:"max_sessions"`
		BroadcastBuffer   int    `toml:"broadcast_buffer"`
	} `toml:"api"`

	// Trace settings: whether intermediate long-division / multiplication
	// steps are streamed to subscribers.
	Trace struct {
		StreamDivisionSteps   bool `toml:"stream_division_steps"`
		StreamMultiplySteps   bool `toml:"stream_multiply_steps"`
	} `toml:"trace"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Calculator.DefaultBase = "dec"
	cfg.Calculator.ShowPlusSign = false

	cfg.REPL.HistorySize = 1000
	cfg.REPL.Prompt = "bigint> "
	cfg.REPL.ShowRegisters = true

	cfg.API.ListenAddr = "127.0.0.1"
	cfg.API.Port = 8080
	cfg.API.MaxSessions = 64
	cfg.API.BroadcastBuffer = 256

	cfg.Trace.StreamDivisionSteps = false
	cfg.Trace.StreamMultiplySteps = false

	return cfg
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "bigintctl")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "bigintctl")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file, falling back to
// defaults when the file does not exist.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
