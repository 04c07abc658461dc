// Package daemon holds the fitgrid daemon configuration.
// Config lives at ~/.fitgrid/config.toml; every field has a default so a
// missing or partial file always yields a runnable configuration.
package daemon

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config is the full daemon configuration.
type Config struct {
	API     APIConfig     `toml:"api"`
	Storage StorageConfig `toml:"storage"`
	Metrics MetricsConfig `toml:"metrics"`
	Tracker TrackerConfig `toml:"tracker"`
}

// APIConfig configures the HTTP listener.
type APIConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StorageConfig configures the SQLite store.
type StorageConfig struct {
	// Path to the database file. Empty means <home>/fitgrid.db.
	Path string `toml:"path"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `toml:"enabled"`
}

// TrackerConfig configures tracker behavior.
type TrackerConfig struct {
	SeedDefaults bool `toml:"seed_defaults"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		API:     APIConfig{Host: "127.0.0.1", Port: 8642},
		Metrics: MetricsConfig{Enabled: true},
		Tracker: TrackerConfig{SeedDefaults: true},
	}
}

// Addr returns the host:port the API listens on.
func (c Config) Addr() string {
	return net.JoinHostPort(c.API.Host, strconv.Itoa(c.API.Port))
}

// Home returns the fitgrid home directory, honoring FITGRID_HOME.
func Home() (string, error) {
	if h := os.Getenv("FITGRID_HOME"); h != "" {
		return h, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".fitgrid"), nil
}

// DataPath returns the SQLite file path, creating the parent directory.
func (c Config) DataPath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	home, err := Home()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(home, 0700); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	return filepath.Join(home, "fitgrid.db"), nil
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist. A file that exists but fails to parse is an error;
// silently ignoring a broken config hides the user's intent.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// ConfigPath returns the default config file location.
func ConfigPath() (string, error) {
	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "config.toml"), nil
}
