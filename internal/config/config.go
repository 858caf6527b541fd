// Package config loads runtime configuration from a YAML file with
// sensible defaults, so both binaries run with no config at all.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by the batch analyzer and the API server.
type Config struct {
	// DataDir is scanned for CSV exports on each analysis run.
	DataDir string `yaml:"data_dir"`

	// DBPath locates the sqlite database file.
	DBPath string `yaml:"db_path"`

	// ListenAddr is the API server bind address.
	ListenAddr string `yaml:"listen_addr"`

	// ReferenceYear overrides the year used for age calculation.
	// Zero means "current year".
	ReferenceYear int `yaml:"reference_year"`

	// TopPincodes caps the top-pincodes projection.
	TopPincodes int `yaml:"top_pincodes"`

	// SeedPensioners controls how many synthetic pensioner rows the API
	// server seeds when the table is empty. Zero disables seeding.
	SeedPensioners int `yaml:"seed_pensioners"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		DataDir:        "data",
		DBPath:         "dlc_analytics.db",
		ListenAddr:     ":8080",
		TopPincodes:    50,
		SeedPensioners: 1000,
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
