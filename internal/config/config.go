package config

import (
	"fmt"
	"os"

	env "github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level bahikhata.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Fiscal   FiscalConfig   `yaml:"fiscal"`
	Git      GitConfig      `yaml:"git"`
}

// BusinessConfig identifies the business entity. StateCode is the GST
// state code used to decide whether a supply is inter-state.
type BusinessConfig struct {
	Name      string `yaml:"name"`
	GSTIN     string `yaml:"gstin,omitempty"`
	StateCode string `yaml:"state_code"`
}

// FiscalConfig defines the fiscal year boundaries.
type FiscalConfig struct {
	YearStart string `yaml:"year_start"` // "MM-DD" format, e.g. "04-01"
}

// GitConfig controls git integration for the books directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Env holds environment overrides applied before any file is read.
type Env struct {
	BooksDir string `env:"BAHIKHATA_DIR"`
	LogLevel string `env:"BAHIKHATA_LOG_LEVEL" envDefault:"info"`
}

// LoadEnv parses the process environment.
func LoadEnv() (Env, error) {
	e, err := env.ParseAs[Env]()
	if err != nil {
		return Env{}, fmt.Errorf("parsing environment: %w", err)
	}
	return e, nil
}

// Load reads a bahikhata.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new books
// directory. The Indian fiscal year starts April 1.
func Default(businessName, stateCode string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name:      businessName,
			StateCode: stateCode,
		},
		Fiscal: FiscalConfig{
			YearStart: "04-01",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Bahikhata",
			AuthorEmail: "books@bahikhata.dev",
		},
	}
}
