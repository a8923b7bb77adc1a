// Package project reads the optional ginger.yaml project file that names
// the catalog and code sources for a run.
package project

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gingerlang/ginger/internal/config"
)

// Config represents the top-level ginger.yaml configuration.
type Config struct {
	// Catalog is the catalog source path. Defaults to Catalog.ginger.
	Catalog string `yaml:"catalog,omitempty"`

	// Code is the code source path. Defaults to Code.ginger.
	Code string `yaml:"code,omitempty"`

	// Report configures run-report presentation.
	Report ReportConfig `yaml:"report,omitempty"`
}

// ReportConfig controls how the driver prints the run report.
type ReportConfig struct {
	// Color is one of auto, always, never. Defaults to auto
	// (color when stdout is a terminal).
	Color string `yaml:"color,omitempty"`
}

// Default returns the configuration used when no project file exists.
func Default() *Config {
	return &Config{
		Catalog: config.DefaultCatalogFile,
		Code:    config.DefaultCodeFile,
		Report:  ReportConfig{Color: "auto"},
	}
}

// Load reads and validates a project file, filling in defaults for
// omitted fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if cfg.Catalog == "" {
		cfg.Catalog = config.DefaultCatalogFile
	}
	if cfg.Code == "" {
		cfg.Code = config.DefaultCodeFile
	}
	if cfg.Report.Color == "" {
		cfg.Report.Color = "auto"
	}

	switch cfg.Report.Color {
	case "auto", "always", "never":
	default:
		return nil, fmt.Errorf("%s: report.color must be auto, always or never, got %q",
			path, cfg.Report.Color)
	}

	return cfg, nil
}
