// Package config holds the engine's tunable runtime settings: placement
// search grid spacing, compliance tolerance, and an optional path to
// override the built-in regulatory axle-limit tables. Mirrors the
// teacher's AppConfig pattern (internal/model/appconfig.go): a plain
// struct with defaults, loaded from and saved to YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EngineConfig is the engine's persisted configuration.
type EngineConfig struct {
	// GridStep is a floor-grid spacing for candidate positions, in meters.
	// The engine does not read it: every UnitPacker starts with
	// packer.DefaultGridStep.
	GridStep float64 `yaml:"grid_step"`

	// ComplianceTolerancePercent is a per-axle limit tolerance, in percent.
	// The engine does not read it, and axle.CheckCompliance applies no
	// tolerance (PackRequest.TolerancePercent is validated but not applied
	// either).
	ComplianceTolerancePercent float64 `yaml:"compliance_tolerance_percent"`

	// RegulationsOverridePath names a YAML file of axle-limit overrides.
	// The engine does not load it; internal/axle always uses its built-in
	// limits.
	RegulationsOverridePath string `yaml:"regulations_override_path,omitempty"`
}

// Default returns the engine's built-in configuration.
func Default() EngineConfig {
	return EngineConfig{
		GridStep:                   0.1,
		ComplianceTolerancePercent: 0,
	}
}

// Load reads an EngineConfig from a YAML file, falling back to Default()
// for any field the file omits.
func Load(path string) (EngineConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return EngineConfig{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EngineConfig{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating or truncating the file.
func Save(path string, cfg EngineConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
