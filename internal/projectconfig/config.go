// Package projectconfig provides the ProjectConfig struct and loader
// for .verdict.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default values for project configuration. These are the single source
// of truth: New() references them and no other code should duplicate
// them.
const (
	DefaultJudgementsDir = "judgements"
	DefaultAnalysisDir   = "analysis"
)

// PathsConfig holds the judgement input and analysis output directories.
type PathsConfig struct {
	Judgements string `yaml:"judgements,omitempty"`
	Analysis   string `yaml:"analysis,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .verdict.yaml.
type ProjectConfig struct {
	Paths PathsConfig `yaml:"paths,omitempty"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Paths: PathsConfig{
			Judgements: DefaultJudgementsDir,
			Analysis:   DefaultAnalysisDir,
		},
	}
}

// Load finds .verdict.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
// Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // no file found, use defaults
		}
		return nil, fmt.Errorf("loading .verdict.yaml: %w", err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing .verdict.yaml: %w", err)
	}

	mergeConfig(cfg, &fileCfg)
	return cfg, nil
}

// findConfigFile walks up from dir looking for .verdict.yaml (max 10
// levels). Returns os.ErrNotExist if no config file is found.
// Propagates real I/O errors (e.g. permission denied) instead of
// silently swallowing them.
func findConfigFile(dir string) ([]byte, error) {
	// Convert to absolute path so filepath.Dir(".") walks correctly.
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, ".verdict.yaml")
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	if src.Paths.Judgements != "" {
		dst.Paths.Judgements = src.Paths.Judgements
	}
	if src.Paths.Analysis != "" {
		dst.Paths.Analysis = src.Paths.Analysis
	}
}
