package generator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/plangen/internal/filter"
	"github.com/wesleyorama2/plangen/internal/model"
)

// Config is the generator configuration: target-engine settings, the
// default filter selection, and the headers the headerdefaults filter
// injects.
type Config struct {
	Engine         EngineConfig    `yaml:"engine" json:"engine"`
	Filters        string          `yaml:"filters,omitempty" json:"filters,omitempty"`
	DefaultHeaders []filter.Header `yaml:"defaultHeaders,omitempty" json:"defaultHeaders,omitempty"`
}

// EngineConfig carries target-engine settings stamped onto the plan
// root.
type EngineConfig struct {
	Protocol string `yaml:"protocol,omitempty" json:"protocol,omitempty"`
	Encoding string `yaml:"encoding,omitempty" json:"encoding,omitempty"`
}

// DefaultConfig returns the configuration used when no config file is
// given.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{Protocol: "http", Encoding: "UTF-8"},
	}
}

// TestPlanDefaults carries the plan-level identity and properties of
// the generated document.
type TestPlanDefaults struct {
	Name       string           `yaml:"name,omitempty" json:"name,omitempty"`
	Comment    string           `yaml:"comment,omitempty" json:"comment,omitempty"`
	Properties []model.Property `yaml:"properties,omitempty" json:"properties,omitempty"`
}

// LoadConfig loads a generator configuration file (YAML or JSON by
// extension). Missing engine settings fall back to the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := loadInto(path, cfg); err != nil {
		return nil, err
	}
	if cfg.Engine.Protocol == "" {
		cfg.Engine.Protocol = "http"
	}
	if cfg.Engine.Encoding == "" {
		cfg.Engine.Encoding = "UTF-8"
	}
	return cfg, nil
}

// LoadTestPlanDefaults loads a test-plan defaults file (YAML or JSON
// by extension).
func LoadTestPlanDefaults(path string) (*TestPlanDefaults, error) {
	defaults := &TestPlanDefaults{}
	if err := loadInto(path, defaults); err != nil {
		return nil, err
	}
	return defaults, nil
}

func loadInto(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ResourceError{Path: path, Err: err}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, out); err != nil {
			return &ResourceError{Path: path, Err: fmt.Errorf("failed to parse JSON: %w", err)}
		}
	default:
		if err := yaml.Unmarshal(data, out); err != nil {
			return &ResourceError{Path: path, Err: fmt.Errorf("failed to parse YAML: %w", err)}
		}
	}
	return nil
}
