package config

import (
	"fmt"
	"os"

	"survey-interview-be/pkg/segment"

	"gopkg.in/yaml.v3"
)

// LoadSurveyConfig reads and validates the rule configuration document. Any
// error here is fatal: the service must refuse to start rather than run with
// undefined segmentation behavior.
func LoadSurveyConfig(path string) (*segment.SurveyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read survey config %s: %w", path, err)
	}

	var cfg segment.SurveyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse survey config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid survey config %s: %w", path, err)
	}

	return &cfg, nil
}
