package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"seqsize/size"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	// DisplayConfig describes screen sizes are resolved for.
	DisplayConfig struct {
		Density       float64 `yaml:"density" validate:"gt=0"`
		ScaledDensity float64 `yaml:"scaled_density" validate:"gt=0"`
		ParagraphUnit float64 `yaml:"paragraph_unit" validate:"gte=0"`
		Container     int     `yaml:"container" validate:"gte=0"`
	}

	ResourcesConfig struct {
		Format  ResourceFormat `yaml:"format" validate:"gte=0"`
		Path    string         `yaml:"path" validate:"omitempty,filepath"`
		Package string         `yaml:"package"`
	}

	OutputConfig struct {
		Template string `yaml:"template" validate:"required"`
	}

	Config struct {
		Version   int             `yaml:"version" validate:"eq=1"`
		Display   DisplayConfig   `yaml:"display"`
		Resources ResourcesConfig `yaml:"resources"`
		Output    OutputConfig    `yaml:"output"`
		Logging   LoggingConfig   `yaml:"logging"`
		Reporting ReporterConfig  `yaml:"reporting"`
	}
)

var _ size.Metrics = DisplayConfig{}

// ScreenDensity implements size.Metrics.
func (d DisplayConfig) ScreenDensity() float64 { return d.Density }

// ScreenScaledDensity implements size.Metrics.
func (d DisplayConfig) ScreenScaledDensity() float64 { return d.ScaledDensity }

// ParagraphUnitSize implements size.Metrics.
func (d DisplayConfig) ParagraphUnitSize() float64 { return d.ParagraphUnit }

const (
	// NOTE: must match yaml field name above, templates are expanded when
	// measurements are printed, not when configuration is loaded
	OutputTemplateFieldName TemplateFieldName = "template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputTemplateFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads configuration from the file at path on top of the
// expanded embedded template, so anything not mentioned in the file keeps its
// default value. Result is sanitized and validated.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
