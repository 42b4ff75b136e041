package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables that override values from the YAML file.
const (
	EnvLogLevel             = "LOG_LEVEL"
	EnvLogFormat            = "LOG_FORMAT"
	EnvContributorThreshold = "CATALOG_CONTRIBUTOR_THRESHOLD"
	EnvTracerName           = "CATALOG_TRACER_NAME"
)

// CatalogConfig holds the settings a catalog is built from.
type CatalogConfig struct {
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Catalog struct {
		// ContributorThreshold is the article count an author must exceed
		// in a magazine to be listed as a contributing author.
		ContributorThreshold int `yaml:"contributor_threshold"`
	} `yaml:"catalog"`
	Tracing struct {
		TracerName string `yaml:"tracer_name"`
	} `yaml:"tracing"`
}

// Default returns the configuration used when no file is given.
func Default() *CatalogConfig {
	cfg := &CatalogConfig{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "json"
	cfg.Catalog.ContributorThreshold = 2
	cfg.Tracing.TracerName = "magazine-catalog"
	return cfg
}

// Load builds a configuration from defaults, the YAML file at path (skipped
// when path is empty) and environment overrides, then validates it.
// Keys missing from the file keep their default values.
func Load(path string) (*CatalogConfig, error) {
	cfg := Default()

	if path != "" {
		// #nosec G304 -- path is supplied by the embedding program
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *CatalogConfig) applyEnv() {
	c.Log.Level = GetEnvString(EnvLogLevel, c.Log.Level)
	c.Log.Format = GetEnvString(EnvLogFormat, c.Log.Format)
	c.Catalog.ContributorThreshold = GetEnvInt(EnvContributorThreshold, c.Catalog.ContributorThreshold)
	c.Tracing.TracerName = GetEnvString(EnvTracerName, c.Tracing.TracerName)
}

// Validate checks that every setting is usable.
func (c *CatalogConfig) Validate() error {
	var errs []error

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log level %q is not supported", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log format %q is not supported", c.Log.Format))
	}
	if c.Catalog.ContributorThreshold < 0 {
		errs = append(errs, errors.New("contributor_threshold must not be negative"))
	}
	if strings.TrimSpace(c.Tracing.TracerName) == "" {
		errs = append(errs, errors.New("tracer_name is required"))
	}

	return errors.Join(errs...)
}
