package main

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/render-runtime/errors"
	"github.com/wippyai/render-runtime/render"
)

// Config controls how a document is turned into a page.
type Config struct {
	Title      string `yaml:"title"`
	Stylesheet string `yaml:"stylesheet"`
	Out        string `yaml:"out"`
	Policy     string `yaml:"policy"`
	MaxDepth   int    `yaml:"max_depth"`
	RawHTML    bool   `yaml:"raw_html"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Title:    "Document",
		Policy:   render.PolicyUGC,
		MaxDepth: 64,
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
// Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.New(errors.PhaseConfig, errors.KindNotFound).
			Path(path).
			Detail("read config").
			Cause(err).
			Build()
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return cfg, errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "parse "+path)
	}

	return cfg, cfg.Validate()
}

// Validate checks settings that cannot be expressed in the YAML schema.
func (c Config) Validate() error {
	if c.MaxDepth <= 0 {
		return errors.InvalidInput(errors.PhaseConfig, "max_depth must be positive")
	}
	if _, err := render.SanitizePolicy(c.Policy); err != nil {
		return err
	}
	return nil
}
