package asset

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"

	"github.com/soyops/soyctl/log"
)

// IOFile is the definition file expected within an asset directory.
const IOFile = "io.yaml"

// DefaultStrategy is assigned to inputs and outputs that do not name
// one.
const DefaultStrategy = "spark"

// Input describes one input of an asset.
type Input struct {
	Name     string         `yaml:"name"`
	Strategy string         `yaml:"strategy"`
	API      string         `yaml:"api"`
	Args     map[string]any `yaml:"args"`
	Columns  []string       `yaml:"columns"`
}

// Output describes one output of an asset.
type Output struct {
	Name     string         `yaml:"name"`
	Strategy string         `yaml:"strategy"`
	API      string         `yaml:"api"`
	Args     map[string]any `yaml:"args"`
	Columns  []string       `yaml:"columns"`
}

// Config is a rendered asset definition.
type Config struct {
	Name    string         `yaml:"name"`
	Inputs  []Input        `yaml:"inputs"`
	Outputs []Output       `yaml:"outputs"`
	Context map[string]any `yaml:"context"`
}

// FromDir loads the asset definition from dir/io.yaml.
func FromDir(dir string, vars map[string]any) (*Config, error) {
	return FromFile(filepath.Join(dir, IOFile), vars)
}

// FromFile loads an asset definition: read the YAML file, render its
// {{ expression }} tokens against vars, and decode strictly (unknown
// keys are rejected).
func FromFile(path string, vars map[string]any) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Errorf("the file %s does not exist", path)
		}

		return nil, errors.Wrapf(err, "reading %s", path)
	}

	rendered, err := Render(string(data), vars)
	if err != nil {
		return nil, errors.Wrapf(err, "rendering %s", path)
	}

	var cfg Config
	if err := yaml.UnmarshalWithOptions([]byte(rendered), &cfg, yaml.Strict()); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, errors.Wrapf(err, "validating %s", path)
	}

	_ = log.GetLogger("soyctl.asset").Debug(
		"asset definition {name} loaded",
		log.F("name", cfg.Name),
		log.F("inputs", len(cfg.Inputs)),
		log.F("outputs", len(cfg.Outputs)),
	)

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	for i := range c.Inputs {
		if c.Inputs[i].Strategy == "" {
			c.Inputs[i].Strategy = DefaultStrategy
		}
	}

	for i := range c.Outputs {
		if c.Outputs[i].Strategy == "" {
			c.Outputs[i].Strategy = DefaultStrategy
		}
	}
}

func (c *Config) validate() error {
	if c.Name == "" {
		return errors.New("asset name is required")
	}

	seen := make(map[string]bool, len(c.Inputs)+len(c.Outputs))

	for _, in := range c.Inputs {
		if in.Name == "" {
			return errors.New("input name is required")
		}

		if seen["in/"+in.Name] {
			return errors.Errorf("duplicate input %q", in.Name)
		}

		seen["in/"+in.Name] = true
	}

	for _, out := range c.Outputs {
		if out.Name == "" {
			return errors.New("output name is required")
		}

		if seen["out/"+out.Name] {
			return errors.Errorf("duplicate output %q", out.Name)
		}

		seen["out/"+out.Name] = true
	}

	return nil
}

// InputsByName indexes the inputs for access by name.
func (c *Config) InputsByName() map[string]Input {
	byName := make(map[string]Input, len(c.Inputs))
	for _, in := range c.Inputs {
		byName[in.Name] = in
	}

	return byName
}

// OutputsByName indexes the outputs for access by name.
func (c *Config) OutputsByName() map[string]Output {
	byName := make(map[string]Output, len(c.Outputs))
	for _, out := range c.Outputs {
		byName[out.Name] = out
	}

	return byName
}
