package graphcalc

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the content of a graphcalc YAML file. The three text fields
// use the same syntax as ParseInput.
//
//	formulas: x**2; sin(x*y) > 0
//	variables: a = 2
//	ranges: -5..5; -3..3
//	width: 800
//	height: 600
//	output: graph.png
type Config struct {
	Formulas  string `yaml:"formulas"`
	Variables string `yaml:"variables"`
	Ranges    string `yaml:"ranges"`

	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Output is the PNG file the frame is written to.
	Output string `yaml:"output"`
}

// DefaultConfig is the configuration used for absent fields.
func DefaultConfig() Config {
	return Config{
		Width:  640,
		Height: 480,
		Output: "graph.png",
	}
}

// DecodeConfig reads a YAML configuration from r on top of the defaults.
// Unknown fields are an error; an empty document yields the defaults.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads the configuration file at path.
func LoadConfig(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()
	return DecodeConfig(file)
}

func (c Config) validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("config: invalid size %dx%d", c.Width, c.Height)
	}
	return nil
}

// Input parses the text fields of c.
func (c Config) Input() (Input, error) {
	return ParseInput(c.Formulas, c.Variables, c.Ranges)
}
