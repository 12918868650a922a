package config

import (
	"tuplecast-generator/internal/gen"
	"tuplecast-generator/internal/plan"
	"tuplecast-generator/internal/synth"
)

// Config is the YAML-backed configuration of one generation run.
type Config struct {
	// Version of the config schema.
	Version string `yaml:"version"`
	// OutputDir is the directory rendered unit files are written to.
	OutputDir string `yaml:"output_dir"`
	// Comments enables per-definition explanatory comments in the output.
	Comments bool `yaml:"comments"`
	// ConstraintsInSignature marks a host whose overload resolver treats
	// category constraints as part of signature identity.
	ConstraintsInSignature bool `yaml:"constraints_in_signature"`
	// Flavors restricts the generated source flavors; empty means all.
	Flavors []string `yaml:"flavors"`
	// Shapes restricts the generated record shapes; empty means all.
	Shapes []string `yaml:"shapes"`
	// Ceilings overrides per-shape arity limits; zero fields keep defaults.
	Ceilings CeilingsConfig `yaml:"ceilings"`
}

// CeilingsConfig is the YAML form of the per-shape arity ceilings.
type CeilingsConfig struct {
	Tuple       int `yaml:"tuple"`
	NamedRecord int `yaml:"named_record"`
	Positional  int `yaml:"positional"`
}

// Default returns the default configuration: the full matrix, stock
// ceilings, comments on.
func Default() *Config {
	return &Config{
		Version:   "1",
		OutputDir: "./generated",
		Comments:  true,
	}
}

// PlanOptions converts the config into driver options. Call Validate first:
// unknown flavor or shape names are skipped here, not reported.
func (c *Config) PlanOptions() plan.Options {
	opts := plan.DefaultOptions()
	opts.Synth.ConstraintsInSignature = c.ConstraintsInSignature
	opts.Synth.Ceilings = synth.Ceilings{
		Tuple:       c.Ceilings.Tuple,
		NamedRecord: c.Ceilings.NamedRecord,
		Positional:  c.Ceilings.Positional,
	}

	for _, name := range c.Flavors {
		if flavor, ok := flavorByName[name]; ok {
			opts.Flavors = append(opts.Flavors, flavor)
		}
	}

	for _, name := range c.Shapes {
		if shape, ok := shapeByName[name]; ok {
			opts.Shapes = append(opts.Shapes, shape)
		}
	}

	return opts
}

// RenderConfig converts the config into rendering configuration.
func (c *Config) RenderConfig() gen.RenderConfig {
	return gen.RenderConfig{GenerateComments: c.Comments}
}

var flavorByName = map[string]synth.SourceFlavor{
	"standalone": synth.FlavorStandalone,
	"base":       synth.FlavorBase,
}

var shapeByName = map[string]synth.RecordShape{
	"tuple":        synth.ShapeTuple,
	"named-record": synth.ShapeNamedRecord,
	"positional":   synth.ShapePositional,
}
