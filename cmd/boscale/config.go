package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Variable describes one experiment factor in the TOML definition.
type Variable struct {
	// Name labels the output column.
	Name string `toml:"name"`

	// Min and Max are the physical bounds of the variable.
	Min float64 `toml:"min"`
	Max float64 `toml:"max"`

	// Log samples the variable uniformly in log10 space instead of linearly.
	// Requires a strictly positive Min.
	Log bool `toml:"log"`

	// Levels is the level count for full-factorial designs (ignored by LHS).
	Levels int `toml:"levels"`
}

// Experiment is the top-level TOML document:
//
//	title = "catalyst screening"
//
//	[[variable]]
//	name = "Temperature"
//	min = 300
//	max = 500
//	levels = 5
//
//	[[variable]]
//	name = "Pressure"
//	min = 0.01
//	max = 1.0
//	log = true
//	levels = 4
type Experiment struct {
	Title     string     `toml:"title"`
	Variables []Variable `toml:"variable"`
}

// loadExperiment reads and validates an experiment definition.
func loadExperiment(path string) (*Experiment, error) {
	var exp Experiment

	if _, err := toml.DecodeFile(path, &exp); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if len(exp.Variables) == 0 {
		return nil, fmt.Errorf("%s: no [[variable]] blocks defined", path)
	}

	seen := make(map[string]bool, len(exp.Variables))

	for i, v := range exp.Variables {
		if v.Name == "" {
			return nil, fmt.Errorf("%s: variable %d has no name", path, i)
		}

		if seen[v.Name] {
			return nil, fmt.Errorf("%s: duplicate variable name %q", path, v.Name)
		}
		seen[v.Name] = true

		if v.Min >= v.Max {
			return nil, fmt.Errorf("%s: variable %q: min (%g) must be below max (%g)", path, v.Name, v.Min, v.Max)
		}

		if v.Log && v.Min <= 0 {
			return nil, fmt.Errorf("%s: variable %q: log sampling requires min > 0, got %g", path, v.Name, v.Min)
		}
	}

	return &exp, nil
}
