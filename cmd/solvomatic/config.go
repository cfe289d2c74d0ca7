package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// fileDefaults is the shape of .solvomaticrc.yaml, an optional config file
// supplying default flag values (SPEC_FULL.md §1); any flag the user passes
// explicitly on the command line still wins, since these values are only
// used as the flags' defaults.
type fileDefaults struct {
	Verbose bool `yaml:"verbose"`
	Quiet   bool `yaml:"quiet"`
	Steps   bool `yaml:"steps"`
	Watch   bool `yaml:"watch"`
}

// loadRC reads .solvomaticrc.yaml from the current directory, if present.
// A missing file is not an error; a malformed one is.
func loadRC() (fileDefaults, error) {
	var d fileDefaults
	b, err := os.ReadFile(".solvomaticrc.yaml")
	if err != nil {
		if os.IsNotExist(err) {
			return d, nil
		}
		return d, err
	}
	if err := yaml.Unmarshal(b, &d); err != nil {
		return d, err
	}
	return d, nil
}
