package main

import (
	"fmt"
	"os"

	"github.com/bjaus/pretty"
	"gopkg.in/yaml.v3"
)

// unbounded is the flag value for no limit. Zero is a real bound: depth 0
// collapses every element and limit 0 shows none.
const unbounded = -1

// config holds rendering defaults. Absent Limit or Depth leaves the flag
// default in place; a negative value means unbounded.
type config struct {
	Limit *int   `yaml:"limit"`
	Depth *int   `yaml:"depth"`
	Sizes bool   `yaml:"sizes"`
	Input string `yaml:"format"`
}

func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func renderOptions(limit, depth int, sizes bool) []pretty.Option {
	opts := []pretty.Option{pretty.WithVerbose(sizes)}
	if limit >= 0 {
		opts = append(opts, pretty.WithLimit(limit))
	}
	if depth >= 0 {
		opts = append(opts, pretty.WithDepth(depth))
	}
	return opts
}
