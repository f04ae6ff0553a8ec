/*
PURPOSE:
  Defines the configuration structure and loading logic for bench-merge.
  Paths only; there is nothing else to tune.

REQUIREMENTS:
  User-specified:
  - Defaults must reproduce the canonical layout: three inputs under
    data/ and the merged file next to them, so a bare run needs no
    flags and no file.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - CLI flags override whatever the file says.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/merge
  - Dependencies: gopkg.in/yaml.v3 (standard for Go config)

ERROR HANDLING:
  - Returns explicit error if a named config file is missing or invalid.
  - A missing *default* config file is fine; defaults apply.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Precedence order of supplements is the order they are listed.

USAGE:
  cfg, err := config.Load("bench_merge.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update
    DefaultConfig().

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new path or formatting options.
*/

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the input and output paths for a merge run.
type Config struct {
	// CurrentPath is the highest-precedence input; its records are
	// never dropped.
	CurrentPath string `yaml:"current"`
	// SupplementPaths are merged after CurrentPath, in listed order.
	SupplementPaths []string `yaml:"supplements"`
	// OutputPath receives the merged JSON array.
	OutputPath string `yaml:"output"`
}

// DefaultConfig returns the canonical data/ layout.
func DefaultConfig() *Config {
	return &Config{
		CurrentPath: "data/benchmarks.json",
		SupplementPaths: []string{
			"data/new_bench.json",
			"data/new_bench1.json",
		},
		OutputPath: "data/benchmarks_merged.json",
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		defaults := []string{"bench_merge.yaml", "bench-merge.yaml"}
		found := false
		for _, name := range defaults {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name // record which file we loaded
				found = true
				break
			}
		}
		if !found {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}
