package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config carries the optional YAML configuration. Command line flags
// override whatever the file declares.
type Config struct {
	// BundleURL is a direct DDF ZIP URL, skipping the Learn page scrape
	BundleURL string `yaml:"bundle_url"`
	// Bundle is a local DDF ZIP path, skipping the download entirely
	Bundle string `yaml:"bundle"`
	// Output is the JSON output path
	Output string `yaml:"output"`
	// OwnBlockOnly restricts Exec detection to nodes with their own
	// DFProperties block
	OwnBlockOnly bool `yaml:"own_block_only"`
	// InheritFormat lets DFFormat/DefaultValue resolve through the
	// property chain
	InheritFormat bool `yaml:"inherit_format"`
}

func loadConfig(path string) (Config, error) {
	cfg := Config{Output: "csp_exec_commands.json"}
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config file")
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrap(err, "parsing config file")
	}
	if cfg.Output == "" {
		cfg.Output = "csp_exec_commands.json"
	}
	return cfg, nil
}
