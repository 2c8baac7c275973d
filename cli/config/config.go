package config

import (
	"github.com/pithecene-io/easel/types"
)

// Config represents an easel.yaml configuration file.
// All values are optional and act as defaults for easel render flags.
// CLI flags always override config values.
type Config struct {
	// Directory is the default output directory for figures.
	Directory string `yaml:"directory"`
	// Format is the default save format (png, svg, pdf, jpg, eps, gif).
	Format string `yaml:"format"`
	// Toolkits maps a toolkit name to its settings.
	Toolkits map[string]ToolkitConfig `yaml:"toolkits"`
}

// ToolkitConfig holds per-toolkit settings from the config file.
type ToolkitConfig struct {
	// Executable overrides the toolkit's interpreter or binary.
	Executable string `yaml:"executable"`
}

// ExecutableOverrides collapses the toolkit section into the override map
// consumed by the profile registry. Entries with an empty executable are
// dropped.
func (c *Config) ExecutableOverrides() map[types.Toolkit]string {
	if len(c.Toolkits) == 0 {
		return nil
	}
	overrides := make(map[types.Toolkit]string, len(c.Toolkits))
	for name, tc := range c.Toolkits {
		if tc.Executable != "" {
			overrides[types.Toolkit(name)] = tc.Executable
		}
	}
	return overrides
}
