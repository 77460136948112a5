// Package config provides configuration loading and management: the global
// user configuration and the per-project modgen.yaml file.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" json:"timestamps,omitempty" yaml:"timestamps,omitempty"`
}

// Config represents the global modgen configuration.
// Loaded from ~/.modgen/config.yaml, validated against an embedded CUE schema.
type Config struct {
	// TemplatesDir holds user templates; they shadow built-in templates.
	// Env: MODGEN_TEMPLATES_DIR, Default: ~/.modgen/templates
	TemplatesDir string `mapstructure:"templatesDir" json:"templatesDir,omitempty" yaml:"templatesDir,omitempty"`

	// Author is used when the project file does not set one.
	// Env: MODGEN_AUTHOR
	Author string `mapstructure:"author" json:"author,omitempty" yaml:"author,omitempty"`

	// Company is used when the project file does not set one.
	// Env: MODGEN_COMPANY
	Company string `mapstructure:"company" json:"company,omitempty" yaml:"company,omitempty"`

	// Output is the default summary format: text, yaml or json.
	// Env: MODGEN_OUTPUT, Default: text
	Output string `mapstructure:"output" json:"output,omitempty" yaml:"output,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" json:"log" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `modgen config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		TemplatesDir: "~/.modgen/templates",
		Output:       "text",
	}
}

// WithDefaults returns a copy of c with unset fields filled from DefaultConfig.
func (c *Config) WithDefaults() *Config {
	out := *c
	def := DefaultConfig()
	if out.TemplatesDir == "" {
		out.TemplatesDir = def.TemplatesDir
	}
	if out.Output == "" {
		out.Output = def.Output
	}
	return &out
}
