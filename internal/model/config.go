package model

import "time"

// Config is the complete casecalc configuration
type Config struct {
	RulesFile string       `yaml:"rules_file" mapstructure:"rules_file"` // Optional rule book override (YAML)
	LogLevel  string       `yaml:"log_level" mapstructure:"log_level"`
	Output    OutputConfig `yaml:"output" mapstructure:"output"`
	Cache     CacheConfig  `yaml:"cache" mapstructure:"cache"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Format  string `yaml:"format" mapstructure:"format"` // text, json, yaml, markdown
	Dir     string `yaml:"dir" mapstructure:"dir"`       // batch output directory
	Verbose bool   `yaml:"verbose" mapstructure:"verbose"`
}

// CacheConfig controls the in-process rule book memo
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		RulesFile: "",
		LogLevel:  "warn",
		Output: OutputConfig{
			Format: "text",
			Dir:    "./casecalc-reports",
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     30 * time.Minute,
		},
	}
}
