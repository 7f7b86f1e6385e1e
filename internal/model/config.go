package model

import "time"

// Config holds the complete typechart configuration
type Config struct {
	Table  string       `yaml:"table" mapstructure:"table"` // Effectiveness table file; empty uses the embedded table
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Cache  CacheConfig  `yaml:"cache" mapstructure:"cache"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Format          string `yaml:"format" mapstructure:"format"`                     // html, json or md
	Path            string `yaml:"path" mapstructure:"path"`                         // Empty writes to stdout
	Title           string `yaml:"title" mapstructure:"title"`                       // Page heading
	Stylesheet      string `yaml:"stylesheet" mapstructure:"stylesheet"`             // HTML stylesheet href
	CollapseNeutral int    `yaml:"collapse_neutral" mapstructure:"collapse_neutral"` // Show the NN cell as a count at this size
	Verbose         bool   `yaml:"verbose" mapstructure:"verbose"`
}

// CacheConfig controls memoization of built charts
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// Output formats
const (
	FormatHTML     = "html"
	FormatJSON     = "json"
	FormatMarkdown = "md"
)

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format:          FormatHTML,
			Title:           "Pokémon Type Effectiveness",
			Stylesheet:      "css/type-chart.css",
			CollapseNeutral: 5,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     time.Hour,
		},
	}
}
