package types

// OutputFormat selects how generated ideas are rendered.
type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
)

// EngineConfig holds settings for the idea engine.
type EngineConfig struct {
	// DefaultCount is the number of ideas generated when the caller does
	// not ask for a specific count (default 5).
	DefaultCount int `json:"default_count" yaml:"default_count" mapstructure:"default_count"`
}

// OutputConfig holds settings for rendering and saving generation runs.
type OutputConfig struct {
	// RunsDir is the directory bare --save filenames are written to
	// (e.g. "output/ideas").
	RunsDir string `json:"runs_dir" yaml:"runs_dir" mapstructure:"runs_dir"`

	// Format selects the default output format: table or json.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`
}

// AssistantConfig groups all configuration for the CLI.
type AssistantConfig struct {
	Engine EngineConfig `json:"engine" yaml:"engine" mapstructure:"engine"`
	Output OutputConfig `json:"output" yaml:"output" mapstructure:"output"`
}
