package types

// ReportFormat selects how the driver reports a completed run on stdout.
type ReportFormat string

const (
	ReportText ReportFormat = "text"
	ReportYAML ReportFormat = "yaml"
)

// ExtractionConfig holds settings for the extraction command.
type ExtractionConfig struct {
	// BaseDir is the stable base location that DataDir is resolved against (default ".").
	BaseDir string `json:"base_dir" yaml:"base_dir"`

	// DataDir is the directory under BaseDir that receives <name>.txt files (default "data").
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// Format selects the summary format: text or yaml.
	Format ReportFormat `json:"format" yaml:"format"`

	// Verbose enables debug-level diagnostics on stderr.
	Verbose bool `json:"verbose" yaml:"verbose"`
}
