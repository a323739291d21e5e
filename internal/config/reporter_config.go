package config

// ReporterConfig defines configuration for the final report
type ReporterConfig struct {
	Format     string `json:"format,omitempty" yaml:"format,omitempty" validate:"omitempty,reportformat"`
	OutputFile string `json:"output_file,omitempty" yaml:"output_file,omitempty"`
	NoColor    bool   `json:"no_color" yaml:"no_color"`
}

// NewDefaultReporterConfig creates default reporter configuration
func NewDefaultReporterConfig() ReporterConfig {
	return ReporterConfig{
		Format: DefaultReporterFormat,
	}
}
