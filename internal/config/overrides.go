package config

import "strings"

// Overrides carries command-line values that take precedence over the config file.
// Zero values mean "not set".
type Overrides struct {
	BaseURL       string
	BasePath      string
	TimeoutMs     int
	SeedPages     []string
	SeedFiles     []string
	Format        string
	OutputFile    string
	Concurrency   int
	RequireServer bool
	NoColor       bool
}

// ApplyOverrides copies every set field of o into cfg.
func (cfg *GlobalConfig) ApplyOverrides(o Overrides) {
	if o.BaseURL != "" {
		cfg.Site.BaseURL = o.BaseURL
	}
	if o.BasePath != "" {
		cfg.Site.BasePath = o.BasePath
	}
	if len(o.SeedPages) > 0 {
		cfg.Site.SeedPages = o.SeedPages
	}
	if len(o.SeedFiles) > 0 {
		cfg.Site.SeedFiles = o.SeedFiles
	}
	if o.TimeoutMs > 0 {
		cfg.CheckerConfig.TimeoutMs = o.TimeoutMs
	}
	if o.Concurrency > 0 {
		cfg.CheckerConfig.Concurrency = o.Concurrency
	}
	if o.RequireServer {
		cfg.CheckerConfig.RequireServer = true
	}
	if o.Format != "" {
		cfg.ReporterConfig.Format = o.Format
	}
	if o.OutputFile != "" {
		cfg.ReporterConfig.OutputFile = o.OutputFile
	}
	if o.NoColor {
		cfg.ReporterConfig.NoColor = true
	}
}

// SplitList turns a comma separated flag value into trimmed, non-empty items.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
