package main

import (
	"flag"
	"io"

	"github.com/aleister1102/linkcheck/internal/config"
	"github.com/rs/zerolog"
)

type AppFlags struct {
	ConfigFile    string
	BaseURL       string
	BasePath      string
	TimeoutMs     int
	Pages         string
	PagesFile     string
	Files         string
	Format        string
	OutputFile    string
	Concurrency   int
	RequireServer bool
	NoColor       bool
	Verbose       bool
	Quiet         bool
}

// ParseFlags parses args (without the program name). Errors and -h output go to stderr.
func ParseFlags(args []string, stderr io.Writer) (AppFlags, error) {
	fs := flag.NewFlagSet("linkcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configFile := fs.String("config", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	configFileAlias := fs.String("c", "", "Alias for -config")

	baseURL := fs.String("base-url", "", "Base URL of the running site (overrides config file)")
	basePath := fs.String("base-path", "", "Base path prefix the site is served under, e.g. /docs")
	timeoutMs := fs.Int("timeout-ms", 0, "Per-request timeout in milliseconds")
	pages := fs.String("pages", "", "Comma separated seed pages, e.g. /,/blog/")
	pagesFile := fs.String("pages-file", "", "File with one seed page per line, merged with -pages")
	pagesFileAlias := fs.String("f", "", "Alias for -pages-file")
	files := fs.String("files", "", "Comma separated seed files to check on disk")

	format := fs.String("format", "", "Report format: text, json or csv")
	output := fs.String("output", "", "Write the report to this file instead of stdout")
	outputAlias := fs.String("o", "", "Alias for -output")

	concurrency := fs.Int("concurrency", 0, "Parallel link checks per page (1 is sequential)")
	requireServer := fs.Bool("require-server", false, "Fail the run when the site is not reachable")

	noColor := fs.Bool("no-color", false, "Disable ANSI colors in logs and the text report")

	verbose := fs.Bool("verbose", false, "Enable debug logging")
	verboseAlias := fs.Bool("v", false, "Alias for -verbose")
	quiet := fs.Bool("quiet", false, "Only log warnings and errors")
	quietAlias := fs.Bool("q", false, "Alias for -quiet")

	if err := fs.Parse(args); err != nil {
		return AppFlags{}, err
	}

	flags := AppFlags{
		ConfigFile:    *configFile,
		BaseURL:       *baseURL,
		BasePath:      *basePath,
		TimeoutMs:     *timeoutMs,
		Pages:         *pages,
		PagesFile:     *pagesFile,
		Files:         *files,
		Format:        *format,
		OutputFile:    *output,
		Concurrency:   *concurrency,
		RequireServer: *requireServer,
		NoColor:       *noColor,
		Verbose:       *verbose || *verboseAlias,
		Quiet:         *quiet || *quietAlias,
	}

	// Consolidate alias flags
	if flags.ConfigFile == "" && *configFileAlias != "" {
		flags.ConfigFile = *configFileAlias
	}
	if flags.PagesFile == "" && *pagesFileAlias != "" {
		flags.PagesFile = *pagesFileAlias
	}
	if flags.OutputFile == "" && *outputAlias != "" {
		flags.OutputFile = *outputAlias
	}

	return flags, nil
}

// Overrides converts the flags into config overrides.
func (f AppFlags) Overrides() config.Overrides {
	return config.Overrides{
		BaseURL:       f.BaseURL,
		BasePath:      f.BasePath,
		TimeoutMs:     f.TimeoutMs,
		SeedPages:     config.SplitList(f.Pages),
		SeedFiles:     config.SplitList(f.Files),
		Format:        f.Format,
		OutputFile:    f.OutputFile,
		Concurrency:   f.Concurrency,
		RequireServer: f.RequireServer,
		NoColor:       f.NoColor,
	}
}

// LogLevel returns the level forced by -verbose or -quiet; ok is false when neither is set.
func (f AppFlags) LogLevel() (level zerolog.Level, ok bool) {
	switch {
	case f.Verbose:
		return zerolog.DebugLevel, true
	case f.Quiet:
		return zerolog.WarnLevel, true
	}
	return zerolog.NoLevel, false
}

// MergeSeedPages appends extra pages to the -pages list, dropping repeats.
func (f AppFlags) MergeSeedPages(extra []string) []string {
	seen := make(map[string]struct{})
	var merged []string
	for _, page := range append(config.SplitList(f.Pages), extra...) {
		if _, ok := seen[page]; ok {
			continue
		}
		seen[page] = struct{}{}
		merged = append(merged, page)
	}
	return merged
}
