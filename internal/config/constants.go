package config

const (
	// Site Defaults
	DefaultSiteBaseURL = "http://localhost:4321"

	// Checker Defaults
	DefaultCheckerTimeoutMs       = 5000
	DefaultCheckerUserAgent       = "linkcheck/1.0"
	DefaultCheckerConcurrency     = 1
	DefaultCheckerMaxRedirects    = 10
	DefaultCheckerMaxBodyBytes    = 10 * 1024 * 1024
	DefaultCheckerEnableHTTP2     = true
	DefaultCheckerHeadFallbackGet = true

	// Reporter Defaults
	DefaultReporterFormat = "text"

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// ConfigPathEnvVar overrides the config file location when no flag is given.
	ConfigPathEnvVar = "LINKCHECK_CONFIG_PATH"

	maxConfigFileSize = 10 * 1024 * 1024
)

// DefaultSeedPages is used when neither the config file nor the flags name any page.
func DefaultSeedPages() []string {
	return []string{"/"}
}
