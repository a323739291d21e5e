package logger

import (
	"github.com/aleister1102/linkcheck/internal/config"
)

// ConvertConfig converts application config to logger config.
// An unknown level is reported but the returned config still falls back to info.
func ConvertConfig(cfg config.LogConfig) (LoggerConfig, error) {
	out := DefaultLoggerConfig()

	level, err := ParseLevel(cfg.LogLevel)
	out.Level = level
	out.Format = ParseFormat(cfg.LogFormat)
	out.EnableFile = cfg.LogFile != ""
	out.FilePath = cfg.LogFile

	if cfg.MaxLogSizeMB > 0 {
		out.MaxSizeMB = cfg.MaxLogSizeMB
	}
	if cfg.MaxLogBackups > 0 {
		out.MaxBackups = cfg.MaxLogBackups
	}

	return out, err
}
