package reporter

import (
	"io"

	"github.com/aleister1102/linkcheck/internal/common"
	"github.com/aleister1102/linkcheck/internal/config"
	"github.com/aleister1102/linkcheck/internal/models"
	"github.com/rs/zerolog"
)

// ReportWriter sends the rendered report to stdout or to the configured output file.
type ReportWriter struct {
	config      config.ReporterConfig
	stdout      io.Writer
	fileManager *common.FileManager
	logger      zerolog.Logger
}

// NewReportWriter creates a ReportWriter; stdout is used when no output file is set.
func NewReportWriter(cfg config.ReporterConfig, stdout io.Writer, fm *common.FileManager, logger zerolog.Logger) *ReportWriter {
	return &ReportWriter{
		config:      cfg,
		stdout:      stdout,
		fileManager: fm,
		logger:      logger.With().Str("module", "ReportWriter").Logger(),
	}
}

// Write renders result with the configured format.
func (rw *ReportWriter) Write(result *models.RunResult) error {
	toFile := rw.config.OutputFile != ""

	color := !rw.config.NoColor && !toFile && common.IsTerminal(rw.stdout)
	rep, err := NewReporter(rw.config.Format, Options{Color: color}, rw.logger)
	if err != nil {
		return err
	}

	if !toFile {
		return rep.Report(rw.stdout, result)
	}

	f, err := rw.fileManager.CreateFile(rw.config.OutputFile)
	if err != nil {
		return common.WrapErrorf(err, "failed to create report file '%s'", rw.config.OutputFile)
	}

	if err := rep.Report(f, result); err != nil {
		return common.CombineErrors([]error{err, f.Close()})
	}
	if err := f.Close(); err != nil {
		return common.WrapErrorf(err, "failed to close report file '%s'", rw.config.OutputFile)
	}

	rw.logger.Info().Str("path", rw.config.OutputFile).Msg("Report written")
	return nil
}
