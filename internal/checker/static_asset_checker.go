package checker

import (
	"github.com/aleister1102/linkcheck/internal/common"
	"github.com/aleister1102/linkcheck/internal/models"
	"github.com/rs/zerolog"
)

// StaticAssetChecker confirms that seed files exist relative to the working directory.
type StaticAssetChecker struct {
	files  *common.FileManager
	logger zerolog.Logger
}

// NewStaticAssetChecker creates a checker backed by fm.
func NewStaticAssetChecker(fm *common.FileManager, logger zerolog.Logger) *StaticAssetChecker {
	return &StaticAssetChecker{
		files:  fm,
		logger: logger.With().Str("module", "StaticAssetChecker").Logger(),
	}
}

// Check returns one NOT_FOUND Finding per missing path, in input order.
func (c *StaticAssetChecker) Check(paths []string) []models.Finding {
	findings := make([]models.Finding, 0)
	for _, p := range paths {
		if c.files.FileExists(p) {
			c.logger.Info().Str("file", p).Msg("Static file present")
			continue
		}
		c.logger.Warn().Str("file", p).Msg("Static file missing")
		findings = append(findings, models.NewFileFinding(p))
	}
	return findings
}
