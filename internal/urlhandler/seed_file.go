package urlhandler

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/aleister1102/linkcheck/internal/common"
	"github.com/rs/zerolog"
)

var (
	ErrSeedFileNotFound = errors.New("seed page file not found")
	ErrSeedFileEmpty    = errors.New("seed page file contains no pages")
)

// ReadSeedPagesFromFile reads one site path per line. Blank lines and lines
// starting with "#" are skipped; a missing leading slash is added.
func ReadSeedPagesFromFile(filePath string, logger zerolog.Logger) ([]string, error) {
	fileLogger := logger.With().Str("module", "SeedFileReader").Str("file", filePath).Logger()

	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, common.WrapErrorf(ErrSeedFileNotFound, "%s", filePath)
	}
	if err != nil {
		return nil, common.WrapErrorf(err, "error checking seed page file %s", filePath)
	}
	if info.IsDir() {
		return nil, common.NewValidationError("pages_file", filePath, "is a directory, not a file")
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, common.WrapErrorf(err, "failed to open seed page file %s", filePath)
	}
	defer file.Close()

	var pages []string
	lineNumber := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !strings.HasPrefix(line, "/") {
			fileLogger.Debug().Int("line", lineNumber).Str("page", line).Msg("Adding leading slash to seed page")
			line = "/" + line
		}
		pages = append(pages, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, common.WrapErrorf(err, "error reading seed page file %s", filePath)
	}

	if len(pages) == 0 {
		return nil, common.WrapErrorf(ErrSeedFileEmpty, "%s (%d lines read)", filePath, lineNumber)
	}

	fileLogger.Debug().Int("lines", lineNumber).Int("pages", len(pages)).Msg("Loaded seed pages")
	return pages, nil
}
