package extractor

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/aleister1102/linkcheck/internal/common"
	"github.com/aleister1102/linkcheck/internal/urlhandler"
	"github.com/rs/zerolog"
)

// hrefSelector matches every element whose href is a hyperlink reference.
const hrefSelector = "a[href], area[href], link[href]"

// LinkExtractor finds internal link candidates in an HTML document.
type LinkExtractor struct {
	logger   zerolog.Logger
	basePath string
}

// NewLinkExtractor creates a LinkExtractor for a site served under basePath.
func NewLinkExtractor(logger zerolog.Logger, basePath string) *LinkExtractor {
	return &LinkExtractor{
		logger:   logger.With().Str("module", "LinkExtractor").Logger(),
		basePath: basePath,
	}
}

// Extract parses htmlContent and returns the unique internal href values in
// first-occurrence order. Values are returned as written, except for surrounding space.
func (le *LinkExtractor) Extract(htmlContent []byte) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlContent))
	if err != nil {
		return nil, common.WrapError(err, "failed to parse HTML content")
	}

	seen := make(map[string]struct{})
	links := make([]string, 0, 32)
	skipped := 0

	doc.Find(hrefSelector).Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists {
			return
		}
		href = strings.TrimSpace(href)

		if !urlhandler.IsInternalLink(href, le.basePath) {
			skipped++
			return
		}
		if _, dup := seen[href]; dup {
			return
		}
		seen[href] = struct{}{}
		links = append(links, href)
	})

	le.logger.Debug().
		Int("internal", len(links)).
		Int("skipped", skipped).
		Msg("Extracted links")

	return links, nil
}
