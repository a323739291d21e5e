package urlhandler

import (
	"net/url"
	"path"
	"strings"

	"github.com/aleister1102/linkcheck/internal/common"
)

// LinkNormalizer rewrites raw internal hrefs into canonical site-relative paths.
// The zero value has no base path.
type LinkNormalizer struct {
	basePath string
}

// NewLinkNormalizer creates a normalizer that strips basePath from rooted links.
// basePath is expected in the form "/docs"; "" or "/" means the site lives at the root.
func NewLinkNormalizer(basePath string) *LinkNormalizer {
	return &LinkNormalizer{basePath: cleanBasePath(basePath)}
}

// BasePath returns the prefix stripped by Normalize.
func (ln *LinkNormalizer) BasePath() string {
	return ln.basePath
}

// Normalize turns raw, found on sourcePage, into a normalized link.
// Query and fragment are dropped, the base path is stripped, relative forms are
// resolved against the directory of sourcePage and dot segments are removed.
// A trailing slash is kept, so "/blog/" and "/blog" stay distinct.
func (ln *LinkNormalizer) Normalize(sourcePage, raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", common.NewError("link is empty")
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", common.WrapErrorf(err, "could not parse link '%s'", trimmed)
	}
	if parsed.Scheme != "" || parsed.Host != "" || strings.HasPrefix(trimmed, "//") {
		return "", common.NewError("link '%s' is not site-relative", trimmed)
	}

	p := parsed.EscapedPath()
	if p == "" {
		// "?x" or "#x" refers to the page itself.
		return ln.pagePath(sourcePage), nil
	}

	if strings.HasPrefix(p, "/") {
		p = ln.stripBasePath(p)
	} else {
		p = pageDirectory(ln.pagePath(sourcePage)) + p
	}

	return cleanPath(p), nil
}

// stripBasePath removes the base path prefix on a segment boundary.
func (ln *LinkNormalizer) stripBasePath(p string) string {
	if ln.basePath == "" || !hasPathPrefix(p, ln.basePath) {
		return p
	}
	stripped := p[len(ln.basePath):]
	if stripped == "" {
		return "/"
	}
	return stripped
}

func (ln *LinkNormalizer) pagePath(sourcePage string) string {
	page := strings.TrimSpace(sourcePage)
	if page == "" {
		return "/"
	}
	if !strings.HasPrefix(page, "/") {
		page = "/" + page
	}
	return cleanPath(ln.stripBasePath(page))
}

// pageDirectory returns the directory part of a rooted page path, with trailing slash.
func pageDirectory(page string) string {
	idx := strings.LastIndex(page, "/")
	if idx < 0 {
		return "/"
	}
	return page[:idx+1]
}

// cleanPath removes dot segments and duplicate slashes while keeping a trailing slash.
func cleanPath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	trailing := strings.HasSuffix(p, "/") || strings.HasSuffix(p, "/.") || strings.HasSuffix(p, "/..")
	cleaned := path.Clean(p)
	if trailing && cleaned != "/" {
		cleaned += "/"
	}
	return cleaned
}

func cleanBasePath(basePath string) string {
	bp := strings.TrimSpace(basePath)
	bp = strings.TrimRight(bp, "/")
	if bp == "" {
		return ""
	}
	if !strings.HasPrefix(bp, "/") {
		bp = "/" + bp
	}
	return bp
}

// BuildURL joins the site base URL and a normalized link.
func BuildURL(baseURL, link string) string {
	base := strings.TrimRight(baseURL, "/")
	if link == "" {
		return base + "/"
	}
	if !strings.HasPrefix(link, "/") {
		link = "/" + link
	}
	return base + link
}
