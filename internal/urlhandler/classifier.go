package urlhandler

import "strings"

// IsInternalLink reports whether a raw href points inside the site.
// Internal forms are the base path prefix, a rooted path with a single leading slash,
// and paths starting with "./" or "../". Fragment-only, query-only, protocol-relative,
// absolute and scheme links (mailto:, tel:, javascript:) are not internal.
func IsInternalLink(raw, basePath string) bool {
	link := strings.TrimSpace(raw)
	switch {
	case link == "":
		return false
	case strings.HasPrefix(link, "#"), strings.HasPrefix(link, "?"):
		return false
	case strings.HasPrefix(link, "//"):
		return false
	case basePath != "" && hasPathPrefix(link, basePath):
		return true
	case strings.HasPrefix(link, "/"):
		return true
	case strings.HasPrefix(link, "./"), strings.HasPrefix(link, "../"):
		return true
	default:
		return false
	}
}

// hasPathPrefix is true when p equals prefix or continues it with a new segment,
// a query or a fragment. "/docsy" does not have the prefix "/docs".
func hasPathPrefix(p, prefix string) bool {
	if !strings.HasPrefix(p, prefix) {
		return false
	}
	if len(p) == len(prefix) {
		return true
	}
	switch p[len(prefix)] {
	case '/', '?', '#':
		return true
	default:
		return false
	}
}
