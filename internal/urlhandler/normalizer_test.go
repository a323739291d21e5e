package urlhandler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkNormalizer_Normalize(t *testing.T) {
	tests := []struct {
		name       string
		basePath   string
		sourcePage string
		raw        string
		expected   string
		wantErr    bool
	}{
		{name: "rooted link unchanged", sourcePage: "/", raw: "/about", expected: "/about"},
		{name: "trailing slash kept", sourcePage: "/", raw: "/blog/", expected: "/blog/"},
		{name: "base path stripped", basePath: "/basepath", sourcePage: "/", raw: "/basepath/x", expected: "/x"},
		{name: "base path alone", basePath: "/basepath", sourcePage: "/", raw: "/basepath", expected: "/"},
		{name: "base path with slash", basePath: "/basepath/", sourcePage: "/", raw: "/basepath/", expected: "/"},
		{name: "base path needs segment boundary", basePath: "/docs", sourcePage: "/", raw: "/docsy/x", expected: "/docsy/x"},
		{name: "fragment removed", sourcePage: "/", raw: "/guide#install", expected: "/guide"},
		{name: "query removed", sourcePage: "/", raw: "/search?q=go", expected: "/search"},
		{name: "dot relative from root", sourcePage: "/", raw: "./x", expected: "/x"},
		{name: "parent relative from root", sourcePage: "/", raw: "../x", expected: "/x"},
		{name: "bare relative from root", sourcePage: "/", raw: "x", expected: "/x"},
		{name: "dot relative from nested dir", sourcePage: "/guides/", raw: "./setup", expected: "/guides/setup"},
		{name: "parent relative from nested page", sourcePage: "/guides/setup", raw: "../blog/", expected: "/blog/"},
		{name: "sibling relative from nested page", sourcePage: "/guides/setup", raw: "deploy", expected: "/guides/deploy"},
		{name: "dot segments in rooted link", sourcePage: "/", raw: "/a/./b/../c", expected: "/a/c"},
		{name: "duplicate slashes collapsed", sourcePage: "/", raw: "/a//b", expected: "/a/b"},
		{name: "escaped characters kept", sourcePage: "/", raw: "/my%20page", expected: "/my%20page"},
		{name: "surrounding space trimmed", sourcePage: "/", raw: "  /about  ", expected: "/about"},
		{name: "fragment only refers to page", sourcePage: "/guides/", raw: "#top", expected: "/guides/"},
		{name: "source page under base path", basePath: "/docs", sourcePage: "/docs/guides/", raw: "./a", expected: "/guides/a"},
		{name: "empty link", sourcePage: "/", raw: "", wantErr: true},
		{name: "absolute url", sourcePage: "/", raw: "https://example.com/x", wantErr: true},
		{name: "protocol relative", sourcePage: "/", raw: "//cdn.example.com/x.js", wantErr: true},
		{name: "mailto", sourcePage: "/", raw: "mailto:team@example.com", wantErr: true},
		{name: "unparseable", sourcePage: "/", raw: "/%zz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ln := NewLinkNormalizer(tt.basePath)
			got, err := ln.Normalize(tt.sourcePage, tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLinkNormalizer_PrefixEquivalence(t *testing.T) {
	ln := NewLinkNormalizer("/basepath")

	for _, suffix := range []string{"/x", "/x/", "/a/b/c", "/"} {
		withPrefix, err := ln.Normalize("/", "/basepath"+suffix)
		require.NoError(t, err)
		bare, err := ln.Normalize("/", suffix)
		require.NoError(t, err)
		assert.Equal(t, bare, withPrefix, "suffix %q", suffix)
	}
}

func TestLinkNormalizer_Idempotent(t *testing.T) {
	inputs := []string{
		"/", "/x", "/x/", "./x", "../x", "x", "/basepath/x", "/basepath",
		"/a/../b", "/a?b=c#d", "./deep/../path/", "/my%20page",
	}

	for _, basePath := range []string{"", "/basepath"} {
		ln := NewLinkNormalizer(basePath)
		for _, raw := range inputs {
			once, err := ln.Normalize("/", raw)
			require.NoError(t, err)
			twice, err := ln.Normalize("/", once)
			require.NoError(t, err)
			assert.Equal(t, once, twice, "base %q raw %q", basePath, raw)
		}
	}
}

func TestIsInternalLink(t *testing.T) {
	tests := []struct {
		raw      string
		basePath string
		expected bool
	}{
		{raw: "/about", expected: true},
		{raw: "/", expected: true},
		{raw: "./x", expected: true},
		{raw: "../x", expected: true},
		{raw: "/docs/x", basePath: "/docs", expected: true},
		{raw: "#section", expected: false},
		{raw: "?page=2", expected: false},
		{raw: "//cdn.example.com/app.js", expected: false},
		{raw: "https://example.com/", expected: false},
		{raw: "http://localhost:4321/about", expected: false},
		{raw: "mailto:team@example.com", expected: false},
		{raw: "javascript:void(0)", expected: false},
		{raw: "x", expected: false},
		{raw: "", expected: false},
		{raw: "   ", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsInternalLink(tt.raw, tt.basePath))
		})
	}
}

func TestBuildURL(t *testing.T) {
	assert.Equal(t, "http://localhost:4321/about", BuildURL("http://localhost:4321", "/about"))
	assert.Equal(t, "http://localhost:4321/docs/about", BuildURL("http://localhost:4321/docs/", "/about"))
	assert.Equal(t, "http://localhost:4321/", BuildURL("http://localhost:4321/", "/"))
	assert.Equal(t, "http://localhost:4321/", BuildURL("http://localhost:4321", ""))
	assert.Equal(t, "http://localhost:4321/x", BuildURL("http://localhost:4321", "x"))
}
