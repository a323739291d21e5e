package config

import (
	"net/url"
	"strings"
)

// SiteConfig describes the locally running site and what to check on it.
type SiteConfig struct {
	BaseURL   string   `json:"base_url,omitempty" yaml:"base_url,omitempty" validate:"required,url,httpurl"`
	BasePath  string   `json:"base_path,omitempty" yaml:"base_path,omitempty" validate:"omitempty,sitepath"`
	SeedPages []string `json:"seed_pages,omitempty" yaml:"seed_pages,omitempty" validate:"required,min=1,dive,required,sitepath"`
	SeedFiles []string `json:"seed_files,omitempty" yaml:"seed_files,omitempty" validate:"omitempty,dive,required"`
}

// NewDefaultSiteConfig creates default site configuration
func NewDefaultSiteConfig() SiteConfig {
	return SiteConfig{
		BaseURL:   DefaultSiteBaseURL,
		SeedPages: DefaultSeedPages(),
	}
}

// EffectiveBasePath returns the configured base path, or the path component of
// BaseURL when none is set. The result has a leading slash and no trailing slash;
// an empty string means the site is served from the root.
func (sc SiteConfig) EffectiveBasePath() string {
	p := sc.BasePath
	if p == "" {
		if u, err := url.Parse(sc.BaseURL); err == nil {
			p = u.Path
		}
	}
	p = strings.TrimRight(p, "/")
	if p == "" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// SiteRoot returns the URL every seed page and normalized link is joined to:
// BaseURL without a trailing slash, with the effective base path appended when
// BaseURL does not already end with it.
func (sc SiteConfig) SiteRoot() string {
	root := strings.TrimRight(sc.BaseURL, "/")
	basePath := sc.EffectiveBasePath()
	if basePath == "" {
		return root
	}
	if u, err := url.Parse(root); err == nil && strings.HasSuffix(strings.TrimRight(u.Path, "/"), basePath) {
		return root
	}
	return root + basePath
}
