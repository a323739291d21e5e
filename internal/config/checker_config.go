package config

import "time"

// CheckerConfig controls how pages and links are requested.
// A MaxRedirects of 0 turns redirect following off.
type CheckerConfig struct {
	TimeoutMs          int    `json:"timeout_ms,omitempty" yaml:"timeout_ms,omitempty" validate:"omitempty,min=1"`
	UserAgent          string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	Concurrency        int    `json:"concurrency,omitempty" yaml:"concurrency,omitempty" validate:"omitempty,min=1,max=64"`
	HeadFallbackGet    bool   `json:"head_fallback_get" yaml:"head_fallback_get"`
	RequireServer      bool   `json:"require_server" yaml:"require_server"`
	InsecureSkipVerify bool   `json:"insecure_skip_verify" yaml:"insecure_skip_verify"`
	MaxRedirects       int    `json:"max_redirects" yaml:"max_redirects" validate:"min=0,max=50"`
	MaxBodyBytes       int64  `json:"max_body_bytes,omitempty" yaml:"max_body_bytes,omitempty" validate:"omitempty,min=1"`
	EnableHTTP2        bool   `json:"http2" yaml:"http2"`
}

// NewDefaultCheckerConfig creates default checker configuration
func NewDefaultCheckerConfig() CheckerConfig {
	return CheckerConfig{
		TimeoutMs:       DefaultCheckerTimeoutMs,
		UserAgent:       DefaultCheckerUserAgent,
		Concurrency:     DefaultCheckerConcurrency,
		HeadFallbackGet: DefaultCheckerHeadFallbackGet,
		MaxRedirects:    DefaultCheckerMaxRedirects,
		MaxBodyBytes:    DefaultCheckerMaxBodyBytes,
		EnableHTTP2:     DefaultCheckerEnableHTTP2,
	}
}

// Timeout converts TimeoutMs to a duration, falling back to the default for non-positive values.
func (cc CheckerConfig) Timeout() time.Duration {
	ms := cc.TimeoutMs
	if ms <= 0 {
		ms = DefaultCheckerTimeoutMs
	}
	return time.Duration(ms) * time.Millisecond
}

// FollowRedirects reports whether redirects are followed at all.
func (cc CheckerConfig) FollowRedirects() bool {
	return cc.MaxRedirects > 0
}

// Workers returns the effective verification concurrency (at least 1).
func (cc CheckerConfig) Workers() int {
	if cc.Concurrency < 1 {
		return 1
	}
	return cc.Concurrency
}
