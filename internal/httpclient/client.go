package httpclient

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/aleister1102/linkcheck/internal/common"
	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
)

const defaultMaxRedirects = 10

// HTTPClient wraps net/http.Client with the application's defaults and error types
type HTTPClient struct {
	client    *http.Client
	transport *http.Transport
	config    HTTPClientConfig
	logger    zerolog.Logger
}

// NewHTTPClient creates a new HTTP client with the given configuration
func NewHTTPClient(config HTTPClientConfig, logger zerolog.Logger) (*HTTPClient, error) {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          config.MaxIdleConns,
		MaxIdleConnsPerHost:   config.MaxIdleConnsPerHost,
		IdleConnTimeout:       config.IdleConnTimeout,
		TLSHandshakeTimeout:   config.TLSHandshakeTimeout,
		ExpectContinueTimeout: config.ExpectContinueTimeout,
		DialContext: (&net.Dialer{
			Timeout:   config.DialTimeout,
			KeepAlive: config.KeepAlive,
		}).DialContext,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: config.InsecureSkipVerify,
		},
	}

	if config.EnableHTTP2 {
		if err := http2.ConfigureTransport(transport); err != nil {
			logger.Warn().Err(err).Msg("Failed to configure HTTP/2, falling back to HTTP/1.1")
		}
	}

	client := &http.Client{
		Transport:     transport,
		Timeout:       config.Timeout,
		CheckRedirect: RedirectPolicy(config.FollowRedirects, config.MaxRedirects),
	}

	logger.Debug().
		Dur("timeout", config.Timeout).
		Bool("insecure_skip_verify", config.InsecureSkipVerify).
		Bool("follow_redirects", config.FollowRedirects).
		Int("max_redirects", config.MaxRedirects).
		Bool("http2_enabled", config.EnableHTTP2).
		Msg("HTTP client created")

	return &HTTPClient{
		client:    client,
		transport: transport,
		config:    config,
		logger:    logger,
	}, nil
}

// RedirectPolicy returns a CheckRedirect function. With follow unset the first
// redirect response is returned as is; otherwise at most maxRedirects hops are
// followed, defaulting to net/http's limit of 10.
func RedirectPolicy(follow bool, maxRedirects int) func(req *http.Request, via []*http.Request) error {
	if maxRedirects <= 0 {
		maxRedirects = defaultMaxRedirects
	}
	return func(req *http.Request, via []*http.Request) error {
		if !follow {
			return http.ErrUseLastResponse
		}
		// via holds every request made so far, so len(via) is the hop being attempted.
		if len(via) > maxRedirects {
			return fmt.Errorf("stopped after %d redirects", maxRedirects)
		}
		return nil
	}
}

// Transport exposes the configured round tripper so other HTTP consumers share its pool.
func (c *HTTPClient) Transport() http.RoundTripper {
	return c.transport
}

// Config returns the client configuration
func (c *HTTPClient) Config() HTTPClientConfig {
	return c.config
}

// Do performs a single HTTP request. Transport failures come back as *common.NetworkError;
// any received response, whatever its status, is returned without error.
func (c *HTTPClient) Do(req *HTTPRequest) (*HTTPResponse, error) {
	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, nil)
	if err != nil {
		return nil, common.WrapError(err, "failed to create HTTP request")
	}

	for key, value := range c.config.CustomHeaders {
		httpReq.Header.Set(key, value)
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
	if c.config.UserAgent != "" {
		httpReq.Header.Set("User-Agent", c.config.UserAgent)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, common.NewNetworkError(req.URL, describeTransportError(err), err)
	}
	defer resp.Body.Close()

	out := &HTTPResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		FinalURL:   resp.Request.URL.String(),
	}

	var body io.Reader = resp.Body
	if c.config.MaxContentSize > 0 {
		body = io.LimitReader(resp.Body, c.config.MaxContentSize)
	}

	if req.DiscardBody || req.Method == http.MethodHead {
		_, _ = io.Copy(io.Discard, body)
		return out, nil
	}

	out.Body, err = io.ReadAll(body)
	if err != nil {
		return nil, common.NewNetworkError(req.URL, "failed to read response body", err)
	}
	return out, nil
}

// Head issues a HEAD request for url
func (c *HTTPClient) Head(ctx context.Context, url string) (*HTTPResponse, error) {
	return c.Do(&HTTPRequest{URL: url, Method: http.MethodHead, Context: ctx})
}

// IsTimeout reports whether err came from a deadline, either the client's or the context's.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func describeTransportError(err error) string {
	if IsTimeout(err) {
		return common.ReasonTimeout
	}
	if errors.Is(err, context.Canceled) {
		return common.ReasonCancelled
	}
	return common.ReasonFailed
}
