package httpclient

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aleister1102/linkcheck/internal/common"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, timeout time.Duration) *HTTPClient {
	t.Helper()
	client, err := NewHTTPClientBuilder(zerolog.Nop()).
		WithTimeout(timeout).
		WithUserAgent("linkcheck-test").
		Build()
	require.NoError(t, err)
	return client
}

func TestHTTPClient_GetAndHead(t *testing.T) {
	var gotUA, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.UserAgent()
		gotMethod = r.Method
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte("<html>ok</html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := newTestClient(t, 2*time.Second)
	ctx := context.Background()

	resp, err := client.Do(&HTTPRequest{URL: srv.URL + "/ok", Method: http.MethodGet, Context: ctx})
	require.NoError(t, err)
	assert.True(t, resp.IsSuccess())
	assert.Equal(t, "<html>ok</html>", string(resp.Body))
	assert.Equal(t, "linkcheck-test", gotUA)
	assert.Equal(t, http.MethodGet, gotMethod)

	resp, err = client.Head(ctx, srv.URL+"/missing")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, resp.IsSuccess())
	assert.Empty(t, resp.Body)
	assert.Equal(t, http.MethodHead, gotMethod)
}

func TestHTTPClient_FollowsRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	resp, err := newTestClient(t, 2*time.Second).Head(context.Background(), srv.URL+"/old")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, srv.URL+"/new", resp.FinalURL)
}

func TestHTTPClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := newTestClient(t, 50*time.Millisecond).Head(context.Background(), srv.URL+"/slow")
	require.Error(t, err)

	var netErr *common.NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, common.ReasonTimeout, netErr.Reason)
	assert.ErrorIs(t, err, common.ErrTimeout)
	assert.True(t, IsTimeout(err))
}

func TestHTTPClient_ConnectionRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	_, err = newTestClient(t, time.Second).Head(context.Background(), "http://"+addr+"/")
	require.Error(t, err)

	var netErr *common.NetworkError
	assert.True(t, errors.As(err, &netErr))
	assert.ErrorIs(t, err, common.ErrNetworkFailure)
	assert.NotErrorIs(t, err, common.ErrTimeout)
	assert.False(t, IsTimeout(err))
}

func TestHTTPClient_MaxContentSize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("0123456789"))
	}))
	defer srv.Close()

	client, err := NewHTTPClientBuilder(zerolog.Nop()).WithMaxContentSize(4).Build()
	require.NoError(t, err)

	resp, err := client.Do(&HTTPRequest{URL: srv.URL, Method: http.MethodGet})
	require.NoError(t, err)
	assert.Equal(t, "0123", string(resp.Body))
}

func TestHTTPClient_RedirectPolicy(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/r1", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/r2", http.StatusFound)
	})
	mux.HandleFunc("/r2", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/end", http.StatusFound)
	})
	mux.HandleFunc("/end", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	ctx := context.Background()

	noFollow, err := NewHTTPClientBuilder(zerolog.Nop()).WithFollowRedirects(false).Build()
	require.NoError(t, err)
	resp, err := noFollow.Head(ctx, srv.URL+"/r1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	limited, err := NewHTTPClientBuilder(zerolog.Nop()).WithMaxRedirects(1).Build()
	require.NoError(t, err)
	_, err = limited.Head(ctx, srv.URL+"/r1")
	assert.ErrorIs(t, err, common.ErrNetworkFailure)

	resp, err = limited.Head(ctx, srv.URL+"/r2")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestIsTimeout(t *testing.T) {
	assert.False(t, IsTimeout(nil))
	assert.False(t, IsTimeout(errors.New("boom")))
	assert.True(t, IsTimeout(context.DeadlineExceeded))
}
