// Package transport provides the concrete HttpClient implementation the
// core downloader consumes: a tuned *http.Client wrapping the metadata
// probe, ranged GET, and full GET request shapes.
package transport

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"syscall"
	"time"

	"github.com/tanq16/fetchcore/internal/core"
)

// Config tunes the underlying transport and request headers.
type Config struct {
	Timeout        time.Duration
	KeepAlive      time.Duration
	ProxyURL       string
	ProxyUsername  string
	ProxyPassword  string
	UserAgent      string
	Headers        map[string]string
	HighThreadMode bool // enables tuned socket buffers for high-parallelism fetches
}

// Client is a core.HttpClient backed by net/http.
type Client struct {
	http   *http.Client
	cfg    Config
}

// New builds a Client from cfg. Zero-value Timeout/KeepAlive fall back to
// 60s, matching the defaults a single-URL downloader needs.
func New(cfg Config) (*Client, error) {
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.KeepAlive == 0 {
		cfg.KeepAlive = 60 * time.Second
	}

	transport := &http.Transport{
		IdleConnTimeout:     cfg.KeepAlive,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		DisableCompression:  true,
	}

	if cfg.HighThreadMode {
		transport.DialContext = (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
			Control: func(network, address string, c syscall.RawConn) error {
				return c.Control(func(fd uintptr) {
					setSocketOptions(fd)
				})
			},
		}).DialContext
	}

	if cfg.ProxyURL != "" {
		proxyURL, err := url.Parse(cfg.ProxyURL)
		if err != nil {
			return nil, &core.InvalidConfigError{Field: "ProxyURL", Message: err.Error()}
		}
		if cfg.ProxyUsername != "" {
			if cfg.ProxyPassword != "" {
				proxyURL.User = url.UserPassword(cfg.ProxyUsername, cfg.ProxyPassword)
			} else {
				proxyURL.User = url.User(cfg.ProxyUsername)
			}
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	return &Client{
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		cfg: cfg,
	}, nil
}

func (c *Client) applyHeaders(req *http.Request) {
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	} else {
		req.Header.Set("User-Agent", "fetchcore")
	}
	for k, v := range c.cfg.Headers {
		req.Header.Set(k, v)
	}
}

// FetchMetadata issues a HEAD request and reports Content-Length and
// whether the origin advertises byte-range support.
func (c *Client) FetchMetadata(ctx context.Context, rawURL string) (core.FileMetadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return core.FileMetadata{}, &core.NetworkError{Message: "building metadata request", Cause: err}
	}
	c.applyHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return core.FileMetadata{}, &core.NetworkError{Message: "metadata probe failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return core.FileMetadata{}, &core.NetworkError{Message: fmt.Sprintf("metadata probe returned status %d", resp.StatusCode)}
	}

	contentLength := resp.Header.Get("Content-Length")
	if contentLength == "" {
		return core.FileMetadata{}, &core.NetworkError{Message: "response missing Content-Length header"}
	}
	size, err := strconv.ParseInt(contentLength, 10, 64)
	if err != nil || size < 0 {
		return core.FileMetadata{}, &core.NetworkError{Message: "invalid Content-Length header", Cause: err}
	}

	return core.FileMetadata{
		ContentLength: size,
		AcceptsRanges: resp.Header.Get("Accept-Ranges") == "bytes",
	}, nil
}

// DownloadRange issues a ranged GET and requires a 206 response.
func (c *Client) DownloadRange(ctx context.Context, rawURL string, r core.ByteRange) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &core.NetworkError{Message: "building range request", Cause: err}
	}
	c.applyHeaders(req)
	req.Header.Set("Range", r.Header())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &core.NetworkError{Message: fmt.Sprintf("range request %s failed", r.Header()), Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusPartialContent {
		return nil, &core.NetworkError{Message: fmt.Sprintf("range request %s returned status %d, expected 206", r.Header(), resp.StatusCode)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &core.NetworkError{Message: fmt.Sprintf("reading range %s body", r.Header()), Cause: err}
	}
	return data, nil
}

// DownloadFull issues a plain GET and requires a 200 response.
func (c *Client) DownloadFull(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &core.NetworkError{Message: "building full download request", Cause: err}
	}
	c.applyHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &core.NetworkError{Message: "full download request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &core.NetworkError{Message: fmt.Sprintf("full download returned status %d, expected 200", resp.StatusCode)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &core.NetworkError{Message: "reading full download body", Cause: err}
	}
	return data, nil
}

// Close releases idle connections. Idempotent.
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
