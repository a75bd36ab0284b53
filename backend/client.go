// Package backend is the portal's only door to the N.E.T.R.A. API. Every backend operation
// has one method here; each takes the caller's bearer token and returns decoded JSON or a
// *RequestError. There are no retries: a failed call is reported and the user tries again.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Client talks to a single backend base URL.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger attaches a logger for per-call debug lines.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// New returns a client for the backend rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend root this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type call struct {
	method      string
	path        string
	query       url.Values
	token       string
	body        io.Reader
	contentType string
	fallback    string
}

// do performs one round trip. Non-2xx responses are converted into a *RequestError and the
// body is consumed; on success the caller owns resp.Body.
func (c *Client) do(ctx context.Context, cl call) (*http.Response, error) {
	target := c.baseURL + cl.path
	if len(cl.query) > 0 {
		target += "?" + cl.query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, cl.method, target, cl.body)
	if err != nil {
		return nil, &RequestError{Detail: cl.fallback, cause: errors.Wrap(err, "build request")}
	}
	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if cl.token != "" {
		req.Header.Set("Authorization", "Bearer "+cl.token)
	}
	if cl.contentType != "" {
		req.Header.Set("Content-Type", cl.contentType)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("backend call failed",
			zap.String("request_id", requestID),
			zap.String("method", cl.method),
			zap.String("path", cl.path),
			zap.Error(err))
		return nil, &RequestError{Detail: cl.fallback, cause: errors.Wrapf(err, "%s %s", cl.method, cl.path)}
	}
	c.log.Debug("backend call",
		zap.String("request_id", requestID),
		zap.String("method", cl.method),
		zap.String("path", cl.path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return nil, newRequestError(resp.StatusCode, body, cl.fallback)
	}
	return resp, nil
}

// fetch performs cl and decodes a JSON response into out (when out is non-nil).
func (c *Client) fetch(ctx context.Context, cl call, out interface{}) error {
	resp, err := c.do(ctx, cl)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RequestError{Status: resp.StatusCode, Detail: cl.fallback, cause: errors.Wrap(err, "decode response")}
	}
	return nil
}

func (c *Client) get(ctx context.Context, token, path string, query url.Values, fallback string, out interface{}) error {
	return c.fetch(ctx, call{method: http.MethodGet, path: path, query: query, token: token, fallback: fallback}, out)
}

func (c *Client) sendJSON(ctx context.Context, method, token, path string, query url.Values, in interface{}, fallback string, out interface{}) error {
	cl := call{method: method, path: path, query: query, token: token, fallback: fallback}
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return &RequestError{Detail: fallback, cause: errors.Wrap(err, "encode request")}
		}
		cl.body = bytes.NewReader(buf)
		cl.contentType = "application/json"
	}
	return c.fetch(ctx, cl, out)
}
