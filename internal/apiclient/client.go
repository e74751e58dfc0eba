// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/net/publicsuffix"

	"github.com/tomtom215/skillsdisplay/internal/logging"
	"github.com/tomtom215/skillsdisplay/internal/metrics"
)

// Options configures a Client.
type Options struct {
	// Timeout bounds each request. Zero means no timeout; callers cancel
	// through the context instead.
	Timeout time.Duration

	// HTTPClient replaces the default transport. It is copied, and given a
	// cookie jar if it has none.
	HTTPClient *http.Client

	// UserAgent is sent on every request when non-empty.
	UserAgent string
}

// Client sends requests to the skills API on behalf of one or more facades.
//
// Facades built on the same Client share its bearer token and its cookie jar,
// so a session cookie or token set through one facade applies to all of them.
// Nothing else is shared: there is no retry, no response cache and no
// request queue.
type Client struct {
	httpClient *http.Client
	userAgent  string

	mu    sync.RWMutex
	token string
}

// New creates a Client with a cookie jar, so cookies set by the backend are
// forwarded on later requests the way a browser forwards credentials.
func New(opts Options) (*Client, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	hc := &http.Client{}
	if opts.HTTPClient != nil {
		copied := *opts.HTTPClient
		hc = &copied
	}
	if hc.Jar == nil {
		hc.Jar = jar
	}
	if opts.Timeout > 0 {
		hc.Timeout = opts.Timeout
	}

	return &Client{
		httpClient: hc,
		userAgent:  opts.UserAgent,
	}, nil
}

// SetToken sets the bearer token sent on every subsequent request.
// An empty token removes the Authorization header entirely.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Token returns the current bearer token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// GetJSON issues a GET and decodes the JSON response into out.
// operation names the call in logs and metrics.
func (c *Client) GetJSON(ctx context.Context, operation, rawURL string, query url.Values, out interface{}) error {
	body, err := c.do(ctx, operation, http.MethodGet, withQuery(rawURL, query), nil)
	if err != nil {
		return err
	}
	return decode(operation, body, out)
}

// GetText issues a GET and returns the raw response body.
func (c *Client) GetText(ctx context.Context, operation, rawURL string, query url.Values) (string, error) {
	body, err := c.do(ctx, operation, http.MethodGet, withQuery(rawURL, query), nil)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// PostJSON encodes payload as the JSON request body, issues a POST and
// decodes the JSON response into out.
func (c *Client) PostJSON(ctx context.Context, operation, rawURL string, payload, out interface{}) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: failed to encode request body: %w", operation, err)
	}

	body, err := c.do(ctx, operation, http.MethodPost, rawURL, encoded)
	if err != nil {
		return err
	}
	return decode(operation, body, out)
}

// do performs exactly one request and returns the body of a 2xx response.
func (c *Client) do(ctx context.Context, operation, method, rawURL string, payload []byte) ([]byte, error) {
	var reqBody io.Reader = http.NoBody
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", operation, err)
	}
	c.setHeaders(ctx, req, payload != nil)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordClientRequest(operation, method, 0, time.Since(start))
		logging.Ctx(ctx).Debug().Err(err).
			Str("operation", operation).
			Str("method", method).
			Str("url", rawURL).
			Msg("Skills API request failed")
		return nil, fmt.Errorf("%s: request to %s failed: %w", operation, rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	duration := time.Since(start)
	metrics.RecordClientRequest(operation, method, resp.StatusCode, duration)
	observeServerHeaders(ctx, resp.Header)

	logging.Ctx(ctx).Debug().
		Str("operation", operation).
		Str("method", method).
		Str("url", rawURL).
		Int("status", resp.StatusCode).
		Dur("duration", duration).
		Msg("Skills API request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ResponseError{
			Operation:  operation,
			Method:     method,
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Body:       readBodyForError(resp.Body),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read response body: %w", operation, err)
	}
	return body, nil
}

func (c *Client) setHeaders(ctx context.Context, req *http.Request, hasBody bool) {
	req.Header.Set("Accept", "application/json, text/plain, */*")
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	requestID := logging.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = logging.GenerateRequestID()
	}
	req.Header.Set("X-Request-ID", requestID)

	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// withQuery appends the encoded query to rawURL. Empty values are kept, so
// userId="" is sent as "userId=".
func withQuery(rawURL string, query url.Values) string {
	if len(query) == 0 {
		return rawURL
	}
	sep := "?"
	if strings.Contains(rawURL, "?") {
		sep = "&"
	}
	return rawURL + sep + query.Encode()
}

// decode unmarshals body into out. An empty body leaves out untouched.
func decode(operation string, body []byte, out interface{}) error {
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", operation, err)
	}
	return nil
}
