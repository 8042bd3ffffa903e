// Package http implements the transport layer for the forgekit client. Each
// call acquires its own low-level HTTP client, performs exactly one
// request/response exchange, and releases it on every exit path.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/forgekit-io/forgekit/internal/constants"
	"github.com/forgekit-io/forgekit/pkg/forge"
)

const defaultUserAgent = "forgekit-client/1.0"

// Request represents a single API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response carries the status, headers, and fully-read body of an exchange.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// ClientFactory produces the low-level HTTP client used for one exchange. It
// is the hook for proxying, TLS customization, and mocking in tests.
type ClientFactory func() *http.Client

// Client issues requests against a resolved base URL. The Authorizer's
// contribution is applied to every request before any default header, and
// defaults are set-if-absent so they never displace it.
type Client struct {
	baseURL      string
	authorizer   forge.Authorizer
	factory      ClientFactory
	logger       forge.Logger
	debug        bool
	userAgent    string
	retryMax     int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug request/response logging.
func WithLogger(logger forge.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug toggles request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithClientFactory sets the factory used to build the per-call HTTP client.
func WithClientFactory(factory ClientFactory) Option {
	return func(c *Client) {
		c.factory = factory
	}
}

// WithRetryConfig enables retries on transient failures (>=500, 429, and
// connection errors). The transport performs no retries unless this is set.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryMax = retryMax
		c.retryWaitMin = waitMin
		c.retryWaitMax = waitMax
	}
}

// NewClient creates a transport bound to baseURL. A nil authorizer sends
// requests unauthenticated.
func NewClient(baseURL string, authorizer forge.Authorizer, opts ...Option) *Client {
	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		authorizer: authorizer,
		factory:    defaultClientFactory,
		userAgent:  defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

func defaultClientFactory() *http.Client {
	return &http.Client{Timeout: constants.DefaultHTTPTimeout}
}

// Do performs one request/response exchange. Non-2xx statuses return both
// the response and a *forge.APIError parsed from the body.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + "/" + strings.TrimPrefix(req.Path, "/")
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var rawBody []byte

	if req.Body != nil {
		var err error

		rawBody, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// The authorization contribution goes on first; everything after is
	// set-if-absent so it cannot displace what the authorizer wrote.
	if c.authorizer != nil {
		c.authorizer.PrepareRequest(httpReq.Request)
	}

	setIfAbsent(httpReq.Header, "Accept", "application/json")
	setIfAbsent(httpReq.Header, "User-Agent", c.userAgent)

	if rawBody != nil {
		setIfAbsent(httpReq.Header, "Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	resp, err := c.newEngine().Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": resp.StatusCode,
			"url":    fullURL,
		})
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return response, forge.ParseAPIError(resp.StatusCode, body, fullURL)
	}

	return response, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// newEngine builds the request engine for a single exchange. The underlying
// HTTP client comes from the factory, so every call gets its own handle.
func (c *Client) newEngine() *retryablehttp.Client {
	engine := retryablehttp.NewClient()
	engine.HTTPClient = c.factory()
	engine.Logger = nil
	engine.RetryMax = c.retryMax
	// Hand back the final response even when retries are exhausted, so a
	// persistent 5xx still surfaces as a status error, not a transport one.
	engine.ErrorHandler = retryablehttp.PassthroughErrorHandler

	if c.retryMax > 0 {
		engine.RetryWaitMin = c.retryWaitMin
		engine.RetryWaitMax = c.retryWaitMax
	}

	return engine
}

func setIfAbsent(header http.Header, key, value string) {
	if header.Get(key) == "" {
		header.Set(key, value)
	}
}
