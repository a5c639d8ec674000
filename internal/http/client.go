// Package http implements the transport used by the CDA client: a
// retrying HTTP client that signs every request with the space access token
// and translates non-2xx responses into cda.APIError values.
package http

import (
	"context"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/cda/internal/constants"
	"github.com/fivetwenty-io/cda/pkg/cda"
)

// Logger interface for transport logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents an HTTP request to the API.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
}

// Response represents an HTTP response from the API.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// Client is the HTTP transport. Timeout policy lives here, not in the
// layers above; retry covers transient failures (5xx, 429, connection
// errors) via retryablehttp's default policy.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient *retryablehttp.Client
	logger     Logger
	debug      bool
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger used for debug request/response logging.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging when a logger is set.
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

// WithRetryConfig tunes the retry behavior.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithHTTPClient swaps in a custom underlying *http.Client.
func WithHTTPClient(httpClient *nethttp.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// NewClient creates a new transport for baseURL, authenticating every
// request with token.
func NewClient(baseURL, token string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		userAgent:  constants.DefaultUserAgent,
		httpClient: retryClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes the request and returns the response. Non-2xx responses are
// returned together with a *cda.APIError; the response is still populated so
// callers can inspect status and headers.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
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

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": resp.StatusCode,
		})
	}

	if resp.StatusCode >= nethttp.StatusBadRequest {
		return resp, c.handleErrorResponse(resp)
	}

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: nethttp.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// GetURL performs a GET against an absolute URL on the same host, as handed
// back by the API in nextPageUrl/nextSyncUrl during synchronization.
func (c *Client) GetURL(ctx context.Context, rawURL string) (*Response, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing url: %w", err)
	}

	return c.Do(ctx, &Request{
		Method: nethttp.MethodGet,
		Path:   parsed.Path,
		Query:  parsed.Query(),
	})
}

// handleErrorResponse converts an error response body to a *cda.APIError.
func (c *Client) handleErrorResponse(resp *Response) error {
	apiErr, err := cda.ParseAPIError(resp.Body, resp.StatusCode)
	if err != nil {
		// Body was not a well-formed error document; keep the status.
		return &cda.APIError{
			Message:    strings.TrimSpace(string(resp.Body)),
			StatusCode: resp.StatusCode,
		}
	}

	return apiErr
}
