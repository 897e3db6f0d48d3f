// Package http wraps the underlying HTTP transport for the ReliefWeb API.
// It owns the base URL and the application identity, and guarantees that
// every outgoing request leads its query string with the appname parameter.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/reliefweb-go/reliefweb/internal/constants"
	"github.com/reliefweb-go/reliefweb/pkg/reliefweb"
)

// Client is the HTTP transport for API requests. It is safe for concurrent
// use; it holds no per-call state.
type Client struct {
	baseURL    *url.URL
	appName    string
	httpClient *retryablehttp.Client
	logger     reliefweb.Logger
	debug      bool
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger reliefweb.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
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

// WithRetryConfig enables retries for transient failures. Retries are off
// by default; transient-failure policy belongs to the caller.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithHTTPTimeout bounds a whole request round trip.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// NewClient creates a transport bound to a fully resolved base URL (scheme,
// host, version path) and an application identity.
func NewClient(baseURL *url.URL, appName string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	// Hand back the final response instead of an opaque "giving up" error so
	// non-2xx statuses surface as StatusError with the body attached.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    baseURL,
		appName:    appName,
		httpClient: retryClient,
		userAgent:  constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Response wraps an HTTP response body and status.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Get issues a GET for the given resource path (relative to the base URL,
// e.g. "reports" or "reports/123"). The query string always starts with the
// appname pair; params, when non-nil, contribute their encoded pairs after
// it, in emission order.
func (c *Client) Get(ctx context.Context, path string, params *reliefweb.QueryParams) (*Response, error) {
	target := c.baseURL.JoinPath(path)

	rawQuery := constants.AppNameParam + "=" + url.QueryEscape(c.appName)
	if encoded := params.Encode(); encoded != "" {
		rawQuery += "&" + encoded
	}

	target.RawQuery = rawQuery

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": http.MethodGet,
			"url":    target.String(),
		})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &reliefweb.RequestError{URL: target.String(), Err: err}
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &reliefweb.RequestError{URL: target.String(), Err: err}
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": resp.StatusCode,
			"url":    target.String(),
			"bytes":  len(body),
		})
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return response, &reliefweb.StatusError{
			StatusCode: resp.StatusCode,
			URL:        target.String(),
			Body:       body,
		}
	}

	return response, nil
}

// BaseURL returns the resolved API base.
func (c *Client) BaseURL() *url.URL {
	return c.baseURL
}
