package constants

import "time"

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits applied when the caller opts into retries.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Client identity.
const (
	// ClientVersion is the library version reported in the User-Agent.
	ClientVersion = "1.0.0"

	// DefaultUserAgent is sent when the config does not override it.
	DefaultUserAgent = "reliefweb-go/" + ClientVersion
)

// API parameter names shared across the client.
const (
	// AppNameParam is the query parameter carrying the application
	// identity. It must lead the query string on every request.
	AppNameParam = "appname"
)

// Service-documented query bounds. The client does not enforce these
// locally; the remote service rejects out-of-range values itself.
const (
	// MaxLimit is the largest page size the API accepts.
	MaxLimit = 1000

	// DefaultPageSize is the page size the API applies when limit is
	// absent.
	DefaultPageSize = 10
)
