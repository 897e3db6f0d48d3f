package reliefweb

import (
	"context"
	"time"
)

// PublicHost is the host of the public API instance.
const PublicHost = "api.reliefweb.int"

// APIVersion is the API specification version used as the base path segment.
// V1 is deprecated; V2 is fully compatible with it.
type APIVersion string

// Supported API versions.
const (
	V1 APIVersion = "v1"
	V2 APIVersion = "v2"
)

// GetOptions narrows a single-item lookup. All fields are optional; the
// other QueryParams capabilities do not apply to item lookups.
type GetOptions struct {
	// Profile selects which sets of fields the item returns.
	Profile Profile
	// Include lists field paths to return.
	Include []string
	// Exclude lists field paths to drop.
	Exclude []string
}

// ResourceClient is the generic read surface of one resource collection.
// T is the resource's field schema.
type ResourceClient[T any] interface {
	// List fetches a page of items. A nil params sends only the
	// application identity.
	List(ctx context.Context, params *QueryParams) (*APIResponse[T], error)
	// Get fetches a single item by id. The API wraps the item in the
	// usual envelope with a one-element Data slice.
	Get(ctx context.Context, id string, opts *GetOptions) (*APIResponse[T], error)
}

// Per-resource client aliases.
type (
	ReportsClient   = ResourceClient[ReportFields]
	DisastersClient = ResourceClient[DisasterFields]
	CountriesClient = ResourceClient[CountryFields]
	JobsClient      = ResourceClient[JobFields]
	TrainingClient  = ResourceClient[TrainingFields]
	SourcesClient   = ResourceClient[SourceFields]
	BlogClient      = ResourceClient[BlogFields]
	BookClient      = ResourceClient[BookFields]
)

// Client provides access to all resource endpoints. Implementations hold no
// per-call state and are safe for concurrent use.
type Client interface {
	Reports() ReportsClient
	Disasters() DisastersClient
	Countries() CountriesClient
	Jobs() JobsClient
	Training() TrainingClient
	Sources() SourcesClient
	Blog() BlogClient
	Book() BookClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a reliefweb.Client.
//
// Host and AppName are required. AppName identifies the calling application
// to the API maintainers and is attached to every request as the leading
// appname query parameter; the project asks that it be descriptive (a
// domain name or contact address works well).
type Config struct {
	// Host is the API host, e.g. reliefweb.PublicHost. No scheme.
	Host string
	// AppName identifies the calling application on every request.
	AppName string
	// Version selects the API base path segment. Defaults to V2.
	Version APIVersion

	// HTTPTimeout bounds a whole request round trip. Contexts passed to
	// client methods remain the preferred way to cancel individual calls.
	HTTPTimeout time.Duration
	// RetryMax is the maximum number of retries for transient failures
	// (>=500, 429, connection errors). Zero disables retries, which is
	// the default: retry policy belongs to the caller unless opted into.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration
	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
