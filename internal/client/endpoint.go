package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/reliefweb-go/reliefweb/internal/http"
	"github.com/reliefweb-go/reliefweb/pkg/reliefweb"
)

// ResourceEndpoint is the generic accessor for one resource collection.
// T is the field schema the API returns for this resource.
type ResourceEndpoint[T any] struct {
	httpClient *http.Client
	resource   string
}

// NewResourceEndpoint binds an endpoint to its resource path segment.
func NewResourceEndpoint[T any](httpClient *http.Client, resource string) *ResourceEndpoint[T] {
	return &ResourceEndpoint[T]{
		httpClient: httpClient,
		resource:   resource,
	}
}

// Resource returns the path segment this endpoint is bound to.
func (e *ResourceEndpoint[T]) Resource() string {
	return e.resource
}

// List implements reliefweb.ResourceClient.List.
func (e *ResourceEndpoint[T]) List(ctx context.Context, params *reliefweb.QueryParams) (*reliefweb.APIResponse[T], error) {
	resp, err := e.httpClient.Get(ctx, e.resource, params)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", e.resource, err)
	}

	return e.decode(resp.Body)
}

// Get implements reliefweb.ResourceClient.Get. Only the profile and field
// selection of opts apply to item lookups; everything else a QueryParams
// can express is ignored by the API for single items.
func (e *ResourceEndpoint[T]) Get(ctx context.Context, id string, opts *reliefweb.GetOptions) (*reliefweb.APIResponse[T], error) {
	if id == "" {
		return nil, fmt.Errorf("getting %s: %w", e.resource, reliefweb.ErrIDRequired)
	}

	params := reliefweb.NewQueryParams()

	if opts != nil {
		if opts.Profile != "" {
			params.WithProfile(opts.Profile)
		}

		if len(opts.Include) > 0 {
			params.WithInclude(opts.Include...)
		}

		if len(opts.Exclude) > 0 {
			params.WithExclude(opts.Exclude...)
		}
	}

	resp, err := e.httpClient.Get(ctx, e.resource+"/"+id, params)
	if err != nil {
		return nil, fmt.Errorf("getting %s %s: %w", e.resource, id, err)
	}

	return e.decode(resp.Body)
}

// decode parses a response body into the envelope.
func (e *ResourceEndpoint[T]) decode(body []byte) (*reliefweb.APIResponse[T], error) {
	var response reliefweb.APIResponse[T]

	err := json.Unmarshal(body, &response)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", e.resource, &reliefweb.DecodeError{Err: err})
	}

	return &response, nil
}
