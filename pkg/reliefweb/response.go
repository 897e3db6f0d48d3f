package reliefweb

// APIResponse is the paginated envelope every endpoint returns. T is the
// field schema of the resource being listed.
//
// Single-item lookups come back in the same shape with a one-element Data
// slice; index into Data[0] for the record.
type APIResponse[T any] struct {
	// Href is the URL of this resource.
	Href *string `json:"href,omitempty" yaml:"href,omitempty"`
	// Time is the server-side timing of the response, in milliseconds.
	Time *int `json:"time,omitempty" yaml:"time,omitempty"`
	// Links holds pagination navigation links.
	Links *Links `json:"links,omitempty" yaml:"links,omitempty"`
	// TotalCount is the number of items across all pages. Nil means the
	// API omitted the count, which is distinct from zero results.
	TotalCount *int `json:"totalCount,omitempty" yaml:"totalCount,omitempty"`
	// Count is the number of items in this response.
	Count *int `json:"count,omitempty" yaml:"count,omitempty"`
	// Data is the list of items returned by the API.
	Data []Item[T] `json:"data" yaml:"data"`
}

// Links holds pagination and related links for a response.
type Links struct {
	// Self links to the current page of results.
	Self *Link `json:"self,omitempty" yaml:"self,omitempty"`
	// Next links to the next page of results, if available.
	Next *Link `json:"next,omitempty" yaml:"next,omitempty"`
	// Prev links to the previous page of results, if available.
	Prev *Link `json:"prev,omitempty" yaml:"prev,omitempty"`
}

// Link is a single URL returned by the API.
type Link struct {
	Href string `json:"href" yaml:"href"`
}

// Item is an individual record in an APIResponse.
type Item[T any] struct {
	// ID is the unique identifier for this item.
	ID string `json:"id" yaml:"id"`
	// Score is the relevance of this item, present on search results.
	Score *int `json:"score,omitempty" yaml:"score,omitempty"`
	// Fields holds the resource's schema-typed payload.
	Fields T `json:"fields" yaml:"fields"`
	// Href is the URL of this item's API resource.
	Href *string `json:"href,omitempty" yaml:"href,omitempty"`
}
