package reliefweb

import (
	"net/url"
	"strconv"
	"strings"
)

// Operator controls how multiple values or conditions are combined.
type Operator string

// Combination operators accepted by the API.
const (
	OperatorAnd Operator = "AND"
	OperatorOr  Operator = "OR"
)

// Profile selects which sets of fields a record returns.
type Profile string

// Available profiles.
const (
	// ProfileMinimal returns just the title or name field.
	ProfileMinimal Profile = "minimal"
	// ProfileFull returns all fields.
	ProfileFull Profile = "full"
	// ProfileList returns results suited to lists and tables.
	ProfileList Profile = "list"
)

// Preset is a shorthand bundle of filters, sort order, and status defaults
// for common use cases. Similar to Profile but with more opinions.
type Preset string

// Available presets.
const (
	// PresetMinimal applies sensible status filters for most requests.
	PresetMinimal Preset = "minimal"
	// PresetLatest sorts by date for appropriate content types. Countries
	// and sources are sorted by id. Use this for list requests.
	PresetLatest Preset = "latest"
	// PresetAnalysis includes archived disasters and expired jobs and
	// training which otherwise would be excluded from results.
	PresetAnalysis Preset = "analysis"
)

// SortDirection is the ordering direction for a sort field.
type SortDirection string

// Sort directions.
const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SearchQuery is a free-text search clause.
type SearchQuery struct {
	// Value is what to search for. Required for all queries.
	Value string
	// Fields restricts which fields the search runs against.
	Fields []string
	// Operator controls how spaces in Value are interpreted. The API
	// defaults to OR when unset.
	Operator Operator
}

// Filter narrows down the content to be searched in. Filters correspond to
// the "refine" section of the ReliefWeb search bar.
type Filter struct {
	// Field is the field to filter on.
	Field string
	// Value is the value to filter for. Dates and numeric fields accept
	// from/to range syntax; when empty the filter acts on field existence.
	Value string
	// Operator controls how filter values or conditions combine.
	Operator Operator
	// Negate selects all items that do not match the filter.
	Negate bool
}

// SortDescriptor orders results by a field in a given direction.
type SortDescriptor struct {
	Field     string
	Direction SortDirection
}

// Pair is a single query-string parameter. Pairs are kept as an ordered
// sequence rather than a url.Values map because the API's array-indexing
// convention makes emission order observable.
type Pair struct {
	Key   string
	Value string
}

// QueryParams describes the filtering, search, sort, paging, and field
// selection intent of a single request. The zero value is valid and
// contributes nothing to the query string.
//
// Insertion order of queries, filters, sorts, and include/exclude entries is
// significant: it determines array indices in the encoded output and, for
// sorts, the priority of the sorting.
type QueryParams struct {
	// Queries are free-text search clauses.
	Queries []SearchQuery
	// Filters are refinement conditions.
	Filters []Filter
	// Verbose adds a details section to the response echoing how the GET
	// parameters were translated, useful when debugging encodings.
	Verbose *bool
	// Limit is how many results to return. The API accepts 0-1000 and
	// defaults to 10; out-of-range values are rejected remotely, not here.
	Limit *int
	// Offset is how many results to skip.
	Offset *int
	// Sort holds sortable field names and directions. Requests with a
	// query are sorted by relevance when no sort is given.
	Sort []SortDescriptor
	// Profile selects which sets of fields to include in results.
	Profile Profile
	// Preset applies opinionated filter/sort defaults.
	Preset Preset
	// Include lists field paths to return, combined with Profile.
	Include []string
	// Exclude lists field paths to drop from results.
	Exclude []string
}

// NewQueryParams creates an empty set of query parameters.
func NewQueryParams() *QueryParams {
	return &QueryParams{}
}

// WithQuery appends a free-text search clause.
func (q *QueryParams) WithQuery(query SearchQuery) *QueryParams {
	q.Queries = append(q.Queries, query)

	return q
}

// WithQueries appends multiple free-text search clauses.
func (q *QueryParams) WithQueries(queries ...SearchQuery) *QueryParams {
	q.Queries = append(q.Queries, queries...)

	return q
}

// WithFilter appends a refinement condition.
func (q *QueryParams) WithFilter(filter Filter) *QueryParams {
	q.Filters = append(q.Filters, filter)

	return q
}

// WithFilters appends multiple refinement conditions.
func (q *QueryParams) WithFilters(filters ...Filter) *QueryParams {
	q.Filters = append(q.Filters, filters...)

	return q
}

// WithVerbose toggles the response's parameter-echo section.
func (q *QueryParams) WithVerbose(verbose bool) *QueryParams {
	q.Verbose = &verbose

	return q
}

// WithLimit sets the maximum number of results to return.
func (q *QueryParams) WithLimit(limit int) *QueryParams {
	q.Limit = &limit

	return q
}

// WithOffset sets the number of results to skip.
func (q *QueryParams) WithOffset(offset int) *QueryParams {
	q.Offset = &offset

	return q
}

// WithSort appends a sort descriptor. Earlier sorts take priority.
func (q *QueryParams) WithSort(field string, direction SortDirection) *QueryParams {
	q.Sort = append(q.Sort, SortDescriptor{Field: field, Direction: direction})

	return q
}

// WithSorts appends multiple sort descriptors.
func (q *QueryParams) WithSorts(sorts ...SortDescriptor) *QueryParams {
	q.Sort = append(q.Sort, sorts...)

	return q
}

// WithProfile sets the field-set profile.
func (q *QueryParams) WithProfile(profile Profile) *QueryParams {
	q.Profile = profile

	return q
}

// WithPreset sets the use-case preset.
func (q *QueryParams) WithPreset(preset Preset) *QueryParams {
	q.Preset = preset

	return q
}

// WithInclude appends field paths to return in the result.
func (q *QueryParams) WithInclude(fields ...string) *QueryParams {
	q.Include = append(q.Include, fields...)

	return q
}

// WithExclude appends field paths to exclude from the result.
func (q *QueryParams) WithExclude(fields ...string) *QueryParams {
	q.Exclude = append(q.Exclude, fields...)

	return q
}

// Pairs translates the parameters into the ordered key/value sequence
// expected by the API. Unset optional fields emit no pair at all. Array
// indices in the emitted keys are the 0-based positions of the entries in
// the corresponding slices.
//
//nolint:funlen // Emission order is a single flat contract; splitting it obscures the sequence.
func (q *QueryParams) Pairs() []Pair {
	if q == nil {
		return nil
	}

	var pairs []Pair

	appendPair := func(key, value string) {
		pairs = append(pairs, Pair{Key: key, Value: value})
	}

	if q.Verbose != nil {
		if *q.Verbose {
			appendPair("verbose", "1")
		} else {
			appendPair("verbose", "0")
		}
	}

	if q.Limit != nil {
		appendPair("limit", strconv.Itoa(*q.Limit))
	}

	if q.Offset != nil {
		appendPair("offset", strconv.Itoa(*q.Offset))
	}

	if q.Profile != "" {
		appendPair("profile", string(q.Profile))
	}

	if q.Preset != "" {
		appendPair("preset", string(q.Preset))
	}

	for _, include := range q.Include {
		appendPair("fields[include][]", include)
	}

	for _, exclude := range q.Exclude {
		appendPair("fields[exclude][]", exclude)
	}

	for i, query := range q.Queries {
		prefix := "query[" + strconv.Itoa(i) + "]"
		appendPair(prefix+"[value]", query.Value)

		for j, field := range query.Fields {
			appendPair(prefix+"[fields]["+strconv.Itoa(j)+"]", field)
		}

		if query.Operator != "" {
			appendPair(prefix+"[operator]", string(query.Operator))
		}
	}

	if len(q.Filters) > 0 {
		// The first per-filter operator found becomes the group operator.
		// The API treats filter[operator] as the default for combining
		// conditions; later per-filter operators are still emitted below.
		for _, filter := range q.Filters {
			if filter.Operator != "" {
				appendPair("filter[operator]", string(filter.Operator))

				break
			}
		}

		for i, filter := range q.Filters {
			prefix := "filter[conditions][" + strconv.Itoa(i) + "]"
			appendPair(prefix+"[field]", filter.Field)
			appendPair(prefix+"[value][]", filter.Value)

			if filter.Negate {
				appendPair(prefix+"[negate]", "1")
			}

			if filter.Operator != "" {
				appendPair(prefix+"[operator]", string(filter.Operator))
			}
		}
	}

	for _, sort := range q.Sort {
		appendPair("sort[]", sort.Field+":"+string(sort.Direction))
	}

	return pairs
}

// Encode serializes the parameters as an application/x-www-form-urlencoded
// query string, preserving emission order. Spaces encode as "+" and literal
// plus signs as "%2B". Returns "" when nothing is set.
func (q *QueryParams) Encode() string {
	pairs := q.Pairs()
	if len(pairs) == 0 {
		return ""
	}

	var builder strings.Builder

	for i, pair := range pairs {
		if i > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(url.QueryEscape(pair.Key))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(pair.Value))
	}

	return builder.String()
}
