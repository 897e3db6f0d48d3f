// Package reliefweb provides types, interfaces, and query helpers for
// working with OCHA's ReliefWeb API.
//
// # Overview
//
// The reliefweb package defines the field schemas of each resource the API
// exposes (reports, disasters, countries, jobs, training, sources, blog,
// book), the paginated response envelope they share, and the QueryParams
// builder that expresses search, filtering, sorting, paging, and field
// selection. A concrete client implementation is provided by the rwclient
// package, which wires configuration and transport. Most consumers should
// import rwclient to construct a client and then interact with the resource
// client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/reliefweb-go/reliefweb/pkg/reliefweb"
//	  "github.com/reliefweb-go/reliefweb/pkg/rwclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := rwclient.New(&reliefweb.Config{
//	    Host:    reliefweb.PublicHost,
//	    AppName: "example.com-crisis-dashboard",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  reports, err := cli.Reports().List(ctx, reliefweb.NewQueryParams().WithLimit(10))
//	  if err != nil { log.Fatal(err) }
//	  _ = reports
//	}
//
// # Queries
//
// Use QueryParams to express list options. The order of appended queries,
// filters, and sorts is meaningful: it drives the array indices the API
// sees and the priority of sorting. The API returns at most Limit results
// per call and callers page explicitly with Offset; there is no automatic
// page walking.
//
//	params := reliefweb.NewQueryParams().
//	  WithQuery(reliefweb.SearchQuery{Value: "cholera", Fields: []string{"title"}}).
//	  WithFilter(reliefweb.Filter{Field: "primary_country.iso3", Value: "moz"}).
//	  WithSort("date.created", reliefweb.SortDesc).
//	  WithLimit(20)
//
// # Errors
//
// Construction problems surface as static errors (ErrHostRequired,
// ErrInvalidEndpoint, ...). Request failures are RequestError, non-2xx
// answers are StatusError, and malformed bodies are DecodeError. Helpers
// such as IsNotFound make it easy to branch on common cases.
package reliefweb
