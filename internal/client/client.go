// Package client provides the concrete implementation of reliefweb.Client.
package client

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/reliefweb-go/reliefweb/internal/constants"
	"github.com/reliefweb-go/reliefweb/internal/http"
	"github.com/reliefweb-go/reliefweb/pkg/reliefweb"
)

// Client implements the reliefweb.Client interface. It is immutable after
// construction and safe for concurrent use.
type Client struct {
	httpClient *http.Client
	logger     reliefweb.Logger

	reports   reliefweb.ReportsClient
	disasters reliefweb.DisastersClient
	countries reliefweb.CountriesClient
	jobs      reliefweb.JobsClient
	training  reliefweb.TrainingClient
	sources   reliefweb.SourcesClient
	blog      reliefweb.BlogClient
	book      reliefweb.BookClient
}

// New creates a client from a validated config and an explicit transport
// scheme. Base URL assembly failures are construction errors; the caller
// must not proceed with the returned client when err is non-nil.
func New(scheme string, config *reliefweb.Config) (*Client, error) {
	if config == nil {
		return nil, reliefweb.ErrConfigRequired
	}

	if scheme == "" {
		return nil, reliefweb.ErrSchemeRequired
	}

	if config.Host == "" {
		return nil, reliefweb.ErrHostRequired
	}

	if config.AppName == "" {
		return nil, reliefweb.ErrAppNameRequired
	}

	version := config.Version
	if version == "" {
		version = reliefweb.V2
	}

	baseURL, err := parseBaseURL(scheme, config.Host, version)
	if err != nil {
		return nil, err
	}

	httpClient := http.NewClient(baseURL, config.AppName, httpOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		logger:     config.Logger,
	}
	client.initializeEndpoints()

	return client, nil
}

// parseBaseURL builds and validates the API base, e.g.
// "https://api.reliefweb.int/v2/".
func parseBaseURL(scheme, host string, version reliefweb.APIVersion) (*url.URL, error) {
	raw := fmt.Sprintf("%s://%s/%s/", scheme, host, version)

	baseURL, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", reliefweb.ErrInvalidEndpoint, raw, err)
	}

	// url.Parse is lenient; a host containing spaces or a lost scheme
	// still parses. Reject anything that did not survive intact.
	if baseURL.Scheme != scheme || baseURL.Host == "" || strings.ContainsAny(host, " /?#") {
		return nil, fmt.Errorf("%w: %q", reliefweb.ErrInvalidEndpoint, raw)
	}

	return baseURL, nil
}

// httpOptions builds transport options from config.
func httpOptions(config *reliefweb.Config) []http.Option {
	var opts []http.Option

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		opts = append(opts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return opts
}

// initializeEndpoints binds one endpoint per resource collection.
func (c *Client) initializeEndpoints() {
	c.reports = NewResourceEndpoint[reliefweb.ReportFields](c.httpClient, "reports")
	c.disasters = NewResourceEndpoint[reliefweb.DisasterFields](c.httpClient, "disasters")
	c.countries = NewResourceEndpoint[reliefweb.CountryFields](c.httpClient, "countries")
	c.jobs = NewResourceEndpoint[reliefweb.JobFields](c.httpClient, "jobs")
	c.training = NewResourceEndpoint[reliefweb.TrainingFields](c.httpClient, "training")
	c.sources = NewResourceEndpoint[reliefweb.SourceFields](c.httpClient, "sources")
	c.blog = NewResourceEndpoint[reliefweb.BlogFields](c.httpClient, "blog")
	c.book = NewResourceEndpoint[reliefweb.BookFields](c.httpClient, "book")
}

// Reports implements reliefweb.Client.Reports.
func (c *Client) Reports() reliefweb.ReportsClient {
	return c.reports
}

// Disasters implements reliefweb.Client.Disasters.
func (c *Client) Disasters() reliefweb.DisastersClient {
	return c.disasters
}

// Countries implements reliefweb.Client.Countries.
func (c *Client) Countries() reliefweb.CountriesClient {
	return c.countries
}

// Jobs implements reliefweb.Client.Jobs.
func (c *Client) Jobs() reliefweb.JobsClient {
	return c.jobs
}

// Training implements reliefweb.Client.Training.
func (c *Client) Training() reliefweb.TrainingClient {
	return c.training
}

// Sources implements reliefweb.Client.Sources.
func (c *Client) Sources() reliefweb.SourcesClient {
	return c.sources
}

// Blog implements reliefweb.Client.Blog.
func (c *Client) Blog() reliefweb.BlogClient {
	return c.blog
}

// Book implements reliefweb.Client.Book.
func (c *Client) Book() reliefweb.BookClient {
	return c.book
}

// BaseURL exposes the resolved API base for logging and tests.
func (c *Client) BaseURL() *url.URL {
	return c.httpClient.BaseURL()
}
