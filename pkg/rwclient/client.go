// Package rwclient provides the main entry point for creating ReliefWeb API
// clients.
package rwclient

import (
	"fmt"

	"github.com/reliefweb-go/reliefweb/internal/client"
	"github.com/reliefweb-go/reliefweb/pkg/reliefweb"
)

// New creates an API client over HTTPS. The scheme is fixed; use
// NewWithScheme to point at a local or mock instance.
func New(config *reliefweb.Config) (reliefweb.Client, error) {
	return NewWithScheme("https", config)
}

// NewWithScheme creates an API client with an explicit transport scheme.
// Intended for tests and local mirrors; production callers should use New.
func NewWithScheme(scheme string, config *reliefweb.Config) (reliefweb.Client, error) {
	apiClient, err := client.New(scheme, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithAppName creates a client for the public API instance with just an
// application identity.
func NewWithAppName(appName string) (reliefweb.Client, error) {
	return New(&reliefweb.Config{
		Host:    reliefweb.PublicHost,
		AppName: appName,
	})
}
