// Package rwclient wires configuration and transport into a working
// reliefweb.Client.
//
// # Overview
//
// rwclient is the constructor package: it validates the configuration,
// assembles the versioned base URL, and returns a client implementing the
// resource interfaces defined in the reliefweb package. The split keeps the
// domain types dependency-free while this package owns construction.
//
// Basic usage:
//
//	cli, err := rwclient.NewWithAppName("example.com-field-reports")
//	if err != nil {
//	  log.Fatal(err)
//	}
//
//	resp, err := cli.Disasters().List(ctx, reliefweb.NewQueryParams().
//	  WithPreset(reliefweb.PresetLatest).
//	  WithLimit(25))
//
// For a mock server in tests, pin the scheme and host explicitly:
//
//	cli, err := rwclient.NewWithScheme("http", &reliefweb.Config{
//	  Host:    server.Listener.Addr().String(),
//	  AppName: "testapp",
//	})
package rwclient
