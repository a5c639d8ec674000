// Package cdaclient provides the main entry point for creating Content
// Delivery API clients.
//
// New validates the configuration eagerly (space ID and access token are
// required), resolves the effective endpoint (explicit endpoint, preview
// flag, or the production CDN default), and wires transport, metadata cache,
// and fetch orchestration together behind the cda.Client interface.
//
//	cli, err := cdaclient.New(&cda.Config{
//	  SpaceID: "cfexampleapi",
//	  Token:   "b4c0n73n7fu1",
//	})
//
// For the common cases there are shorthand constructors:
//
//	cli, err := cdaclient.NewWithSpace("cfexampleapi", "b4c0n73n7fu1")
//	cli, err := cdaclient.NewPreview("cfexampleapi", "preview-token")
package cdaclient
