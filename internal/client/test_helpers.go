package client

import (
	"github.com/fivetwenty-io/cda/pkg/cda"
)

// NewTestClient creates a client pointed at a test server, bypassing the
// facade's endpoint resolution.
func NewTestClient(baseURL, spaceID string) *Client {
	client, err := New(&cda.Config{
		SpaceID:  spaceID,
		Token:    "test-token",
		Endpoint: baseURL,
	})
	if err != nil {
		panic(err)
	}

	return client
}
