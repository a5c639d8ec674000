package cdaclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/cda/internal/client"
	"github.com/fivetwenty-io/cda/pkg/cda"
)

// New creates a new Content Delivery API client from config. Construction
// fails immediately on missing space ID or token; nothing is fetched until
// the first request.
func New(config *cda.Config) (cda.Client, error) {
	if config == nil {
		return nil, cda.ErrConfigRequired
	}

	if config.Endpoint != "" {
		config.Endpoint = normalizeEndpoint(config.Endpoint)
	}

	cli, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return cli, nil
}

// NewWithSpace creates a client for the production API.
func NewWithSpace(spaceID, token string) (cda.Client, error) {
	return New(&cda.Config{
		SpaceID: spaceID,
		Token:   token,
	})
}

// NewPreview creates a client for the preview API.
func NewPreview(spaceID, token string) (cda.Client, error) {
	return New(&cda.Config{
		SpaceID: spaceID,
		Token:   token,
		Preview: true,
	})
}

// normalizeEndpoint trims a trailing slash and defaults the scheme to https.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}
