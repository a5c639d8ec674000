package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/cda/internal/http"
	"github.com/fivetwenty-io/cda/pkg/cda"
)

// AssetsClient implements cda.AssetsClient. Assets carry no content type, so
// no dictionary resolution is involved; every call is a stateless
// pass-through to the network.
type AssetsClient struct {
	httpClient *http.Client
	resolver   *Resolver
}

// NewAssetsClient creates a new assets client.
func NewAssetsClient(httpClient *http.Client, resolver *Resolver) *AssetsClient {
	return &AssetsClient{
		httpClient: httpClient,
		resolver:   resolver,
	}
}

// Get implements cda.AssetsClient.Get.
func (c *AssetsClient) Get(ctx context.Context, id string) (*cda.Asset, error) {
	if id == "" {
		return nil, cda.ErrAssetIDRequired
	}

	resp, err := c.httpClient.Get(ctx, c.resolver.path("assets")+"/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting asset: %w", err)
	}

	return decodeAsset(resp.Body)
}

// List implements cda.AssetsClient.List.
func (c *AssetsClient) List(ctx context.Context, params *cda.QueryParams) (*cda.AssetCollection, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, c.resolver.path("assets"), query)
	if err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}

	return decodeAssets(resp.Body)
}
