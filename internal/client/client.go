package client

import (
	"context"

	"github.com/fivetwenty-io/cda/internal/constants"
	"github.com/fivetwenty-io/cda/internal/http"
	"github.com/fivetwenty-io/cda/pkg/cda"
)

// Client implements the cda.Client interface. It owns the transport, the
// metadata cache, and the resolver orchestrating the two.
type Client struct {
	httpClient *http.Client
	spaceID    string
	cache      *cda.Cache
	resolver   *Resolver
	logger     cda.Logger

	// Resource clients
	contentTypes cda.ContentTypesClient
	entries      cda.EntriesClient
	assets       cda.AssetsClient
}

// New creates a new Delivery API client. Configuration is validated eagerly:
// a missing space ID or token fails here, never lazily at the first request.
func New(config *cda.Config) (*Client, error) {
	if config == nil {
		return nil, cda.ErrConfigRequired
	}

	if config.SpaceID == "" {
		return nil, cda.ErrSpaceIDRequired
	}

	if config.Token == "" {
		return nil, cda.ErrTokenRequired
	}

	httpClient := http.NewClient(ResolveEndpoint(config), config.Token, createHTTPClientOptions(config)...)

	cache := cda.NewCache()

	client := &Client{
		httpClient: httpClient,
		spaceID:    config.SpaceID,
		cache:      cache,
		resolver:   NewResolver(httpClient, config.SpaceID, cache),
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// ResolveEndpoint resolves the effective base URL for config: an explicit
// endpoint wins, otherwise the preview flag selects the preview API,
// otherwise production.
func ResolveEndpoint(config *cda.Config) string {
	if config.Endpoint != "" {
		return config.Endpoint
	}

	if config.Preview {
		return constants.EndpointPreview
	}

	return constants.EndpointProduction
}

// createHTTPClientOptions builds transport options from config.
func createHTTPClientOptions(config *cda.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
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

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.contentTypes = NewContentTypesClient(c.resolver)
	c.entries = NewEntriesClient(c.httpClient, c.resolver)
	c.assets = NewAssetsClient(c.httpClient, c.resolver)
}

// FetchSpace implements cda.Client.FetchSpace. The fetch entry point always
// forces freshness; cache-first space resolution is internal to ResolveAll.
func (c *Client) FetchSpace(ctx context.Context) (*cda.Space, error) {
	return c.ObserveSpace().Get(ctx)
}

// FetchSpaceAsync implements cda.Client.FetchSpaceAsync.
func (c *Client) FetchSpaceAsync(ctx context.Context, cb cda.Callback[*cda.Space], exec cda.Executor) {
	c.ObserveSpace().Subscribe(ctx, cb, exec)
}

// ObserveSpace implements cda.Client.ObserveSpace. The operation is cold:
// each Get or Subscribe issues its own forced space resolution.
func (c *Client) ObserveSpace() *cda.Operation[*cda.Space] {
	return cda.NewOperation(func(ctx context.Context) (*cda.Space, error) {
		return c.resolver.ResolveSpace(ctx, true)
	})
}

// ContentTypes implements cda.Client.ContentTypes.
func (c *Client) ContentTypes() cda.ContentTypesClient {
	return c.contentTypes
}

// Entries implements cda.Client.Entries.
func (c *Client) Entries() cda.EntriesClient {
	return c.entries
}

// Assets implements cda.Client.Assets.
func (c *Client) Assets() cda.AssetsClient {
	return c.assets
}

// Sync implements cda.Client.Sync.
func (c *Client) Sync(opts ...cda.SyncOption) *cda.Operation[*cda.SynchronizedSpace] {
	params := cda.NewSyncParams(opts...)

	return cda.NewOperation(func(ctx context.Context) (*cda.SynchronizedSpace, error) {
		return c.runSync(ctx, params)
	})
}

// Resolver exposes the fetch orchestrator, mainly for composing custom
// resolution flows and for tests.
func (c *Client) Resolver() *Resolver {
	return c.resolver
}

// Cache returns the client's metadata cache.
func (c *Client) Cache() *cda.Cache {
	return c.cache
}

// loggerAdapter adapts cda.Logger to http.Logger.
type loggerAdapter struct {
	logger cda.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
