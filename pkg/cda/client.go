package cda

import (
	"context"
	"net/http"
	"time"
)

// ContentTypesClient provides access to content-type resources. Lookups by
// id are served from the dictionary cache where possible; a miss fetches the
// single type and inserts it without replacing the rest of the dictionary.
type ContentTypesClient interface {
	Get(ctx context.Context, id string) (*ContentType, error)
	List(ctx context.Context) (*ContentTypeCollection, error)
}

// EntriesClient provides access to entry resources. Entry fetches are always
// network-bound; only the metadata needed to interpret them is cached.
type EntriesClient interface {
	Get(ctx context.Context, id string) (*Entry, error)
	List(ctx context.Context, params *QueryParams) (*EntryCollection, error)
}

// AssetsClient provides access to asset resources.
type AssetsClient interface {
	Get(ctx context.Context, id string) (*Asset, error)
	List(ctx context.Context, params *QueryParams) (*AssetCollection, error)
}

// Client is the public surface of a Delivery API client. Every client is
// associated with exactly one space; there is no limit to the number of
// concurrent clients, but avoid creating multiple clients for the same space
// since each holds its own metadata cache.
type Client interface {
	// FetchSpace fetches the space for this client, blocking until the
	// result is available. It always issues a network request and refreshes
	// the cached descriptor.
	FetchSpace(ctx context.Context) (*Space, error)

	// FetchSpaceAsync subscribes cb to the space fetch and returns
	// immediately. Delivery happens on exec, or on the fetch goroutine when
	// exec is nil.
	FetchSpaceAsync(ctx context.Context, cb Callback[*Space], exec Executor)

	// ObserveSpace returns a cold operation that fetches the space when
	// awaited or subscribed. Like FetchSpace it always hits the network.
	ObserveSpace() *Operation[*Space]

	ContentTypes() ContentTypesClient
	Entries() EntriesClient
	Assets() AssetsClient

	// Sync returns a cold operation performing a synchronization run: an
	// initial sync when no option is given, a delta sync when seeded with a
	// token or a previously synchronized space. A token takes precedence
	// over a snapshot when both are supplied.
	Sync(opts ...SyncOption) *Operation[*SynchronizedSpace]
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a cda.Client.
//
// # Endpoint resolution
//
// The effective base URL is resolved by a pure function over this struct:
// an explicit Endpoint wins, otherwise Preview selects the preview API,
// otherwise the production CDN endpoint is used. Endpoint and Preview are
// therefore mutually exclusive in effect.
//
// # Validation
//
// SpaceID and Token are required. cdaclient.New validates them eagerly and
// fails at construction, never lazily at the first request.
type Config struct {
	// SpaceID identifies the space this client is bound to. Required.
	SpaceID string
	// Token is the delivery access token for the space. Required.
	Token string

	// Endpoint overrides the base URL (e.g. for a proxy). Optional.
	Endpoint string
	// Preview selects the preview API endpoint instead of production.
	// Ignored when Endpoint is set.
	Preview bool

	// HTTPClient: optional custom *http.Client used by the transport.
	HTTPClient *http.Client
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// Debug enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// RetryMax: maximum number of transport retries for transient failures
	// (>=500, 429, connection errors). If 0 a sensible default is used.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration
}
