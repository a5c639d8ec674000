package constants

import "time"

// API endpoints.
const (
	// EndpointProduction is the default Content Delivery API endpoint.
	EndpointProduction = "https://cdn.contentful.com"

	// EndpointPreview is the Content Preview API endpoint.
	EndpointPreview = "https://preview.contentful.com"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of transport retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// DefaultUserAgent is sent when the config does not override it.
const DefaultUserAgent = "cda-client-go"

// Cache slot keys used by the resolver's flight group.
const (
	// SlotSpace keys the space descriptor slot.
	SlotSpace = "space"

	// SlotContentTypes keys the content-type dictionary slot.
	SlotContentTypes = "content_types"
)
