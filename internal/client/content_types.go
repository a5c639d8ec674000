package client

import (
	"context"

	"github.com/fivetwenty-io/cda/pkg/cda"
)

// ContentTypesClient implements cda.ContentTypesClient on top of the
// resolver, so every lookup goes through the shared dictionary cache.
type ContentTypesClient struct {
	resolver *Resolver
}

// NewContentTypesClient creates a new content types client.
func NewContentTypesClient(resolver *Resolver) *ContentTypesClient {
	return &ContentTypesClient{resolver: resolver}
}

// Get implements cda.ContentTypesClient.Get. A cached definition is returned
// without network access; a miss fetches the single type and augments the
// dictionary.
func (c *ContentTypesClient) Get(ctx context.Context, id string) (*cda.ContentType, error) {
	return c.resolver.ResolveContentType(ctx, id)
}

// List implements cda.ContentTypesClient.List. The dictionary is resolved
// cache-first; item order is unspecified.
func (c *ContentTypesClient) List(ctx context.Context) (*cda.ContentTypeCollection, error) {
	types, err := c.resolver.ResolveContentTypes(ctx, false)
	if err != nil {
		return nil, err
	}

	collection := &cda.ContentTypeCollection{
		Total: len(types),
		Items: make([]*cda.ContentType, 0, len(types)),
	}

	for _, contentType := range types {
		collection.Items = append(collection.Items, contentType)
	}

	return collection, nil
}
