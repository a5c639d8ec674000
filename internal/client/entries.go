package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/cda/internal/http"
	"github.com/fivetwenty-io/cda/pkg/cda"
)

// EntriesClient implements cda.EntriesClient. Entry fetches are always
// network-bound; the resolver is consulted only for the content-type
// dictionary needed to interpret the response.
type EntriesClient struct {
	httpClient *http.Client
	resolver   *Resolver
}

// NewEntriesClient creates a new entries client.
func NewEntriesClient(httpClient *http.Client, resolver *Resolver) *EntriesClient {
	return &EntriesClient{
		httpClient: httpClient,
		resolver:   resolver,
	}
}

// Get implements cda.EntriesClient.Get. If the entry references a content
// type missing from the dictionary, a single-type resolution is attempted;
// an entry whose type cannot be found is returned unresolved rather than
// failing the fetch.
func (c *EntriesClient) Get(ctx context.Context, id string) (*cda.Entry, error) {
	if id == "" {
		return nil, cda.ErrEntryIDRequired
	}

	types, err := c.resolver.ResolveContentTypes(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("resolving content types: %w", err)
	}

	resp, err := c.httpClient.Get(ctx, c.resolver.path("entries")+"/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting entry: %w", err)
	}

	entry, err := decodeEntry(resp.Body, types)
	if err != nil {
		return nil, err
	}

	if !entry.IsResolved() && entry.ContentTypeID() != "" {
		contentType, err := c.resolver.ResolveContentType(ctx, entry.ContentTypeID())
		if err != nil {
			if cda.IsNotFound(err) {
				return entry, nil
			}

			return nil, err
		}

		entry.ContentType = contentType
	}

	return entry, nil
}

// List implements cda.EntriesClient.List. Items referencing an unknown
// content type come back flagged via Entry.IsResolved and
// EntryCollection.Unresolved.
func (c *EntriesClient) List(ctx context.Context, params *cda.QueryParams) (*cda.EntryCollection, error) {
	types, err := c.resolver.ResolveContentTypes(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("resolving content types: %w", err)
	}

	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, c.resolver.path("entries"), query)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}

	return decodeEntries(resp.Body, types)
}
