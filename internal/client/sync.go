package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/cda/pkg/cda"
)

// syncPage is the wire shape of one synchronization response page.
type syncPage struct {
	Sys         cda.Sys           `json:"sys"`
	Items       []json.RawMessage `json:"items"`
	NextPageURL string            `json:"nextPageUrl"`
	NextSyncURL string            `json:"nextSyncUrl"`
}

// itemProbe reads just enough of an item to dispatch on its kind.
type itemProbe struct {
	Sys cda.Sys `json:"sys"`
}

// runSync performs a synchronization run: an initial sync when params carry
// no token, otherwise a delta sync from the resolved token. Pages are
// followed via nextPageUrl until the API hands back nextSyncUrl, whose
// sync_token seeds the next run.
func (c *Client) runSync(ctx context.Context, params *cda.SyncParams) (*cda.SynchronizedSpace, error) {
	types, err := c.resolver.ResolveContentTypes(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("resolving content types: %w", err)
	}

	query := url.Values{}
	if token := params.ResolveToken(); token != "" {
		query.Set("sync_token", token)
	} else {
		query.Set("initial", "true")
	}

	result := &cda.SynchronizedSpace{}

	resp, err := c.httpClient.Get(ctx, c.resolver.path("sync"), query)
	if err != nil {
		return nil, fmt.Errorf("syncing space: %w", err)
	}

	for {
		var page syncPage

		err = json.Unmarshal(resp.Body, &page)
		if err != nil {
			return nil, fmt.Errorf("%w: decoding sync page: %w", cda.ErrMalformedResource, err)
		}

		err = collectSyncItems(result, page.Items, types)
		if err != nil {
			return nil, err
		}

		if page.NextPageURL == "" {
			token, err := tokenFromSyncURL(page.NextSyncURL)
			if err != nil {
				return nil, err
			}

			result.NextSyncToken = token

			return result, nil
		}

		resp, err = c.httpClient.GetURL(ctx, page.NextPageURL)
		if err != nil {
			return nil, fmt.Errorf("syncing next page: %w", err)
		}
	}
}

// collectSyncItems dispatches raw sync items by kind and accumulates them.
// Unknown kinds are skipped for forward compatibility.
func collectSyncItems(result *cda.SynchronizedSpace, items []json.RawMessage, types cda.ContentTypes) error {
	for _, raw := range items {
		var probe itemProbe

		err := json.Unmarshal(raw, &probe)
		if err != nil {
			return fmt.Errorf("%w: decoding sync item: %w", cda.ErrMalformedResource, err)
		}

		switch probe.Sys.Type {
		case typeEntry:
			entry, err := decodeEntry(raw, types)
			if err != nil {
				return err
			}

			result.Entries = append(result.Entries, entry)
		case typeAsset:
			asset, err := decodeAsset(raw)
			if err != nil {
				return err
			}

			result.Assets = append(result.Assets, asset)
		case typeDeletedEntry:
			result.DeletedEntries = append(result.DeletedEntries, probe.Sys.ID)
		case typeDeletedAsset:
			result.DeletedAssets = append(result.DeletedAssets, probe.Sys.ID)
		}
	}

	return nil
}

// tokenFromSyncURL extracts the sync_token query parameter from nextSyncUrl.
func tokenFromSyncURL(rawURL string) (string, error) {
	if rawURL == "" {
		return "", fmt.Errorf("%w: sync response without nextSyncUrl", cda.ErrMalformedResource)
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: parsing nextSyncUrl: %w", cda.ErrMalformedResource, err)
	}

	token := parsed.Query().Get("sync_token")
	if token == "" {
		return "", fmt.Errorf("%w: nextSyncUrl without sync_token", cda.ErrMalformedResource)
	}

	return token, nil
}
