package client

import (
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/cda/pkg/cda"
)

// Resource kinds carried in sys.type.
const (
	typeSpace        = "Space"
	typeContentType  = "ContentType"
	typeEntry        = "Entry"
	typeAsset        = "Asset"
	typeDeletedEntry = "DeletedEntry"
	typeDeletedAsset = "DeletedAsset"
)

// decodeSpace turns a raw payload into a space descriptor. Any shape problem
// is a malformed-resource error; callers must not store anything on failure.
func decodeSpace(body []byte) (*cda.Space, error) {
	var space cda.Space

	err := json.Unmarshal(body, &space)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding space: %w", cda.ErrMalformedResource, err)
	}

	if space.Sys.Type != typeSpace || space.Sys.ID == "" {
		return nil, fmt.Errorf("%w: unexpected resource kind %q for space", cda.ErrMalformedResource, space.Sys.Type)
	}

	return &space, nil
}

// decodeContentType turns a raw payload into a single content type.
func decodeContentType(body []byte) (*cda.ContentType, error) {
	var contentType cda.ContentType

	err := json.Unmarshal(body, &contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding content type: %w", cda.ErrMalformedResource, err)
	}

	err = validateContentType(&contentType)
	if err != nil {
		return nil, err
	}

	return &contentType, nil
}

// decodeContentTypes turns a raw collection payload into the id-keyed
// dictionary the cache stores.
func decodeContentTypes(body []byte) (cda.ContentTypes, error) {
	var collection cda.ContentTypeCollection

	err := json.Unmarshal(body, &collection)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding content types: %w", cda.ErrMalformedResource, err)
	}

	types := make(cda.ContentTypes, len(collection.Items))

	for _, item := range collection.Items {
		err = validateContentType(item)
		if err != nil {
			return nil, err
		}

		types[item.Sys.ID] = item
	}

	return types, nil
}

// validateContentType rejects content-type resources missing required
// fields. Such responses are never retried and never cached.
func validateContentType(contentType *cda.ContentType) error {
	if contentType == nil || contentType.Sys.ID == "" {
		return fmt.Errorf("%w: content type without sys.id", cda.ErrMalformedResource)
	}

	if contentType.Sys.Type != typeContentType {
		return fmt.Errorf("%w: unexpected resource kind %q for content type %s",
			cda.ErrMalformedResource, contentType.Sys.Type, contentType.Sys.ID)
	}

	return nil
}

// decodeEntry turns a raw payload into a single entry and resolves its
// content type against the dictionary. A dictionary miss leaves the entry
// unresolved rather than failing the decode.
func decodeEntry(body []byte, types cda.ContentTypes) (*cda.Entry, error) {
	var entry cda.Entry

	err := json.Unmarshal(body, &entry)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding entry: %w", cda.ErrMalformedResource, err)
	}

	if entry.Sys.Type != typeEntry || entry.Sys.ID == "" {
		return nil, fmt.Errorf("%w: unexpected resource kind %q for entry", cda.ErrMalformedResource, entry.Sys.Type)
	}

	resolveEntry(&entry, types)

	return &entry, nil
}

// decodeEntries turns a raw collection payload into typed entries. Items
// referencing a content type absent from the dictionary are returned with
// ContentType nil — flagged, not dropped, so one bad item never aborts the
// whole collection.
func decodeEntries(body []byte, types cda.ContentTypes) (*cda.EntryCollection, error) {
	var collection cda.EntryCollection

	err := json.Unmarshal(body, &collection)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding entries: %w", cda.ErrMalformedResource, err)
	}

	for _, item := range collection.Items {
		resolveEntry(item, types)
	}

	return &collection, nil
}

// resolveEntry points the entry at its definition in the dictionary, when
// present.
func resolveEntry(entry *cda.Entry, types cda.ContentTypes) {
	if entry == nil || types == nil {
		return
	}

	entry.ContentType = types[entry.ContentTypeID()]
}

// decodeAsset turns a raw payload into a single asset.
func decodeAsset(body []byte) (*cda.Asset, error) {
	var asset cda.Asset

	err := json.Unmarshal(body, &asset)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding asset: %w", cda.ErrMalformedResource, err)
	}

	if asset.Sys.Type != typeAsset || asset.Sys.ID == "" {
		return nil, fmt.Errorf("%w: unexpected resource kind %q for asset", cda.ErrMalformedResource, asset.Sys.Type)
	}

	return &asset, nil
}

// decodeAssets turns a raw collection payload into typed assets.
func decodeAssets(body []byte) (*cda.AssetCollection, error) {
	var collection cda.AssetCollection

	err := json.Unmarshal(body, &collection)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding assets: %w", cda.ErrMalformedResource, err)
	}

	return &collection, nil
}
