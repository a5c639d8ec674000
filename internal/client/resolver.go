package client

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/fivetwenty-io/cda/internal/constants"
	"github.com/fivetwenty-io/cda/internal/http"
	"github.com/fivetwenty-io/cda/pkg/cda"
)

// Resolver decides, per request, whether to serve the metadata cache or hit
// the network, and keeps the cache coherent while doing so.
//
// Cache-first resolutions are deduplicated through a flight group keyed by
// cache slot: concurrent callers racing on an empty slot share one network
// call instead of each issuing their own. A plain check-then-fetch sequence
// would not give that guarantee. Forced refreshes (invalidate=true) bypass
// the group — every forced call issues exactly one fetch.
//
// Cache slots are only written on successful decode, so a failed fetch never
// replaces a previously good value.
type Resolver struct {
	httpClient *http.Client
	spaceID    string
	cache      *cda.Cache
	group      singleflight.Group
}

// NewResolver creates a resolver for spaceID backed by cache.
func NewResolver(httpClient *http.Client, spaceID string, cache *cda.Cache) *Resolver {
	return &Resolver{
		httpClient: httpClient,
		spaceID:    spaceID,
		cache:      cache,
	}
}

// Cache returns the cache this resolver populates.
func (r *Resolver) Cache() *cda.Cache {
	return r.cache
}

// ResolveSpace returns the space descriptor, fetching it when invalidate is
// set or the slot is empty.
func (r *Resolver) ResolveSpace(ctx context.Context, invalidate bool) (*cda.Space, error) {
	if invalidate {
		return r.fetchSpace(ctx)
	}

	if space := r.cache.Space(); space != nil {
		return space, nil
	}

	value, err, _ := r.group.Do(constants.SlotSpace, func() (interface{}, error) {
		// A flight that finished between our cache check and this call
		// already populated the slot.
		if space := r.cache.Space(); space != nil {
			return space, nil
		}

		return r.fetchSpace(ctx)
	})
	if err != nil {
		return nil, err
	}

	return value.(*cda.Space), nil
}

// ResolveContentTypes returns the content-type dictionary, fetching and
// wholesale-replacing it when invalidate is set or the slot is empty.
func (r *Resolver) ResolveContentTypes(ctx context.Context, invalidate bool) (cda.ContentTypes, error) {
	if invalidate {
		return r.fetchContentTypes(ctx)
	}

	if types := r.cache.Types(); types != nil {
		return types, nil
	}

	value, err, _ := r.group.Do(constants.SlotContentTypes, func() (interface{}, error) {
		if types := r.cache.Types(); types != nil {
			return types, nil
		}

		return r.fetchContentTypes(ctx)
	})
	if err != nil {
		return nil, err
	}

	return value.(cda.ContentTypes), nil
}

// ResolveContentType returns a single content type by id. A dictionary hit
// never touches the network; a miss fetches the one type and inserts it into
// the existing dictionary, leaving all other cached definitions unchanged.
func (r *Resolver) ResolveContentType(ctx context.Context, id string) (*cda.ContentType, error) {
	if id == "" {
		return nil, cda.ErrContentTypeIDEmpty
	}

	if contentType := r.cache.Type(id); contentType != nil {
		return contentType, nil
	}

	value, err, _ := r.group.Do("content_type:"+id, func() (interface{}, error) {
		if contentType := r.cache.Type(id); contentType != nil {
			return contentType, nil
		}

		resp, err := r.httpClient.Get(ctx, r.path("content_types")+"/"+id, nil)
		if err != nil {
			return nil, fmt.Errorf("getting content type %s: %w", id, err)
		}

		contentType, err := decodeContentType(resp.Body)
		if err != nil {
			return nil, err
		}

		r.cache.AddType(contentType)

		return contentType, nil
	})
	if err != nil {
		return nil, err
	}

	return value.(*cda.ContentType), nil
}

// ResolveAll resolves the space and then the content-type dictionary,
// strictly in that order, and returns the populated cache. A space failure
// short-circuits: the content-type path is never attempted.
func (r *Resolver) ResolveAll(ctx context.Context, invalidate bool) (*cda.Cache, error) {
	_, err := r.ResolveSpace(ctx, invalidate)
	if err != nil {
		return nil, err
	}

	_, err = r.ResolveContentTypes(ctx, invalidate)
	if err != nil {
		return nil, err
	}

	return r.cache, nil
}

func (r *Resolver) fetchSpace(ctx context.Context) (*cda.Space, error) {
	resp, err := r.httpClient.Get(ctx, "/spaces/"+r.spaceID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting space: %w", err)
	}

	space, err := decodeSpace(resp.Body)
	if err != nil {
		return nil, err
	}

	r.cache.SetSpace(space)

	return space, nil
}

func (r *Resolver) fetchContentTypes(ctx context.Context) (cda.ContentTypes, error) {
	resp, err := r.httpClient.Get(ctx, r.path("content_types"), nil)
	if err != nil {
		return nil, fmt.Errorf("getting content types: %w", err)
	}

	types, err := decodeContentTypes(resp.Body)
	if err != nil {
		return nil, err
	}

	r.cache.SetTypes(types)

	return types, nil
}

func (r *Resolver) path(resource string) string {
	return "/spaces/" + r.spaceID + "/" + resource
}
