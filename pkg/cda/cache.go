package cda

import (
	"sync"
)

// Cache is the process-local store for the metadata needed to interpret API
// responses: the space descriptor and the content-type dictionary. It has
// exactly these two slots, performs no I/O, and raises no errors.
//
// Both slots are replaced atomically: a reader holding a dictionary returned
// by Types never observes it change underneath — AddType inserts
// copy-on-write, and SetTypes swaps the whole map. Entries and assets are
// deliberately never cached here.
type Cache struct {
	mu    sync.RWMutex
	space *Space
	types ContentTypes
}

// NewCache creates an empty cache. Slots are populated lazily on first
// resolution.
func NewCache() *Cache {
	return &Cache{}
}

// Space returns the cached space descriptor, or nil when the slot is empty.
func (c *Cache) Space() *Space {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.space
}

// SetSpace replaces the space slot wholesale.
func (c *Cache) SetSpace(space *Space) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.space = space
}

// Types returns the cached content-type dictionary, or nil when the slot is
// empty. The returned map is never mutated after being handed out.
func (c *Cache) Types() ContentTypes {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.types
}

// Type looks up a single content type by id in the cached dictionary.
func (c *Cache) Type(id string) *ContentType {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.types == nil {
		return nil
	}

	return c.types[id]
}

// SetTypes replaces the dictionary slot wholesale. No incremental merge
// happens here; a refreshed dictionary completely supersedes the old one.
func (c *Cache) SetTypes(types ContentTypes) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.types = types
}

// AddType inserts a single content type into the dictionary. This is the one
// exception to wholesale replacement: a miss on a single-id lookup means the
// dictionary was incomplete, not stale, so augmenting it is safe and cheaper
// than refetching everything. The insert is copy-on-write so previously
// returned maps stay stable.
func (c *Cache) AddType(contentType *ContentType) {
	if contentType == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	next := make(ContentTypes, len(c.types)+1)
	for id, existing := range c.types {
		next[id] = existing
	}

	next[contentType.Sys.ID] = contentType
	c.types = next
}

// InvalidateSpace clears the space slot.
func (c *Cache) InvalidateSpace() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.space = nil
}

// InvalidateTypes clears the dictionary slot.
func (c *Cache) InvalidateTypes() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.types = nil
}

// Invalidate clears both slots. Idempotent.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.space = nil
	c.types = nil
}
