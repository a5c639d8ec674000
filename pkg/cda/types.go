package cda

import (
	"time"
)

// Sys holds the system metadata carried by every API resource.
type Sys struct {
	ID          string     `json:"id,omitempty"          yaml:"id,omitempty"`
	Type        string     `json:"type,omitempty"        yaml:"type,omitempty"`
	LinkType    string     `json:"linkType,omitempty"    yaml:"linkType,omitempty"`
	Revision    int        `json:"revision,omitempty"    yaml:"revision,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"   yaml:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"   yaml:"updatedAt,omitempty"`
	Space       *Link      `json:"space,omitempty"       yaml:"space,omitempty"`
	ContentType *Link      `json:"contentType,omitempty" yaml:"contentType,omitempty"`
}

// Link is a reference to another resource, carrying only its sys block.
type Link struct {
	Sys Sys `json:"sys" yaml:"sys"`
}

// Space identifies a content-delivery space: its name and locales.
// A space descriptor is immutable once fetched and is replaced wholesale in
// the cache, never partially merged.
type Space struct {
	Sys     Sys      `json:"sys"     yaml:"sys"`
	Name    string   `json:"name"    yaml:"name"`
	Locales []Locale `json:"locales" yaml:"locales"`
}

// DefaultLocale returns the locale flagged as default, or nil if the space
// declares none.
func (s *Space) DefaultLocale() *Locale {
	for i := range s.Locales {
		if s.Locales[i].Default {
			return &s.Locales[i]
		}
	}

	return nil
}

// Locale describes one locale of a space.
type Locale struct {
	Code         string `json:"code"                   yaml:"code"`
	Name         string `json:"name"                   yaml:"name"`
	Default      bool   `json:"default,omitempty"      yaml:"default,omitempty"`
	FallbackCode string `json:"fallbackCode,omitempty" yaml:"fallbackCode,omitempty"`
}

// ContentType is the schema definition for a class of entries.
type ContentType struct {
	Sys          Sys     `json:"sys"                   yaml:"sys"`
	Name         string  `json:"name"                  yaml:"name"`
	Description  string  `json:"description,omitempty" yaml:"description,omitempty"`
	DisplayField string  `json:"displayField"          yaml:"displayField"`
	Fields       []Field `json:"fields"                yaml:"fields"`
}

// Field looks up a field definition by its id, or nil if undeclared.
func (t *ContentType) Field(id string) *Field {
	for i := range t.Fields {
		if t.Fields[i].ID == id {
			return &t.Fields[i]
		}
	}

	return nil
}

// Field is a single field definition within a content type.
type Field struct {
	ID        string      `json:"id"                 yaml:"id"`
	Name      string      `json:"name"               yaml:"name"`
	Type      string      `json:"type"               yaml:"type"`
	LinkType  string      `json:"linkType,omitempty" yaml:"linkType,omitempty"`
	Items     *FieldItems `json:"items,omitempty"    yaml:"items,omitempty"`
	Required  bool        `json:"required,omitempty" yaml:"required,omitempty"`
	Localized bool        `json:"localized,omitempty" yaml:"localized,omitempty"`
	Disabled  bool        `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// FieldItems describes the element type of an Array field.
type FieldItems struct {
	Type     string `json:"type"               yaml:"type"`
	LinkType string `json:"linkType,omitempty" yaml:"linkType,omitempty"`
}

// ContentTypes is the dictionary mapping content-type id to definition. The
// cache replaces it wholesale on refresh; single-id misses are inserted
// copy-on-write (see Cache.AddType).
type ContentTypes = map[string]*ContentType

// Entry is a single content entry. ContentType is resolved against the
// cached dictionary at decode time; if the dictionary does not contain the
// referenced type, ContentType is nil and IsResolved reports false — the
// entry is still returned so one bad item never fails a whole collection.
type Entry struct {
	Sys    Sys            `json:"sys"    yaml:"sys"`
	Fields map[string]any `json:"fields" yaml:"fields"`

	ContentType *ContentType `json:"-" yaml:"-"`
}

// ContentTypeID returns the id of the content type the entry references, or
// an empty string for entries without one.
func (e *Entry) ContentTypeID() string {
	if e.Sys.ContentType == nil {
		return ""
	}

	return e.Sys.ContentType.Sys.ID
}

// IsResolved reports whether the entry's content type was present in the
// dictionary at decode time.
func (e *Entry) IsResolved() bool {
	return e.ContentType != nil
}

// Asset is a media resource (image, document, ...).
type Asset struct {
	Sys    Sys         `json:"sys"    yaml:"sys"`
	Fields AssetFields `json:"fields" yaml:"fields"`
}

// AssetFields holds the localizable fields of an asset.
type AssetFields struct {
	Title       string `json:"title"                 yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	File        *File  `json:"file,omitempty"        yaml:"file,omitempty"`
}

// File describes the binary behind an asset.
type File struct {
	URL         string         `json:"url"               yaml:"url"`
	FileName    string         `json:"fileName"          yaml:"fileName"`
	ContentType string         `json:"contentType"       yaml:"contentType"`
	Details     map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
}

// EntryCollection is the result of an entry collection fetch.
type EntryCollection struct {
	Total int      `json:"total" yaml:"total"`
	Skip  int      `json:"skip"  yaml:"skip"`
	Limit int      `json:"limit" yaml:"limit"`
	Items []*Entry `json:"items" yaml:"items"`
}

// Unresolved returns the ids of entries whose content type was missing from
// the dictionary when the collection was decoded.
func (c *EntryCollection) Unresolved() []string {
	var ids []string

	for _, item := range c.Items {
		if !item.IsResolved() {
			ids = append(ids, item.Sys.ID)
		}
	}

	return ids
}

// AssetCollection is the result of an asset collection fetch.
type AssetCollection struct {
	Total int      `json:"total" yaml:"total"`
	Skip  int      `json:"skip"  yaml:"skip"`
	Limit int      `json:"limit" yaml:"limit"`
	Items []*Asset `json:"items" yaml:"items"`
}

// ContentTypeCollection is the result of a content-type collection fetch.
type ContentTypeCollection struct {
	Total int            `json:"total" yaml:"total"`
	Skip  int            `json:"skip"  yaml:"skip"`
	Limit int            `json:"limit" yaml:"limit"`
	Items []*ContentType `json:"items" yaml:"items"`
}

// SynchronizedSpace is the accumulated result of a synchronization run: all
// changed resources plus the token to request the next delta.
type SynchronizedSpace struct {
	Entries        []*Entry `json:"entries"        yaml:"entries"`
	Assets         []*Asset `json:"assets"         yaml:"assets"`
	DeletedEntries []string `json:"deletedEntries" yaml:"deletedEntries"`
	DeletedAssets  []string `json:"deletedAssets"  yaml:"deletedAssets"`
	NextSyncToken  string   `json:"nextSyncToken"  yaml:"nextSyncToken"`
}
