package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/cda/pkg/cda"
)

const entryBody = `{
	"sys": {
		"type": "Entry",
		"id": "nyancat",
		"contentType": {"sys": {"type": "Link", "linkType": "ContentType", "id": "cat"}}
	},
	"fields": {"name": "Nyan Cat", "lives": 1337}
}`

func TestEntriesClient_Get(t *testing.T) {
	t.Run("requires id", func(t *testing.T) {
		client := NewTestClient("http://example.invalid", "space1")

		_, err := client.Entries().Get(context.Background(), "")
		require.ErrorIs(t, err, cda.ErrEntryIDRequired)
	})

	t.Run("resolves the entry against the cached dictionary", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/spaces/space1/content_types":
				_, _ = w.Write([]byte(contentTypesBody))
			case "/spaces/space1/entries/nyancat":
				_, _ = w.Write([]byte(entryBody))
			default:
				t.Errorf("unexpected path %s", r.URL.Path)
			}
		}))
		defer server.Close()

		client := NewTestClient(server.URL, "space1")

		entry, err := client.Entries().Get(context.Background(), "nyancat")
		require.NoError(t, err)
		assert.Equal(t, "nyancat", entry.Sys.ID)
		require.True(t, entry.IsResolved())
		assert.Equal(t, "Cat", entry.ContentType.Name)
	})

	t.Run("dictionary miss triggers a single-type fetch", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/spaces/space1/content_types":
				_, _ = w.Write([]byte(`{"total": 0, "items": []}`))
			case "/spaces/space1/entries/nyancat":
				_, _ = w.Write([]byte(entryBody))
			case "/spaces/space1/content_types/cat":
				_, _ = w.Write([]byte(`{
					"sys": {"type": "ContentType", "id": "cat"},
					"name": "Cat",
					"displayField": "name",
					"fields": [{"id": "name", "name": "Name", "type": "Text"}]
				}`))
			default:
				t.Errorf("unexpected path %s", r.URL.Path)
			}
		}))
		defer server.Close()

		client := NewTestClient(server.URL, "space1")

		entry, err := client.Entries().Get(context.Background(), "nyancat")
		require.NoError(t, err)
		require.True(t, entry.IsResolved())
		assert.Equal(t, "Cat", entry.ContentType.Name)

		// The fetched definition was inserted into the dictionary
		assert.NotNil(t, client.Cache().Type("cat"))
	})

	t.Run("entry with an unknown type comes back unresolved", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/spaces/space1/content_types":
				_, _ = w.Write([]byte(`{"total": 0, "items": []}`))
			case "/spaces/space1/entries/nyancat":
				_, _ = w.Write([]byte(entryBody))
			case "/spaces/space1/content_types/cat":
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"sys": {"type": "Error", "id": "NotFound"}, "message": "not found"}`))
			default:
				t.Errorf("unexpected path %s", r.URL.Path)
			}
		}))
		defer server.Close()

		client := NewTestClient(server.URL, "space1")

		entry, err := client.Entries().Get(context.Background(), "nyancat")
		require.NoError(t, err)
		assert.False(t, entry.IsResolved())
		assert.Equal(t, "cat", entry.ContentTypeID())
	})

	t.Run("entry not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/spaces/space1/content_types" {
				_, _ = w.Write([]byte(contentTypesBody))

				return
			}

			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"sys": {"type": "Error", "id": "NotFound"}, "message": "not found"}`))
		}))
		defer server.Close()

		client := NewTestClient(server.URL, "space1")

		_, err := client.Entries().Get(context.Background(), "missing")
		require.Error(t, err)
		assert.True(t, cda.IsNotFound(err))
	})
}

func TestEntriesClient_List(t *testing.T) {
	t.Run("passes query parameters through", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/spaces/space1/content_types" {
				_, _ = w.Write([]byte(contentTypesBody))

				return
			}

			assert.Equal(t, "/spaces/space1/entries", r.URL.Path)
			assert.Equal(t, "cat", r.URL.Query().Get("content_type"))
			assert.Equal(t, "5", r.URL.Query().Get("limit"))
			_, _ = w.Write([]byte(`{
				"total": 1,
				"limit": 5,
				"items": [` + entryBody + `]
			}`))
		}))
		defer server.Close()

		client := NewTestClient(server.URL, "space1")

		params := cda.NewQueryParams().WithContentType("cat").WithLimit(5)

		collection, err := client.Entries().List(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, 1, collection.Total)
		require.Len(t, collection.Items, 1)
		assert.True(t, collection.Items[0].IsResolved())
		assert.Empty(t, collection.Unresolved())
	})

	t.Run("nil params list everything", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/spaces/space1/content_types" {
				_, _ = w.Write([]byte(contentTypesBody))

				return
			}

			assert.Empty(t, r.URL.RawQuery)
			_, _ = w.Write([]byte(`{"total": 0, "items": []}`))
		}))
		defer server.Close()

		client := NewTestClient(server.URL, "space1")

		collection, err := client.Entries().List(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, collection.Items)
	})
}
