package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cdahttp "github.com/fivetwenty-io/cda/internal/http"
	"github.com/fivetwenty-io/cda/pkg/cda"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/spaces/abc", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			response := map[string]string{"name": "Demo Space"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := cdahttp.NewClient(server.URL, "test-token")

		resp, err := client.Do(context.Background(), &cdahttp.Request{
			Method: "GET",
			Path:   "/spaces/abc",
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "Demo Space", result["name"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/spaces/abc/entries", request.URL.Path)
			assert.Equal(t, "cat", request.URL.Query().Get("content_type"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := cdahttp.NewClient(server.URL, "test-token")

		resp, err := client.Get(context.Background(), "/spaces/abc/entries",
			url.Values{"content_type": []string{"cat"}})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := cdahttp.NewClient(server.URL, "test-token")

		resp, err := client.Do(context.Background(), &cdahttp.Request{
			Method: "GET",
			Path:   "/spaces/abc",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)

			response := cda.APIError{
				Sys:       cda.Sys{Type: "Error", ID: "NotFound"},
				Message:   "The resource could not be found.",
				RequestID: "req-1",
			}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := cdahttp.NewClient(server.URL, "test-token")

		resp, err := client.Get(context.Background(), "/spaces/missing", nil)
		require.Error(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		apiErr := &cda.APIError{}
		ok := errors.As(err, &apiErr)
		require.True(t, ok)
		assert.Equal(t, "NotFound", apiErr.Sys.ID)
		assert.Equal(t, 404, apiErr.StatusCode)
	})

	t.Run("error response with non-json body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadRequest)
			_, _ = writer.Write([]byte("bad request"))
		}))
		defer server.Close()

		client := cdahttp.NewClient(server.URL, "test-token")

		_, err := client.Get(context.Background(), "/spaces/abc", nil)
		require.Error(t, err)

		apiErr := &cda.APIError{}
		ok := errors.As(err, &apiErr)
		require.True(t, ok)
		assert.Equal(t, 400, apiErr.StatusCode)
		assert.Equal(t, "bad request", apiErr.Message)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := cdahttp.NewClient(server.URL, "test-token", cdahttp.WithLogger(logger), cdahttp.WithDebug(true))

		_, err := client.Get(context.Background(), "/spaces/abc", nil)
		require.NoError(t, err)

		// Should have logged request and response
		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})

	t.Run("custom user agent", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "my-app/1.0", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := cdahttp.NewClient(server.URL, "test-token", cdahttp.WithUserAgent("my-app/1.0"))

		_, err := client.Get(context.Background(), "/spaces/abc", nil)
		require.NoError(t, err)
	})
}

func TestClient_GetURL(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/spaces/abc/sync", request.URL.Path)
		assert.Equal(t, "page-token", request.URL.Query().Get("sync_token"))
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := cdahttp.NewClient(server.URL, "test-token")

	resp, err := client.GetURL(context.Background(), server.URL+"/spaces/abc/sync?sync_token=page-token")
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()
	t.Run("retries on 5xx errors", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := cdahttp.NewClient(server.URL, "test-token",
			cdahttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/spaces/abc", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 3, attempts)
	})

	t.Run("retries on rate limiting", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts < 2 {
				writer.WriteHeader(http.StatusTooManyRequests)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := cdahttp.NewClient(server.URL, "test-token",
			cdahttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/spaces/abc", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 2, attempts)
	})

	t.Run("does not retry on client errors", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := cdahttp.NewClient(server.URL, "test-token",
			cdahttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/spaces/abc", nil)
		require.Error(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assert.Equal(t, 1, attempts) // Should not retry
	})
}
