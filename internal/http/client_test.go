package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rwhttp "github.com/reliefweb-go/reliefweb/internal/http"
	"github.com/reliefweb-go/reliefweb/pkg/reliefweb"
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

func mustBaseURL(t *testing.T, serverURL string) *url.URL {
	t.Helper()

	baseURL, err := url.Parse(serverURL + "/v2/")
	require.NoError(t, err)

	return baseURL
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Get(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v2/reports", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Equal(t, "appname=test-app", request.URL.RawQuery)

			response := map[string]int{"totalCount": 0}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := rwhttp.NewClient(mustBaseURL(t, server.URL), "test-app")

		resp, err := client.Get(context.Background(), "reports", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]int

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, 0, result["totalCount"])
	})

	t.Run("appname always leads the query string", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.True(t, strings.HasPrefix(request.URL.RawQuery, "appname=my+example+app&"))
			assert.Equal(t, "my example app", request.URL.Query().Get("appname"))
			assert.Equal(t, "5", request.URL.Query().Get("limit"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := rwhttp.NewClient(mustBaseURL(t, server.URL), "my example app")

		params := reliefweb.NewQueryParams().WithLimit(5)

		resp, err := client.Get(context.Background(), "reports", params)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("params keep emission order after appname", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			segments := strings.Split(request.URL.RawQuery, "&")
			require.GreaterOrEqual(t, len(segments), 3)
			assert.Equal(t, "appname=test-app", segments[0])
			assert.Equal(t, "limit=3", segments[1])
			assert.True(t, strings.HasPrefix(segments[2], "sort%5B%5D="))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := rwhttp.NewClient(mustBaseURL(t, server.URL), "test-app")

		params := reliefweb.NewQueryParams().
			WithLimit(3).
			WithSort("date.created", reliefweb.SortDesc)

		_, err := client.Get(context.Background(), "reports", params)
		require.NoError(t, err)
	})

	t.Run("non-2xx returns StatusError with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"error": "not found"}`))
		}))
		defer server.Close()

		client := rwhttp.NewClient(mustBaseURL(t, server.URL), "test-app")

		resp, err := client.Get(context.Background(), "reports/999", nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		statusErr := &reliefweb.StatusError{}
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
		assert.Contains(t, string(statusErr.Body), "not found")
		assert.True(t, reliefweb.IsNotFound(err))
	})

	t.Run("network failure returns RequestError", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
		server.Close()

		client := rwhttp.NewClient(mustBaseURL(t, server.URL), "test-app")

		resp, err := client.Get(context.Background(), "reports", nil)
		require.Error(t, err)
		assert.Nil(t, resp)

		requestErr := &reliefweb.RequestError{}
		assert.ErrorAs(t, err, &requestErr)
	})

	t.Run("no retry by default", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := rwhttp.NewClient(mustBaseURL(t, server.URL), "test-app")

		_, err := client.Get(context.Background(), "reports", nil)
		require.Error(t, err)
		assert.True(t, reliefweb.IsStatus(err, http.StatusInternalServerError))
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("retries when configured", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if attempts.Add(1) < 3 {
				writer.WriteHeader(http.StatusInternalServerError)

				return
			}

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := rwhttp.NewClient(mustBaseURL(t, server.URL), "test-app",
			rwhttp.WithRetryConfig(3, 10*time.Millisecond, 20*time.Millisecond))

		resp, err := client.Get(context.Background(), "reports", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, int32(3), attempts.Load())
	})

	t.Run("debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := rwhttp.NewClient(mustBaseURL(t, server.URL), "test-app",
			rwhttp.WithLogger(logger),
			rwhttp.WithDebug(true))

		_, err := client.Get(context.Background(), "reports", nil)
		require.NoError(t, err)

		require.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})

	t.Run("custom user agent", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "my-tool/2.0", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := rwhttp.NewClient(mustBaseURL(t, server.URL), "test-app",
			rwhttp.WithUserAgent("my-tool/2.0"))

		_, err := client.Get(context.Background(), "reports", nil)
		require.NoError(t, err)
	})

	t.Run("context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			time.Sleep(time.Second)
		}))
		defer server.Close()

		client := rwhttp.NewClient(mustBaseURL(t, server.URL), "test-app")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := client.Get(ctx, "reports", nil)
		require.Error(t, err)

		requestErr := &reliefweb.RequestError{}
		assert.ErrorAs(t, err, &requestErr)
	})
}

func TestClient_BaseURL(t *testing.T) {
	t.Parallel()

	baseURL, err := url.Parse("https://api.reliefweb.int/v2/")
	require.NoError(t, err)

	client := rwhttp.NewClient(baseURL, "test-app")
	assert.Equal(t, baseURL, client.BaseURL())
}
