package slogx_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/quill/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestHTTPMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slogx.New(slogx.Config{Service: "test", Level: "debug", Format: "json", Output: &buf})

	h := slogx.HTTPMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slogx.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	t.Run("echoes provided request id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/graphql", nil)
		req.Header.Set(slogx.RequestIDHeader, "req-123")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		require.Equal(t, "req-123", rec.Header().Get(slogx.RequestIDHeader))

		lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
		require.Len(t, lines, 2)

		var inner, access map[string]any
		require.NoError(t, json.Unmarshal(lines[0], &inner))
		require.NoError(t, json.Unmarshal(lines[1], &access))

		require.Equal(t, "req-123", inner["req_id"])
		require.Equal(t, "http_request", access["msg"])
		require.Equal(t, "WARN", access["level"])
		require.EqualValues(t, http.StatusTeapot, access["status"])
		require.EqualValues(t, len("short and stout"), access["bytes"])
	})

	t.Run("generates request id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.NotEmpty(t, rec.Header().Get(slogx.RequestIDHeader))
	})
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NotNil(t, slogx.FromContext(req.Context()))
}
