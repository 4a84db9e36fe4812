package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/quill/pkg/httpx"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func fromAddr(addr string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	req.RemoteAddr = addr
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestClientIP(t *testing.T) {
	cases := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"remote addr", nil, "192.168.1.1"},
		{"forwarded for", map[string]string{"X-Forwarded-For": "10.0.0.1, 10.0.0.2"}, "10.0.0.1"},
		{"real ip", map[string]string{"X-Real-IP": " 10.0.0.9 "}, "10.0.0.9"},
		{"forwarded for wins", map[string]string{"X-Forwarded-For": "10.0.0.1", "X-Real-IP": "10.0.0.9"}, "10.0.0.1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := fromAddr("192.168.1.1:12345")
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			require.Equal(t, tc.want, httpx.ClientIP(req))
		})
	}
}

func TestRateLimitByIP(t *testing.T) {
	h := httpx.RateLimitByIP(httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2})(okHandler)

	for range 2 {
		require.Equal(t, http.StatusOK, serve(h, fromAddr("192.168.1.1:12345")).Code)
	}

	rec := serve(h, fromAddr("192.168.1.1:54321"))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))
	require.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	require.Equal(t, "1m0s", rec.Header().Get("X-RateLimit-Window"))

	var body httpx.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Too many requests. Please try again later.", body.Message)
	require.NotNil(t, body.Data)

	// Other addresses have their own bucket.
	require.Equal(t, http.StatusOK, serve(h, fromAddr("192.168.1.2:12345")).Code)
}

func TestRateLimitByUser(t *testing.T) {
	h := httpx.RateLimitByUser(httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1})(okHandler)

	as := func(user string) *http.Request {
		req := httptest.NewRequest(http.MethodPut, "/post-image", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		if user == "" {
			return req
		}
		return req.WithContext(httpx.WithSubject(req.Context(), user))
	}

	require.Equal(t, http.StatusOK, serve(h, as("alice")).Code)
	require.Equal(t, http.StatusTooManyRequests, serve(h, as("alice")).Code)

	// Same address, different user.
	require.Equal(t, http.StatusOK, serve(h, as("bob")).Code)

	// Anonymous callers fall back to the address bucket, which is still fresh.
	require.Equal(t, http.StatusOK, serve(h, as("")).Code)
	require.Equal(t, http.StatusTooManyRequests, serve(h, as("")).Code)
}

func TestRateLimitProfiles(t *testing.T) {
	for name, cfg := range map[string]httpx.RateLimitConfig{
		"upload":  httpx.UploadLimit,
		"graphql": httpx.GraphQLLimit,
		"public":  httpx.PublicLimit,
	} {
		t.Run(name, func(t *testing.T) {
			require.Positive(t, cfg.RequestsPerWindow)
			require.Positive(t, cfg.Window)
			require.Positive(t, cfg.Burst)
		})
	}

	require.Less(t, httpx.UploadLimit.RequestsPerWindow, httpx.GraphQLLimit.RequestsPerWindow)
	require.Less(t, httpx.GraphQLLimit.RequestsPerWindow, httpx.PublicLimit.RequestsPerWindow)
}

func TestParseRateLimitFromEnv(t *testing.T) {
	def := httpx.RateLimitConfig{RequestsPerWindow: 10, Window: time.Minute, Burst: 10}

	t.Run("defaults", func(t *testing.T) {
		require.Equal(t, def, httpx.ParseRateLimitFromEnv("QUILLTEST", def))
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("RATELIMIT_QUILLTEST_REQUESTS", "2")
		t.Setenv("RATELIMIT_QUILLTEST_WINDOW_SEC", "60")
		t.Setenv("RATELIMIT_QUILLTEST_BURST", "3")

		require.Equal(t,
			httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 3},
			httpx.ParseRateLimitFromEnv("QUILLTEST", def))
	})

	t.Run("invalid and zero values are ignored", func(t *testing.T) {
		t.Setenv("RATELIMIT_QUILLTEST_REQUESTS", "lots")
		t.Setenv("RATELIMIT_QUILLTEST_WINDOW_SEC", "-10")
		t.Setenv("RATELIMIT_QUILLTEST_BURST", "0")

		require.Equal(t, def, httpx.ParseRateLimitFromEnv("QUILLTEST", def))
	})
}
