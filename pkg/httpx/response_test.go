package httpx_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aussiebroadwan/quill/pkg/httpx"
	"github.com/stretchr/testify/require"
)

type dataErr struct {
	err  *httpx.Error
	data any
}

func (e dataErr) Error() string   { return e.err.Error() }
func (e dataErr) StatusCode() int { return e.err.StatusCode() }
func (e dataErr) ErrorData() any  { return e.data }

func TestErrorResponse(t *testing.T) {
	t.Run("plain errors are hidden behind a 500", func(t *testing.T) {
		status, body := httpx.ErrorResponse(errors.New("disk on fire"))
		require.Equal(t, http.StatusInternalServerError, status)
		require.Equal(t, httpx.DefaultErrorMessage, body.Message)
		require.Nil(t, body.Data)
	})

	t.Run("status errors keep their message", func(t *testing.T) {
		status, body := httpx.ErrorResponse(httpx.NewError(http.StatusBadRequest, "Invalid JSON body."))
		require.Equal(t, http.StatusBadRequest, status)
		require.Equal(t, "Invalid JSON body.", body.Message)
	})

	t.Run("wrapped status errors are found", func(t *testing.T) {
		err := fmt.Errorf("upload: %w", httpx.NewError(http.StatusRequestEntityTooLarge, "File too large."))
		status, body := httpx.ErrorResponse(err)
		require.Equal(t, http.StatusRequestEntityTooLarge, status)
		require.Equal(t, "File too large.", body.Message)
	})

	t.Run("zero status becomes 500", func(t *testing.T) {
		status, body := httpx.ErrorResponse(httpx.NewError(0, ""))
		require.Equal(t, http.StatusInternalServerError, status)
		require.Equal(t, httpx.DefaultErrorMessage, body.Message)
	})

	t.Run("data is attached", func(t *testing.T) {
		err := dataErr{err: httpx.NewError(http.StatusUnprocessableEntity, "Invalid input."), data: []string{"email"}}
		status, body := httpx.ErrorResponse(err)
		require.Equal(t, http.StatusUnprocessableEntity, status)
		require.Equal(t, []string{"email"}, body.Data)
	})
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteError(rec, httpx.NewError(http.StatusNotFound, "No post found!"))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "No post found!", body["message"])
	require.Contains(t, body, "data")
}

func TestChain(t *testing.T) {
	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mw("a"), mw("b"), mw("c"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"a", "b", "c", "handler"}, order)
}

func TestCORS(t *testing.T) {
	called := false
	h := httpx.CORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("preflight is answered directly", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodOptions, "/graphql", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "content-type,authorization")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Contains(t, strings.ToLower(rec.Header().Get("Access-Control-Allow-Headers")), "authorization")
		require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
		require.False(t, called)
	})

	t.Run("plain OPTIONS reaches the handler", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodOptions, "/graphql", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
		require.True(t, called)
	})

	t.Run("other methods pass through", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Contains(t, strings.ToLower(rec.Header().Get("Access-Control-Expose-Headers")), "x-request-id")
		require.Contains(t, rec.Header().Values("Vary"), "Origin")
		require.True(t, called)
	})
}
