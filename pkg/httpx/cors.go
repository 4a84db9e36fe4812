package httpx

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows any origin to call the API with an Authorization header.
// Preflight requests are answered with 200 without reaching the handler.
func CORS() Middleware {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodOptions, http.MethodGet, http.MethodPost,
			http.MethodPut, http.MethodPatch, http.MethodDelete,
		},
		AllowedHeaders:       []string{"Content-Type", "Authorization", "X-Request-ID"},
		ExposedHeaders:       []string{"X-Request-ID", "Retry-After"},
		OptionsSuccessStatus: http.StatusOK,
	})
	return c.Handler
}
