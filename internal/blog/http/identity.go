package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/quill/internal/blog/domain"
	"github.com/aussiebroadwan/quill/pkg/httpx"
	"github.com/aussiebroadwan/quill/pkg/jwtx"
	"github.com/aussiebroadwan/quill/pkg/slogx"
)

// TokenVerifier checks a login token.
type TokenVerifier interface {
	Verify(token string) (jwtx.Claims, error)
}

// IdentityMiddleware attaches a domain.Identity to every request. It never
// rejects: a missing or invalid token leaves the request Anonymous and each
// operation decides whether that is acceptable.
func IdentityMiddleware(tokens TokenVerifier) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			var id domain.Identity = domain.Anonymous{}
			if token := extractToken(r.Header.Get("Authorization")); token != "" {
				claims, err := tokens.Verify(token)
				if err != nil {
					slogx.FromContext(ctx).Debug("ignoring invalid token", "error", err)
				} else {
					id = domain.Authenticated{UserID: claims.UserID, Email: claims.Email}
					ctx = httpx.WithSubject(ctx, claims.UserID)
					ctx = slogx.With(ctx, "user_id", claims.UserID)
				}
			}

			next.ServeHTTP(w, r.WithContext(domain.WithIdentity(ctx, id)))
		})
	}
}

// extractToken accepts "Bearer <token>" or the bare token.
func extractToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}
