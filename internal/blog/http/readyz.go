package http

import (
	"context"
	"net/http"
	"time"

	"github.com/aussiebroadwan/quill/internal/blog/service"
	"github.com/aussiebroadwan/quill/pkg/blogsdk"
	"github.com/aussiebroadwan/quill/pkg/httpx"
)

// Pinger reports whether the database answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	Includes uptime, version, and the status of the database and the token signer
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	blogsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	blogsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	db Pinger,
	tokens *service.TokenService,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &blogsdk.HealthChecks{
			Database: "ok",
			Signer:   "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := db.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if tokens == nil || tokens.Signer == nil {
			checks.Signer = "error: no token secret loaded"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, blogsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
