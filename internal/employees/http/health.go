package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/staffdb/internal/employees/service"
	"github.com/aussiebroadwan/staffdb/internal/employees/store"
	"github.com/aussiebroadwan/staffdb/pkg/httpx"
	"github.com/aussiebroadwan/staffdb/pkg/staffsdk"
)

// HealthHandler godoc
//
//	@Summary		Health Check
//	@Description	Always answers ok while the process is serving
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	staffsdk.HealthResponse	"status"
//	@Router			/health [get].
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, staffsdk.HealthResponse{Status: "ok"})
	}
}

// LivezHandler godoc
//
//	@Summary		Liveness Probe
//	@Description	Returns status, uptime and version. Always 200 while the service is running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	staffsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, staffsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Probe
//	@Description	Checks the record store and the token signer
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	staffsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	staffsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	tokens *service.TokenService,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &staffsdk.HealthChecks{
			Database: "ok",
			Signer:   "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if err := tokens.Ready(); err != nil {
			checks.Signer = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, staffsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
