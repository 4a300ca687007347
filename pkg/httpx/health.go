package httpx

import (
	"context"
	"net/http"
	"time"
)

// isoMillis matches JavaScript's Date.prototype.toISOString output.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// HealthChecker is satisfied by any dependency that exposes a Ping method.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type healthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Time    string `json:"time"`
} // @name HealthResponse

// HealthHandler answers liveness probes. It never touches a dependency and
// always reports ok with the current UTC time.
//
//	@Summary	Liveness probe
//	@Tags		ops
//	@Produce	json
//	@Success	200	{object}	healthResponse
//	@Router		/health [get]
func HealthHandler(service string, now func() time.Time) http.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	return func(w http.ResponseWriter, _ *http.Request) {
		JSON(w, http.StatusOK, healthResponse{
			OK:      true,
			Service: service,
			Time:    now().UTC().Format(isoMillis),
		})
	}
}

type readyResponse struct {
	OK    bool   `json:"ok"`
	Store string `json:"store"`
}

// ReadyHandler probes the record store and reports 503 when it is unreachable.
func ReadyHandler(store HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			JSON(w, http.StatusServiceUnavailable, readyResponse{OK: false, Store: "unreachable"})
			return
		}
		JSON(w, http.StatusOK, readyResponse{OK: true, Store: "ok"})
	}
}
