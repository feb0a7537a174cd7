package handlers

import (
	"context"
	"net/http"

	"github.com/HBortolim/btg-challenge/utils"
)

// HealthChecker verifies that a backing dependency is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthResponse is the body of the health endpoints
type HealthResponse struct {
	Status string `json:"status"`
}

// Liveness handles GET /healthz. It only confirms the process is up.
func Liveness(w http.ResponseWriter, r *http.Request) {
	_ = utils.WriteOK(w, HealthResponse{Status: "ok"})
}

// Readiness returns a handler for GET /readyz that checks the
// database connection
func Readiness(db HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.HealthCheck(r.Context()); err != nil {
			_ = utils.WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
			return
		}
		_ = utils.WriteOK(w, HealthResponse{Status: "ready"})
	}
}
