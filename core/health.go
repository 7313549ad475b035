package core

import (
	"net/http"
	"time"

	"github.com/segmentio/encoding/json"
)

type healthResponse struct {
	Status string `json:"status"`
	Env    string `json:"env"`
	Uptime string `json:"uptime"`
}

// HealthHandler reports process liveness on /healthz.
func HealthHandler(env string) http.HandlerFunc {
	started := time.Now()

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(healthResponse{
			Status: "ok",
			Env:    env,
			Uptime: time.Since(started).Truncate(time.Second).String(),
		})
	}
}
