// Package health serves the liveness endpoint outside the huma API.
package health

import (
	"encoding/json"
	"net/http"
)

// Response is the payload for the health endpoint.
type Response struct {
	Status       string `json:"status"`
	Version      string `json:"version"`
	ProfileStore string `json:"profileStore"`
}

// Handler returns a plain HTTP handler reporting the build version and the
// profile store backend in use.
func Handler(version, profileStore string) http.HandlerFunc {
	body := Response{Status: "healthy", Version: version, ProfileStore: profileStore}
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(body)
	}
}
