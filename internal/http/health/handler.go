package health

import (
	"encoding/json"
	"net/http"
)

// Response is the payload for the health endpoint.
type Response struct {
	Status   string `json:"status"`
	RootPath string `json:"rootPath"`
}

// Handler returns a plain HTTP handler for the health check endpoint that
// reports the root path the application is mounted under.
func Handler(rootPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Response{Status: "healthy", RootPath: rootPath})
	}
}
