// Package httpapi is the thin HTTP façade spec.md §6 describes: one
// endpoint per algorithm, JSON bodies carrying serialized matrices,
// modeled on the teacher's api package (handlers.go, routes.go,
// middleware.go, utils/response.go).
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// PartitionResponse is the standard response shape spec.md §6 names:
// { "PartitionMatrix": "<serialized>", "ExecutionTime": <ms> }.
type PartitionResponse struct {
	PartitionMatrix string  `json:"PartitionMatrix"`
	ExecutionTime   float64 `json:"ExecutionTime"`
}

// MatrixResponse wraps a single serialized matrix, used by the random
// graph generator endpoints.
type MatrixResponse struct {
	Matrix string `json:"Matrix"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Int("status", status).Msg("failed to encode JSON response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
