package httpapi

import (
	"github.com/gorilla/mux"
)

// SetupRoutes wires the exact endpoint table spec.md §6 names, plus the
// supplemented /health and /algorithms endpoints (SPEC_FULL.md), onto
// router — modeled on the teacher's api.SetupRoutes.
func SetupRoutes(router *mux.Router, h *Handlers) {
	router.HandleFunc("/randomAdjacencyGraph", h.RandomAdjacencyGraph).Methods("GET")
	router.HandleFunc("/randomWeightedAdjacencyGraph", h.RandomWeightedAdjacencyGraph).Methods("POST")

	router.HandleFunc("/spectralAlgorithm", h.SpectralAlgorithm).Methods("POST")
	router.HandleFunc("/logicalProgramming", h.LogicalProgramming).Methods("POST")
	router.HandleFunc("/kernighanLin", h.KernighanLin).Methods("POST")
	router.HandleFunc("/greedyAlgorithm", h.GreedyAlgorithm).Methods("POST")
	router.HandleFunc("/bruteForce", h.BruteForce).Methods("POST")
	router.HandleFunc("/geometricAlgorithm", h.GeometricAlgorithm).Methods("POST")
	router.HandleFunc("/inertialAlgorithm", h.InertialAlgorithm).Methods("POST")
	router.HandleFunc("/logicalProgrammingWeighted", h.LogicalProgrammingWeighted).Methods("POST")
	router.HandleFunc("/bruteForceWeighted", h.BruteForceWeighted).Methods("POST")

	router.HandleFunc("/health", h.HealthCheck).Methods("GET")
	router.HandleFunc("/algorithms", h.ListAlgorithms).Methods("GET")
}
