package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"graphpart/internal/asp"
	"graphpart/internal/config"
	"graphpart/internal/errs"
	"graphpart/internal/graphmodel"
	"graphpart/internal/rng"
	"graphpart/internal/runner"
	"graphpart/pkg/algorithm"
	"graphpart/pkg/randomgraph"
)

// Handlers wires the algorithm Registry, the ASP path, and the bounded
// runner into net/http handlers, mirroring the teacher's Handlers
// struct holding its services (api/handlers.go).
type Handlers struct {
	registry *algorithm.Registry
	asp      *asp.LogicalProgramming
	runner   *runner.Runner
	rng      func() rng.Source
}

func NewHandlers(registry *algorithm.Registry, aspCfg config.ASPConfig, r *runner.Runner, rngCfg config.RNGConfig) *Handlers {
	seedFn := func() rng.Source {
		if rngCfg.HasSeed {
			return rng.New(rngCfg.Seed)
		}
		return rng.FromEnv()
	}
	return &Handlers{
		registry: registry,
		asp:      asp.NewLogicalProgramming(aspCfg),
		runner:   r,
		rng:      seedFn,
	}
}

// --- random graph generation -------------------------------------------------

func (h *Handlers) RandomAdjacencyGraph(w http.ResponseWriter, r *http.Request) {
	n, err := queryInt(r, "numVertices")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	maxDeg, err := queryInt(r, "maxEdgesPerVertex")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := randomgraph.Generate(h.rng(), n, maxDeg)
	if err != nil {
		handleErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MatrixResponse{Matrix: graphmodel.Serialize(rows)})
}

type weightedRequest struct {
	A         string  `json:"A"`
	MinWeight float64 `json:"minWeight"`
	MaxWeight float64 `json:"maxWeight"`
}

func (h *Handlers) RandomWeightedAdjacencyGraph(w http.ResponseWriter, r *http.Request) {
	var req weightedRequest
	if !decodeBody(w, r, &req) {
		return
	}
	adjRows, err := graphmodel.Deserialize(req.A)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	adj, err := graphmodel.NewAdjacencyMatrix(adjRows)
	if err != nil {
		handleErr(w, err)
		return
	}

	rows, err := randomgraph.GenerateWeighted(h.rng(), adj.Rows(), req.MinWeight, req.MaxWeight)
	if err != nil {
		handleErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MatrixResponse{Matrix: graphmodel.Serialize(rows)})
}

// --- unweighted algorithms ---------------------------------------------------

type algorithmRequest struct {
	A string `json:"A"`
	K int    `json:"k"`
}

func (h *Handlers) runUnweighted(name string, fixedK int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req algorithmRequest
		if !decodeBody(w, r, &req) {
			return
		}
		k := req.K
		if fixedK > 0 {
			k = fixedK
		}

		adjRows, err := graphmodel.Deserialize(req.A)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		adj, err := graphmodel.NewAdjacencyMatrix(adjRows)
		if err != nil {
			handleErr(w, err)
			return
		}

		algo, ok := h.registry.Get(name)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown algorithm: "+name)
			return
		}

		bounded := algo.Name() == "brute-force"
		input := algorithm.Input{Adjacency: adj, K: k, RNG: h.rng()}
		h.runAndRespond(w, r, bounded, func(ctx context.Context) (string, error) {
			p, err := algo.Partition(input)
			if err != nil {
				return "", err
			}
			if bounded {
				// BruteForce's result must be a rectangular (k x
				// maxSize) matrix, -1 padded, per spec.md §4.7.
				return p.SerializePadded(), nil
			}
			return p.SerializeRagged(), nil
		})
	}
}

func (h *Handlers) SpectralAlgorithm(w http.ResponseWriter, r *http.Request) {
	h.runUnweighted("spectral", 2)(w, r)
}

func (h *Handlers) KernighanLin(w http.ResponseWriter, r *http.Request) {
	h.runUnweighted("kernighan-lin", 2)(w, r)
}

func (h *Handlers) GreedyAlgorithm(w http.ResponseWriter, r *http.Request) {
	h.runUnweighted("greedy", 2)(w, r)
}

func (h *Handlers) BruteForce(w http.ResponseWriter, r *http.Request) {
	h.runUnweighted("brute-force", 2)(w, r)
}

// --- weighted algorithms ------------------------------------------------------

type weightedAlgorithmRequest struct {
	A string `json:"A"`
	W string `json:"W"`
	K int    `json:"k"`
}

func (h *Handlers) runWeighted(name string, fixedK int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req weightedAlgorithmRequest
		if !decodeBody(w, r, &req) {
			return
		}
		k := req.K
		if fixedK > 0 {
			k = fixedK
		}

		adjRows, err := graphmodel.Deserialize(req.A)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		adj, err := graphmodel.NewAdjacencyMatrix(adjRows)
		if err != nil {
			handleErr(w, err)
			return
		}
		wRows, err := graphmodel.Deserialize(req.W)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		weights, err := graphmodel.NewWeightsMatrix(wRows, adj)
		if err != nil {
			handleErr(w, err)
			return
		}

		algo, ok := h.registry.Get(name)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown algorithm: "+name)
			return
		}

		bounded := algo.Name() == "brute-force-weighted"
		input := algorithm.Input{Adjacency: adj, Weights: weights, K: k, RNG: h.rng()}
		h.runAndRespond(w, r, bounded, func(ctx context.Context) (string, error) {
			p, err := algo.Partition(input)
			if err != nil {
				return "", err
			}
			if bounded {
				return p.SerializePadded(), nil
			}
			return p.SerializeRagged(), nil
		})
	}
}

func (h *Handlers) GeometricAlgorithm(w http.ResponseWriter, r *http.Request) {
	h.runWeighted("geometric", 2)(w, r)
}

func (h *Handlers) InertialAlgorithm(w http.ResponseWriter, r *http.Request) {
	h.runWeighted("inertial", 2)(w, r)
}

func (h *Handlers) BruteForceWeighted(w http.ResponseWriter, r *http.Request) {
	h.runWeighted("brute-force-weighted", 2)(w, r)
}

// --- logical programming (ASP) -------------------------------------------------

func (h *Handlers) LogicalProgramming(w http.ResponseWriter, r *http.Request) {
	var req algorithmRequest
	if !decodeBody(w, r, &req) {
		return
	}
	k := req.K
	if k == 0 {
		k = 2
	}
	adjRows, err := graphmodel.Deserialize(req.A)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	adj, err := graphmodel.NewAdjacencyMatrix(adjRows)
	if err != nil {
		handleErr(w, err)
		return
	}

	h.runAndRespond(w, r, true, func(ctx context.Context) (string, error) {
		p, err := h.asp.Partition(ctx, adj, k)
		if err != nil {
			return "", err
		}
		return p.SerializeRagged(), nil
	})
}

func (h *Handlers) LogicalProgrammingWeighted(w http.ResponseWriter, r *http.Request) {
	var req weightedAlgorithmRequest
	if !decodeBody(w, r, &req) {
		return
	}
	k := req.K
	if k == 0 {
		k = 2
	}
	adjRows, err := graphmodel.Deserialize(req.A)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	adj, err := graphmodel.NewAdjacencyMatrix(adjRows)
	if err != nil {
		handleErr(w, err)
		return
	}
	wRows, err := graphmodel.Deserialize(req.W)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	weights, err := graphmodel.NewWeightsMatrix(wRows, adj)
	if err != nil {
		handleErr(w, err)
		return
	}

	h.runAndRespond(w, r, true, func(ctx context.Context) (string, error) {
		p, err := h.asp.PartitionWeighted(ctx, adj, weights, k)
		if err != nil {
			return "", err
		}
		return p.SerializeRagged(), nil
	})
}

// --- ambient endpoints ----------------------------------------------------------

func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) ListAlgorithms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"algorithms": h.registry.List()})
}

// --- shared plumbing --------------------------------------------------------

// runAndRespond executes fn, optionally routed through the bounded
// runner (for BruteForce/ASP, per spec.md §5), and writes the standard
// {PartitionMatrix, ExecutionTime} envelope.
func (h *Handlers) runAndRespond(w http.ResponseWriter, r *http.Request, bounded bool, fn func(ctx context.Context) (string, error)) {
	start := time.Now()

	var serialized string
	var err error
	if bounded {
		err = h.runner.Bound(r.Context(), func(ctx context.Context) error {
			serialized, err = fn(ctx)
			return err
		})
	} else {
		serialized, err = fn(r.Context())
	}

	if err != nil {
		handleErr(w, err)
		return
	}

	elapsed := time.Since(start)
	writeJSON(w, http.StatusOK, PartitionResponse{
		PartitionMatrix: serialized,
		ExecutionTime:   float64(elapsed.Microseconds()) / 1000.0,
	})
}

func handleErr(w http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("request failed")
	writeError(w, errs.HTTPStatus(err), err.Error())
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func queryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.New(errs.InvalidInput, "missing or invalid query parameter: "+key)
	}
	return v, nil
}
