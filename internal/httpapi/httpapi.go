// Package httpapi is the optional small HTTP service §1 allows around
// the core: a single POST /solve endpoint, routed with chi the way the
// teacher's internal/api routed its command/event endpoints, logging
// each request with zap and recording latency/result-count metrics.
package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/qingchang/grimoire-deduce/internal/cli"
	"github.com/qingchang/grimoire-deduce/internal/observability"
	"github.com/qingchang/grimoire-deduce/internal/search"
)

// Server bundles the dependencies the /solve handler needs.
type Server struct {
	Logger  *zap.Logger
	Metrics *observability.Metrics
	Workers int
}

// seatSpecJSON is a single seat's observation in the request body.
type seatSpecJSON struct {
	Visible   string `json:"visible"`
	Confirmed string `json:"confirmed"`
	Statement string `json:"statement"`
}

type solveRequest struct {
	Deck      string         `json:"deck"`
	Villagers int            `json:"villagers"`
	Outcasts  int            `json:"outcasts"`
	Minions   int            `json:"minions"`
	Demons    int            `json:"demons"`
	Seats     []seatSpecJSON `json:"seats"`
}

type solveResponse struct {
	RequestID  string     `json:"request_id"`
	Count      int        `json:"count"`
	Worlds     [][]string `json:"worlds"`
	DurationMs int64      `json:"duration_ms"`
}

// NewRouter builds the chi router: request-ID and zap-backed request
// logging middleware (the teacher's internal/api wraps every route the
// same way), then the /solve route.
func NewRouter(s *Server) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(zapRequestLogger(s.Logger))
	r.Post("/solve", s.handleSolve)
	return r
}

func zapRequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("latency", time.Since(start)),
			)
		})
	}
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.NewString()
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, reqID, "malformed JSON body: "+err.Error())
		return
	}

	seatSpecs := make([]string, len(req.Seats))
	for i, sp := range req.Seats {
		v, c := sp.Visible, sp.Confirmed
		if v == "" {
			v = "?"
		}
		if c == "" {
			c = "?"
		}
		st := sp.Statement
		if st == "" {
			st = "?"
		}
		seatSpecs[i] = v + ":" + c + ":" + st
	}

	puzzle, err := cli.ParseArgs(req.Deck,
		strconv.Itoa(req.Villagers), strconv.Itoa(req.Outcasts), strconv.Itoa(req.Minions), strconv.Itoa(req.Demons), seatSpecs)
	if err != nil {
		writeError(w, http.StatusBadRequest, reqID, err.Error())
		return
	}

	start := time.Now()
	worlds := search.Solve(puzzle.Deck, puzzle.Visible, puzzle.Confirmed, puzzle.Observed, puzzle.Quotas, search.Options{Workers: s.Workers})
	elapsed := time.Since(start)

	if s.Metrics != nil {
		s.Metrics.SolveLatency.Observe(float64(elapsed.Milliseconds()))
		s.Metrics.ResultTotal.Add(float64(len(worlds)))
		s.Metrics.SolveRequests.WithLabelValues("ok").Inc()
	}

	resp := solveResponse{RequestID: reqID, Count: len(worlds), DurationMs: elapsed.Milliseconds()}
	for _, world := range worlds {
		row := make([]string, len(world))
		for i, role := range world {
			row[i] = string(role)
		}
		resp.Worlds = append(resp.Worlds, row)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func writeError(w http.ResponseWriter, status int, reqID, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"request_id": reqID, "error": msg})
}

