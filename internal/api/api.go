package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"OddsScout/internal/ledger"
	"OddsScout/internal/model"
)

// Runner is the valuation pipeline as the API consumes it.
type Runner interface {
	Run(ctx context.Context, selected []string) ([]model.ValuationRow, error)
	Refresh(ctx context.Context) error
	LeagueNames() []string
	Sources() (oddsSource, statsSource string)
}

// Server is the presentation collaborator: it calls the engine with the
// caller's league selection and renders the resulting rows as JSON.
type Server struct {
	pipe   Runner
	ledger *ledger.Ledger
	log    *zap.Logger

	mu          sync.Mutex
	lastUpdated time.Time
}

// NewServer creates the API server around the pipeline and ledger.
func NewServer(pipe Runner, lg *ledger.Ledger, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{pipe: pipe, ledger: lg, log: log}
}

// Router assembles all routes with the standard middleware stack.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.health)
	r.Get("/v1/status", s.status)
	r.Post("/v1/refresh", s.refresh)
	r.Get("/v1/valuations", s.valuations)
	r.Get("/v1/valuations/top", s.topValuations)
	r.Get("/v1/parlays/{market}", s.parlays)
	r.Post("/v1/bets", s.addBet)
	r.Get("/v1/bets", s.listBets)
	r.Get("/v1/bets/summary", s.betSummary)
	return r
}

func (s *Server) markUpdated() {
	s.mu.Lock()
	s.lastUpdated = time.Now()
	s.mu.Unlock()
}

func (s *Server) updatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUpdated
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
