package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"OddsScout/internal/engine"
	"OddsScout/internal/model"
	"OddsScout/internal/pipeline"
)

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "oddsscout",
	})
}

func (s *Server) status(w http.ResponseWriter, _ *http.Request) {
	oddsSource, statsSource := s.pipe.Sources()
	var updated string
	if at := s.updatedAt(); !at.IsZero() {
		updated = at.Format("2006-01-02 15:04:05")
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"last_updated": updated,
		"odds_source":  oddsSource,
		"stats_source": statsSource,
		"leagues":      s.pipe.LeagueNames(),
	})
}

func (s *Server) refresh(w http.ResponseWriter, r *http.Request) {
	if err := s.pipe.Refresh(r.Context()); err != nil {
		s.log.Error("refresh failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "refresh failed")
		return
	}
	s.markUpdated()
	respondJSON(w, http.StatusOK, map[string]string{
		"status":       "cache cleared",
		"last_updated": s.updatedAt().Format("2006-01-02 15:04:05"),
	})
}

// runPipeline executes a run and writes the throttle pause signal when the
// interval guard trips. Returns rows and whether the response is still open.
func (s *Server) runPipeline(w http.ResponseWriter, r *http.Request) ([]model.ValuationRow, bool) {
	rows, err := s.pipe.Run(r.Context(), selectedLeagues(r))
	if err != nil {
		var throttled *pipeline.ThrottledError
		if errors.As(err, &throttled) {
			seconds := int(math.Ceil(throttled.Wait.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(seconds))
			respondError(w, http.StatusTooManyRequests, throttled.Error())
			return nil, false
		}
		s.log.Error("pipeline run failed", zap.Error(err))
		respondError(w, http.StatusBadGateway, "no data available")
		return nil, false
	}
	s.markUpdated()
	return rows, true
}

func (s *Server) valuations(w http.ResponseWriter, r *http.Request) {
	rows, ok := s.runPipeline(w, r)
	if !ok {
		return
	}

	if v := r.URL.Query().Get("min_confidence"); v != "" {
		threshold, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "min_confidence must be a number")
			return
		}
		rows = engine.FilterByConfidence(rows, threshold)
	}
	if v := r.URL.Query().Get("high_conviction"); v == "true" || v == "1" {
		rows = engine.FilterHighConviction(rows)
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"count": len(rows),
		"rows":  rows,
	})
}

func (s *Server) topValuations(w http.ResponseWriter, r *http.Request) {
	n := 10
	if v := r.URL.Query().Get("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			respondError(w, http.StatusBadRequest, "n must be a positive integer")
			return
		}
		n = parsed
	}

	rows, ok := s.runPipeline(w, r)
	if !ok {
		return
	}
	rows = engine.TopNByConfidence(rows, n)
	respondJSON(w, http.StatusOK, map[string]any{
		"count": len(rows),
		"rows":  rows,
	})
}

func (s *Server) parlays(w http.ResponseWriter, r *http.Request) {
	market := chi.URLParam(r, "market")
	if market != engine.MarketOver25 && market != engine.MarketBTTS {
		respondError(w, http.StatusBadRequest,
			fmt.Sprintf("unknown market %q, want %q or %q", market, engine.MarketOver25, engine.MarketBTTS))
		return
	}
	n := engine.DefaultParlaySize
	if v := r.URL.Query().Get("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			respondError(w, http.StatusBadRequest, "n must be a positive integer")
			return
		}
		n = parsed
	}

	rows, ok := s.runPipeline(w, r)
	if !ok {
		return
	}
	legs := engine.ParlayCandidates(rows, market, n)
	respondJSON(w, http.StatusOK, map[string]any{
		"market": market,
		"count":  len(legs),
		"legs":   legs,
	})
}

type betRequest struct {
	Match  string  `json:"match"`
	Odds   float64 `json:"odds"`
	Result string  `json:"result"`
}

func (s *Server) addBet(w http.ResponseWriter, r *http.Request) {
	var req betRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}
	if strings.TrimSpace(req.Match) == "" {
		respondError(w, http.StatusBadRequest, "match is required")
		return
	}
	if req.Odds < 1.0 {
		respondError(w, http.StatusBadRequest, "odds must be at least 1.0")
		return
	}
	result := model.BetResult(req.Result)
	if result != model.BetWin && result != model.BetLoss {
		respondError(w, http.StatusBadRequest, `result must be "Win" or "Loss"`)
		return
	}

	rec := s.ledger.Append(req.Match, req.Odds, result)
	s.log.Info("bet recorded",
		zap.String("match", rec.Match),
		zap.Float64("odds", rec.Odds),
		zap.String("result", string(rec.Result)))
	respondJSON(w, http.StatusCreated, rec)
}

func (s *Server) listBets(w http.ResponseWriter, _ *http.Request) {
	records := s.ledger.Snapshot()
	respondJSON(w, http.StatusOK, map[string]any{
		"count":   len(records),
		"records": records,
	})
}

func (s *Server) betSummary(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.ledger.Summary())
}

// selectedLeagues parses the comma-separated leagues query parameter;
// an empty parameter selects every configured league.
func selectedLeagues(r *http.Request) []string {
	raw := r.URL.Query().Get("leagues")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
