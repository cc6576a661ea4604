package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/corpomate/cesimdash/internal/analysis"
	"github.com/corpomate/cesimdash/internal/api/middleware"
	"github.com/corpomate/cesimdash/internal/api/response"
	"github.com/corpomate/cesimdash/internal/api/validation"
	"github.com/corpomate/cesimdash/internal/results"
	"github.com/corpomate/cesimdash/internal/round"
)

type rankingResponse struct {
	Round *roundResponse `json:"round"`
	*analysis.Ranking
}

// RankingHandler handles GET /rankings.
type RankingHandler struct {
	rounds  round.Repository
	results results.Repository
}

// NewRankingHandler creates a new RankingHandler.
func NewRankingHandler(rounds round.Repository, resultsRepo results.Repository) *RankingHandler {
	return &RankingHandler{rounds: rounds, results: resultsRepo}
}

// ServeHTTP ranks the teams of the latest round. Query parameters:
// category (default performances) and metric (default: first of category).
func (h *RankingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	category := strings.TrimSpace(r.URL.Query().Get("category"))
	if category == "" {
		category = analysis.CategoryPerformances
	}
	metric := strings.TrimSpace(r.URL.Query().Get("metric"))

	// Reject unknown parameters before touching the database.
	if _, err := analysis.Rank(category, metric, nil); err != nil {
		field := "metric"
		if _, catErr := analysis.Metrics(category); catErr != nil {
			field = "category"
		}
		response.ErrWithDetails(w, http.StatusBadRequest, response.CodeValidation, "Input validation failed",
			[]validation.FieldError{{Field: field, Message: field + " is not a known ranking " + field}}, requestID)
		return
	}

	latest, err := h.rounds.Latest(r.Context())
	if errors.Is(err, round.ErrRoundNotFound) {
		ranking, _ := analysis.Rank(category, metric, nil)
		response.Success(w, http.StatusOK, rankingResponse{Ranking: ranking}, requestID)
		return
	}
	if err != nil {
		internalError(w, requestID, "Failed to get latest round", err)
		return
	}

	data, err := results.LoadRound(r.Context(), h.results, latest.ID)
	if err != nil {
		internalError(w, requestID, "Failed to load round data", err, "roundId", latest.ID)
		return
	}

	ranking, err := analysis.Rank(category, metric, data)
	if err != nil {
		internalError(w, requestID, "Failed to rank teams", err)
		return
	}

	rr := toRoundResponse(latest)
	response.Success(w, http.StatusOK, rankingResponse{Round: &rr, Ranking: ranking}, requestID)
}
