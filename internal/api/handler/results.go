package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/corpomate/cesimdash/internal/api/middleware"
	"github.com/corpomate/cesimdash/internal/api/response"
	"github.com/corpomate/cesimdash/internal/results"
)

// ResultsHandler serves the per-kind result listings.
type ResultsHandler struct {
	repo results.Repository
}

// NewResultsHandler creates a new ResultsHandler.
func NewResultsHandler(repo results.Repository) *ResultsHandler {
	return &ResultsHandler{repo: repo}
}

// Performances handles GET /performances.
func (h *ResultsHandler) Performances(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, "performances", h.repo.ListPerformances)
}

// MarketShares handles GET /market-shares.
func (h *ResultsHandler) MarketShares(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, "market shares", h.repo.ListMarketShares)
}

// HRData handles GET /hr.
func (h *ResultsHandler) HRData(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, "HR data", h.repo.ListHRData)
}

// Productions handles GET /productions.
func (h *ResultsHandler) Productions(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, "productions", h.repo.ListProductions)
}

// Financials handles GET /financials.
func (h *ResultsHandler) Financials(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, "financials", h.repo.ListFinancials)
}

func serveList[T any](w http.ResponseWriter, r *http.Request, what string, list func(context.Context, results.Filter) ([]T, error)) {
	requestID := middleware.GetRequestID(r.Context())

	filter, ok := parseFilter(w, r, requestID)
	if !ok {
		return
	}

	items, err := list(r.Context(), filter)
	if err != nil {
		internalError(w, requestID, "Failed to list "+what, err)
		return
	}
	if items == nil {
		items = []T{}
	}

	response.SuccessList(w, http.StatusOK, items, len(items), requestID)
}

// parseFilter reads the roundId, teamId and team query parameters.
func parseFilter(w http.ResponseWriter, r *http.Request, requestID string) (results.Filter, bool) {
	var f results.Filter
	q := r.URL.Query()

	for _, p := range []struct {
		name string
		dst  **uuid.UUID
	}{
		{name: "roundId", dst: &f.RoundID},
		{name: "teamId", dst: &f.TeamID},
	} {
		raw := strings.TrimSpace(q.Get(p.name))
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Err(w, http.StatusBadRequest, response.CodeInvalidID, p.name+" must be a valid UUID", requestID)
			return results.Filter{}, false
		}
		*p.dst = &id
	}

	if name := strings.TrimSpace(q.Get("team")); name != "" {
		f.TeamName = &name
	}

	return f, true
}
