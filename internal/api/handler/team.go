package handler

import (
	"errors"
	"net/http"

	"github.com/corpomate/cesimdash/internal/analysis"
	"github.com/corpomate/cesimdash/internal/api/middleware"
	"github.com/corpomate/cesimdash/internal/api/response"
	"github.com/corpomate/cesimdash/internal/results"
	"github.com/corpomate/cesimdash/internal/team"
)

type teamResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsMyTeam  bool   `json:"isMyTeam"`
	CreatedAt string `json:"createdAt"`
}

func toTeamResponse(t *team.Team) teamResponse {
	return teamResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		IsMyTeam:  t.IsMyTeam,
		CreatedAt: t.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

type teamKPIsResponse struct {
	Team teamResponse `json:"team"`
	analysis.TeamKPIs
}

// TeamHandler handles the team endpoints.
type TeamHandler struct {
	repo         team.Repository
	results      results.Repository
	homeTeamName string
}

// NewTeamHandler creates a new TeamHandler. homeTeamName is the fallback
// used to pick the default team.
func NewTeamHandler(repo team.Repository, resultsRepo results.Repository, homeTeamName string) *TeamHandler {
	return &TeamHandler{repo: repo, results: resultsRepo, homeTeamName: homeTeamName}
}

// List handles GET /teams.
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	teams, err := h.repo.List(r.Context())
	if err != nil {
		internalError(w, requestID, "Failed to list teams", err)
		return
	}

	items := make([]teamResponse, 0, len(teams))
	for i := range teams {
		items = append(items, toTeamResponse(&teams[i]))
	}

	response.SuccessList(w, http.StatusOK, items, len(items), requestID)
}

// Default handles GET /teams/default.
func (h *TeamHandler) Default(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	teams, err := h.repo.List(r.Context())
	if err != nil {
		internalError(w, requestID, "Failed to list teams", err)
		return
	}

	t, ok := team.SelectDefault(teams, h.homeTeamName)
	if !ok {
		response.Err(w, http.StatusNotFound, response.CodeNotFound, "No team has been imported yet", requestID)
		return
	}

	response.Success(w, http.StatusOK, toTeamResponse(&t), requestID)
}

// GetByID handles GET /teams/{id}.
func (h *TeamHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := pathID(w, r, requestID)
	if !ok {
		return
	}

	t, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, team.ErrTeamNotFound) {
			response.Err(w, http.StatusNotFound, response.CodeNotFound, "Team not found", requestID)
			return
		}
		internalError(w, requestID, "Failed to get team", err, "id", id)
		return
	}

	response.Success(w, http.StatusOK, toTeamResponse(t), requestID)
}

// KPIs handles GET /teams/{id}/kpis.
func (h *TeamHandler) KPIs(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := pathID(w, r, requestID)
	if !ok {
		return
	}

	t, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, team.ErrTeamNotFound) {
			response.Err(w, http.StatusNotFound, response.CodeNotFound, "Team not found", requestID)
			return
		}
		internalError(w, requestID, "Failed to get team", err, "id", id)
		return
	}

	filter := results.Filter{TeamID: &id}
	perfs, err := h.results.ListPerformances(r.Context(), filter)
	if err != nil {
		internalError(w, requestID, "Failed to load performances", err, "teamId", id)
		return
	}
	shares, err := h.results.ListMarketShares(r.Context(), filter)
	if err != nil {
		internalError(w, requestID, "Failed to load market shares", err, "teamId", id)
		return
	}

	response.Success(w, http.StatusOK, teamKPIsResponse{
		Team:     toTeamResponse(t),
		TeamKPIs: analysis.KPIs(perfs, shares),
	}, requestID)
}
