package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/corpomate/cesimdash/internal/api/handler"
	"github.com/corpomate/cesimdash/internal/api/middleware"
	"github.com/corpomate/cesimdash/internal/metrics"
	"github.com/corpomate/cesimdash/internal/results"
	"github.com/corpomate/cesimdash/internal/round"
	"github.com/corpomate/cesimdash/internal/team"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	DBPinger       handler.DBPinger
	Version        string
	OpenAPISpec    []byte
	TeamRepo       team.Repository
	RoundRepo      round.Repository
	ResultsRepo    results.Repository
	Importer       handler.RoundImporter
	Parser         handler.WorkbookParser
	HomeTeamName   string
	MaxUploadBytes int64
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)
	r.Use(metrics.Middleware)

	healthHandler := handler.NewHealthHandler(deps.DBPinger, deps.Version)
	r.Get("/health", healthHandler.ServeHTTP)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	if len(deps.OpenAPISpec) > 0 {
		openapiHandler := handler.NewOpenAPIHandler(deps.OpenAPISpec)
		r.Get("/openapi.json", openapiHandler.ServeHTTP)
	}

	if deps.TeamRepo == nil || deps.RoundRepo == nil || deps.ResultsRepo == nil {
		return r
	}

	teamHandler := handler.NewTeamHandler(deps.TeamRepo, deps.ResultsRepo, deps.HomeTeamName)
	r.Route("/teams", func(r chi.Router) {
		r.Get("/", teamHandler.List)
		r.Get("/default", teamHandler.Default)
		r.Get("/{id}", teamHandler.GetByID)
		r.Get("/{id}/kpis", teamHandler.KPIs)
	})

	roundHandler := handler.NewRoundHandler(handler.RoundHandlerConfig{
		Rounds:       deps.RoundRepo,
		Teams:        deps.TeamRepo,
		Results:      deps.ResultsRepo,
		Importer:     deps.Importer,
		Parser:       deps.Parser,
		MaxBodyBytes: deps.MaxUploadBytes,
		HomeTeamName: deps.HomeTeamName,
	})
	r.Route("/rounds", func(r chi.Router) {
		r.Get("/", roundHandler.List)
		r.Get("/{id}", roundHandler.GetByID)
		r.Delete("/{id}", roundHandler.Delete)
		if deps.Importer != nil {
			r.Post("/", roundHandler.Create)
			if deps.Parser != nil {
				r.Post("/upload", roundHandler.Upload)
			}
		}
	})

	resultsHandler := handler.NewResultsHandler(deps.ResultsRepo)
	r.Get("/performances", resultsHandler.Performances)
	r.Get("/market-shares", resultsHandler.MarketShares)
	r.Get("/hr", resultsHandler.HRData)
	r.Get("/productions", resultsHandler.Productions)
	r.Get("/financials", resultsHandler.Financials)

	rankingHandler := handler.NewRankingHandler(deps.RoundRepo, deps.ResultsRepo)
	r.Get("/rankings", rankingHandler.ServeHTTP)

	return r
}
