package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/corpomate/cesimdash/internal/importer"
	"github.com/corpomate/cesimdash/internal/results"
	"github.com/corpomate/cesimdash/internal/round"
	"github.com/corpomate/cesimdash/internal/roundimport"
	"github.com/corpomate/cesimdash/internal/team"
)

// --- Mock Team Repository ---

type mockTeamRepo struct {
	getByIDFn func(ctx context.Context, id uuid.UUID) (*team.Team, error)
	listFn    func(ctx context.Context) ([]team.Team, error)
}

func (m *mockTeamRepo) Create(_ context.Context, t *team.Team) error {
	t.ID = uuid.New()
	t.CreatedAt = time.Now().UTC()
	return nil
}

func (m *mockTeamRepo) GetByID(ctx context.Context, id uuid.UUID) (*team.Team, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, team.ErrTeamNotFound
}

func (m *mockTeamRepo) GetByName(_ context.Context, _ string) (*team.Team, error) {
	return nil, team.ErrTeamNotFound
}

func (m *mockTeamRepo) List(ctx context.Context) ([]team.Team, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []team.Team{}, nil
}

// --- Mock Round Repository ---

type mockRoundRepo struct {
	getByIDFn func(ctx context.Context, id uuid.UUID) (*round.Round, error)
	listFn    func(ctx context.Context) ([]round.Round, error)
	latestFn  func(ctx context.Context) (*round.Round, error)
	deleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockRoundRepo) Create(_ context.Context, rd *round.Round) error {
	rd.ID = uuid.New()
	return nil
}

func (m *mockRoundRepo) GetByID(ctx context.Context, id uuid.UUID) (*round.Round, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, round.ErrRoundNotFound
}

func (m *mockRoundRepo) List(ctx context.Context) ([]round.Round, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []round.Round{}, nil
}

func (m *mockRoundRepo) Latest(ctx context.Context) (*round.Round, error) {
	if m.latestFn != nil {
		return m.latestFn(ctx)
	}
	return nil, round.ErrRoundNotFound
}

func (m *mockRoundRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// --- Mock Results Repository ---

type mockResultsRepo struct {
	listPerformancesFn func(ctx context.Context, f results.Filter) ([]results.Performance, error)
	listMarketSharesFn func(ctx context.Context, f results.Filter) ([]results.MarketShare, error)
	listHRDataFn       func(ctx context.Context, f results.Filter) ([]results.HRData, error)
	listProductionsFn  func(ctx context.Context, f results.Filter) ([]results.Production, error)
	listFinancialsFn   func(ctx context.Context, f results.Filter) ([]results.Financial, error)
}

func (m *mockResultsRepo) CreatePerformance(context.Context, results.Key, results.PerformanceFigures) error {
	return nil
}

func (m *mockResultsRepo) CreateMarketShare(context.Context, results.Key, results.MarketShareFigures) error {
	return nil
}

func (m *mockResultsRepo) CreateHRData(context.Context, results.Key, results.HRFigures) error {
	return nil
}

func (m *mockResultsRepo) CreateProduction(context.Context, results.Key, results.ProductionFigures) error {
	return nil
}

func (m *mockResultsRepo) CreateFinancial(context.Context, results.Key, results.FinancialFigures) error {
	return nil
}

func (m *mockResultsRepo) ListPerformances(ctx context.Context, f results.Filter) ([]results.Performance, error) {
	if m.listPerformancesFn != nil {
		return m.listPerformancesFn(ctx, f)
	}
	return []results.Performance{}, nil
}

func (m *mockResultsRepo) ListMarketShares(ctx context.Context, f results.Filter) ([]results.MarketShare, error) {
	if m.listMarketSharesFn != nil {
		return m.listMarketSharesFn(ctx, f)
	}
	return []results.MarketShare{}, nil
}

func (m *mockResultsRepo) ListHRData(ctx context.Context, f results.Filter) ([]results.HRData, error) {
	if m.listHRDataFn != nil {
		return m.listHRDataFn(ctx, f)
	}
	return []results.HRData{}, nil
}

func (m *mockResultsRepo) ListProductions(ctx context.Context, f results.Filter) ([]results.Production, error) {
	if m.listProductionsFn != nil {
		return m.listProductionsFn(ctx, f)
	}
	return []results.Production{}, nil
}

func (m *mockResultsRepo) ListFinancials(ctx context.Context, f results.Filter) ([]results.Financial, error) {
	if m.listFinancialsFn != nil {
		return m.listFinancialsFn(ctx, f)
	}
	return []results.Financial{}, nil
}

// --- Mock importer and parser ---

type mockImporter struct {
	importFn func(ctx context.Context, req roundimport.Request) (*roundimport.Result, error)
	calls    []roundimport.Request
}

func (m *mockImporter) Import(ctx context.Context, req roundimport.Request) (*roundimport.Result, error) {
	m.calls = append(m.calls, req)
	if m.importFn != nil {
		return m.importFn(ctx, req)
	}
	return &roundimport.Result{
		Round:          round.Round{ID: uuid.New(), Number: req.Number, Date: req.Date, Comment: "imported"},
		TeamsCreated:   len(req.Bundle.Teams),
		TeamsImported:  len(req.Bundle.Teams),
		RecordsWritten: 5 * len(req.Bundle.Teams),
	}, nil
}

type mockParser struct {
	parseFn func(r io.Reader) (*importer.Bundle, error)
}

func (m *mockParser) Parse(r io.Reader) (*importer.Bundle, error) {
	if m.parseFn != nil {
		return m.parseFn(r)
	}
	return &importer.Bundle{Teams: []string{"Corpo'mate"}, DefaultedCells: 2, Logs: []string{"parsed"}}, nil
}

// --- Helpers ---

func makeChiRequest(method, path string, body []byte, routePattern string, params map[string]string) (*http.Request, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()

	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		rctx.RoutePatterns = append(rctx.RoutePatterns, routePattern)
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	return req, w
}

func parseEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var env map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &env)
	require.NoError(t, err, "failed to parse response body")
	return env
}

func errorCode(t *testing.T, env map[string]interface{}) string {
	t.Helper()
	errObj, ok := env["error"].(map[string]interface{})
	require.True(t, ok, "expected an error object")
	return errObj["code"].(string)
}

func perfRow(teamName string, mine bool, roundID uuid.UUID, roundNumber int, revenue float64) results.Performance {
	return results.Performance{
		Meta: results.Meta{
			ID: uuid.New(), TeamID: uuid.New(), TeamName: teamName, IsMyTeam: mine,
			RoundID: roundID, RoundNumber: roundNumber,
		},
		PerformanceFigures: results.PerformanceFigures{RevenueGlobal: revenue},
	}
}
