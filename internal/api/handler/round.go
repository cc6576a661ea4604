package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/corpomate/cesimdash/internal/api/middleware"
	"github.com/corpomate/cesimdash/internal/api/response"
	"github.com/corpomate/cesimdash/internal/api/validation"
	"github.com/corpomate/cesimdash/internal/importer"
	"github.com/corpomate/cesimdash/internal/metrics"
	"github.com/corpomate/cesimdash/internal/results"
	"github.com/corpomate/cesimdash/internal/round"
	"github.com/corpomate/cesimdash/internal/roundimport"
	"github.com/corpomate/cesimdash/internal/team"
)

// RoundImporter persists a parsed round.
type RoundImporter interface {
	Import(ctx context.Context, req roundimport.Request) (*roundimport.Result, error)
}

// WorkbookParser turns an uploaded workbook into a bundle.
type WorkbookParser interface {
	Parse(r io.Reader) (*importer.Bundle, error)
}

type importRoundRequest struct {
	RoundNumber json.RawMessage  `json:"roundNumber"`
	RoundDate   string           `json:"roundDate"`
	Comment     string           `json:"comment"`
	Data        *importer.Bundle `json:"data"`
}

type roundResponse struct {
	ID        string `json:"id"`
	Number    int    `json:"number"`
	Date      string `json:"date"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"createdAt"`
}

func toRoundResponse(rd *round.Round) roundResponse {
	return roundResponse{
		ID:        rd.ID.String(),
		Number:    rd.Number,
		Date:      rd.Date.Format("2006-01-02"),
		Comment:   rd.Comment,
		CreatedAt: rd.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

type roundSummaryResponse struct {
	roundResponse
	Performance *results.Performance `json:"performance"`
	MarketShare *results.MarketShare `json:"marketShare"`
}

type roundDetailResponse struct {
	roundResponse
	Performances []results.Performance `json:"performances"`
	MarketShares []results.MarketShare `json:"marketShares"`
	HRData       []results.HRData      `json:"hrData"`
	Productions  []results.Production  `json:"productions"`
	Financials   []results.Financial   `json:"financials"`
}

type importResponse struct {
	Round          roundResponse `json:"round"`
	TeamsCreated   int           `json:"teamsCreated"`
	TeamsImported  int           `json:"teamsImported"`
	RecordsWritten int           `json:"recordsWritten"`
	DefaultedCells *int          `json:"defaultedCells,omitempty"`
	Logs           []string      `json:"logs,omitempty"`
}

// RoundHandler handles the round endpoints.
type RoundHandler struct {
	rounds       round.Repository
	teams        team.Repository
	results      results.Repository
	importer     RoundImporter
	parser       WorkbookParser
	maxBodyBytes int64
	homeTeamName string
}

// RoundHandlerConfig holds the dependencies of a RoundHandler.
type RoundHandlerConfig struct {
	Rounds       round.Repository
	Teams        team.Repository
	Results      results.Repository
	Importer     RoundImporter
	Parser       WorkbookParser
	MaxBodyBytes int64
	HomeTeamName string
}

// NewRoundHandler creates a new RoundHandler.
func NewRoundHandler(cfg RoundHandlerConfig) *RoundHandler {
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 20 << 20
	}
	return &RoundHandler{
		rounds:       cfg.Rounds,
		teams:        cfg.Teams,
		results:      cfg.Results,
		importer:     cfg.Importer,
		parser:       cfg.Parser,
		maxBodyBytes: maxBody,
		homeTeamName: cfg.HomeTeamName,
	}
}

// List handles GET /rounds. Each round carries the default team's
// performance and market share when available.
func (h *RoundHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	rounds, err := h.rounds.List(r.Context())
	if err != nil {
		internalError(w, requestID, "Failed to list rounds", err)
		return
	}

	perfByRound := map[uuid.UUID]*results.Performance{}
	shareByRound := map[uuid.UUID]*results.MarketShare{}

	teams, err := h.teams.List(r.Context())
	if err != nil {
		internalError(w, requestID, "Failed to list teams", err)
		return
	}
	if myTeam, ok := team.SelectDefault(teams, h.homeTeamName); ok {
		filter := results.Filter{TeamID: &myTeam.ID}

		perfs, err := h.results.ListPerformances(r.Context(), filter)
		if err != nil {
			internalError(w, requestID, "Failed to load performances", err)
			return
		}
		for i := range perfs {
			if _, seen := perfByRound[perfs[i].RoundID]; !seen {
				perfByRound[perfs[i].RoundID] = &perfs[i]
			}
		}

		shares, err := h.results.ListMarketShares(r.Context(), filter)
		if err != nil {
			internalError(w, requestID, "Failed to load market shares", err)
			return
		}
		for i := range shares {
			if _, seen := shareByRound[shares[i].RoundID]; !seen {
				shareByRound[shares[i].RoundID] = &shares[i]
			}
		}
	}

	items := make([]roundSummaryResponse, 0, len(rounds))
	for i := range rounds {
		items = append(items, roundSummaryResponse{
			roundResponse: toRoundResponse(&rounds[i]),
			Performance:   perfByRound[rounds[i].ID],
			MarketShare:   shareByRound[rounds[i].ID],
		})
	}

	response.SuccessList(w, http.StatusOK, items, len(items), requestID)
}

// GetByID handles GET /rounds/{id}.
func (h *RoundHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := pathID(w, r, requestID)
	if !ok {
		return
	}

	rd, err := h.rounds.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, round.ErrRoundNotFound) {
			response.Err(w, http.StatusNotFound, response.CodeNotFound, "Round not found", requestID)
			return
		}
		internalError(w, requestID, "Failed to get round", err, "id", id)
		return
	}

	data, err := results.LoadRound(r.Context(), h.results, id)
	if err != nil {
		internalError(w, requestID, "Failed to load round data", err, "id", id)
		return
	}

	response.Success(w, http.StatusOK, roundDetailResponse{
		roundResponse: toRoundResponse(rd),
		Performances:  data.Performances,
		MarketShares:  data.MarketShares,
		HRData:        data.HRData,
		Productions:   data.Productions,
		Financials:    data.Financials,
	}, requestID)
}

// Create handles POST /rounds with a JSON bundle.
func (h *RoundHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	var req importRoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.RoundImportsTotal.WithLabelValues("json", "invalid").Inc()
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Err(w, http.StatusRequestEntityTooLarge, response.CodePayloadTooLarge, "Request body is too large", requestID)
			return
		}
		response.Err(w, http.StatusBadRequest, response.CodeInvalidJSON, "Request body must be valid JSON", requestID)
		return
	}

	parsed, fieldErrors := validation.ValidateImportRound(validation.ImportRoundFields{
		RoundNumber: rawText(req.RoundNumber),
		RoundDate:   req.RoundDate,
	})
	if req.Data == nil {
		fieldErrors = append(fieldErrors, validation.FieldError{Field: "data", Message: "data is required"})
	}
	if len(fieldErrors) > 0 {
		metrics.RoundImportsTotal.WithLabelValues("json", "invalid").Inc()
		response.ErrWithDetails(w, http.StatusBadRequest, response.CodeValidation, "Input validation failed", fieldErrors, requestID)
		return
	}

	h.runImport(w, r, requestID, "json", roundimport.Request{
		Number:  parsed.Number,
		Date:    parsed.Date,
		Comment: req.Comment,
		Bundle:  req.Data,
	}, false)
}

// Upload handles POST /rounds/upload: a multipart form with the workbook in
// "file" plus "roundNumber", "roundDate" and an optional "comment".
func (h *RoundHandler) Upload(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	if err := r.ParseMultipartForm(h.maxBodyBytes); err != nil {
		metrics.RoundImportsTotal.WithLabelValues("workbook", "invalid").Inc()
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Err(w, http.StatusRequestEntityTooLarge, response.CodePayloadTooLarge, "Uploaded file is too large", requestID)
			return
		}
		response.Err(w, http.StatusBadRequest, response.CodeValidation, "Request must be multipart/form-data", requestID)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	parsed, fieldErrors := validation.ValidateImportRound(validation.ImportRoundFields{
		RoundNumber: r.FormValue("roundNumber"),
		RoundDate:   r.FormValue("roundDate"),
	})

	file, header, err := r.FormFile("file")
	if err != nil {
		fieldErrors = append(fieldErrors, validation.FieldError{Field: "file", Message: "file is required"})
	} else {
		defer file.Close()
	}
	if len(fieldErrors) > 0 {
		metrics.RoundImportsTotal.WithLabelValues("workbook", "invalid").Inc()
		response.ErrWithDetails(w, http.StatusBadRequest, response.CodeValidation, "Input validation failed", fieldErrors, requestID)
		return
	}

	bundle, err := h.parser.Parse(file)
	if err != nil {
		metrics.RoundImportsTotal.WithLabelValues("workbook", "invalid").Inc()
		slog.Warn("workbook rejected", "error", err, "file", header.Filename, "requestId", requestID)
		response.Err(w, http.StatusUnprocessableEntity, response.CodeInvalidWorkbook, err.Error(), requestID)
		return
	}
	metrics.WorkbookDefaultedCells.Observe(float64(bundle.DefaultedCells))

	h.runImport(w, r, requestID, "workbook", roundimport.Request{
		Number:  parsed.Number,
		Date:    parsed.Date,
		Comment: r.FormValue("comment"),
		Bundle:  bundle,
	}, true)
}

func (h *RoundHandler) runImport(w http.ResponseWriter, r *http.Request, requestID, source string, req roundimport.Request, withLog bool) {
	res, err := h.importer.Import(r.Context(), req)
	if err != nil {
		var verr *roundimport.ValidationError
		if errors.As(err, &verr) {
			metrics.RoundImportsTotal.WithLabelValues(source, "invalid").Inc()
			response.ErrWithDetails(w, http.StatusBadRequest, response.CodeValidation, "Input validation failed", verr.Fields, requestID)
			return
		}
		metrics.RoundImportsTotal.WithLabelValues(source, "error").Inc()
		internalError(w, requestID, "Failed to import round", err, "roundNumber", req.Number)
		return
	}
	metrics.RoundImportsTotal.WithLabelValues(source, "success").Inc()

	body := importResponse{
		Round:          toRoundResponse(&res.Round),
		TeamsCreated:   res.TeamsCreated,
		TeamsImported:  res.TeamsImported,
		RecordsWritten: res.RecordsWritten,
	}
	if withLog {
		defaulted := req.Bundle.DefaultedCells
		body.DefaultedCells = &defaulted
		body.Logs = req.Bundle.Logs
	}

	response.Success(w, http.StatusCreated, body, requestID)
}

// Delete handles DELETE /rounds/{id}.
func (h *RoundHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := pathID(w, r, requestID)
	if !ok {
		return
	}

	if err := h.rounds.Delete(r.Context(), id); err != nil {
		if errors.Is(err, round.ErrRoundNotFound) {
			response.Err(w, http.StatusNotFound, response.CodeNotFound, "Round not found", requestID)
			return
		}
		internalError(w, requestID, "Failed to delete round", err, "id", id)
		return
	}

	slog.Info("round deleted", "id", id, "requestId", requestID)
	response.NoContent(w)
}

// rawText returns a JSON scalar as text: strings are unquoted, numbers are
// kept verbatim and null becomes empty.
func rawText(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ""
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		return unquoted
	}
	return s
}
