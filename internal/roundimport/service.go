// Package roundimport persists a parsed round bundle as a single round with
// its teams and per-team results.
package roundimport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/corpomate/cesimdash/internal/api/validation"
	"github.com/corpomate/cesimdash/internal/importer"
	"github.com/corpomate/cesimdash/internal/metrics"
	"github.com/corpomate/cesimdash/internal/results"
	"github.com/corpomate/cesimdash/internal/round"
	"github.com/corpomate/cesimdash/internal/team"
)

// ValidationError is returned by Import when the request is incomplete.
type ValidationError struct {
	Fields []validation.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "invalid import request: " + strings.Join(parts, "; ")
}

// Request is one round to import.
type Request struct {
	Number  int
	Date    time.Time
	Comment string
	Bundle  *importer.Bundle
}

// Result summarizes a completed import.
type Result struct {
	Round          round.Round
	TeamsCreated   int
	TeamsImported  int
	RecordsWritten int
}

// Service imports rounds.
type Service struct {
	store        Store
	clock        clockwork.Clock
	homeTeamName string
}

// NewService creates a Service. New teams whose name matches homeTeamName
// are flagged as the home team.
func NewService(store Store, clock clockwork.Clock, homeTeamName string) *Service {
	return &Service{store: store, clock: clock, homeTeamName: homeTeamName}
}

// Validate checks a request without touching storage.
func Validate(req Request) error {
	var fields []validation.FieldError

	if req.Number <= 0 || !validation.InInt32(req.Number) {
		fields = append(fields, validation.FieldError{Field: "roundNumber", Message: "roundNumber must be a positive integer"})
	}
	if req.Date.IsZero() {
		fields = append(fields, validation.FieldError{Field: "roundDate", Message: "roundDate is required"})
	}
	if req.Bundle == nil {
		fields = append(fields, validation.FieldError{Field: "data", Message: "data is required"})
	} else {
		if len(teamNames(req.Bundle)) == 0 {
			fields = append(fields, validation.FieldError{Field: "data.teams", Message: "data must contain at least one team"})
		}
		fields = append(fields, integerRangeErrors(req.Bundle)...)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// integerRangeErrors reports bundle figures too large for their INTEGER
// columns.
func integerRangeErrors(b *importer.Bundle) []validation.FieldError {
	var errs []validation.FieldError
	check := func(path string, i int, name string, v int) {
		if !validation.InInt32(v) {
			field := fmt.Sprintf("data.%s[%d].%s", path, i, name)
			errs = append(errs, validation.FieldError{Field: field, Message: field + " is out of range"})
		}
	}

	for i, r := range b.HRData {
		check("hrData", i, "rdHeadcount", r.RDHeadcount)
		check("hrData", i, "trainingBudget", r.TrainingBudget)
		check("hrData", i, "monthlySalary", r.MonthlySalary)
	}
	for i, r := range b.Productions {
		check("productions", i, "tech1USA", r.Tech1USA)
		check("productions", i, "tech2USA", r.Tech2USA)
		check("productions", i, "tech3USA", r.Tech3USA)
		check("productions", i, "tech4USA", r.Tech4USA)
		check("productions", i, "tech1Asia", r.Tech1Asia)
		check("productions", i, "tech2Asia", r.Tech2Asia)
		check("productions", i, "tech3Asia", r.Tech3Asia)
		check("productions", i, "tech4Asia", r.Tech4Asia)
		check("productions", i, "plantsUSA", r.PlantsUSA)
		check("productions", i, "plantsAsia", r.PlantsAsia)
	}
	return errs
}

// Import writes the round and its results in one transaction.
func (s *Service) Import(ctx context.Context, req Request) (*Result, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	comment := strings.TrimSpace(req.Comment)
	if comment == "" {
		comment = fmt.Sprintf("Round %d imported on %s", req.Number, s.clock.Now().UTC().Format(time.RFC3339))
	}

	var res Result
	err := s.store.InTx(ctx, func(repos Repos) error {
		res = Result{}

		rd := &round.Round{Number: req.Number, Date: req.Date, Comment: comment}
		if err := repos.Rounds.Create(ctx, rd); err != nil {
			return fmt.Errorf("creating round: %w", err)
		}
		res.Round = *rd

		for _, name := range teamNames(req.Bundle) {
			t, created, err := s.findOrCreateTeam(ctx, repos.Teams, name)
			if err != nil {
				return err
			}
			if created {
				res.TeamsCreated++
			}
			res.TeamsImported++

			n, err := writeTeamRecords(ctx, repos.Results, results.Key{TeamID: t.ID, RoundID: rd.ID}, name, req.Bundle)
			if err != nil {
				return fmt.Errorf("writing results for team %q: %w", name, err)
			}
			res.RecordsWritten += n
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.TeamsCreatedTotal.Add(float64(res.TeamsCreated))
	slog.Info("round imported",
		"round_id", res.Round.ID,
		"round_number", res.Round.Number,
		"teams", res.TeamsImported,
		"teams_created", res.TeamsCreated,
		"records", res.RecordsWritten,
	)

	return &res, nil
}

func (s *Service) findOrCreateTeam(ctx context.Context, repo team.Repository, name string) (*team.Team, bool, error) {
	t, err := repo.GetByName(ctx, name)
	if err == nil {
		return t, false, nil
	}
	if !errors.Is(err, team.ErrTeamNotFound) {
		return nil, false, fmt.Errorf("looking up team %q: %w", name, err)
	}

	t = &team.Team{Name: name, IsMyTeam: team.IsHomeTeamName(name, s.homeTeamName)}
	if err := repo.Create(ctx, t); err != nil {
		return nil, false, fmt.Errorf("creating team %q: %w", name, err)
	}
	return t, true, nil
}

// teamNames returns the unique, non-blank team names of the bundle: the
// declared teams first, then any team only referenced by a record.
func teamNames(b *importer.Bundle) []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}

	for _, n := range b.Teams {
		add(n)
	}
	for _, r := range b.Performances {
		add(r.Team)
	}
	for _, r := range b.MarketShares {
		add(r.Team)
	}
	for _, r := range b.HRData {
		add(r.Team)
	}
	for _, r := range b.Productions {
		add(r.Team)
	}
	for _, r := range b.Financials {
		add(r.Team)
	}
	return names
}

// writeTeamRecords inserts the first record of each kind belonging to name.
func writeTeamRecords(ctx context.Context, repo results.Repository, key results.Key, name string, b *importer.Bundle) (int, error) {
	written := 0

	if r, ok := first(b.Performances, name, func(r importer.PerformanceRecord) string { return r.Team }); ok {
		if err := repo.CreatePerformance(ctx, key, r.PerformanceFigures); err != nil {
			return written, err
		}
		written++
	}
	if r, ok := first(b.MarketShares, name, func(r importer.MarketShareRecord) string { return r.Team }); ok {
		if err := repo.CreateMarketShare(ctx, key, r.MarketShareFigures); err != nil {
			return written, err
		}
		written++
	}
	if r, ok := first(b.HRData, name, func(r importer.HRRecord) string { return r.Team }); ok {
		if err := repo.CreateHRData(ctx, key, r.HRFigures); err != nil {
			return written, err
		}
		written++
	}
	if r, ok := first(b.Productions, name, func(r importer.ProductionRecord) string { return r.Team }); ok {
		if err := repo.CreateProduction(ctx, key, r.ProductionFigures); err != nil {
			return written, err
		}
		written++
	}
	if r, ok := first(b.Financials, name, func(r importer.FinancialRecord) string { return r.Team }); ok {
		if err := repo.CreateFinancial(ctx, key, r.FinancialFigures); err != nil {
			return written, err
		}
		written++
	}

	return written, nil
}

func first[T any](records []T, name string, teamOf func(T) string) (T, bool) {
	for _, r := range records {
		if strings.TrimSpace(teamOf(r)) == name {
			return r, true
		}
	}
	var zero T
	return zero, false
}

