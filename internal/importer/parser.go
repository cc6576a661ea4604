// Package importer reads CESIM round result workbooks into a Bundle.
//
// The workbook layout is fixed: team names on one header row, one column
// per team, and every figure on a known row. Cells that are missing, blank
// or non-numeric are imported as zero; each substitution is recorded in the
// bundle's log trail and counted in DefaultedCells.
package importer

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/xuri/excelize/v2"
)

// ErrUnreadableWorkbook is returned when the input is not a spreadsheet.
var ErrUnreadableWorkbook = errors.New("workbook could not be read")

// ErrNoSheets is returned when the workbook contains no sheet.
var ErrNoSheets = errors.New("workbook contains no sheets")

// ErrNoTeams is returned when no team name is found on the header row.
var ErrNoTeams = errors.New("no team found in workbook")

// Parser converts workbooks into bundles.
type Parser struct {
	clock clockwork.Clock
}

// NewParser creates a Parser that timestamps its log trail with clock.
func NewParser(clock clockwork.Clock) *Parser {
	return &Parser{clock: clock}
}

// Parse reads a workbook with the real clock.
func Parse(r io.Reader) (*Bundle, error) {
	return NewParser(clockwork.NewRealClock()).Parse(r)
}

// Parse reads the first sheet of the workbook in r.
func (p *Parser) Parse(r io.Reader) (*Bundle, error) {
	b := &Bundle{}
	t := &trail{clock: p.clock, bundle: b}

	t.logf("parsing workbook")

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableWorkbook, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		t.logf("error: %s", ErrNoSheets)
		return nil, ErrNoSheets
	}

	s := &sheet{file: f, name: sheets[0], trail: t}
	t.logf("using sheet %q", s.name)

	columns := s.teamColumns()
	if len(columns) == 0 {
		t.logf("error: %s", ErrNoTeams)
		return nil, ErrNoTeams
	}
	t.logf("found %d teams", len(columns))

	for _, tc := range columns {
		b.Teams = append(b.Teams, tc.name)

		b.Performances = append(b.Performances, PerformanceRecord{
			Team:               tc.name,
			PerformanceFigures: readFigures(s, tc, performanceLayout),
		})
		b.MarketShares = append(b.MarketShares, MarketShareRecord{
			Team:               tc.name,
			MarketShareFigures: readFigures(s, tc, marketShareLayout),
		})
		b.HRData = append(b.HRData, HRRecord{
			Team:      tc.name,
			HRFigures: readFigures(s, tc, hrLayout),
		})
		b.Productions = append(b.Productions, ProductionRecord{
			Team:              tc.name,
			ProductionFigures: readFigures(s, tc, productionLayout),
		})
		b.Financials = append(b.Financials, FinancialRecord{
			Team:             tc.name,
			FinancialFigures: readFigures(s, tc, financialLayout),
		})
	}

	t.logf("parsed %d teams, %d cells defaulted to zero", len(b.Teams), b.DefaultedCells)

	return b, nil
}

type teamColumn struct {
	name string
	col  int
}

func readFigures[T any](s *sheet, tc teamColumn, layout []field[T]) T {
	var figures T
	for _, fd := range layout {
		fd.set(&figures, s.number(tc, fd.name, fd.row, fd.integer))
	}
	return figures
}

type sheet struct {
	file  *excelize.File
	name  string
	trail *trail
}

// teamColumns scans the header row for non-empty team names.
func (s *sheet) teamColumns() []teamColumn {
	var columns []teamColumn
	for col := firstTeamCol; col <= lastTeamCol; col++ {
		ref, err := cellRef(teamHeaderRow, col)
		if err != nil {
			continue
		}
		v, err := s.file.GetCellValue(s.name, ref)
		if err != nil {
			s.trail.logf("cannot read header cell %s: %v", ref, err)
			continue
		}
		name := strings.TrimSpace(v)
		if name == "" {
			continue
		}
		s.trail.logf("team %q found in column %s", name, ref)
		columns = append(columns, teamColumn{name: name, col: col})
	}
	return columns
}

// number reads a numeric cell, defaulting to zero. Integer fields are
// rounded and must fit in an INTEGER column.
func (s *sheet) number(tc teamColumn, fieldName string, row int, integer bool) float64 {
	ref, err := cellRef(row, tc.col)
	if err != nil {
		s.trail.defaulted(tc.name, fieldName, fmt.Sprintf("R%dC%d", row, tc.col), "invalid coordinates")
		return 0
	}

	raw, err := s.file.GetCellValue(s.name, ref, excelize.Options{RawCellValue: true})
	if err != nil {
		s.trail.defaulted(tc.name, fieldName, ref, err.Error())
		return 0
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		s.trail.defaulted(tc.name, fieldName, ref, "empty cell")
		return 0
	}

	v, ok := parseNumber(raw)
	if !ok {
		s.trail.defaulted(tc.name, fieldName, ref, fmt.Sprintf("not a number: %q", raw))
		return 0
	}
	if integer {
		v = math.Round(v)
		if v < math.MinInt32 || v > math.MaxInt32 {
			s.trail.defaulted(tc.name, fieldName, ref, fmt.Sprintf("out of integer range: %q", raw))
			return 0
		}
	}
	return v
}

// parseNumber accepts finite decimal numbers, also when written with a
// decimal comma, thin spaces or a trailing percent sign. NaN, infinities and
// hex floats are rejected.
func parseNumber(raw string) (float64, bool) {
	cleaned := strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "", "%", "").Replace(raw)
	cleaned = strings.Replace(cleaned, ",", ".", 1)
	if !isDecimal(cleaned) {
		return 0, false
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// isDecimal reports whether s only holds digits, signs, a point and an
// exponent marker.
func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.', r == '-', r == '+', r == 'e', r == 'E':
		default:
			return false
		}
	}
	return true
}

// cellRef converts 0-based template coordinates into an A1 reference.
func cellRef(row, col int) (string, error) {
	return excelize.CoordinatesToCellName(col+1, row+1)
}

// trail accumulates the human-readable parse log carried by the bundle.
type trail struct {
	clock  clockwork.Clock
	bundle *Bundle
}

func (t *trail) logf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	slog.Debug("workbook import", "message", msg)
	t.bundle.Logs = append(t.bundle.Logs, fmt.Sprintf("[%s] %s", t.clock.Now().UTC().Format(time.RFC3339), msg))
}

func (t *trail) defaulted(team, fieldName, ref, reason string) {
	t.bundle.DefaultedCells++
	t.logf("team %q: %s (%s) defaulted to 0: %s", team, fieldName, ref, reason)
}
