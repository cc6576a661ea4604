package validation

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// FieldError represents a validation error on a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// InInt32 reports whether v fits in an INTEGER column.
func InInt32(v int) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}

// Accepted round date layouts, tried in order.
var dateLayouts = []string{time.DateOnly, time.RFC3339, "02/01/2006"}

// ImportRoundFields mirrors the raw round fields of an import, as sent in a
// JSON body or in multipart form values.
type ImportRoundFields struct {
	RoundNumber string
	RoundDate   string
}

// ImportRound is the parsed form of ImportRoundFields.
type ImportRound struct {
	Number int
	Date   time.Time
}

// ValidateImportRound parses and validates the round fields of an import
// request. The returned slice is empty when the fields are valid.
func ValidateImportRound(f ImportRoundFields) (ImportRound, []FieldError) {
	var out ImportRound
	var errs []FieldError

	number := strings.TrimSpace(f.RoundNumber)
	if number == "" {
		errs = append(errs, FieldError{Field: "roundNumber", Message: "roundNumber is required"})
	} else if n, err := strconv.Atoi(number); err != nil || n <= 0 || n > math.MaxInt32 {
		errs = append(errs, FieldError{Field: "roundNumber", Message: "roundNumber must be a positive integer"})
	} else {
		out.Number = n
	}

	date := strings.TrimSpace(f.RoundDate)
	if date == "" {
		errs = append(errs, FieldError{Field: "roundDate", Message: "roundDate is required"})
	} else if d, ok := parseDate(date); !ok {
		errs = append(errs, FieldError{Field: "roundDate", Message: "roundDate must be a date (YYYY-MM-DD or RFC 3339)"})
	} else {
		out.Date = d
	}

	return out, errs
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
