package validation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/corpomate/cesimdash/internal/api/validation"
)

func TestValidateImportRound(t *testing.T) {
	tests := []struct {
		name       string
		fields     validation.ImportRoundFields
		wantNumber int
		wantDate   time.Time
		wantErrs   []string
	}{
		{
			name:       "date only",
			fields:     validation.ImportRoundFields{RoundNumber: "4", RoundDate: "2026-03-01"},
			wantNumber: 4,
			wantDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "rfc3339 with spaces",
			fields:     validation.ImportRoundFields{RoundNumber: " 2 ", RoundDate: "2026-03-01T10:00:00Z"},
			wantNumber: 2,
			wantDate:   time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:       "day first",
			fields:     validation.ImportRoundFields{RoundNumber: "1", RoundDate: "15/02/2026"},
			wantNumber: 1,
			wantDate:   time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "missing both",
			fields:   validation.ImportRoundFields{},
			wantErrs: []string{"roundNumber", "roundDate"},
		},
		{
			name:     "zero round",
			fields:   validation.ImportRoundFields{RoundNumber: "0", RoundDate: "2026-03-01"},
			wantErrs: []string{"roundNumber"},
		},
		{
			name:       "largest round",
			fields:     validation.ImportRoundFields{RoundNumber: "2147483647", RoundDate: "2026-03-01"},
			wantNumber: 2147483647,
			wantDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "round beyond integer column",
			fields:   validation.ImportRoundFields{RoundNumber: "2147483648", RoundDate: "2026-03-01"},
			wantErrs: []string{"roundNumber"},
		},
		{
			name:     "fractional round",
			fields:   validation.ImportRoundFields{RoundNumber: "1.5", RoundDate: "2026-03-01"},
			wantErrs: []string{"roundNumber"},
		},
		{
			name:     "garbage date",
			fields:   validation.ImportRoundFields{RoundNumber: "3", RoundDate: "next tuesday"},
			wantErrs: []string{"roundDate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errs := validation.ValidateImportRound(tt.fields)

			var fields []string
			for _, e := range errs {
				fields = append(fields, e.Field)
				assert.NotEmpty(t, e.Message)
			}
			assert.Equal(t, tt.wantErrs, fields)

			if len(tt.wantErrs) == 0 {
				assert.Equal(t, tt.wantNumber, got.Number)
				assert.True(t, tt.wantDate.Equal(got.Date), "got %s", got.Date)
			}
		})
	}
}

func TestInInt32(t *testing.T) {
	assert.True(t, validation.InInt32(0))
	assert.True(t, validation.InInt32(-2147483648))
	assert.True(t, validation.InInt32(2147483647))
	assert.False(t, validation.InInt32(2147483648))
	assert.False(t, validation.InInt32(-2147483649))
}
