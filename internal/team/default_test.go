package team_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/corpomate/cesimdash/internal/team"
)

func TestSelectDefault(t *testing.T) {
	alpha := team.Team{ID: uuid.New(), Name: "Alpha"}
	beta := team.Team{ID: uuid.New(), Name: "Beta"}
	mate := team.Team{ID: uuid.New(), Name: "corpo'MATE"}
	flagged := team.Team{ID: uuid.New(), Name: "Zeta", IsMyTeam: true}

	tests := []struct {
		name   string
		teams  []team.Team
		want   team.Team
		wantOK bool
	}{
		{name: "empty list", teams: nil, wantOK: false},
		{name: "flagged team wins over name match", teams: []team.Team{alpha, mate, flagged}, want: flagged, wantOK: true},
		{name: "name match is case-insensitive", teams: []team.Team{alpha, beta, mate}, want: mate, wantOK: true},
		{name: "falls back to first team", teams: []team.Team{beta, alpha}, want: beta, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := team.SelectDefault(tt.teams, "Corpo'mate")
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want.ID, got.ID)
			}
		})
	}
}

func TestIsHomeTeamName(t *testing.T) {
	assert.True(t, team.IsHomeTeamName("Corpo'Mate", "Corpo'mate"))
	assert.True(t, team.IsHomeTeamName(" corpo'mate ", "Corpo'mate"))
	assert.False(t, team.IsHomeTeamName("Corpo", "Corpo'mate"))
	assert.False(t, team.IsHomeTeamName("Corpo'mate", ""))
}
