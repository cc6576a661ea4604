package roundimport_test

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpomate/cesimdash/internal/database/dbtest"
	"github.com/corpomate/cesimdash/internal/importer"
	"github.com/corpomate/cesimdash/internal/results"
	"github.com/corpomate/cesimdash/internal/round"
	"github.com/corpomate/cesimdash/internal/roundimport"
	"github.com/corpomate/cesimdash/internal/team"
)

func TestPostgresStore_ImportPersistsEverything(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	svc := roundimport.NewService(roundimport.NewPostgresStore(db),
		clockwork.NewFakeClockAt(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)), "Corpo'mate")

	res, err := svc.Import(ctx, roundimport.Request{
		Number: 1,
		Date:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Bundle: &importer.Bundle{
			Teams: []string{"corpo'mate", "Alpha"},
			Performances: []importer.PerformanceRecord{
				{Team: "corpo'mate", PerformanceFigures: results.PerformanceFigures{RevenueGlobal: 120}},
				{Team: "Alpha", PerformanceFigures: results.PerformanceFigures{RevenueGlobal: 80}},
			},
			Financials: []importer.FinancialRecord{
				{Team: "Alpha", FinancialFigures: results.FinancialFigures{Cash: 7}},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.TeamsCreated)
	assert.Equal(t, 3, res.RecordsWritten)

	teams, err := team.NewRepository(db.Pool()).List(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	home, ok := team.SelectDefault(teams, "Corpo'mate")
	require.True(t, ok)
	assert.True(t, home.IsMyTeam)

	perfs, err := results.NewRepository(db.Pool()).ListPerformances(ctx, results.Filter{RoundID: &res.Round.ID})
	require.NoError(t, err)
	require.Len(t, perfs, 2)
	assert.InDelta(t, 120.0, perfs[0].RevenueGlobal, 1e-9)
}

func TestPostgresStore_FailedImportLeavesNoRows(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	store := roundimport.NewPostgresStore(db)

	err := store.InTx(ctx, func(repos roundimport.Repos) error {
		require.NoError(t, repos.Teams.Create(ctx, &team.Team{Name: "Alpha"}))
		require.NoError(t, repos.Rounds.Create(ctx, &round.Round{Number: 1, Date: time.Now()}))
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	teams, err := team.NewRepository(db.Pool()).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, teams)

	rounds, err := round.NewRepository(db.Pool()).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, rounds)
}
