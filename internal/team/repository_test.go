package team_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpomate/cesimdash/internal/database/dbtest"
	"github.com/corpomate/cesimdash/internal/team"
)

func setupTeamRepo(t *testing.T) team.Repository {
	t.Helper()
	db := dbtest.Open(t)
	return team.NewRepository(db.Pool())
}

func TestCreate_Success(t *testing.T) {
	repo := setupTeamRepo(t)
	ctx := context.Background()

	tm := &team.Team{Name: "Corpo'mate", IsMyTeam: true}
	require.NoError(t, repo.Create(ctx, tm))

	assert.NotEqual(t, uuid.Nil, tm.ID)
	assert.False(t, tm.CreatedAt.IsZero())
}

func TestCreate_DuplicateName(t *testing.T) {
	repo := setupTeamRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &team.Team{Name: "Alpha"}))
	err := repo.Create(ctx, &team.Team{Name: "Alpha"})

	assert.ErrorIs(t, err, team.ErrDuplicateTeamName)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := setupTeamRepo(t)

	_, err := repo.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, team.ErrTeamNotFound)
}

func TestGetByName(t *testing.T) {
	repo := setupTeamRepo(t)
	ctx := context.Background()

	tm := &team.Team{Name: "Beta"}
	require.NoError(t, repo.Create(ctx, tm))

	got, err := repo.GetByName(ctx, "Beta")
	require.NoError(t, err)
	assert.Equal(t, tm.ID, got.ID)

	_, err = repo.GetByName(ctx, "beta")
	assert.ErrorIs(t, err, team.ErrTeamNotFound)
}

func TestList_HomeTeamFirstThenAlphabetical(t *testing.T) {
	repo := setupTeamRepo(t)
	ctx := context.Background()

	for _, tm := range []*team.Team{
		{Name: "Gamma"},
		{Name: "Corpo'mate", IsMyTeam: true},
		{Name: "Alpha"},
	} {
		require.NoError(t, repo.Create(ctx, tm))
	}

	teams, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 3)
	assert.Equal(t, "Corpo'mate", teams[0].Name)
	assert.Equal(t, "Alpha", teams[1].Name)
	assert.Equal(t, "Gamma", teams[2].Name)
}

func TestList_Empty(t *testing.T) {
	repo := setupTeamRepo(t)

	teams, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, teams)
	assert.Empty(t, teams)
}
