package roundimport

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/corpomate/cesimdash/internal/database"
	"github.com/corpomate/cesimdash/internal/results"
	"github.com/corpomate/cesimdash/internal/round"
	"github.com/corpomate/cesimdash/internal/team"
)

// Repos groups the repositories an import writes through.
type Repos struct {
	Teams   team.Repository
	Rounds  round.Repository
	Results results.Repository
}

// Store runs fn in a unit of work. When fn returns an error nothing it
// wrote is kept.
type Store interface {
	InTx(ctx context.Context, fn func(Repos) error) error
}

// PostgresStore implements Store with a database transaction.
type PostgresStore struct {
	db *database.DB
}

// NewPostgresStore creates a Store backed by db.
func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) InTx(ctx context.Context, fn func(Repos) error) error {
	return s.db.InTx(ctx, func(tx pgx.Tx) error {
		return fn(Repos{
			Teams:   team.NewRepository(tx),
			Rounds:  round.NewRepository(tx),
			Results: results.NewRepository(tx),
		})
	})
}
