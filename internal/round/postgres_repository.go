package round

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/corpomate/cesimdash/internal/database"
)

// dependentTables hold one row per team for a round and go with it on delete.
var dependentTables = []string{"performances", "market_shares", "hr_data", "productions", "financials"}

// PostgresRepository implements Repository using pgx.
type PostgresRepository struct {
	q database.Querier
}

// NewRepository creates a new Repository backed by the given pool or transaction.
func NewRepository(q database.Querier) Repository {
	return &PostgresRepository{q: q}
}

// Create inserts a new round record.
func (r *PostgresRepository) Create(ctx context.Context, rd *Round) error {
	query := `
		INSERT INTO rounds (number, date, comment)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.q.QueryRow(ctx, query, rd.Number, rd.Date, rd.Comment).Scan(&rd.ID, &rd.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting round: %w", err)
	}

	return nil
}

// GetByID retrieves a single round by its UUID.
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*Round, error) {
	query := `
		SELECT id, number, date, comment, created_at
		FROM rounds
		WHERE id = $1`

	return r.scanOne(ctx, query, id)
}

// List retrieves all rounds ordered by round number.
func (r *PostgresRepository) List(ctx context.Context) ([]Round, error) {
	query := `
		SELECT id, number, date, comment, created_at
		FROM rounds
		ORDER BY number ASC, created_at ASC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var rd Round
		if err := rows.Scan(&rd.ID, &rd.Number, &rd.Date, &rd.Comment, &rd.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning round row: %w", err)
		}
		rounds = append(rounds, rd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating round rows: %w", err)
	}

	if rounds == nil {
		rounds = []Round{}
	}

	return rounds, nil
}

// Latest returns the round with the highest number.
func (r *PostgresRepository) Latest(ctx context.Context) (*Round, error) {
	query := `
		SELECT id, number, date, comment, created_at
		FROM rounds
		ORDER BY number DESC, created_at DESC
		LIMIT 1`

	return r.scanOne(ctx, query)
}

// Delete removes a round together with all of its dependent data rows in
// a single transaction.
func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return database.InTx(ctx, r.q, func(tx pgx.Tx) error {
		for _, table := range dependentTables {
			if _, err := tx.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE round_id = $1", table), id); err != nil {
				return fmt.Errorf("deleting %s for round: %w", table, err)
			}
		}

		result, err := tx.Exec(ctx, `DELETE FROM rounds WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("deleting round: %w", err)
		}
		if result.RowsAffected() == 0 {
			return ErrRoundNotFound
		}
		return nil
	})
}

func (r *PostgresRepository) scanOne(ctx context.Context, query string, args ...any) (*Round, error) {
	var rd Round
	err := r.q.QueryRow(ctx, query, args...).Scan(&rd.ID, &rd.Number, &rd.Date, &rd.Comment, &rd.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoundNotFound
		}
		return nil, fmt.Errorf("querying round: %w", err)
	}
	return &rd, nil
}
