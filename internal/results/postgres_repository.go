package results

import (
	"context"
	"fmt"
	"strings"

	"github.com/corpomate/cesimdash/internal/database"
)

// PostgresRepository implements Repository using pgx.
type PostgresRepository struct {
	q database.Querier
}

// NewRepository creates a new Repository backed by the given pool or transaction.
func NewRepository(q database.Querier) Repository {
	return &PostgresRepository{q: q}
}

func (r *PostgresRepository) CreatePerformance(ctx context.Context, key Key, f PerformanceFigures) error {
	return insert(ctx, r.q, performanceKind, key, &Performance{PerformanceFigures: f})
}

func (r *PostgresRepository) CreateMarketShare(ctx context.Context, key Key, f MarketShareFigures) error {
	return insert(ctx, r.q, marketShareKind, key, &MarketShare{MarketShareFigures: f})
}

func (r *PostgresRepository) CreateHRData(ctx context.Context, key Key, f HRFigures) error {
	return insert(ctx, r.q, hrKind, key, &HRData{HRFigures: f})
}

func (r *PostgresRepository) CreateProduction(ctx context.Context, key Key, f ProductionFigures) error {
	return insert(ctx, r.q, productionKind, key, &Production{ProductionFigures: f})
}

func (r *PostgresRepository) CreateFinancial(ctx context.Context, key Key, f FinancialFigures) error {
	return insert(ctx, r.q, financialKind, key, &Financial{FinancialFigures: f})
}

func (r *PostgresRepository) ListPerformances(ctx context.Context, filter Filter) ([]Performance, error) {
	return list(ctx, r.q, performanceKind, filter)
}

func (r *PostgresRepository) ListMarketShares(ctx context.Context, filter Filter) ([]MarketShare, error) {
	return list(ctx, r.q, marketShareKind, filter)
}

func (r *PostgresRepository) ListHRData(ctx context.Context, filter Filter) ([]HRData, error) {
	return list(ctx, r.q, hrKind, filter)
}

func (r *PostgresRepository) ListProductions(ctx context.Context, filter Filter) ([]Production, error) {
	return list(ctx, r.q, productionKind, filter)
}

func (r *PostgresRepository) ListFinancials(ctx context.Context, filter Filter) ([]Financial, error) {
	return list(ctx, r.q, financialKind, filter)
}

func insert[T any](ctx context.Context, q database.Querier, k kind[T], key Key, rec *T) error {
	_, fields := k.targets(rec)

	placeholders := make([]string, 0, len(fields)+2)
	for i := 1; i <= len(fields)+2; i++ {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i))
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (team_id, round_id, %s)
		VALUES (%s)`,
		k.table, strings.Join(k.columns, ", "), strings.Join(placeholders, ", "))

	args := make([]any, 0, len(fields)+2)
	args = append(args, key.TeamID, key.RoundID)
	args = append(args, fields...)

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting into %s: %w", k.table, err)
	}
	return nil
}

func list[T any](ctx context.Context, q database.Querier, k kind[T], filter Filter) ([]T, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if filter.RoundID != nil {
		conditions = append(conditions, fmt.Sprintf("d.round_id = $%d", argIdx))
		args = append(args, *filter.RoundID)
		argIdx++
	}
	if filter.TeamID != nil {
		conditions = append(conditions, fmt.Sprintf("d.team_id = $%d", argIdx))
		args = append(args, *filter.TeamID)
		argIdx++
	}
	if filter.TeamName != nil {
		conditions = append(conditions, fmt.Sprintf("t.name = $%d", argIdx))
		args = append(args, *filter.TeamName)
		argIdx++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	cols := make([]string, len(k.columns))
	for i, c := range k.columns {
		cols[i] = "d." + c
	}

	query := fmt.Sprintf(`
		SELECT d.id, d.team_id, t.name, t.is_my_team, d.round_id, r.number, %s
		FROM %s d
		JOIN teams t ON t.id = d.team_id
		JOIN rounds r ON r.id = d.round_id
		%s
		ORDER BY r.number ASC, t.is_my_team DESC, t.name ASC`,
		strings.Join(cols, ", "), k.table, whereClause)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", k.table, err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		var rec T
		meta, fields := k.targets(&rec)
		dest := append([]any{
			&meta.ID, &meta.TeamID, &meta.TeamName, &meta.IsMyTeam, &meta.RoundID, &meta.RoundNumber,
		}, fields...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", k.table, err)
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s rows: %w", k.table, err)
	}

	return items, nil
}
