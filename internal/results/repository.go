package results

import "context"

// Repository reads and writes the five per-round data kinds.
type Repository interface {
	CreatePerformance(ctx context.Context, key Key, f PerformanceFigures) error
	CreateMarketShare(ctx context.Context, key Key, f MarketShareFigures) error
	CreateHRData(ctx context.Context, key Key, f HRFigures) error
	CreateProduction(ctx context.Context, key Key, f ProductionFigures) error
	CreateFinancial(ctx context.Context, key Key, f FinancialFigures) error

	ListPerformances(ctx context.Context, filter Filter) ([]Performance, error)
	ListMarketShares(ctx context.Context, filter Filter) ([]MarketShare, error)
	ListHRData(ctx context.Context, filter Filter) ([]HRData, error)
	ListProductions(ctx context.Context, filter Filter) ([]Production, error)
	ListFinancials(ctx context.Context, filter Filter) ([]Financial, error)
}
