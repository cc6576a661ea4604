package results

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// LoadRound fetches all five data kinds of a round concurrently. repo must
// be safe for concurrent use, which a pool-backed repository is and a
// transaction-backed one is not.
func LoadRound(ctx context.Context, repo Repository, roundID uuid.UUID) (*RoundData, error) {
	filter := Filter{RoundID: &roundID}
	var data RoundData

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		data.Performances, err = repo.ListPerformances(ctx, filter)
		return err
	})
	g.Go(func() (err error) {
		data.MarketShares, err = repo.ListMarketShares(ctx, filter)
		return err
	})
	g.Go(func() (err error) {
		data.HRData, err = repo.ListHRData(ctx, filter)
		return err
	})
	g.Go(func() (err error) {
		data.Productions, err = repo.ListProductions(ctx, filter)
		return err
	})
	g.Go(func() (err error) {
		data.Financials, err = repo.ListFinancials(ctx, filter)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}
