package analysis

import (
	"math"
	"sort"

	"github.com/corpomate/cesimdash/internal/results"
)

// Delta is the relative change of a figure between two rounds.
type Delta struct {
	// Percent is the magnitude of the change, in percent.
	Percent  float64 `json:"percent"`
	Positive bool    `json:"positive"`
}

// Change computes the change from previous to current. A zero previous
// value yields a zero, positive delta.
//
// The change is divided by |previous|, not previous, so the sign follows the
// direction of the move: a loss shrinking from -100 to -50 is +50%, where
// the plain ratio (current-previous)/previous would report -50%. The
// dashboard's KPI cards that divide by previous differ on negative figures.
func Change(current, previous float64) Delta {
	if previous == 0 {
		return Delta{Percent: 0, Positive: true}
	}
	pct := (current - previous) / math.Abs(previous) * 100
	return Delta{Percent: math.Abs(pct), Positive: pct >= 0}
}

// KPI names.
const (
	KPIRevenue     = "revenue"
	KPINetProfit   = "netProfit"
	KPIMarketShare = "marketShare"
	KPISharePrice  = "sharePrice"
)

// KPI is one dashboard indicator for the latest round of a team.
type KPI struct {
	Name     string   `json:"name"`
	Value    float64  `json:"value"`
	Previous *float64 `json:"previous"`
	Change   Delta    `json:"change"`
}

// TeamKPIs holds the indicators of one team.
type TeamKPIs struct {
	RoundNumber         *int  `json:"roundNumber"`
	PreviousRoundNumber *int  `json:"previousRoundNumber"`
	KPIs                []KPI `json:"kpis"`
}

// KPIs computes revenue, net profit, global market share and share price of
// the latest round with their change against the round before. perfs and
// shares must belong to a single team; their order does not matter.
func KPIs(perfs []results.Performance, shares []results.MarketShare) TeamKPIs {
	perfs = append([]results.Performance(nil), perfs...)
	shares = append([]results.MarketShare(nil), shares...)
	sort.SliceStable(perfs, func(i, j int) bool { return perfs[i].RoundNumber < perfs[j].RoundNumber })
	sort.SliceStable(shares, func(i, j int) bool { return shares[i].RoundNumber < shares[j].RoundNumber })

	out := TeamKPIs{KPIs: make([]KPI, 0, 4)}

	var curPerf, prevPerf *results.Performance
	if n := len(perfs); n > 0 {
		curPerf = &perfs[n-1]
		out.RoundNumber = &curPerf.RoundNumber
		if n > 1 {
			prevPerf = &perfs[n-2]
			out.PreviousRoundNumber = &prevPerf.RoundNumber
		}
	}

	var curShare, prevShare *results.MarketShare
	if n := len(shares); n > 0 {
		curShare = &shares[n-1]
		if out.RoundNumber == nil {
			out.RoundNumber = &curShare.RoundNumber
		}
		if n > 1 {
			prevShare = &shares[n-2]
		}
	}

	if curPerf != nil {
		out.KPIs = append(out.KPIs,
			kpi(KPIRevenue, curPerf, prevPerf, func(p *results.Performance) float64 { return p.RevenueGlobal }),
			kpi(KPINetProfit, curPerf, prevPerf, func(p *results.Performance) float64 { return p.NetProfitGlobal }),
		)
	}
	if curShare != nil {
		out.KPIs = append(out.KPIs, kpi(KPIMarketShare, curShare, prevShare, func(m *results.MarketShare) float64 { return m.ShareGlobal }))
	}
	if curPerf != nil {
		out.KPIs = append(out.KPIs, kpi(KPISharePrice, curPerf, prevPerf, func(p *results.Performance) float64 { return p.SharePrice }))
	}

	return out
}

func kpi[T any](name string, cur, prev *T, get func(*T) float64) KPI {
	k := KPI{Name: name, Value: get(cur), Change: Delta{Positive: true}}
	if prev != nil {
		pv := get(prev)
		k.Previous = &pv
		k.Change = Change(k.Value, pv)
	}
	return k
}
