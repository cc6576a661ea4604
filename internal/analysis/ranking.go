// Package analysis derives rankings and round-over-round indicators from
// stored results.
package analysis

import (
	"errors"
	"sort"

	"github.com/google/uuid"

	"github.com/corpomate/cesimdash/internal/results"
)

// ErrUnknownMetric is returned for a category or metric outside the catalog.
var ErrUnknownMetric = errors.New("unknown ranking category or metric")

// Ranking categories.
const (
	CategoryPerformances = "performances"
	CategoryMarketShare  = "marketShare"
	CategoryProduction   = "production"
	CategoryFinancials   = "financials"
	CategoryHR           = "hr"
)

// Entry is one ranked team.
type Entry struct {
	Rank     int       `json:"rank"`
	TeamID   uuid.UUID `json:"teamId"`
	TeamName string    `json:"teamName"`
	IsMyTeam bool      `json:"isMyTeam"`
	Value    float64   `json:"value"`
}

// Ranking orders the teams of one round by one metric.
type Ranking struct {
	Category  string  `json:"category"`
	Metric    string  `json:"metric"`
	Ascending bool    `json:"ascending"`
	Entries   []Entry `json:"entries"`
}

type metric struct {
	name      string
	ascending bool // lower values rank higher
	value     func(data *results.RoundData) []Entry
}

func entries[T any](rows []T, meta func(*T) results.Meta, value func(*T) float64) []Entry {
	out := make([]Entry, 0, len(rows))
	for i := range rows {
		m := meta(&rows[i])
		out = append(out, Entry{TeamID: m.TeamID, TeamName: m.TeamName, IsMyTeam: m.IsMyTeam, Value: value(&rows[i])})
	}
	return out
}

func performance(name string, v func(*results.Performance) float64) metric {
	return metric{name: name, value: func(d *results.RoundData) []Entry {
		return entries(d.Performances, func(r *results.Performance) results.Meta { return r.Meta }, v)
	}}
}

func marketShare(name string, v func(*results.MarketShare) float64) metric {
	return metric{name: name, value: func(d *results.RoundData) []Entry {
		return entries(d.MarketShares, func(r *results.MarketShare) results.Meta { return r.Meta }, v)
	}}
}

func production(name string, v func(*results.Production) float64) metric {
	return metric{name: name, value: func(d *results.RoundData) []Entry {
		return entries(d.Productions, func(r *results.Production) results.Meta { return r.Meta }, v)
	}}
}

func financial(name string, v func(*results.Financial) float64) metric {
	return metric{name: name, value: func(d *results.RoundData) []Entry {
		return entries(d.Financials, func(r *results.Financial) results.Meta { return r.Meta }, v)
	}}
}

func hr(name string, v func(*results.HRData) float64) metric {
	return metric{name: name, value: func(d *results.RoundData) []Entry {
		return entries(d.HRData, func(r *results.HRData) results.Meta { return r.Meta }, v)
	}}
}

// catalog lists the rankable metrics per category. The first metric of a
// category is its default.
var catalog = map[string][]metric{
	CategoryPerformances: {
		performance("revenueGlobal", func(r *results.Performance) float64 { return r.RevenueGlobal }),
		performance("netProfitGlobal", func(r *results.Performance) float64 { return r.NetProfitGlobal }),
		performance("ebitdaGlobal", func(r *results.Performance) float64 { return r.EBITDAGlobal }),
		performance("sharePrice", func(r *results.Performance) float64 { return r.SharePrice }),
	},
	CategoryMarketShare: {
		marketShare("shareGlobal", func(r *results.MarketShare) float64 { return r.ShareGlobal }),
		marketShare("shareUSA", func(r *results.MarketShare) float64 { return r.ShareUSA }),
		marketShare("shareEurope", func(r *results.MarketShare) float64 { return r.ShareEurope }),
		marketShare("shareAsia", func(r *results.MarketShare) float64 { return r.ShareAsia }),
	},
	CategoryProduction: {
		production("capacityUSA", func(r *results.Production) float64 { return r.CapacityUSA }),
		production("capacityAsia", func(r *results.Production) float64 { return r.CapacityAsia }),
		production("networkCoverage", func(r *results.Production) float64 { return r.NetworkCoverage }),
	},
	CategoryFinancials: {
		financial("totalAssets", func(r *results.Financial) float64 { return r.TotalAssets }),
		financial("totalEquity", func(r *results.Financial) float64 { return r.TotalEquity }),
		financial("cash", func(r *results.Financial) float64 { return r.Cash }),
	},
	CategoryHR: {
		hr("rdHeadcount", func(r *results.HRData) float64 { return float64(r.RDHeadcount) }),
		withAscending(hr("turnoverRate", func(r *results.HRData) float64 { return r.TurnoverRate })),
		hr("trainingBudget", func(r *results.HRData) float64 { return float64(r.TrainingBudget) }),
		hr("monthlySalary", func(r *results.HRData) float64 { return float64(r.MonthlySalary) }),
	},
}

func withAscending(m metric) metric {
	m.ascending = true
	return m
}

// Metrics returns the metric names available for category, default first.
func Metrics(category string) ([]string, error) {
	ms, ok := catalog[category]
	if !ok {
		return nil, ErrUnknownMetric
	}
	names := make([]string, 0, len(ms))
	for _, m := range ms {
		names = append(names, m.name)
	}
	return names, nil
}

// Rank orders the teams in data by metric. An empty metric selects the
// category default. Ranks start at 1; ties keep the storage order and get
// distinct ranks.
func Rank(category, metricName string, data *results.RoundData) (*Ranking, error) {
	ms, ok := catalog[category]
	if !ok {
		return nil, ErrUnknownMetric
	}

	var m *metric
	if metricName == "" {
		m = &ms[0]
	} else {
		for i := range ms {
			if ms[i].name == metricName {
				m = &ms[i]
				break
			}
		}
	}
	if m == nil {
		return nil, ErrUnknownMetric
	}

	var list []Entry
	if data != nil {
		list = m.value(data)
	} else {
		list = []Entry{}
	}

	sort.SliceStable(list, func(i, j int) bool {
		if m.ascending {
			return list[i].Value < list[j].Value
		}
		return list[i].Value > list[j].Value
	})
	for i := range list {
		list[i].Rank = i + 1
	}

	return &Ranking{Category: category, Metric: m.name, Ascending: m.ascending, Entries: list}, nil
}
