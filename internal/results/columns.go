package results

// kind maps one record type onto its table. targets returns pointers to the
// record's Meta and to its figure fields in the order of columns; the same
// pointers double as insert arguments.
type kind[T any] struct {
	table   string
	columns []string
	targets func(*T) (*Meta, []any)
}

var performanceKind = kind[Performance]{
	table: "performances",
	columns: []string{
		"revenue_global", "net_profit_global", "ebitda_global", "ebit_global",
		"revenue_usa", "net_profit_usa", "ebitda_usa", "ebit_usa",
		"revenue_europe", "net_profit_europe", "ebitda_europe", "ebit_europe",
		"revenue_asia", "net_profit_asia", "ebitda_asia", "ebit_asia",
		"cumulative_return", "share_price",
	},
	targets: func(p *Performance) (*Meta, []any) {
		f := &p.PerformanceFigures
		return &p.Meta, []any{
			&f.RevenueGlobal, &f.NetProfitGlobal, &f.EBITDAGlobal, &f.EBITGlobal,
			&f.RevenueUSA, &f.NetProfitUSA, &f.EBITDAUSA, &f.EBITUSA,
			&f.RevenueEurope, &f.NetProfitEurope, &f.EBITDAEurope, &f.EBITEurope,
			&f.RevenueAsia, &f.NetProfitAsia, &f.EBITDAAsia, &f.EBITAsia,
			&f.CumulativeReturn, &f.SharePrice,
		}
	},
}

var marketShareKind = kind[MarketShare]{
	table: "market_shares",
	columns: []string{
		"share_global", "tech1_global", "tech2_global", "tech3_global", "tech4_global",
		"share_usa", "tech1_usa", "tech2_usa", "tech3_usa", "tech4_usa",
		"share_europe", "tech1_europe", "tech2_europe", "tech3_europe", "tech4_europe",
		"share_asia", "tech1_asia", "tech2_asia", "tech3_asia", "tech4_asia",
	},
	targets: func(m *MarketShare) (*Meta, []any) {
		f := &m.MarketShareFigures
		return &m.Meta, []any{
			&f.ShareGlobal, &f.Tech1Global, &f.Tech2Global, &f.Tech3Global, &f.Tech4Global,
			&f.ShareUSA, &f.Tech1USA, &f.Tech2USA, &f.Tech3USA, &f.Tech4USA,
			&f.ShareEurope, &f.Tech1Europe, &f.Tech2Europe, &f.Tech3Europe, &f.Tech4Europe,
			&f.ShareAsia, &f.Tech1Asia, &f.Tech2Asia, &f.Tech3Asia, &f.Tech4Asia,
		}
	},
}

var hrKind = kind[HRData]{
	table: "hr_data",
	columns: []string{
		"rd_headcount", "turnover_rate", "training_budget", "monthly_salary",
		"man_day_allocation", "productivity_coefficient",
	},
	targets: func(h *HRData) (*Meta, []any) {
		f := &h.HRFigures
		return &h.Meta, []any{
			&f.RDHeadcount, &f.TurnoverRate, &f.TrainingBudget, &f.MonthlySalary,
			&f.ManDayAllocation, &f.ProductivityCoefficient,
		}
	},
}

var productionKind = kind[Production]{
	table: "productions",
	columns: []string{
		"tech1_usa", "tech2_usa", "tech3_usa", "tech4_usa",
		"tech1_asia", "tech2_asia", "tech3_asia", "tech4_asia",
		"plants_usa", "plants_asia",
		"capacity_usa", "capacity_asia", "network_coverage",
	},
	targets: func(p *Production) (*Meta, []any) {
		f := &p.ProductionFigures
		return &p.Meta, []any{
			&f.Tech1USA, &f.Tech2USA, &f.Tech3USA, &f.Tech4USA,
			&f.Tech1Asia, &f.Tech2Asia, &f.Tech3Asia, &f.Tech4Asia,
			&f.PlantsUSA, &f.PlantsAsia,
			&f.CapacityUSA, &f.CapacityAsia, &f.NetworkCoverage,
		}
	},
}

var financialKind = kind[Financial]{
	table: "financials",
	columns: []string{
		"fixed_assets", "inventory", "receivables", "cash", "total_assets",
		"share_capital", "share_premium", "net_result", "retained_earnings", "total_equity",
		"long_term_debt", "short_term_debt", "payables", "total_debt", "total_liabilities",
	},
	targets: func(fi *Financial) (*Meta, []any) {
		f := &fi.FinancialFigures
		return &fi.Meta, []any{
			&f.FixedAssets, &f.Inventory, &f.Receivables, &f.Cash, &f.TotalAssets,
			&f.ShareCapital, &f.SharePremium, &f.NetResult, &f.RetainedEarnings, &f.TotalEquity,
			&f.LongTermDebt, &f.ShortTermDebt, &f.Payables, &f.TotalDebt, &f.TotalLiabilities,
		}
	},
}
