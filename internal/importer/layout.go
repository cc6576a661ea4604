package importer

import "github.com/corpomate/cesimdash/internal/results"

// Template geometry. Rows and columns are 0-based, as in the CESIM result
// workbook: team names sit on row 2 starting at column B.
const (
	teamHeaderRow = 2
	firstTeamCol  = 1
	lastTeamCol   = 10
)

// field binds a figure to the template row it is read from.
type field[T any] struct {
	name    string
	row     int
	set     func(*T, float64)
	integer bool
}

func num[T any](name string, row int, set func(*T, float64)) field[T] {
	return field[T]{name: name, row: row, set: set}
}

// whole declares a field stored in an INTEGER column. Its cell is rounded to
// the nearest integer and must fit in 32 bits.
func whole[T any](name string, row int, set func(*T, int)) field[T] {
	return field[T]{
		name:    name,
		row:     row,
		set:     func(f *T, v float64) { set(f, int(v)) },
		integer: true,
	}
}

var performanceLayout = []field[results.PerformanceFigures]{
	num("revenueGlobal", 3, func(f *results.PerformanceFigures, v float64) { f.RevenueGlobal = v }),
	num("ebitdaGlobal", 16, func(f *results.PerformanceFigures, v float64) { f.EBITDAGlobal = v }),
	num("ebitGlobal", 19, func(f *results.PerformanceFigures, v float64) { f.EBITGlobal = v }),
	num("netProfitGlobal", 25, func(f *results.PerformanceFigures, v float64) { f.NetProfitGlobal = v }),
	num("revenueUSA", 63, func(f *results.PerformanceFigures, v float64) { f.RevenueUSA = v }),
	num("ebitdaUSA", 77, func(f *results.PerformanceFigures, v float64) { f.EBITDAUSA = v }),
	num("ebitUSA", 80, func(f *results.PerformanceFigures, v float64) { f.EBITUSA = v }),
	num("netProfitUSA", 104, func(f *results.PerformanceFigures, v float64) { f.NetProfitUSA = v }),
	num("revenueEurope", 215, func(f *results.PerformanceFigures, v float64) { f.RevenueEurope = v }),
	num("ebitdaEurope", 136, func(f *results.PerformanceFigures, v float64) { f.EBITDAEurope = v }),
	num("ebitEurope", 139, func(f *results.PerformanceFigures, v float64) { f.EBITEurope = v }),
	num("netProfitEurope", 253, func(f *results.PerformanceFigures, v float64) { f.NetProfitEurope = v }),
	num("revenueAsia", 157, func(f *results.PerformanceFigures, v float64) { f.RevenueAsia = v }),
	num("ebitdaAsia", 175, func(f *results.PerformanceFigures, v float64) { f.EBITDAAsia = v }),
	num("ebitAsia", 178, func(f *results.PerformanceFigures, v float64) { f.EBITAsia = v }),
	num("netProfitAsia", 185, func(f *results.PerformanceFigures, v float64) { f.NetProfitAsia = v }),
	num("cumulativeReturn", 202, func(f *results.PerformanceFigures, v float64) { f.CumulativeReturn = v }),
	num("sharePrice", 203, func(f *results.PerformanceFigures, v float64) { f.SharePrice = v }),
}

// The template lists Asia before Europe in the market share section.
var marketShareLayout = []field[results.MarketShareFigures]{
	num("shareGlobal", 298, func(f *results.MarketShareFigures, v float64) { f.ShareGlobal = v }),
	num("tech1Global", 300, func(f *results.MarketShareFigures, v float64) { f.Tech1Global = v }),
	num("tech2Global", 301, func(f *results.MarketShareFigures, v float64) { f.Tech2Global = v }),
	num("tech3Global", 302, func(f *results.MarketShareFigures, v float64) { f.Tech3Global = v }),
	num("tech4Global", 303, func(f *results.MarketShareFigures, v float64) { f.Tech4Global = v }),
	num("shareUSA", 342, func(f *results.MarketShareFigures, v float64) { f.ShareUSA = v }),
	num("tech1USA", 344, func(f *results.MarketShareFigures, v float64) { f.Tech1USA = v }),
	num("tech2USA", 345, func(f *results.MarketShareFigures, v float64) { f.Tech2USA = v }),
	num("tech3USA", 346, func(f *results.MarketShareFigures, v float64) { f.Tech3USA = v }),
	num("tech4USA", 347, func(f *results.MarketShareFigures, v float64) { f.Tech4USA = v }),
	num("shareAsia", 386, func(f *results.MarketShareFigures, v float64) { f.ShareAsia = v }),
	num("tech1Asia", 388, func(f *results.MarketShareFigures, v float64) { f.Tech1Asia = v }),
	num("tech2Asia", 389, func(f *results.MarketShareFigures, v float64) { f.Tech2Asia = v }),
	num("tech3Asia", 390, func(f *results.MarketShareFigures, v float64) { f.Tech3Asia = v }),
	num("tech4Asia", 391, func(f *results.MarketShareFigures, v float64) { f.Tech4Asia = v }),
	num("shareEurope", 430, func(f *results.MarketShareFigures, v float64) { f.ShareEurope = v }),
	num("tech1Europe", 432, func(f *results.MarketShareFigures, v float64) { f.Tech1Europe = v }),
	num("tech2Europe", 433, func(f *results.MarketShareFigures, v float64) { f.Tech2Europe = v }),
	num("tech3Europe", 434, func(f *results.MarketShareFigures, v float64) { f.Tech3Europe = v }),
	num("tech4Europe", 435, func(f *results.MarketShareFigures, v float64) { f.Tech4Europe = v }),
}

var hrLayout = []field[results.HRFigures]{
	whole("monthlySalary", 598, func(f *results.HRFigures, v int) { f.MonthlySalary = v }),
	whole("trainingBudget", 599, func(f *results.HRFigures, v int) { f.TrainingBudget = v }),
	whole("rdHeadcount", 601, func(f *results.HRFigures, v int) { f.RDHeadcount = v }),
	num("turnoverRate", 602, func(f *results.HRFigures, v float64) { f.TurnoverRate = v }),
	num("manDayAllocation", 604, func(f *results.HRFigures, v float64) { f.ManDayAllocation = v }),
	num("productivityCoefficient", 606, func(f *results.HRFigures, v float64) { f.ProductivityCoefficient = v }),
}

// Capacity and network coverage have no cell in the template and stay zero.
var productionLayout = []field[results.ProductionFigures]{
	whole("tech1USA", 444, func(f *results.ProductionFigures, v int) { f.Tech1USA = v }),
	whole("tech2USA", 445, func(f *results.ProductionFigures, v int) { f.Tech2USA = v }),
	whole("tech3USA", 446, func(f *results.ProductionFigures, v int) { f.Tech3USA = v }),
	whole("tech4USA", 447, func(f *results.ProductionFigures, v int) { f.Tech4USA = v }),
	whole("tech1Asia", 450, func(f *results.ProductionFigures, v int) { f.Tech1Asia = v }),
	whole("tech2Asia", 451, func(f *results.ProductionFigures, v int) { f.Tech2Asia = v }),
	whole("tech3Asia", 452, func(f *results.ProductionFigures, v int) { f.Tech3Asia = v }),
	whole("tech4Asia", 453, func(f *results.ProductionFigures, v int) { f.Tech4Asia = v }),
	whole("plantsUSA", 511, func(f *results.ProductionFigures, v int) { f.PlantsUSA = v }),
	whole("plantsAsia", 520, func(f *results.ProductionFigures, v int) { f.PlantsAsia = v }),
}

var financialLayout = []field[results.FinancialFigures]{
	num("fixedAssets", 32, func(f *results.FinancialFigures, v float64) { f.FixedAssets = v }),
	num("inventory", 33, func(f *results.FinancialFigures, v float64) { f.Inventory = v }),
	num("receivables", 34, func(f *results.FinancialFigures, v float64) { f.Receivables = v }),
	num("cash", 35, func(f *results.FinancialFigures, v float64) { f.Cash = v }),
	num("totalAssets", 36, func(f *results.FinancialFigures, v float64) { f.TotalAssets = v }),
	num("shareCapital", 40, func(f *results.FinancialFigures, v float64) { f.ShareCapital = v }),
	num("sharePremium", 41, func(f *results.FinancialFigures, v float64) { f.SharePremium = v }),
	num("netResult", 42, func(f *results.FinancialFigures, v float64) { f.NetResult = v }),
	num("retainedEarnings", 43, func(f *results.FinancialFigures, v float64) { f.RetainedEarnings = v }),
	num("totalEquity", 44, func(f *results.FinancialFigures, v float64) { f.TotalEquity = v }),
	num("longTermDebt", 47, func(f *results.FinancialFigures, v float64) { f.LongTermDebt = v }),
	num("shortTermDebt", 48, func(f *results.FinancialFigures, v float64) { f.ShortTermDebt = v }),
	num("payables", 49, func(f *results.FinancialFigures, v float64) { f.Payables = v }),
	num("totalDebt", 50, func(f *results.FinancialFigures, v float64) { f.TotalDebt = v }),
	num("totalLiabilities", 52, func(f *results.FinancialFigures, v float64) { f.TotalLiabilities = v }),
}
