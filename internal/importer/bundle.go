package importer

import "github.com/corpomate/cesimdash/internal/results"

// Bundle is the structured content of one round workbook. It is also the
// JSON body accepted by the round import endpoint.
type Bundle struct {
	Teams          []string            `json:"teams"`
	Performances   []PerformanceRecord `json:"performances"`
	MarketShares   []MarketShareRecord `json:"marketShares"`
	HRData         []HRRecord          `json:"hrData"`
	Productions    []ProductionRecord  `json:"productions"`
	Financials     []FinancialRecord   `json:"financials"`
	DefaultedCells int                 `json:"defaultedCells"`
	Logs           []string            `json:"logs"`
}

// PerformanceRecord holds one team's performance figures.
type PerformanceRecord struct {
	Team string `json:"team"`
	results.PerformanceFigures
}

// MarketShareRecord holds one team's market share figures.
type MarketShareRecord struct {
	Team string `json:"team"`
	results.MarketShareFigures
}

// HRRecord holds one team's HR figures.
type HRRecord struct {
	Team string `json:"team"`
	results.HRFigures
}

// ProductionRecord holds one team's production figures.
type ProductionRecord struct {
	Team string `json:"team"`
	results.ProductionFigures
}

// FinancialRecord holds one team's balance sheet.
type FinancialRecord struct {
	Team string `json:"team"`
	results.FinancialFigures
}
