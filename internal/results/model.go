package results

import "github.com/google/uuid"

// Key identifies the (team, round) pair a data record belongs to.
type Key struct {
	TeamID  uuid.UUID
	RoundID uuid.UUID
}

// Meta carries the identity of a stored record joined with its team and round.
type Meta struct {
	ID          uuid.UUID `json:"id"`
	TeamID      uuid.UUID `json:"teamId"`
	TeamName    string    `json:"teamName"`
	IsMyTeam    bool      `json:"isMyTeam"`
	RoundID     uuid.UUID `json:"roundId"`
	RoundNumber int       `json:"roundNumber"`
}

// Filter narrows a listing. Nil fields are not applied.
type Filter struct {
	RoundID  *uuid.UUID
	TeamID   *uuid.UUID
	TeamName *string
}

// PerformanceFigures are the income statement figures of one team for one round.
type PerformanceFigures struct {
	RevenueGlobal    float64 `json:"revenueGlobal"`
	NetProfitGlobal  float64 `json:"netProfitGlobal"`
	EBITDAGlobal     float64 `json:"ebitdaGlobal"`
	EBITGlobal       float64 `json:"ebitGlobal"`
	RevenueUSA       float64 `json:"revenueUSA"`
	NetProfitUSA     float64 `json:"netProfitUSA"`
	EBITDAUSA        float64 `json:"ebitdaUSA"`
	EBITUSA          float64 `json:"ebitUSA"`
	RevenueEurope    float64 `json:"revenueEurope"`
	NetProfitEurope  float64 `json:"netProfitEurope"`
	EBITDAEurope     float64 `json:"ebitdaEurope"`
	EBITEurope       float64 `json:"ebitEurope"`
	RevenueAsia      float64 `json:"revenueAsia"`
	NetProfitAsia    float64 `json:"netProfitAsia"`
	EBITDAAsia       float64 `json:"ebitdaAsia"`
	EBITAsia         float64 `json:"ebitAsia"`
	CumulativeReturn float64 `json:"cumulativeReturn"`
	SharePrice       float64 `json:"sharePrice"`
}

// MarketShareFigures are total and per-technology market shares, in percent.
type MarketShareFigures struct {
	ShareGlobal float64 `json:"shareGlobal"`
	Tech1Global float64 `json:"tech1Global"`
	Tech2Global float64 `json:"tech2Global"`
	Tech3Global float64 `json:"tech3Global"`
	Tech4Global float64 `json:"tech4Global"`
	ShareUSA    float64 `json:"shareUSA"`
	Tech1USA    float64 `json:"tech1USA"`
	Tech2USA    float64 `json:"tech2USA"`
	Tech3USA    float64 `json:"tech3USA"`
	Tech4USA    float64 `json:"tech4USA"`
	ShareEurope float64 `json:"shareEurope"`
	Tech1Europe float64 `json:"tech1Europe"`
	Tech2Europe float64 `json:"tech2Europe"`
	Tech3Europe float64 `json:"tech3Europe"`
	Tech4Europe float64 `json:"tech4Europe"`
	ShareAsia   float64 `json:"shareAsia"`
	Tech1Asia   float64 `json:"tech1Asia"`
	Tech2Asia   float64 `json:"tech2Asia"`
	Tech3Asia   float64 `json:"tech3Asia"`
	Tech4Asia   float64 `json:"tech4Asia"`
}

// HRFigures describe the R&D workforce.
type HRFigures struct {
	RDHeadcount             int     `json:"rdHeadcount"`
	TurnoverRate            float64 `json:"turnoverRate"`
	TrainingBudget          int     `json:"trainingBudget"`
	MonthlySalary           int     `json:"monthlySalary"`
	ManDayAllocation        float64 `json:"manDayAllocation"`
	ProductivityCoefficient float64 `json:"productivityCoefficient"`
}

// ProductionFigures are in-house production volumes and plant capacity.
type ProductionFigures struct {
	Tech1USA        int     `json:"tech1USA"`
	Tech2USA        int     `json:"tech2USA"`
	Tech3USA        int     `json:"tech3USA"`
	Tech4USA        int     `json:"tech4USA"`
	Tech1Asia       int     `json:"tech1Asia"`
	Tech2Asia       int     `json:"tech2Asia"`
	Tech3Asia       int     `json:"tech3Asia"`
	Tech4Asia       int     `json:"tech4Asia"`
	PlantsUSA       int     `json:"plantsUSA"`
	PlantsAsia      int     `json:"plantsAsia"`
	CapacityUSA     float64 `json:"capacityUSA"`
	CapacityAsia    float64 `json:"capacityAsia"`
	NetworkCoverage float64 `json:"networkCoverage"`
}

// FinancialFigures are the global balance sheet.
type FinancialFigures struct {
	FixedAssets      float64 `json:"fixedAssets"`
	Inventory        float64 `json:"inventory"`
	Receivables      float64 `json:"receivables"`
	Cash             float64 `json:"cash"`
	TotalAssets      float64 `json:"totalAssets"`
	ShareCapital     float64 `json:"shareCapital"`
	SharePremium     float64 `json:"sharePremium"`
	NetResult        float64 `json:"netResult"`
	RetainedEarnings float64 `json:"retainedEarnings"`
	TotalEquity      float64 `json:"totalEquity"`
	LongTermDebt     float64 `json:"longTermDebt"`
	ShortTermDebt    float64 `json:"shortTermDebt"`
	Payables         float64 `json:"payables"`
	TotalDebt        float64 `json:"totalDebt"`
	TotalLiabilities float64 `json:"totalLiabilities"`
}

// Performance is a stored performance record.
type Performance struct {
	Meta
	PerformanceFigures
}

// MarketShare is a stored market share record.
type MarketShare struct {
	Meta
	MarketShareFigures
}

// HRData is a stored HR record.
type HRData struct {
	Meta
	HRFigures
}

// Production is a stored production record.
type Production struct {
	Meta
	ProductionFigures
}

// Financial is a stored balance sheet record.
type Financial struct {
	Meta
	FinancialFigures
}

// RoundData groups every record of a single round.
type RoundData struct {
	Performances []Performance
	MarketShares []MarketShare
	HRData       []HRData
	Productions  []Production
	Financials   []Financial
}
