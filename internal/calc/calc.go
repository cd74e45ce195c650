// Package calc implements the bid profitability engine: input validation,
// the cost/margin/risk calculation, what-if evaluation, and the presentation
// helpers shared by the API and report export.
//
// Every function here is a pure computation over its arguments plus an
// injected benchmark Table; the package holds no state between calls.
package calc

// Business constants shared by validation and calculation.
const (
	overheadRate        = 0.13      // fixed overhead surcharge on direct costs
	maxHoursPerDay      = 12.0      // validation ceiling, hours per crew member per day
	warnHoursPerDay     = 10.0      // warning threshold, same unit
	materialCostCeiling = 1_000_000 // soft ceiling on material cost
)

// Risk levels produced by Calculate.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Input is a single project estimate request.
type Input struct {
	ProjectType     string  `json:"projectType"`
	LaborHours      float64 `json:"laborHours"`
	MaterialCost    float64 `json:"materialCost"`
	CrewSize        int     `json:"crewSize"`
	ProjectDuration int     `json:"projectDuration"` // days
}

// Breakdown is the four additive components of the recommended bid.
type Breakdown struct {
	Materials float64 `json:"materials"`
	Labor     float64 `json:"labor"`
	Overhead  float64 `json:"overhead"`
	Profit    float64 `json:"profit"`
}

// Comparison relates the computed margin to the industry average.
type Comparison struct {
	IndustryAvgMargin float64 `json:"industryAvgMargin"`
	YourMargin        float64 `json:"yourMargin"`
	Difference        float64 `json:"difference"`
	PerformanceLevel  string  `json:"performanceLevel"`
}

// Result is the full output of one profitability calculation.
type Result struct {
	TotalLaborCost       float64    `json:"totalLaborCost"`
	TotalOverhead        float64    `json:"totalOverhead"`
	BreakEvenAmount      float64    `json:"breakEvenAmount"`
	RecommendedBid       float64    `json:"recommendedBid"`
	ProfitAmount         float64    `json:"profitAmount"`
	HourlyRate           float64    `json:"hourlyRate"` // profit per labor hour, not a wage
	ProfitMargin         float64    `json:"profitMargin"`
	MaterialToLaborRatio float64    `json:"materialToLaborRatio"`
	RiskScore            int        `json:"riskScore"`
	RiskLevel            string     `json:"riskLevel"`
	BenchmarkComparison  Comparison `json:"benchmarkComparison"`
	CostBreakdown        Breakdown  `json:"costBreakdown"`
	Recommendations      []string   `json:"recommendations"`
	Warnings             []string   `json:"warnings"`
}

// Calculate derives the full profitability result for in against table.
//
// The input is expected to have passed ValidateInputs first; in particular
// LaborHours must be greater than zero or the derived per-hour rates divide
// by zero. Calculate itself never fails: unknown project types resolve to
// the Custom/Other fallback.
func Calculate(in Input, table Table) Result {
	bench := table.Resolve(in.ProjectType)

	totalLaborCost := in.LaborHours * bench.AvgLaborRate
	directCosts := totalLaborCost + in.MaterialCost
	totalOverhead := directCosts * overheadRate
	totalCost := directCosts + totalOverhead

	recommendedBid := totalCost * bench.TypicalMarkup
	profitAmount := recommendedBid - totalCost
	profitMargin := profitAmount / recommendedBid * 100
	hourlyRate := profitAmount / in.LaborHours
	materialToLaborRatio := in.MaterialCost / totalLaborCost

	riskScore := riskScoreFor(bench, in, profitMargin, materialToLaborRatio)

	res := Result{
		TotalLaborCost:       totalLaborCost,
		TotalOverhead:        totalOverhead,
		BreakEvenAmount:      totalCost,
		RecommendedBid:       recommendedBid,
		ProfitAmount:         profitAmount,
		HourlyRate:           hourlyRate,
		ProfitMargin:         profitMargin,
		MaterialToLaborRatio: materialToLaborRatio,
		RiskScore:            riskScore,
		RiskLevel:            riskLevelFor(riskScore),
		BenchmarkComparison: Comparison{
			IndustryAvgMargin: bench.AvgMargin,
			YourMargin:        profitMargin,
			Difference:        profitMargin - bench.AvgMargin,
			PerformanceLevel:  performanceLevelFor(profitMargin - bench.AvgMargin),
		},
		CostBreakdown: Breakdown{
			Materials: in.MaterialCost,
			Labor:     totalLaborCost,
			Overhead:  totalOverhead,
			Profit:    profitAmount,
		},
	}

	res.Recommendations = recommendations(in, bench, res)
	res.Warnings = warnings(in, res)
	return res
}

func riskScoreFor(bench Benchmark, in Input, profitMargin, materialToLaborRatio float64) int {
	score := bench.RiskFactor
	if in.ProjectDuration > 30 {
		score++
	}
	if in.CrewSize > 8 {
		score++
	}
	if materialToLaborRatio > 2 {
		score++
	}
	if profitMargin < 10 {
		score += 2
	}
	if profitMargin < 5 {
		score += 2
	}
	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}
	return score
}

func riskLevelFor(score int) string {
	switch {
	case score <= 3:
		return RiskLow
	case score <= 6:
		return RiskMedium
	default:
		return RiskHigh
	}
}

func performanceLevelFor(difference float64) string {
	switch {
	case difference >= 10:
		return "Excellent - well above industry average"
	case difference >= 5:
		return "Good - above industry average"
	case difference >= -2:
		return "Average - in line with industry"
	case difference >= -5:
		return "Below Average - review your cost structure"
	default:
		return "Poor - significantly below industry average"
	}
}

// Overrides holds optional replacements for what-if evaluation. Nil fields
// keep the base value.
type Overrides struct {
	ProjectType     *string  `json:"projectType,omitempty"`
	LaborHours      *float64 `json:"laborHours,omitempty"`
	MaterialCost    *float64 `json:"materialCost,omitempty"`
	CrewSize        *int     `json:"crewSize,omitempty"`
	ProjectDuration *int     `json:"projectDuration,omitempty"`
}

// Apply merges the overrides onto base and returns the resulting input.
func (o Overrides) Apply(base Input) Input {
	if o.ProjectType != nil {
		base.ProjectType = *o.ProjectType
	}
	if o.LaborHours != nil {
		base.LaborHours = *o.LaborHours
	}
	if o.MaterialCost != nil {
		base.MaterialCost = *o.MaterialCost
	}
	if o.CrewSize != nil {
		base.CrewSize = *o.CrewSize
	}
	if o.ProjectDuration != nil {
		base.ProjectDuration = *o.ProjectDuration
	}
	return base
}

// WhatIf merges overrides onto base and recomputes the full result. There is
// no incremental path: a full recompute keeps every derived field consistent.
func WhatIf(base Input, o Overrides, table Table) Result {
	return Calculate(o.Apply(base), table)
}
