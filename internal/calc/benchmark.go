package calc

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FallbackProjectType is the benchmark used when a project type is not in the
// table. Every valid table must contain it.
const FallbackProjectType = "Custom/Other"

// Benchmark holds the industry-average coefficients for one project type.
type Benchmark struct {
	AvgMargin          float64 `yaml:"avg_margin" json:"avgMargin"`                     // percent, (0, 100)
	AvgLaborRate       float64 `yaml:"avg_labor_rate" json:"avgLaborRate"`              // currency per labor hour
	MaterialLaborRatio float64 `yaml:"material_labor_ratio" json:"materialLaborRatio"`  // expected material cost / labor cost
	RiskFactor         int     `yaml:"risk_factor" json:"riskFactor"`                   // base risk contribution, 1..5
	TypicalMarkup      float64 `yaml:"typical_markup" json:"typicalMarkup"`             // bid multiplier, > 1
}

// Table maps project type names to their industry benchmarks.
type Table map[string]Benchmark

// DefaultTable returns the built-in benchmark table.
func DefaultTable() Table {
	return Table{
		"Kitchen Remodel":    {AvgMargin: 25, AvgLaborRate: 55, MaterialLaborRatio: 2.5, RiskFactor: 3, TypicalMarkup: 1.35},
		"Bathroom Remodel":   {AvgMargin: 28, AvgLaborRate: 55, MaterialLaborRatio: 2.2, RiskFactor: 3, TypicalMarkup: 1.40},
		"Roofing":            {AvgMargin: 22, AvgLaborRate: 45, MaterialLaborRatio: 1.8, RiskFactor: 4, TypicalMarkup: 1.30},
		"Flooring":           {AvgMargin: 24, AvgLaborRate: 40, MaterialLaborRatio: 2.0, RiskFactor: 2, TypicalMarkup: 1.32},
		"Painting":           {AvgMargin: 30, AvgLaborRate: 35, MaterialLaborRatio: 0.8, RiskFactor: 1, TypicalMarkup: 1.45},
		"Deck/Patio":         {AvgMargin: 26, AvgLaborRate: 42, MaterialLaborRatio: 1.5, RiskFactor: 2, TypicalMarkup: 1.38},
		"Concrete/Masonry":   {AvgMargin: 23, AvgLaborRate: 48, MaterialLaborRatio: 1.6, RiskFactor: 3, TypicalMarkup: 1.33},
		"Electrical":         {AvgMargin: 27, AvgLaborRate: 65, MaterialLaborRatio: 1.2, RiskFactor: 3, TypicalMarkup: 1.42},
		"Plumbing":           {AvgMargin: 26, AvgLaborRate: 62, MaterialLaborRatio: 1.3, RiskFactor: 3, TypicalMarkup: 1.40},
		"HVAC":               {AvgMargin: 25, AvgLaborRate: 58, MaterialLaborRatio: 1.5, RiskFactor: 3, TypicalMarkup: 1.38},
		"Landscaping":        {AvgMargin: 28, AvgLaborRate: 32, MaterialLaborRatio: 1.2, RiskFactor: 2, TypicalMarkup: 1.42},
		"General Renovation": {AvgMargin: 24, AvgLaborRate: 50, MaterialLaborRatio: 1.8, RiskFactor: 3, TypicalMarkup: 1.34},
		"New Construction":   {AvgMargin: 20, AvgLaborRate: 52, MaterialLaborRatio: 2.2, RiskFactor: 4, TypicalMarkup: 1.28},
		FallbackProjectType:  {AvgMargin: 25, AvgLaborRate: 50, MaterialLaborRatio: 1.5, RiskFactor: 3, TypicalMarkup: 1.35},
	}
}

// Resolve returns the benchmark for projectType, falling back to
// FallbackProjectType for unknown names. Unknown types are not an error.
func (t Table) Resolve(projectType string) Benchmark {
	if b, ok := t[projectType]; ok {
		return b
	}
	return t[FallbackProjectType]
}

// Check validates the invariants of a single benchmark entry.
func (b Benchmark) Check(name string) error {
	if name == "" {
		return fmt.Errorf("benchmark entry has an empty project type name")
	}
	if b.AvgMargin <= 0 || b.AvgMargin >= 100 {
		return fmt.Errorf("benchmark %q: avg_margin %.2f must be between 0 and 100", name, b.AvgMargin)
	}
	if b.AvgLaborRate <= 0 {
		return fmt.Errorf("benchmark %q: avg_labor_rate must be greater than 0", name)
	}
	if b.MaterialLaborRatio <= 0 {
		return fmt.Errorf("benchmark %q: material_labor_ratio must be greater than 0", name)
	}
	if b.RiskFactor < 1 || b.RiskFactor > 5 {
		return fmt.Errorf("benchmark %q: risk_factor %d must be between 1 and 5", name, b.RiskFactor)
	}
	if b.TypicalMarkup <= 1 {
		return fmt.Errorf("benchmark %q: typical_markup %.2f must be greater than 1", name, b.TypicalMarkup)
	}
	return nil
}

// Validate checks every entry and the presence of the fallback.
func (t Table) Validate() error {
	if _, ok := t[FallbackProjectType]; !ok {
		return fmt.Errorf("benchmark table is missing the %q fallback entry", FallbackProjectType)
	}
	for name, b := range t {
		if err := b.Check(name); err != nil {
			return err
		}
	}
	return nil
}

// LoadTableFile reads a benchmark table from a YAML file and validates it.
// The file maps project type names to benchmark entries.
func LoadTableFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read benchmark file: %w", err)
	}

	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse benchmark file: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid benchmark file: %w", err)
	}
	return t, nil
}
