package store

import (
	"fmt"

	"github.com/sitebid/sitebid/internal/calc"
)

// BenchmarkRow is one admin-editable benchmark entry.
type BenchmarkRow struct {
	ProjectType        string  `json:"projectType"`
	AvgMargin          float64 `json:"avgMargin"`
	AvgLaborRate       float64 `json:"avgLaborRate"`
	MaterialLaborRatio float64 `json:"materialLaborRatio"`
	RiskFactor         int     `json:"riskFactor"`
	TypicalMarkup      float64 `json:"typicalMarkup"`
}

// Benchmark converts the row to the engine's benchmark type.
func (r BenchmarkRow) Benchmark() calc.Benchmark {
	return calc.Benchmark{
		AvgMargin:          r.AvgMargin,
		AvgLaborRate:       r.AvgLaborRate,
		MaterialLaborRatio: r.MaterialLaborRatio,
		RiskFactor:         r.RiskFactor,
		TypicalMarkup:      r.TypicalMarkup,
	}
}

// ListBenchmarks returns all benchmark rows ordered by project type.
func (s *Store) ListBenchmarks() ([]BenchmarkRow, error) {
	rows, err := s.db.Query(`
		SELECT project_type, avg_margin, avg_labor_rate, material_labor_ratio, risk_factor, typical_markup
		FROM benchmarks
		ORDER BY project_type
	`)
	if err != nil {
		return nil, fmt.Errorf("query benchmarks: %w", err)
	}
	defer rows.Close()

	benchmarks := make([]BenchmarkRow, 0)
	for rows.Next() {
		var row BenchmarkRow
		if err := rows.Scan(&row.ProjectType, &row.AvgMargin, &row.AvgLaborRate, &row.MaterialLaborRatio, &row.RiskFactor, &row.TypicalMarkup); err != nil {
			return nil, fmt.Errorf("scan benchmark: %w", err)
		}
		benchmarks = append(benchmarks, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate benchmarks: %w", err)
	}

	return benchmarks, nil
}

// UpsertBenchmark inserts or updates one benchmark entry.
func (s *Store) UpsertBenchmark(row BenchmarkRow) error {
	if err := row.Benchmark().Check(row.ProjectType); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		INSERT INTO benchmarks (project_type, avg_margin, avg_labor_rate, material_labor_ratio, risk_factor, typical_markup)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(project_type) DO UPDATE SET
			avg_margin = excluded.avg_margin,
			avg_labor_rate = excluded.avg_labor_rate,
			material_labor_ratio = excluded.material_labor_ratio,
			risk_factor = excluded.risk_factor,
			typical_markup = excluded.typical_markup,
			updated_at = CURRENT_TIMESTAMP
	`, row.ProjectType, row.AvgMargin, row.AvgLaborRate, row.MaterialLaborRatio, row.RiskFactor, row.TypicalMarkup)
	if err != nil {
		return fmt.Errorf("upsert benchmark: %w", err)
	}
	return nil
}

// LoadTable builds a validated engine table from the benchmark rows.
func (s *Store) LoadTable() (calc.Table, error) {
	rows, err := s.ListBenchmarks()
	if err != nil {
		return nil, err
	}

	table := make(calc.Table, len(rows))
	for _, row := range rows {
		table[row.ProjectType] = row.Benchmark()
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("stored benchmark table: %w", err)
	}
	return table, nil
}
