// Package seed inserts the default benchmark table on startup.
package seed

import (
	"database/sql"
	"fmt"
	"sort"

	"github.com/sitebid/sitebid/internal/calc"
)

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

// Run inserts any missing benchmark rows from table inside one transaction.
// It is idempotent and never overwrites admin-edited values.
func Run(db *sql.DB, table calc.Table) (Stats, error) {
	if err := table.Validate(); err != nil {
		return Stats{}, fmt.Errorf("seed table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	stats := Stats{}
	for _, name := range names {
		b := table[name]
		res, err := tx.Exec(`
			INSERT INTO benchmarks (project_type, avg_margin, avg_labor_rate, material_labor_ratio, risk_factor, typical_markup)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(project_type) DO NOTHING
		`, name, b.AvgMargin, b.AvgLaborRate, b.MaterialLaborRatio, b.RiskFactor, b.TypicalMarkup)
		if err != nil {
			_ = tx.Rollback()
			return Stats{}, fmt.Errorf("seed benchmark %q: %w", name, err)
		}
		if n, err := res.RowsAffected(); err == nil && n > 0 {
			stats.Inserts++
		}
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}
