package calc

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTable_IsValid(t *testing.T) {
	table := DefaultTable()
	if err := table.Validate(); err != nil {
		t.Fatalf("default table is invalid: %v", err)
	}
	if _, ok := table[FallbackProjectType]; !ok {
		t.Fatalf("default table is missing %q", FallbackProjectType)
	}
}

func TestResolve_UnknownFallsBack(t *testing.T) {
	table := DefaultTable()
	if got := table.Resolve("Underwater Basket Weaving"); got != table[FallbackProjectType] {
		t.Fatalf("unknown type resolved to %+v, want the fallback entry", got)
	}
	if got := table.Resolve("Painting"); got != table["Painting"] {
		t.Fatalf("known type did not resolve to its own entry")
	}
}

func TestValidate_RejectsBadEntries(t *testing.T) {
	base := Benchmark{AvgMargin: 25, AvgLaborRate: 50, MaterialLaborRatio: 1.5, RiskFactor: 3, TypicalMarkup: 1.35}

	cases := []struct {
		name   string
		mutate func(*Benchmark)
	}{
		{"margin zero", func(b *Benchmark) { b.AvgMargin = 0 }},
		{"margin hundred", func(b *Benchmark) { b.AvgMargin = 100 }},
		{"labor rate zero", func(b *Benchmark) { b.AvgLaborRate = 0 }},
		{"ratio zero", func(b *Benchmark) { b.MaterialLaborRatio = 0 }},
		{"risk factor zero", func(b *Benchmark) { b.RiskFactor = 0 }},
		{"risk factor six", func(b *Benchmark) { b.RiskFactor = 6 }},
		{"markup one", func(b *Benchmark) { b.TypicalMarkup = 1 }},
	}
	for _, tc := range cases {
		bad := base
		tc.mutate(&bad)
		table := Table{"Bad": bad, FallbackProjectType: base}
		if err := table.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestValidate_RequiresFallback(t *testing.T) {
	table := Table{
		"Painting": {AvgMargin: 30, AvgLaborRate: 35, MaterialLaborRatio: 0.8, RiskFactor: 1, TypicalMarkup: 1.45},
	}
	if err := table.Validate(); err == nil {
		t.Fatalf("expected error for a table without the fallback entry")
	}
}

func TestLoadTableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchmarks.yaml")
	content := []byte(`
Painting:
  avg_margin: 30
  avg_labor_rate: 35
  material_labor_ratio: 0.8
  risk_factor: 1
  typical_markup: 1.45
Custom/Other:
  avg_margin: 25
  avg_labor_rate: 50
  material_labor_ratio: 1.5
  risk_factor: 3
  typical_markup: 1.35
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write benchmark file: %v", err)
	}

	table, err := LoadTableFile(path)
	if err != nil {
		t.Fatalf("LoadTableFile: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(table))
	}
	if table["Painting"].AvgLaborRate != 35 {
		t.Fatalf("unexpected painting entry: %+v", table["Painting"])
	}
}

func TestLoadTableFile_RejectsInvalidTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchmarks.yaml")
	// Missing the Custom/Other fallback.
	content := []byte(`
Painting:
  avg_margin: 30
  avg_labor_rate: 35
  material_labor_ratio: 0.8
  risk_factor: 1
  typical_markup: 1.45
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write benchmark file: %v", err)
	}

	if _, err := LoadTableFile(path); err == nil {
		t.Fatalf("expected an error for a table without the fallback entry")
	}
}

func TestLoadTableFile_MissingFile(t *testing.T) {
	if _, err := LoadTableFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
