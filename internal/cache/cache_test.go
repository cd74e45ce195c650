package cache

import (
	"context"
	"strings"
	"testing"

	"github.com/sitebid/sitebid/internal/calc"
)

func TestMemoryGetSet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if _, ok := m.Get(ctx, "missing"); ok {
		t.Fatalf("expected a miss for an unknown key")
	}

	if err := m.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, ok := m.Get(ctx, "k")
	if !ok || string(value) != "v" {
		t.Fatalf("Get = (%q, %v), want (\"v\", true)", value, ok)
	}
}

func TestKeyIsStableAndInputSensitive(t *testing.T) {
	table := calc.DefaultTable()
	in := calc.Input{ProjectType: "Painting", LaborHours: 40, MaterialCost: 2000, CrewSize: 2, ProjectDuration: 5}
	bench := table.Resolve(in.ProjectType)

	if Key(in, bench) != Key(in, bench) {
		t.Fatalf("identical inputs produced different keys")
	}
	if !strings.HasPrefix(Key(in, bench), "estimate:") {
		t.Fatalf("key %q is missing the estimate: prefix", Key(in, bench))
	}

	changed := in
	changed.MaterialCost = 2001
	if Key(changed, bench) == Key(in, bench) {
		t.Fatalf("different inputs produced the same key")
	}
}

func TestKeyChangesWithBenchmark(t *testing.T) {
	in := calc.Input{ProjectType: "Painting", LaborHours: 40, MaterialCost: 2000, CrewSize: 2, ProjectDuration: 5}

	before := calc.Benchmark{AvgMargin: 30, AvgLaborRate: 35, MaterialLaborRatio: 0.8, RiskFactor: 1, TypicalMarkup: 1.45}
	after := before
	after.TypicalMarkup = 1.50

	if Key(in, before) == Key(in, after) {
		t.Fatalf("benchmark edit did not change the cache key")
	}
}
