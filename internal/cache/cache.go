// Package cache memoizes computed estimate payloads, keyed by the inputs
// and the benchmark they resolved to.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/sitebid/sitebid/internal/calc"
)

// Cache stores serialized estimate results. Implementations must be safe for
// concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte) error
}

// Key derives a stable cache key from the calculator input and the benchmark
// it resolves to. Including the benchmark means admin edits to the table
// naturally miss stale entries instead of serving them.
func Key(in calc.Input, b calc.Benchmark) string {
	payload := fmt.Sprintf("%s|%g|%g|%d|%d|%g|%g|%g|%d|%g",
		in.ProjectType, in.LaborHours, in.MaterialCost, in.CrewSize, in.ProjectDuration,
		b.AvgMargin, b.AvgLaborRate, b.MaterialLaborRatio, b.RiskFactor, b.TypicalMarkup)
	sum := sha256.Sum256([]byte(payload))
	return "estimate:" + hex.EncodeToString(sum[:])
}
