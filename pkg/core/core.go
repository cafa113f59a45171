package core

import (
	"github.com/leakgate/leakgate/internal/engine"
	"github.com/leakgate/leakgate/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type Config = engine.Config
type Finding = types.Finding

// Scan is the stable entrypoint for other programs.
func Scan(cfg Config) ([]Finding, error) {
	return engine.Scan(cfg)
}

// RuleNames returns the registered rule names in evaluation order.
// Exposed for convenience to avoid importing internals directly.
func RuleNames() []string { return engine.RuleNames() }
