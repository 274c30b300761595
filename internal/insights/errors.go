// Package insights is the top-level engine: it validates the input
// contract, runs every detector over the shared relevant keyword set, and
// merges their outputs into a single prioritized action plan.
package insights

import "fmt"

// ContractViolationError indicates the caller passed data outside the
// documented contract (empty keyword text, negative volume, position
// outside 1-100). The engine fails fast instead of silently clamping,
// since clamped inputs would produce misleading recommendations.
type ContractViolationError struct {
	Record  string
	Index   int
	Message string
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("contract violation in %s[%d]: %s", e.Record, e.Index, e.Message)
}
