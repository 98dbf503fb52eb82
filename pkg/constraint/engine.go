package constraint

import "sync"

// Violation is a single failed-constraint result.
type Violation struct {
	// Kind is the kind of constraint that failed, or KindCustom for
	// violations recorded outside an engine.
	Kind Kind
	// Message is the human-readable message.
	Message string
}

// Engine evaluates a value against an ordered list of constraints.
//
// Implementations return one violation per failing constraint, in the order
// the constraints were given, and an empty slice when the value satisfies all
// of them.
type Engine interface {
	Validate(value any, constraints ...Constraint) []Violation
}

var defaultEngine = sync.OnceValues(func() (*V10Engine, error) {
	return NewV10Engine()
})

// Default returns the process-wide V10Engine, building it on first use.
func Default() (*V10Engine, error) {
	return defaultEngine()
}
