package domain

import "fmt"

// InvalidInputError reports a single-field precondition violation. It is
// terminal for the calculation that raised it.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InfeasiblePricingError reports that a branch-specific combined
// denominator reached or exceeded 100%, making the formula undefined.
type InfeasiblePricingError struct {
	Condition string
}

func (e *InfeasiblePricingError) Error() string {
	return fmt.Sprintf("infeasible pricing: %s", e.Condition)
}
