// core/numerr/errors.go
// Error taxonomy for the numeric engine. Errors surface directly to the
// caller; nothing in the engine retries or substitutes defaults.
package numerr

import (
	"errors"
	"fmt"
)

// DomainError reports a function evaluated outside its valid domain
// (gamma with x <= 0, Student-t with dof <= 2).
type DomainError struct {
	Op  string
	Arg float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: argument %g is outside the valid domain", e.Op, e.Arg)
}

// InvalidArgumentError reports a structurally bad request: degenerate
// integration bounds, too few intervals, a target probability outside (0,1).
type InvalidArgumentError struct {
	Op  string
	Msg string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

// ConvergenceLimitError is soft: the solver ran out of iterations (or the
// bracket collapsed) before the residual met the tolerance. The best
// estimate found is still returned alongside it.
type ConvergenceLimitError struct {
	Z          float64
	Residual   float64
	Iterations int
}

func (e *ConvergenceLimitError) Error() string {
	return fmt.Sprintf("solve: residual %.3g after %d iterations (z=%.6f); precision not guaranteed",
		e.Residual, e.Iterations, e.Z)
}

// IsConvergenceLimit reports whether err carries a ConvergenceLimitError.
func IsConvergenceLimit(err error) bool {
	var cl *ConvergenceLimitError
	return errors.As(err, &cl)
}
