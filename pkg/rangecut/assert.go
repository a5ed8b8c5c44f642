package rangecut

import (
	"fmt"

	"github.com/pkg/errors"
)

// PreconditionError is the panic value raised when a caller breaks the
// contract of a range operation. It is never returned.
type PreconditionError struct {
	Op     string
	Cond   string
	Detail string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: precondition %s violated: %s", e.Op, e.Cond, e.Detail)
}

// fail panics with a *PreconditionError wrapped with the caller's stack.
// Callers test the condition first so the detail is only built on failure.
func fail(op, cond, format string, args ...any) {
	panic(errors.WithStack(&PreconditionError{
		Op:     op,
		Cond:   cond,
		Detail: fmt.Sprintf(format, args...),
	}))
}
