package clause

import "errors"

// ErrNotPrimitive is a contract violation: Subsumes, Propagate, and
// PropagateInPlace require the clause (and, for propagation, the given
// literal) to be primitive.
var ErrNotPrimitive = errors.New("clause: operand is not primitive")
