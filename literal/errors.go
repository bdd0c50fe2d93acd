package literal

import "errors"

// ErrNotPrimitive is a contract violation: Complementary and Subsumes
// require both operands to be primitive literals.
var ErrNotPrimitive = errors.New("literal: operand is not primitive")
