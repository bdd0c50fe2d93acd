package term

import "errors"

var (
	// ErrArityMismatch is a contract violation: NewTerm was called with an
	// argument count that does not match the symbol's arity.
	ErrArityMismatch = errors.New("term: arg count does not match symbol arity")
	// ErrForeignFactory is a contract violation: a Term produced by one
	// Factory was passed as an argument to another Factory's NewTerm.
	ErrForeignFactory = errors.New("term: argument was not produced by this factory")
)
