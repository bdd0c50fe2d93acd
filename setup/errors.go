package setup

import "errors"

// ErrFrozen is a contract violation: Add was called on a Setup that a
// descendant has already been spawned from.
var ErrFrozen = errors.New("setup: cannot add to a setup after spawning a child from it")
