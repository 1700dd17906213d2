package swap

import "errors"

// ErrEmptyInstance is returned when GeneralYankeeSwap is called with no
// items or no agents — there is nothing to allocate or no one to
// allocate to.
var ErrEmptyInstance = errors.New("swap: empty instance")
