package craft

import "errors"

// ErrInvalidAction names the Invalid outcome of an unmet precondition.
// UseAction itself returns no error and reports this through Status; the
// error exists for call sites (tests, CLI tools) that prefer the error idiom.
var ErrInvalidAction = errors.New("craft: action precondition not met")
