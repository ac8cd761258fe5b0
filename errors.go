package fixedpoint

import "github.com/zeebo/errs"

// Error is the class of all errors returned by this package.
var Error = errs.Class("fixedpoint")

// ErrInvalidNumber is returned when text cannot be read as a number.
// It is the only error kind: callers needing to know why a parse
// failed must pre-validate the input.
var ErrInvalidNumber = Error.New("invalid number")
