package fixedpoint

import (
	"strconv"

	"github.com/calebcase/oops"
)

// Parse converts text to a fixed point value through the truncating
// float path. The text may be anything readable as a floating point
// number. Anything else, including the empty string, fails with
// ErrInvalidNumber.
func Parse[U Spec](text string) (Value[U], error) {
	value, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return Value[U]{}, oops.Trace(ErrInvalidNumber)
	}

	return New[U](Float(value)), nil
}
