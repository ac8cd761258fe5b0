package fixedpoint

import "math"

// Float is the floating point type used for scaling and conversion.
// This is float32 for support on microcontrollers.
type Float = float32

// Fixed is the common integer representation of all fixed point
// values. This is int32 to fit in a microcontroller register.
type Fixed = int32

// Spec is the specification of a fixed point representation.
//
// Scale indicates the size of the fractional part: a value is
// multiplied by Scale then truncated toward zero to Fixed. Scale must
// be a positive non-zero constant per unit type. Precision is the
// number of fractional digits implied by Scale and Symbol is the
// display suffix.
//
// Implementations are empty struct types so that the specification is
// carried entirely by the type parameter, never by an instance.
type Spec interface {
	Scale() Float
	Symbol() string
	Precision() int
}

// Value is a fixed point number. It stores the real world quantity
// multiplied by the unit's scale, truncated toward zero. Values of the
// same unit are comparable with == and that comparison is numeric
// equality, since the scale is fixed by the type.
type Value[U Spec] struct {
	raw Fixed
}

// New constructs a value from a float. The scaled input is truncated
// toward zero; inputs beyond the Fixed range saturate at the bounds.
func New[U Spec](value Float) Value[U] {
	var u U

	return Value[U]{raw: truncate(value * u.Scale())}
}

// FromRaw constructs a value from an integer already at the unit's
// scale. The integer is stored directly with no float round trip, so
// this path is exact.
func FromRaw[U Spec](raw Fixed) Value[U] {
	return Value[U]{raw: raw}
}

// Raw returns the underlying scaled integer.
func (v Value[U]) Raw() Fixed {
	return v.raw
}

// Float converts the value back to a float.
func (v Value[U]) Float() Float {
	var u U

	return Float(v.raw) * (1.0 / u.Scale())
}

// Add returns v + o, saturating at the Fixed bounds instead of
// wrapping.
func (v Value[U]) Add(o Value[U]) Value[U] {
	return Value[U]{raw: saturate(int64(v.raw) + int64(o.raw))}
}

// Sub returns v - o, saturating at the Fixed bounds instead of
// wrapping.
func (v Value[U]) Sub(o Value[U]) Value[U] {
	return Value[U]{raw: saturate(int64(v.raw) - int64(o.raw))}
}

// Neg returns -v. Negating the minimum representable value saturates
// at the maximum.
func (v Value[U]) Neg() Value[U] {
	return Value[U]{raw: saturate(-int64(v.raw))}
}

// Mul scales the value by a plain float factor. The result passes back
// through the truncating float conversion.
func (v Value[U]) Mul(factor Float) Value[U] {
	return New[U](v.Float() * factor)
}

// Div divides the value by a plain float divisor. The result passes
// back through the truncating float conversion.
func (v Value[U]) Div(divisor Float) Value[U] {
	return New[U](v.Float() / divisor)
}

// Ratio divides two values of the same unit, yielding a dimensionless
// float rather than a value.
func (v Value[U]) Ratio(o Value[U]) Float {
	return v.Float() / o.Float()
}

// Less reports whether v is numerically less than o.
func (v Value[U]) Less(o Value[U]) bool {
	return v.raw < o.raw
}

// truncate converts a scaled float to Fixed, truncating toward zero
// and saturating at the Fixed bounds. Conversion of an out of range
// float is implementation defined in Go, so the bounds are checked
// explicitly. NaN converts to zero.
func truncate(value Float) Fixed {
	switch {
	case float64(value) >= math.MaxInt32:
		return math.MaxInt32
	case float64(value) <= math.MinInt32:
		return math.MinInt32
	case value != value:
		return 0
	}

	return Fixed(value)
}

// saturate clamps a wide intermediate result to the Fixed bounds.
func saturate(value int64) Fixed {
	switch {
	case value > math.MaxInt32:
		return math.MaxInt32
	case value < math.MinInt32:
		return math.MinInt32
	}

	return Fixed(value)
}
