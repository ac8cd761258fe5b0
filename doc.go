// Package fixedpoint provides a fixed point base 10 number for
// electrical telemetry on microcontrollers.
//
// The equation for a fixed point number is:
//
//	number = raw / scale
//
// Where number is the real world quantity, raw is a scaled integer,
// and scale is a positive per-unit constant. For example, with a scale
// of 100:
//
//	5.01 = 501 / 100
//
// The raw integer is an int32 so that every value fits in a machine
// register, and the scaling float is a float32 so that conversions
// stay cheap on 32 bit targets. Nothing in this package allocates or
// blocks, which makes it safe to call from interrupt handlers and
// control loops.
//
// Units
//
// A Value is parameterized by a unit implementing Spec. The unit fixes
// the scale, the display symbol and the fractional precision at the
// type level: two values of the same unit always share a scale, so
// equality and ordering of values reduce to equality and ordering of
// their raw integers. The catalog of electrical units lives in the
// unit subpackage.
//
// Arithmetic
//
// Addition and subtraction operate on the raw integers and saturate at
// the int32 bounds instead of wrapping. Scaling by a plain float
// factor converts to float, applies the factor, and converts back
// through the truncating float path. Dividing one value by another of
// the same unit yields a dimensionless float ratio.
//
// Wire Form
//
// A value serializes as its bare raw integer. A KiloWattHour value of
// 5.01 marshals to the JSON integer 501. Unmarshaling reads the same
// integer directly into the raw field; the scale is implied entirely
// by the Go type, so decoding into a different unit is a caller error
// and is not detected.
package fixedpoint
