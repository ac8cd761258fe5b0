// Package phase provides a three phase container for per-phase meter
// readings.
//
// Each of the three slots is independently present or absent. An out
// of service phase is distinct from a phase reading zero: a phase that
// is not wired must not contribute to sums and comparisons the way an
// idle phase does.
//
// The folds treat absence as the identity element of the operation,
// not as zero. Summing (present 5, absent, present 3) yields 8;
// summing three absent phases yields absence. Min and Max exclude
// absent phases entirely, so absence never wins against a present
// value.
//
// Elementwise subtraction of a present right slot from an absent left
// slot yields the negated right value. Negation saturates like every
// other raw integer operation.
//
// The operations constrain the element type by method set (Adder,
// Suber, Orderer, Scaler) rather than by operator, and
// fixedpoint.Value satisfies all of them.
package phase
