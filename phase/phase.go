package phase

// Phases is a three phase electrical quantity where some or all
// phases may be out of service. An out of service phase is distinct
// from a phase with a zero value.
type Phases[T any] struct {
	L1 Option[T] `json:"l1"`
	L2 Option[T] `json:"l2"`
	L3 Option[T] `json:"l3"`
}

// New constructs Phases from the three per-phase readings.
func New[T any](l1, l2, l3 Option[T]) Phases[T] {
	return Phases[T]{L1: l1, L2: l2, L3: l3}
}

// Count returns the number of phases in service, 0 to 3.
func (p Phases[T]) Count() int {
	n := 0
	if p.L1.present {
		n++
	}
	if p.L2.present {
		n++
	}
	if p.L3.present {
		n++
	}

	return n
}

// Adder constrains elements that add pairwise.
type Adder[T any] interface {
	Add(T) T
}

// Suber constrains elements that subtract and negate pairwise.
type Suber[T any] interface {
	Sub(T) T
	Neg() T
}

// Orderer constrains elements with a total order.
type Orderer[T any] interface {
	Less(T) bool
}

// Scaler constrains elements that scale by a float factor.
type Scaler[T any] interface {
	Mul(factor float32) T
}

// Sum folds the phases in service with addition. An absent phase is
// the identity of the fold, not zero: the sum of three absent phases
// is absent.
func Sum[T Adder[T]](p Phases[T]) Option[T] {
	return addOpt(p.L1, addOpt(p.L2, p.L3))
}

// Max returns the largest reading among the phases in service, or
// absence when none are.
func Max[T Orderer[T]](p Phases[T]) Option[T] {
	return maxOpt(p.L1, maxOpt(p.L2, p.L3))
}

// Min returns the smallest reading among the phases in service, or
// absence when none are.
func Min[T Orderer[T]](p Phases[T]) Option[T] {
	return minOpt(p.L1, minOpt(p.L2, p.L3))
}

// Add combines two quantities phase by phase with the same identity
// folding as Sum.
func Add[T Adder[T]](lhs, rhs Phases[T]) Phases[T] {
	return Phases[T]{
		L1: addOpt(lhs.L1, rhs.L1),
		L2: addOpt(lhs.L2, rhs.L2),
		L3: addOpt(lhs.L3, rhs.L3),
	}
}

// Sub subtracts rhs from lhs phase by phase. A phase present only on
// the right side yields its negation.
func Sub[T Suber[T]](lhs, rhs Phases[T]) Phases[T] {
	return Phases[T]{
		L1: subOpt(lhs.L1, rhs.L1),
		L2: subOpt(lhs.L2, rhs.L2),
		L3: subOpt(lhs.L3, rhs.L3),
	}
}

// Scale multiplies every phase in service by factor. Out of service
// phases stay out of service.
func Scale[T Scaler[T]](p Phases[T], factor float32) Phases[T] {
	return Phases[T]{
		L1: mulOpt(p.L1, factor),
		L2: mulOpt(p.L2, factor),
		L3: mulOpt(p.L3, factor),
	}
}

func addOpt[T Adder[T]](lhs, rhs Option[T]) Option[T] {
	switch {
	case lhs.present && rhs.present:
		return Some(lhs.value.Add(rhs.value))
	case lhs.present:
		return lhs
	default:
		return rhs
	}
}

func subOpt[T Suber[T]](lhs, rhs Option[T]) Option[T] {
	switch {
	case lhs.present && rhs.present:
		return Some(lhs.value.Sub(rhs.value))
	case lhs.present:
		return lhs
	case rhs.present:
		return Some(rhs.value.Neg())
	default:
		return None[T]()
	}
}

func maxOpt[T Orderer[T]](lhs, rhs Option[T]) Option[T] {
	if lhs.present && rhs.present {
		if lhs.value.Less(rhs.value) {
			return rhs
		}

		return lhs
	}

	if lhs.present {
		return lhs
	}

	return rhs
}

func minOpt[T Orderer[T]](lhs, rhs Option[T]) Option[T] {
	if lhs.present && rhs.present {
		if rhs.value.Less(lhs.value) {
			return rhs
		}

		return lhs
	}

	if lhs.present {
		return lhs
	}

	return rhs
}

func mulOpt[T Scaler[T]](o Option[T], factor float32) Option[T] {
	if !o.present {
		return o
	}

	return Some(o.value.Mul(factor))
}
