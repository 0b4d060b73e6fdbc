package algebra

import (
	"errors"
	"fmt"
)

// ErrLawViolated signals that an operator does not satisfy an algebraic law
// for some sampled elements.
var ErrLawViolated = errors.New("algebra: law violated")

// CheckAssociative tests Op(Op(a, b), c) == Op(a, Op(b, c)) for all triples
// of samples.
func CheckAssociative[E any](m Magma[E], samples []E, eq func(E, E) bool) error {
	for i, a := range samples {
		for j, b := range samples {
			for k, c := range samples {
				if !eq(m.Op(m.Op(a, b), c), m.Op(a, m.Op(b, c))) {
					return fmt.Errorf("%w: associativity for samples (%d, %d, %d)", ErrLawViolated, i, j, k)
				}
			}
		}
	}
	return nil
}

// CheckIdentity tests Op(id, a) == a == Op(a, id) for all samples.
func CheckIdentity[E any](m Monoid[E], samples []E, eq func(E, E) bool) error {
	id := m.Identity()
	for i, a := range samples {
		if !eq(m.Op(id, a), a) {
			return fmt.Errorf("%w: left identity for sample %d", ErrLawViolated, i)
		}
		if !eq(m.Op(a, id), a) {
			return fmt.Errorf("%w: right identity for sample %d", ErrLawViolated, i)
		}
	}
	return nil
}

// CheckInverse tests Op(a, Inverse(a)) == id == Op(Inverse(a), a) for all samples.
func CheckInverse[E any](g Group[E], samples []E, eq func(E, E) bool) error {
	id := g.Identity()
	for i, a := range samples {
		inv := g.Inverse(a)
		if !eq(g.Op(a, inv), id) || !eq(g.Op(inv, a), id) {
			return fmt.Errorf("%w: inverse for sample %d", ErrLawViolated, i)
		}
	}
	return nil
}

// CheckCommutative tests Op(a, b) == Op(b, a) for all pairs of samples.
func CheckCommutative[E any](m Magma[E], samples []E, eq func(E, E) bool) error {
	for i, a := range samples {
		for j := i + 1; j < len(samples); j++ {
			b := samples[j]
			if !eq(m.Op(a, b), m.Op(b, a)) {
				return fmt.Errorf("%w: commutativity for samples (%d, %d)", ErrLawViolated, i, j)
			}
		}
	}
	return nil
}

// CheckIdempotent tests Op(a, a) == a for all samples.
func CheckIdempotent[E any](m Magma[E], samples []E, eq func(E, E) bool) error {
	for i, a := range samples {
		if !eq(m.Op(a, a), a) {
			return fmt.Errorf("%w: idempotence for sample %d", ErrLawViolated, i)
		}
	}
	return nil
}

// CheckMonoid tests associativity and identity.
func CheckMonoid[E any](m Monoid[E], samples []E, eq func(E, E) bool) error {
	if err := CheckAssociative[E](m, samples, eq); err != nil {
		return err
	}
	return CheckIdentity(m, samples, eq)
}

// Equal is an equality function for comparable element types.
func Equal[E comparable](a, b E) bool {
	return a == b
}
