/*
Package algebra defines the algebraic capabilities of fold operators.

An operator is a (usually stateless) value with a method Op, combining two
elements of type E. Further capabilities are added by embedding:

	Magma        closed:        Op(a, b) is defined for all a, b
	Semigroup    associative:   Op(Op(a, b), c) == Op(a, Op(b, c))
	Monoid       identity:      Op(Identity(), a) == a == Op(a, Identity())
	Group        inverses:      Op(a, Inverse(a)) == Identity()
	Commutative  commutative:   Op(a, b) == Op(b, a)
	Idempotent   idempotent:    Op(a, a) == a

Laws without an operation of their own (associativity, commutativity,
idempotence) are declared by marker methods. Declaring a marker is a promise
by the implementor; nothing checks it at run time. Use the Check functions
of this package to test an operator against samples.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package algebra

// Magma is a closed binary operator on E.
type Magma[E any] interface {
	Op(a, b E) E
}

// Semigroup is an associative Magma.
//
// For elements a, b, c:
//
//	Op(Op(a, b), c) == Op(a, Op(b, c))
type Semigroup[E any] interface {
	Magma[E]
	Associative()
}

// Monoid is a Semigroup with an identity element.
//
// Identity should be the neutral element:
//
//	Op(Identity(), a) == a == Op(a, Identity())
type Monoid[E any] interface {
	Semigroup[E]
	Identity() E
}

// Group is a Monoid where every element has an inverse:
//
//	Op(a, Inverse(a)) == Identity() == Op(Inverse(a), a)
type Group[E any] interface {
	Monoid[E]
	Inverse(a E) E
}

// Commutative marks a Magma whose operands may be swapped:
//
//	Op(a, b) == Op(b, a)
type Commutative[E any] interface {
	Magma[E]
	Commutative()
}

// Idempotent marks a Magma where combining an element with itself is a no-op:
//
//	Op(a, a) == a
//
// Examples are max, min and gcd.
type Idempotent[E any] interface {
	Magma[E]
	Idempotent()
}

// CommutativeMonoid is a Monoid with Commutative operator.
type CommutativeMonoid[E any] interface {
	Monoid[E]
	Commutative()
}

// AbelianGroup is a Group with Commutative operator.
type AbelianGroup[E any] interface {
	Group[E]
	Commutative()
}

// Semilattice is a commutative, idempotent Monoid (a bounded semilattice).
type Semilattice[E any] interface {
	CommutativeMonoid[E]
	Idempotent()
}
