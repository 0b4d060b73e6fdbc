/*
Package typical provides frequently used operators for folds.

	operator        capabilities
	--------------  -------------------------------
	Max, Min        Semilattice
	Additive        AbelianGroup
	Multiplicative  CommutativeMonoid
	BitXor          AbelianGroup
	BitOr, BitAnd   Semilattice
	GCD             Semilattice (non-negative values)
	StringChain     Monoid
	Product         Monoid (component-wise)

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package typical

import (
	"cmp"
	"math"
	"unsafe"

	"github.com/npillmayer/folds/algebra"
	"golang.org/x/exp/constraints"
)

// Number is the set of types supporting + and *.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// --- Max -------------------------------------------------------------------

// Max folds to the largest element. Bottom is the identity and should be the
// smallest value of T.
type Max[T cmp.Ordered] struct {
	Bottom T
}

// IntMax is Max with the minimum value of T as identity.
func IntMax[T constraints.Integer]() Max[T] {
	lo, _ := bounds[T]()
	return Max[T]{Bottom: lo}
}

// FloatMax is Max with -Inf as identity.
func FloatMax[T constraints.Float]() Max[T] {
	return Max[T]{Bottom: T(math.Inf(-1))}
}

func (Max[T]) Op(a, b T) T   { return max(a, b) }
func (Max[T]) Associative()  {}
func (Max[T]) Commutative()  {}
func (Max[T]) Idempotent()   {}
func (m Max[T]) Identity() T { return m.Bottom }

// --- Min -------------------------------------------------------------------

// Min folds to the smallest element. Top is the identity and should be the
// largest value of T.
type Min[T cmp.Ordered] struct {
	Top T
}

// IntMin is Min with the maximum value of T as identity.
func IntMin[T constraints.Integer]() Min[T] {
	_, hi := bounds[T]()
	return Min[T]{Top: hi}
}

// FloatMin is Min with +Inf as identity.
func FloatMin[T constraints.Float]() Min[T] {
	return Min[T]{Top: T(math.Inf(1))}
}

func (Min[T]) Op(a, b T) T   { return min(a, b) }
func (Min[T]) Associative()  {}
func (Min[T]) Commutative()  {}
func (Min[T]) Idempotent()   {}
func (m Min[T]) Identity() T { return m.Top }

// bounds returns the smallest and the largest value of an integer type.
func bounds[T constraints.Integer]() (lo T, hi T) {
	var zero T
	ones := ^zero
	if ones > 0 { // unsigned
		return zero, ones
	}
	bits := unsafe.Sizeof(zero) * 8
	lo = T(1) << (bits - 1)
	return lo, ^lo
}

// --- Additive --------------------------------------------------------------

// Additive folds to the sum of elements.
//
// For unsigned integers the inverse is the two's complement, i.e. addition
// modulo 2^k, which is a group as well. Floating point addition is not
// associative in general; results may differ between structures by rounding.
type Additive[T Number] struct{}

func (Additive[T]) Op(a, b T) T   { return a + b }
func (Additive[T]) Associative()  {}
func (Additive[T]) Commutative()  {}
func (Additive[T]) Identity() T   { return 0 }
func (Additive[T]) Inverse(a T) T { return -a }

// Multiplicative folds to the product of elements. It has no inverses.
type Multiplicative[T Number] struct{}

func (Multiplicative[T]) Op(a, b T) T  { return a * b }
func (Multiplicative[T]) Associative() {}
func (Multiplicative[T]) Commutative() {}
func (Multiplicative[T]) Identity() T  { return 1 }

// --- Bitwise ---------------------------------------------------------------

// BitXor folds with exclusive or. Every element is its own inverse.
type BitXor[T constraints.Integer] struct{}

func (BitXor[T]) Op(a, b T) T   { return a ^ b }
func (BitXor[T]) Associative()  {}
func (BitXor[T]) Commutative()  {}
func (BitXor[T]) Identity() T   { return 0 }
func (BitXor[T]) Inverse(a T) T { return a }

// BitOr folds with inclusive or.
type BitOr[T constraints.Integer] struct{}

func (BitOr[T]) Op(a, b T) T  { return a | b }
func (BitOr[T]) Associative() {}
func (BitOr[T]) Commutative() {}
func (BitOr[T]) Idempotent()  {}
func (BitOr[T]) Identity() T  { return 0 }

// BitAnd folds with and. The identity has all bits set.
type BitAnd[T constraints.Integer] struct{}

func (BitAnd[T]) Op(a, b T) T  { return a & b }
func (BitAnd[T]) Associative() {}
func (BitAnd[T]) Commutative() {}
func (BitAnd[T]) Idempotent()  {}
func (BitAnd[T]) Identity() T  { return ^T(0) }

// --- GCD -------------------------------------------------------------------

// GCD folds to the greatest common divisor. Elements must not be negative.
// gcd(0, x) = x makes 0 the identity.
type GCD[T constraints.Integer] struct{}

func (GCD[T]) Op(a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
func (GCD[T]) Associative() {}
func (GCD[T]) Commutative() {}
func (GCD[T]) Idempotent()  {}
func (GCD[T]) Identity() T  { return 0 }

// --- Strings ---------------------------------------------------------------

// StringChain concatenates strings. It is not commutative, which makes it
// a good probe for structures which have to keep sequence order.
type StringChain struct{}

func (StringChain) Op(a, b string) string { return a + b }
func (StringChain) Associative()          {}
func (StringChain) Identity() string      { return "" }

// --- Products --------------------------------------------------------------

// Pair is the element type of Product.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Product combines two monoids component-wise, e.g. to fold a maximum and a
// sum in a single pass.
type Product[A, B any, MA algebra.Monoid[A], MB algebra.Monoid[B]] struct {
	First  MA
	Second MB
}

// MakeProduct creates a product monoid.
func MakeProduct[A, B any, MA algebra.Monoid[A], MB algebra.Monoid[B]](first MA, second MB) Product[A, B, MA, MB] {
	return Product[A, B, MA, MB]{First: first, Second: second}
}

func (p Product[A, B, MA, MB]) Op(x, y Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{
		First:  p.First.Op(x.First, y.First),
		Second: p.Second.Op(x.Second, y.Second),
	}
}

func (Product[A, B, MA, MB]) Associative() {}

func (p Product[A, B, MA, MB]) Identity() Pair[A, B] {
	return Pair[A, B]{First: p.First.Identity(), Second: p.Second.Identity()}
}

// --- Interface checks ------------------------------------------------------

var (
	_ algebra.Semilattice[int]       = Max[int]{}
	_ algebra.Semilattice[string]    = Min[string]{}
	_ algebra.AbelianGroup[int]      = Additive[int]{}
	_ algebra.CommutativeMonoid[int] = Multiplicative[int]{}
	_ algebra.AbelianGroup[uint8]    = BitXor[uint8]{}
	_ algebra.Semilattice[uint]      = BitOr[uint]{}
	_ algebra.Semilattice[uint]      = BitAnd[uint]{}
	_ algebra.Semilattice[int]       = GCD[int]{}
	_ algebra.Monoid[string]         = StringChain{}
)
