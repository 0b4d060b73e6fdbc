package algebra

// Fold combines xs left to right, starting with the identity of m.
func Fold[E any, M Monoid[E]](m M, xs []E) E {
	acc := m.Identity()
	for _, x := range xs {
		acc = m.Op(acc, x)
	}
	return acc
}

// FuncMonoid is a Monoid built from a combine function and its neutral element.
//
// It is meant for ad-hoc operators. Combine has to be associative and Neutral
// has to be its identity; FuncMonoid cannot check this.
type FuncMonoid[E any] struct {
	Combine func(a, b E) E
	Neutral E
}

// NewFuncMonoid creates a Monoid from a combine function and its identity.
func NewFuncMonoid[E any](combine func(a, b E) E, neutral E) FuncMonoid[E] {
	assert(combine != nil, "FuncMonoid needs a combine function")
	return FuncMonoid[E]{Combine: combine, Neutral: neutral}
}

// Op calls the combine function.
func (m FuncMonoid[E]) Op(a, b E) E { return m.Combine(a, b) }

// Associative is a marker.
func (FuncMonoid[E]) Associative() {}

// Identity returns the neutral element.
func (m FuncMonoid[E]) Identity() E { return m.Neutral }

var _ Monoid[int] = FuncMonoid[int]{}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
