package folds

// RangeOp is implemented by structures able to fold arbitrary half-open ranges.
//
// Receivers are mutable by convention, even for pure reads: some structures
// (e.g. ones with lazy evaluation) need to update cached state during a query.
type RangeOp[E any] interface {
	// RangeOp returns the fold of all elements with index in [l, r), in
	// sequence order. If l = r, RangeOp returns the identity.
	// It panics if not 0 <= l <= r <= Len().
	RangeOp(l, r int) E
}

// LeftFixedOp is implemented by structures able to fold prefixes.
type LeftFixedOp[E any] interface {
	// RightOp returns the fold of [0, r). If r = 0, RightOp returns the identity.
	RightOp(r int) E
}

// PointAssign is implemented by structures able to replace single elements.
type PointAssign[E any] interface {
	// SetAt replaces the element at index with elem and restores every
	// aggregate depending on it. It panics if not 0 <= index < Len().
	SetAt(elem E, index int)
}

// Sized is implemented by every structure.
type Sized interface {
	Len() int
}

// RangeQuery combines range folds with a size.
type RangeQuery[E any] interface {
	Sized
	RangeOp[E]
}

// PrefixQuery combines prefix folds with a size.
type PrefixQuery[E any] interface {
	Sized
	LeftFixedOp[E]
}

// DynamicRangeQuery is a range query structure with point updates.
type DynamicRangeQuery[E any] interface {
	Sized
	RangeOp[E]
	LeftFixedOp[E]
	PointAssign[E]
}
