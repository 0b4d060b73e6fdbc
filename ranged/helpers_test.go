package ranged

import (
	"errors"
	"testing"

	"github.com/npillmayer/folds"
)

var pi = []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}

var words = []string{
	"wow", "that", "is", "mississippi", "where", "alligators",
	"are", "glowing", "and", "glowing", "", "!",
}

var updates = []int{2, 7, 1, 8, 2, 8}

var wordUpdates = []string{"what", "the", "heck", "is", "this"}

func assertRangesMatch[E comparable](t *testing.T, want, got folds.RangeOp[E], n int) {
	t.Helper()
	for i := 0; i <= n; i++ {
		for j := i; j <= n; j++ {
			if w, g := want.RangeOp(i, j), got.RangeOp(i, j); w != g {
				t.Fatalf("range [%d,%d): expected %v, got %v", i, j, w, g)
			}
		}
	}
}

func assertPrefixesMatch[E comparable](t *testing.T, want, got folds.LeftFixedOp[E], n int) {
	t.Helper()
	for r := 0; r <= n; r++ {
		if w, g := want.RightOp(r), got.RightOp(r); w != g {
			t.Fatalf("prefix [0,%d): expected %v, got %v", r, w, g)
		}
	}
}

// assertPanicsWith runs f and checks that it panics with an error matching target.
func assertPanicsWith(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v, got none", target)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected panic with an error value, got %v", r)
		}
		if !errors.Is(err, target) {
			t.Fatalf("expected panic with %v, got %v", target, err)
		}
	}()
	f()
}

func assertPreconditionPanics(t *testing.T, q folds.RangeQuery[int]) {
	t.Helper()
	n := q.Len()
	assertPanicsWith(t, folds.ErrIndexOutOfBounds, func() { q.RangeOp(0, n+1) })
	assertPanicsWith(t, folds.ErrIndexOutOfBounds, func() { q.RangeOp(-1, 0) })
	assertPanicsWith(t, folds.ErrIllegalArguments, func() { q.RangeOp(2, 1) })
}
