package ordinal

// Predicate decides whether an ordinal is shaded. It is evaluated once per
// drawn circle and must return the same answer for the same value throughout
// a draw.
type Predicate interface {
	Eval(n int) (bool, error)
}

// PredicateFunc adapts an infallible function to [Predicate].
type PredicateFunc func(n int) bool

// Eval calls f(n).
func (f PredicateFunc) Eval(n int) (bool, error) { return f(n), nil }

// Never shades nothing; every circle is drawn unshaded.
var Never Predicate = PredicateFunc(func(int) bool { return false })
