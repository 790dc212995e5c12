// Package predicate provides named shading predicates for the CLI and the
// pipeline.
//
// Every built-in is a pure function of the value. Callers that need their
// own rule implement [ordinal.Predicate] directly; this package only exists
// so that a predicate can be picked by name from a flag or an environment
// variable.
package predicate

import (
	"math"
	"slices"
	"strings"

	vnerrors "github.com/matzehuels/vonneumann/pkg/errors"
	"github.com/matzehuels/vonneumann/pkg/ordinal"
)

// Names of the built-in predicates.
const (
	NameNone        = "none"
	NameEven        = "even"
	NameOdd         = "odd"
	NamePrime       = "prime"
	NamePrimeOrEven = "prime-or-even"
	NameSquare      = "square"
)

// DefaultName is used when no predicate is requested.
const DefaultName = NameNone

var (
	// Even shades 0, 2, 4, ...
	Even ordinal.Predicate = ordinal.PredicateFunc(func(n int) bool { return n%2 == 0 })

	// Odd shades 1, 3, 5, ...
	Odd ordinal.Predicate = ordinal.PredicateFunc(func(n int) bool { return n%2 == 1 })

	// Prime shades 2, 3, 5, 7, ...
	Prime ordinal.Predicate = ordinal.PredicateFunc(IsPrime)

	// PrimeOrEven shades every prime and every even number except 0.
	PrimeOrEven ordinal.Predicate = ordinal.PredicateFunc(func(n int) bool {
		return n != 0 && (IsPrime(n) || n%2 == 0)
	})

	// Square shades perfect squares, including 0 and 1.
	Square ordinal.Predicate = ordinal.PredicateFunc(func(n int) bool {
		if n < 0 {
			return false
		}
		r := int(math.Sqrt(float64(n)))
		for r*r > n {
			r--
		}
		for (r+1)*(r+1) <= n {
			r++
		}
		return r*r == n
	})
)

var builtins = map[string]ordinal.Predicate{
	NameNone:        ordinal.Never,
	NameEven:        Even,
	NameOdd:         Odd,
	NamePrime:       Prime,
	NamePrimeOrEven: PrimeOrEven,
	NameSquare:      Square,
}

// IsPrime reports whether n is prime using trial division.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// Lookup returns the built-in predicate registered under name. Names are
// case-insensitive; the empty name selects [DefaultName].
func Lookup(name string) (ordinal.Predicate, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultName
	}
	p, ok := builtins[name]
	if !ok {
		return nil, vnerrors.New(vnerrors.ErrCodeInvalidPredicate,
			"unknown predicate %q (must be one of: %s)", name, strings.Join(Names(), ", "))
	}
	return p, nil
}

// Names returns the built-in predicate names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Describe returns a one-line description of a built-in predicate.
func Describe(name string) string {
	switch name {
	case NameNone:
		return "shade nothing"
	case NameEven:
		return "shade even numbers, including 0"
	case NameOdd:
		return "shade odd numbers"
	case NamePrime:
		return "shade primes"
	case NamePrimeOrEven:
		return "shade primes and non-zero even numbers"
	case NameSquare:
		return "shade perfect squares, including 0 and 1"
	}
	return ""
}
