// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-set/v3"
)

// Scalar is the coefficient type of states and operators.
//
// Key returns a canonical string: two scalars are Equal exactly when their
// keys match, so Key doubles as the hash used by ordered maps upstream.
// GoString returns the constructor-call form read back by package codec.
type Scalar interface {
	fmt.Stringer
	fmt.GoStringer

	// Conj returns the complex conjugate.
	Conj() Scalar
	// Equal reports structural equality (order-insensitive for containers).
	Equal(other Scalar) bool
	// Key returns the canonical identity string.
	Key() string

	// HasVariable reports whether name occurs free in the scalar.
	HasVariable(name string) bool
	// FreeVariables returns a fresh set of the free variable names.
	FreeVariables() *set.Set[string]
	// Substitute renames the free variable from to to.
	Substitute(from, to string) (Scalar, error)

	IsZero() bool
	IsOne() bool

	Simplify() Scalar
	Expand() Scalar

	isScalar()
}

// equalKeys is the shared Equal implementation.
func equalKeys(a, b Scalar) bool {
	if b == nil {
		return false
	}
	return a.Key() == b.Key()
}

// sortByKey orders scalars by canonical key, in place.
func sortByKey(xs []Scalar) {
	sort.SliceStable(xs, func(i, j int) bool { return xs[i].Key() < xs[j].Key() })
}

// sortedKeys returns the keys of xs in ascending order.
func sortedKeys(xs []Scalar) []string {
	keys := make([]string, len(xs))
	for i, x := range xs {
		keys[i] = x.Key()
	}
	sort.Strings(keys)
	return keys
}

// unionVariables collects the free variables of every scalar in xs.
func unionVariables(xs []Scalar) *set.Set[string] {
	out := set.New[string](0)
	for _, x := range xs {
		out.InsertSet(x.FreeVariables())
	}
	return out
}

// anyHasVariable reports whether some scalar in xs mentions name.
func anyHasVariable(xs []Scalar, name string) bool {
	for _, x := range xs {
		if x.HasVariable(name) {
			return true
		}
	}
	return false
}

// substituteAll renames from to to in every scalar of xs.
func substituteAll(xs []Scalar, from, to string) ([]Scalar, error) {
	out := make([]Scalar, len(xs))
	for i, x := range xs {
		s, err := x.Substitute(from, to)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// conjAll conjugates every scalar of xs.
func conjAll(xs []Scalar) []Scalar {
	out := make([]Scalar, len(xs))
	for i, x := range xs {
		out[i] = x.Conj()
	}
	return out
}

// joinGo renders the GoString form of xs separated by commas.
func joinGo(xs []Scalar) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = x.GoString()
	}
	return strings.Join(parts, ",")
}
