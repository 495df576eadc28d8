// SPDX-License-Identifier: MIT

package scalar

import (
	"sort"

	"github.com/hashicorp/go-set/v3"
)

// Variables is implemented by every value that carries symbolic variables:
// scalars, base states, states and operators.
type Variables interface {
	FreeVariables() *set.Set[string]
	HasVariable(name string) bool
}

// Substituter is a Variables value that can rename its variables.
type Substituter[T any] interface {
	Variables
	Substitute(from, to string) (T, error)
}

// Simplifier is a value with a canonicalizing Simplify.
type Simplifier[T any] interface {
	Simplify() T
}

// FreshMarker is appended to a variable name to derive a fresh one.
const FreshMarker = "'"

// Simplify returns v.Simplify().
func Simplify[T Simplifier[T]](v T) T { return v.Simplify() }

// Substitute renames from to to in v. An empty to picks FreshName(from)
// relative to the free variables of v. A from that is not free in v
// yields v unchanged.
func Substitute[T Substituter[T]](v T, from, to string) (T, error) {
	if from == "" {
		var zero T
		return zero, scalarErrorf(opSubstitute, ErrEmptyVariable)
	}
	if !v.HasVariable(from) {
		return v, nil
	}
	if to == "" {
		to = FreshName(from, v.FreeVariables())
	}
	return v.Substitute(from, to)
}

// RenameAll gives every free variable of v a fresh name that occurs
// neither in v nor in avoid. Renaming is deterministic: variables are
// processed in sorted order and each receives the shortest free
// FreshMarker suffix.
func RenameAll[T Substituter[T]](v T, avoid *set.Set[string]) (T, error) {
	names := SortedVariables(v)
	taken := v.FreeVariables()
	if avoid != nil {
		taken.InsertSet(avoid)
	}
	out := v
	for _, name := range names {
		fresh := FreshName(name, taken)
		taken.Insert(fresh)
		var err error
		if out, err = out.Substitute(name, fresh); err != nil {
			var zero T
			return zero, err
		}
	}
	return out, nil
}

// FreshName appends FreshMarker to old until the result is not in taken.
func FreshName(old string, taken *set.Set[string]) string {
	name := old + FreshMarker
	for taken != nil && taken.Contains(name) {
		name += FreshMarker
	}
	return name
}

// SortedVariables returns the free variables of v in ascending order.
func SortedVariables(v Variables) []string {
	names := v.FreeVariables().Slice()
	sort.Strings(names)
	return names
}
