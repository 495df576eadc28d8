// Package scalar implements the coefficient algebra of qualg: complex
// numbers plus the symbolic scalars that appear when quantum states over
// continuous modes are multiplied and integrated.
//
// Variants (closed set, sealed by an unexported method):
//
//	Number        exact complex128 value
//	*Func         opaque single-variable function f(x), optionally conjugated
//	*Delta        Dirac delta δ(x-y) between two distinct variables
//	*InnerProduct unresolved overlap <f|g> of two functions
//	*Product      numeric coefficient × multiset of symbolic factors
//	*Sum          numeric constant + multiset of symbolic terms
//	*Integral     unresolved integral of a product over one bound variable
//
// All values are immutable. Add, Mul, Conj, Substitute and Simplify always
// return fresh scalars; the constructors keep products and sums flat and
// collapse degenerate containers to their numeric value or single entry.
//
// Simplify expands products over sums, drops zero and one entries and
// combines entries pairwise until nothing changes. Integrate eliminates
// variables with the delta sifting identity, the norm identity
// ∫ f*(x) f(x) dx = 1 and the overlap rule ∫ f*(x) g(x) dx = <f|g>.
//
// Example:
//
//	f := scalar.NewFunc("f", "x")
//	g := scalar.NewFunc("g", "y").Conj()
//	d := scalar.MustDelta("x", "y")
//	out, _ := scalar.Integrate(scalar.MulAll(f, g, d), "x")
//	fmt.Println(out) // f(y)*g*(y)
//
// The generic helpers in protocol.go (Simplify, Substitute, RenameAll,
// FreshName) operate on any value that exposes the same capabilities, which
// is how the state and operator packages reuse this machinery.
package scalar
