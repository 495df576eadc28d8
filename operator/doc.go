// Package operator implements linear operators as finite sums of rank-one
// base operators |left><right| with scalar.Scalar coefficients.
//
// Operators multiply with scalars, states and other operators, add when
// both slots are compatible, and take adjoints with Dagger. Composition
// uses the inner product of the inner base states, so operators over Fock
// monomials produce delta functions that Integrate can eliminate.
//
// ToMatrix is the numeric export boundary. It needs finite-dimensional
// base states and numeric coefficients: any symbolic coefficient goes
// through the caller's ConvertFunc, and without one the export fails.
package operator
