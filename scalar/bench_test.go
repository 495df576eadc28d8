package scalar_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/qualg/scalar"
)

// permanentOfDeltas builds the n-photon bosonic overlap Σ_σ Π δ(wi - w'σ(i)).
func permanentOfDeltas(n int) scalar.Scalar {
	perms := permutations(n)
	terms := make([]scalar.Scalar, 0, len(perms))
	for _, p := range perms {
		factors := make([]scalar.Scalar, n)
		for i, j := range p {
			factors[i] = scalar.MustDelta(fmt.Sprintf("w%d", i), fmt.Sprintf("v%d", j))
		}
		terms = append(terms, scalar.MulAll(factors...))
	}
	return scalar.AddAll(terms...)
}

func permutations(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	var out [][]int
	for _, p := range permutations(n - 1) {
		for pos := 0; pos <= len(p); pos++ {
			q := make([]int, 0, n)
			q = append(q, p[:pos]...)
			q = append(q, n-1)
			q = append(q, p[pos:]...)
			out = append(out, q)
		}
	}
	return out
}

func BenchmarkSimplify_Permanent3(b *testing.B) {
	s := permanentOfDeltas(3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Simplify()
	}
}

func BenchmarkIntegrate_Permanent3(b *testing.B) {
	s := permanentOfDeltas(3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := scalar.Integrate(s); err != nil {
			b.Fatal(err)
		}
	}
}
