// SPDX-License-Identifier: MIT

package measure

import (
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/qualg/operator"
	"github.com/katalvlaran/qualg/scalar"
	"github.com/katalvlaran/qualg/state"
)

// Numeric slack.
const (
	// NegativeTolerance is how far below zero a probability may round.
	NegativeTolerance = 1e-12
	// CompletenessTolerance is how far below one the total may fall.
	CompletenessTolerance = 1e-9
)

// Kraus is one outcome of a measurement and its operator.
type Kraus struct {
	Outcome string
	Op      *operator.Operator
}

// Result is a sampled outcome, its probability and the normalized
// post-measurement state.
type Result struct {
	Outcome     string
	Probability float64
	State       *state.State
}

// Option configures Probabilities and Measure.
type Option func(*config)

type config struct {
	convert operator.ConvertFunc
}

// WithConverter reduces probabilities that stay symbolic after
// integration. A nil fn panics.
func WithConverter(fn operator.ConvertFunc) Option {
	if fn == nil {
		panic("measure: WithConverter(nil)")
	}
	return func(c *config) { c.convert = fn }
}

// Outcome is one entry of a distribution.
type Outcome struct {
	Outcome     string
	Probability float64
	// Post is Kψ before normalization.
	Post *state.State
}

// Probabilities returns p_k = <K_kψ|K_kψ> for every Kraus operator, in
// the order given. The distribution is not checked for completeness.
//
// Errors: ErrNoKraus, ErrNilOperator, ErrSymbolicProbability,
// ErrNegativeProbability, or algebra errors from applying the operators.
func Probabilities(s *state.State, kraus []Kraus, opts ...Option) ([]Outcome, error) {
	if len(kraus) == 0 {
		return nil, measureErrorf(opProbabilities, "", ErrNoKraus)
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	out := make([]Outcome, len(kraus))
	for i, k := range kraus {
		if k.Op == nil {
			return nil, measureErrorf(opProbabilities, k.Outcome, ErrNilOperator)
		}
		post, err := k.Op.Apply(s)
		if err != nil {
			return nil, measureErrorf(opProbabilities, k.Outcome, err)
		}
		p, err := probability(post, cfg.convert)
		if err != nil {
			return nil, measureErrorf(opProbabilities, k.Outcome, err)
		}
		out[i] = Outcome{Outcome: k.Outcome, Probability: p, Post: post}
	}
	return out, nil
}

// Measure draws r uniformly from [0, 1) and returns the outcome whose
// cumulative interval contains it. Outcomes with zero probability are never
// chosen. A nil rng uses the global source.
//
// Errors: those of Probabilities, and ErrIncomplete when the probabilities
// sum to less than 1 - CompletenessTolerance and r falls past them.
func Measure(rng *rand.Rand, s *state.State, kraus []Kraus, opts ...Option) (Result, error) {
	dist, err := Probabilities(s, kraus, opts...)
	if err != nil {
		return Result{}, err
	}
	r := draw(rng)

	var offset float64
	last := -1
	for i, o := range dist {
		if o.Probability <= 0 {
			continue
		}
		last = i
		if r < offset+o.Probability {
			return collapse(o), nil
		}
		offset += o.Probability
	}
	if last >= 0 && offset >= 1-CompletenessTolerance {
		return collapse(dist[last]), nil
	}
	return Result{}, measureErrorf(opMeasure, "", ErrIncomplete)
}

func draw(rng *rand.Rand) float64 {
	if rng == nil {
		return rand.Float64()
	}
	return rng.Float64()
}

func collapse(o Outcome) Result {
	norm := scalar.Real(1 / math.Sqrt(o.Probability))
	return Result{Outcome: o.Outcome, Probability: o.Probability, State: o.Post.Scale(norm)}
}

// probability integrates <post|post> over every variable. The variables of
// the bra are renamed first, so each side integrates its own dummies.
func probability(post *state.State, convert operator.ConvertFunc) (float64, error) {
	ip, err := post.InnerProduct(post)
	if err != nil {
		return 0, err
	}
	ip, err = scalar.Integrate(ip.Simplify())
	if err != nil {
		return 0, err
	}

	var v complex128
	if n, ok := scalar.AsNumber(ip); ok {
		v = n.Value()
	} else {
		if convert == nil {
			return 0, ErrSymbolicProbability
		}
		if v, err = convert(ip); err != nil {
			return 0, err
		}
	}
	if real(v) < -NegativeTolerance || math.Abs(imag(v)) > NegativeTolerance {
		return 0, ErrNegativeProbability
	}
	return math.Max(real(v), 0), nil
}
