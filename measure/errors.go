// SPDX-License-Identifier: MIT

package measure

import (
	"errors"
	"fmt"
)

var (
	// ErrNoKraus indicates an empty Kraus set.
	ErrNoKraus = errors.New("measure: no kraus operators")

	// ErrNilOperator indicates a Kraus entry without an operator.
	ErrNilOperator = errors.New("measure: nil kraus operator")

	// ErrSymbolicProbability is returned when a probability keeps symbols
	// after integration and no converter reduces it.
	ErrSymbolicProbability = errors.New("measure: probability is not a number")

	// ErrNegativeProbability is returned for p below -NegativeTolerance or
	// with a non-negligible imaginary part.
	ErrNegativeProbability = errors.New("measure: negative probability")

	// ErrIncomplete is returned when the probabilities do not cover the
	// sampled point, i.e. the operators do not form a complete POVM.
	ErrIncomplete = errors.New("measure: kraus operators do not sum to one")
)

const (
	opProbabilities = "Probabilities"
	opMeasure       = "Measure"
)

func measureErrorf(op, outcome string, err error) error {
	if outcome == "" {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: outcome %q: %w", op, outcome, err)
}
