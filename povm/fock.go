// SPDX-License-Identifier: MIT

package povm

import (
	"math"
	"strconv"

	"github.com/katalvlaran/qualg/operator"
	"github.com/katalvlaran/qualg/scalar"
	"github.com/katalvlaran/qualg/state"
)

// Mode, wave-packet and variable names.
const (
	ModeC = "c"
	ModeD = "d"

	WavePacketA = "phi"
	WavePacketB = "psi"

	beamVar      = "b"
	projectorVar = "p"
)

// MaxPhotons is the largest per-mode photon number: qudit labels carry one
// digit per input mode.
const MaxPhotons = state.MaxBase - 1

func checkPhotons(ns ...int) error {
	for _, n := range ns {
		if n < 0 || n > MaxPhotons {
			return ErrPhotonRange
		}
	}
	return nil
}

// FockState returns |nA, nB> after the beam splitter. Each mode-a photon
// becomes phi(b)(c†(b) + d†(b))/√2 and each mode-b photon
// psi(b)(c†(b) - d†(b))/√2, over the variables b1, b2, …; the product is
// scaled by 1/√(nA!·nB!).
//
// The result has 2^(nA+nB) terms.
func FockState(nA, nB int) (*state.State, error) {
	if err := checkPhotons(nA, nB); err != nil {
		return nil, povmErrorf(opFockState, err)
	}
	out := state.Vacuum().ToState()
	for i := 0; i < nA+nB; i++ {
		v := beamVar + strconv.Itoa(i+1)
		packet, sign := WavePacketA, 1
		if i >= nA {
			packet, sign = WavePacketB, -1
		}
		photon, err := state.New(
			[]state.Base{
				state.MustFock(state.Op{Mode: ModeC, Variable: v}),
				state.MustFock(state.Op{Mode: ModeD, Variable: v}),
			},
			[]scalar.Scalar{scalar.One, scalar.Int(sign)},
		)
		if err != nil {
			return nil, povmErrorf(opFockState, err)
		}
		if out, err = out.TensorProduct(photon.Scale(scalar.NewFunc(packet, v))); err != nil {
			return nil, povmErrorf(opFockState, err)
		}
	}
	norm := 1 / math.Sqrt(math.Pow(2, float64(nA+nB))*factorial(nA)*factorial(nB))
	return out.Scale(scalar.Real(norm)), nil
}

// Projector returns P(nC, nD) = |c^nC d^nD><c^nC d^nD| / (nC!·nD!) over the
// variables p1, p2, ….
func Projector(nC, nD int) (*operator.Operator, error) {
	if nC < 0 || nD < 0 {
		return nil, povmErrorf(opProjector, ErrPhotonRange)
	}
	ops := make([]state.Op, 0, nC+nD)
	for i := 0; i < nC+nD; i++ {
		mode := ModeC
		if i >= nC {
			mode = ModeD
		}
		ops = append(ops, state.Op{Mode: mode, Variable: projectorVar + strconv.Itoa(i+1)})
	}
	f, err := state.NewFock(ops...)
	if err != nil {
		return nil, povmErrorf(opProjector, err)
	}
	s := f.ToState().Scale(scalar.Real(1 / math.Sqrt(factorial(nC)*factorial(nD))))
	p, err := operator.OuterProduct(s, s)
	if err != nil {
		return nil, povmErrorf(opProjector, err)
	}
	return p, nil
}

// BeamSplitter returns U = Σ |FockState(n,m)><n m| for n <= maxA and
// m <= maxB, with qudit labels in base max(maxA, maxB)+1.
func BeamSplitter(maxA, maxB int) (*operator.Operator, error) {
	if err := checkPhotons(maxA, maxB); err != nil {
		return nil, povmErrorf(opBeam, err)
	}
	radix := max(maxA, maxB) + 1
	radix = max(radix, state.MinBase)

	out, err := operator.New(nil, nil)
	if err != nil {
		return nil, povmErrorf(opBeam, err)
	}
	for n := 0; n <= maxA; n++ {
		for m := 0; m <= maxB; m++ {
			fock, err := FockState(n, m)
			if err != nil {
				return nil, povmErrorf(opBeam, err)
			}
			q, err := state.NewQudit(strconv.Itoa(n)+strconv.Itoa(m), radix)
			if err != nil {
				return nil, povmErrorf(opBeam, err)
			}
			term, err := operator.OuterProduct(fock, q.ToState())
			if err != nil {
				return nil, povmErrorf(opBeam, err)
			}
			if out, err = out.Add(term); err != nil {
				return nil, povmErrorf(opBeam, err)
			}
		}
	}
	return out.Simplify(), nil
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}
