// SPDX-License-Identifier: MIT

package povm

import (
	"errors"
	"fmt"
)

var (
	// ErrPhotonRange rejects negative photon numbers and inputs whose
	// qudit labels would need more than one digit per mode.
	ErrPhotonRange = errors.New("povm: photon number out of range")

	// ErrUnconvertible is returned by Visibility for scalars that are not
	// numbers or <phi|psi> overlaps after integration.
	ErrUnconvertible = errors.New("povm: cannot convert scalar")
)

const (
	opFockState  = "FockState"
	opProjector  = "Projector"
	opBeam       = "BeamSplitter"
	opCalculate  = "Calculate"
	opGenerate   = "Generate"
	opVisibility = "Visibility"
)

func povmErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
