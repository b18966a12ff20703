// fixed_point.go implements the Q4.19 fixed-point encodings of scale factors and phase shifts.

// Package scaling computes the scaling parameters programmed into the scaler unit.
package scaling

import (
	"math"

	"github.com/xaionaro-go/avsfc/types"
	"golang.org/x/exp/constraints"
)

const (
	// FractionBits is the amount of fractional bits of the Q4.19 encoding.
	FractionBits = 19

	// One is 1.0 in Q4.19.
	One = 1 << FractionBits

	ScaleFactorBits = 23
	MaxScaleFactor  = 1<<ScaleFactorBits - 1

	MinPhaseShift = -(1 << (4 + FractionBits))
	MaxPhaseShift = 1<<(4+FractionBits) - 1
)

func clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// roundHalfUp rounds the way the hardware reference model does: ties go
// towards +Inf, also for negative values.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func checkLengths(sourceLen, destLen uint32) error {
	if sourceLen == 0 {
		return types.ErrInvalidConfiguration{Reason: "source region length is zero"}
	}
	if destLen == 0 {
		return types.ErrInvalidConfiguration{Reason: "destination region length is zero"}
	}
	return nil
}

// ScaleFactor returns round(sourceLen/destLen × 2^19) limited to the
// 23 bits of the hardware field.
func ScaleFactor(sourceLen, destLen uint32) (uint32, error) {
	if err := checkLengths(sourceLen, destLen); err != nil {
		return 0, err
	}
	v := roundHalfUp(float64(sourceLen) / float64(destLen) * One)
	return uint32(clamp(v, 1, MaxScaleFactor)), nil
}

// PhaseShift returns the centering correction of the first output pixel:
// clamp(round((sourceLen/destLen - 1) / 2 × 2^19), -2^23, 2^23-1).
func PhaseShift(sourceLen, destLen uint32) (int32, error) {
	if err := checkLengths(sourceLen, destLen); err != nil {
		return 0, err
	}
	ratio := float64(sourceLen) / float64(destLen)
	v := roundHalfUp((ratio - 1) / 2 * One)
	return int32(clamp(v, MinPhaseShift, MaxPhaseShift)), nil
}

// DestinationLength recovers the destination length a scale factor maps
// sourceLen to.
func DestinationLength(sourceLen, scaleFactor uint32) uint32 {
	if scaleFactor == 0 {
		return 0
	}
	return uint32(roundHalfUp(float64(sourceLen) * One / float64(scaleFactor)))
}
