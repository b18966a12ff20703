// color.go encodes normalized colors into 10-bit hardware values.

package scaling

import (
	"math"

	"github.com/xaionaro-go/avsfc/types"
)

const colorFillMax = 1023

// NormalizeColor encodes a [0, 1] channel as clamp(round(v×1024), 0, 1023).
func NormalizeColor(v float64) uint32 {
	if math.IsNaN(v) {
		return 0
	}
	return uint32(clamp(roundHalfUp(v*1024), 0, colorFillMax))
}

// ColorFill is the encoded color-fill color.
type ColorFill struct {
	YR uint32
	UG uint32
	VB uint32
	A  uint32
}

func EncodeColor(c types.Color) ColorFill {
	return ColorFill{
		YR: NormalizeColor(c.R),
		UG: NormalizeColor(c.G),
		VB: NormalizeColor(c.B),
		A:  NormalizeColor(c.A),
	}
}
