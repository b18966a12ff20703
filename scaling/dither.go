// dither.go defines the dithering lookup table.

package scaling

// DitherLUTSize is the amount of dithering deltas.
const DitherLUTSize = 16

var ditherLUT = [DitherLUTSize]uint8{
	0, 0, 0, 0,
	0, 1, 0, 0,
	0, 1, 1, 0,
	0, 1, 1, 1,
}

// DitherDeltas returns the fixed dithering delta table; each delta is a
// 3-bit value.
func DitherDeltas() [DitherLUTSize]uint8 {
	return ditherLUT
}
