// classify.go implements the lookups over the format table.

package format

import (
	"github.com/xaionaro-go/avsfc/types"
)

// Class is the hardware description of an output pixel format.
type Class struct {
	Format        Format
	Code          OutputCode
	BitDepth      uint8
	BitDepthField uint8
	Interleaved   bool
	Swap          bool
	ColorPack     ColorPack
	Family        Family
}

// Classify returns the hardware encoding of an output format.
func Classify(f Format) (Class, error) {
	e, ok := table[f]
	if !ok || !e.HasOutputCode {
		return Class{}, types.ErrUnsupportedFormat{Format: f}
	}
	return Class{
		Format:        f,
		Code:          e.Code,
		BitDepth:      e.BitDepth,
		BitDepthField: e.BitDepthField,
		Interleaved:   e.Interleaved,
		Swap:          e.Swap,
		ColorPack:     e.ColorPack,
		Family:        e.Family,
	}, nil
}

// ColorPackOf returns the chroma subsampling of any known (input or output) format.
func ColorPackOf(f Format) (ColorPack, error) {
	e, ok := table[f]
	if !ok {
		return ColorPackUndefined, types.ErrUnsupportedFormat{Format: f}
	}
	return e.ColorPack, nil
}

// FamilyOf returns the color family of any known (input or output) format.
func FamilyOf(f Format) (Family, error) {
	e, ok := table[f]
	if !ok {
		return FamilyUndefined, types.ErrUnsupportedFormat{Format: f}
	}
	return e.Family, nil
}

func IsRGB(f Format) bool {
	family, _ := FamilyOf(f)
	return family == FamilyRGB
}

// DefaultPlaneOffsets returns the U and V plane positions of a surface
// whose chroma follows the luma plane directly, as is the case for
// interleaved formats allocated without extra padding.
func (c Class) DefaultPlaneOffsets(height uint32) (u, v types.PlaneOffset) {
	if !c.Interleaved {
		return types.PlaneOffset{}, types.PlaneOffset{}
	}
	return types.PlaneOffset{Y: height}, types.PlaneOffset{Y: height}
}
