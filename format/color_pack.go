// color_pack.go defines the chroma subsampling classes and the color families.

package format

import (
	"fmt"
)

type ColorPack int

const (
	ColorPackUndefined ColorPack = iota
	ColorPack400
	ColorPack411
	ColorPack420
	ColorPack422H
	ColorPack444
)

func (p ColorPack) String() string {
	switch p {
	case ColorPackUndefined:
		return "<undefined>"
	case ColorPack400:
		return "4:0:0"
	case ColorPack411:
		return "4:1:1"
	case ColorPack420:
		return "4:2:0"
	case ColorPack422H:
		return "4:2:2"
	case ColorPack444:
		return "4:4:4"
	default:
		return fmt.Sprintf("<unexpected_%d>", int(p))
	}
}

// SubsamplingCode is the hardware input chroma subsampling code.
func (p ColorPack) SubsamplingCode() uint32 {
	switch p {
	case ColorPack420:
		return 1
	case ColorPack422H:
		return 2
	case ColorPack444:
		return 4
	case ColorPack411:
		return 5
	default:
		return 0
	}
}

// IsSubsampled reports whether chroma has fewer samples than luma.
func (p ColorPack) IsSubsampled() bool {
	switch p {
	case ColorPack411, ColorPack420, ColorPack422H:
		return true
	default:
		return false
	}
}

type Family int

const (
	FamilyUndefined Family = iota
	FamilyYUV
	FamilyRGB
)

func (f Family) String() string {
	switch f {
	case FamilyUndefined:
		return "<undefined>"
	case FamilyYUV:
		return "yuv"
	case FamilyRGB:
		return "rgb"
	default:
		return fmt.Sprintf("<unexpected_%d>", int(f))
	}
}
